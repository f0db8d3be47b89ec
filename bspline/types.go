package bspline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/arclen"
	"github.com/npillmayer/arclen/gauss"
	"github.com/npillmayer/arclen/newton"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arclen.bspline'
func tracer() tracing.Trace {
	return tracing.Select("arclen.bspline")
}

// DefaultOrder is the order of cubic splines, used by most clients.
const DefaultOrder = 4

// DefaultSigmoidSteepness is the steepness of the logistic curve used by
// ParameterizeSigmoid.
const DefaultSigmoidSteepness = 14.0

var (
	// ErrInvalidConfiguration indicates that a spline cannot be built from
	// the given control points, order or options.
	ErrInvalidConfiguration = errors.New("invalid spline configuration")
)

// Spline is a clamped B-spline curve over control points of type T, with
// cached span lengths for arc-length queries.
//
// Spline values are created by New and never change afterwards.
type Spline[T arclen.Vector[T]] struct {
	cp     []T        // control points, in curve traversal order
	knots  Knots      // len(cp) + order knots
	order  int        // degree + 1
	degree int        // polynomial degree of spans
	spans  *spanCache // arc length per span
	cfg    config
}

// Option configures a spline at construction time.
type Option func(*config)

type config struct {
	solver    newton.Params
	steepness float64
	quadOrder int
	rule      *gauss.Rule
}

func defaultConfig() config {
	return config{
		solver:    newton.DefaultParams(),
		steepness: DefaultSigmoidSteepness,
		quadOrder: gauss.DefaultOrder,
	}
}

// WithSolverParams sets the parameters for inverting arc length into
// spline parameters. Zero fields keep their defaults.
func WithSolverParams(p newton.Params) Option {
	return func(c *config) {
		c.solver = p
	}
}

// WithSigmoidSteepness sets the steepness of the logistic curve of
// ParameterizeSigmoid. It has to be positive.
func WithSigmoidSteepness(k float64) Option {
	return func(c *config) {
		c.steepness = k
	}
}

// WithQuadratureOrder sets the number of Gauss-Legendre nodes used to
// integrate the speed of the curve. The default is 64.
func WithQuadratureOrder(n int) Option {
	return func(c *config) {
		c.quadOrder = n
	}
}

func (c *config) complete() error {
	if !(c.steepness > 0) {
		return fmt.Errorf("%w: sigmoid steepness must be positive, is %g",
			ErrInvalidConfiguration, c.steepness)
	}
	if c.quadOrder == gauss.DefaultOrder {
		c.rule = gauss.Default()
		return nil
	}
	rule, err := gauss.NewRule(c.quadOrder)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	c.rule = rule
	return nil
}

// New creates a spline of the given order (degree + 1) from control points.
// Control points are copied. The knot vector is derived from the number of
// control points and the order, and the arc length of every span is
// measured before New returns.
//
// New fails with ErrInvalidConfiguration if there are no control points, if
// order is less than 1 or exceeds the number of control points, or if an
// option is invalid.
func New[T arclen.Vector[T]](cps []T, order int, opts ...Option) (*Spline[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(cps, order, cfg)
}

func build[T arclen.Vector[T]](cps []T, order int, cfg config) (*Spline[T], error) {
	switch {
	case len(cps) == 0:
		return nil, fmt.Errorf("%w: no control points", ErrInvalidConfiguration)
	case order < 1:
		return nil, fmt.Errorf("%w: order must be at least 1, is %d", ErrInvalidConfiguration, order)
	case order > len(cps):
		return nil, fmt.Errorf("%w: order %d exceeds number of control points %d",
			ErrInvalidConfiguration, order, len(cps))
	}
	if err := cfg.complete(); err != nil {
		return nil, err
	}
	s := &Spline[T]{
		cp:     append([]T(nil), cps...),
		knots:  KnotVector(len(cps), order),
		order:  order,
		degree: order - 1,
		cfg:    cfg,
	}
	s.spans = s.measureSpans()
	return s, nil
}

// WithControlPoints creates a new spline with the order and options of s,
// but different control points. All span lengths are measured anew.
func (s *Spline[T]) WithControlPoints(cps []T) (*Spline[T], error) {
	return build(cps, s.order, s.cfg)
}

// Order returns the order of s, i.e. its degree + 1.
func (s *Spline[T]) Order() int {
	return s.order
}

// Degree returns the polynomial degree of the spans of s.
func (s *Spline[T]) Degree() int {
	return s.degree
}

// ControlPoints returns a copy of the control points of s.
func (s *Spline[T]) ControlPoints() []T {
	return append([]T(nil), s.cp...)
}

// Knots returns a copy of the knot vector of s.
func (s *Spline[T]) Knots() Knots {
	return append(Knots(nil), s.knots...)
}

// Domain returns the parameter range of s.
func (s *Spline[T]) Domain() (float64, float64) {
	return s.knots.Domain()
}

// String returns a (debugging) description of s.
func (s *Spline[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bspline(order=%d, n=%d, length=%.4f) knots %v", s.order, len(s.cp),
		s.Length(), []float64(s.knots))
	for i, c := range s.cp {
		if i == 0 {
			b.WriteString("\n  ")
		} else {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "%v", c)
	}
	return b.String()
}
