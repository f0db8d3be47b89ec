/*
Package gauss integrates scalar functions with fixed-order Gauss-Legendre
quadrature.

A rule of order n integrates polynomials of degree up to 2n-1 exactly. For
the smooth integrands found in arc-length computations of B-spline spans
(the magnitude of a polynomial derivative) a 64-point rule is treated as
exact; there is neither adaptive refinement nor an error estimate.

Nodes and weights for the canonical interval [-1,1] are computed once per
rule and mapped onto the integration interval on each call.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package gauss

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/integrate/quad"
)

// tracer writes to trace with key 'arclen.gauss'
func tracer() tracing.Trace {
	return tracing.Select("arclen.gauss")
}

// DefaultOrder is the number of nodes of the package-level rule.
const DefaultOrder = 64

// ErrInvalidOrder is returned for rules with less than one node.
var ErrInvalidOrder = errors.New("quadrature order must be at least 1")

// Func is a scalar function of one variable.
type Func func(float64) float64

// Rule is a Gauss-Legendre quadrature rule of fixed order.
// A Rule is immutable and safe for concurrent use.
type Rule struct {
	nodes   []float64 // abscissae in [-1,1]
	weights []float64
}

// NewRule creates a Gauss-Legendre rule with n nodes.
func NewRule(n int) (*Rule, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, n)
	}
	r := &Rule{
		nodes:   make([]float64, n),
		weights: make([]float64, n),
	}
	quad.Legendre{}.FixedLocations(r.nodes, r.weights, -1, 1)
	tracer().Debugf("created Gauss-Legendre rule of order %d", n)
	return r, nil
}

// Order returns the number of nodes of r.
func (r *Rule) Order() int {
	return len(r.nodes)
}

// Integrate approximates the integral of f over [from, to].
// For from > to the result is the negated integral over [to, from].
func (r *Rule) Integrate(f Func, from, to float64) float64 {
	if from == to {
		return 0
	}
	half := (to - from) / 2
	mid := (to + from) / 2
	var sum float64
	for i, x := range r.nodes {
		sum += r.weights[i] * f(mid+half*x)
	}
	return half * sum
}

var defaultRule = sync.OnceValue(func() *Rule {
	r, _ := NewRule(DefaultOrder)
	return r
})

// Default returns the shared rule of order DefaultOrder.
func Default() *Rule {
	return defaultRule()
}

// Integrate approximates the integral of f over [from, to] with the default
// 64-point rule.
func Integrate(f Func, from, to float64) float64 {
	return defaultRule().Integrate(f, from, to)
}
