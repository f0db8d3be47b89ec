package bspline

import (
	"github.com/npillmayer/arclen"
	"github.com/npillmayer/arclen/newton"
)

// ArcLength returns the length of the curve from its start to parameter t.
// t is clamped to the domain.
func (s *Spline[T]) ArcLength(t float64) float64 {
	t = s.knots.Clamp(t)
	j := s.spans.spanAtParam(t)
	return s.spans.offsets[j] + s.cfg.rule.Integrate(s.Speed, s.spans.starts[j], t)
}

// TimeForArc returns the parameter at which the curve has arc length a.
// It is the inverse of ArcLength. Arc lengths outside [0, Length()] are
// clamped to the domain ends.
func (s *Spline[T]) TimeForArc(a float64) float64 {
	lo, hi := s.knots.Domain()
	if a >= s.spans.total {
		return hi
	}
	if !(a > 0) {
		return lo
	}
	j := s.spans.spanAtArc(a)
	return s.TimeForSegmentArc(j, a-s.spans.offsets[j])
}

// Evaluate returns the point at relative arc position u of the curve, with
// u = 0 at the start and u = 1 at the end. u is clamped to [0,1].
func (s *Spline[T]) Evaluate(u float64) T {
	u = arclen.Clamp(u, 0, 1)
	return s.P(s.TimeForArc(u * s.spans.total))
}

// SegmentArcLength returns the arc length within span seg, from its start to
// the local parameter t (0 at the start of the span).
func (s *Spline[T]) SegmentArcLength(seg int, t float64) float64 {
	t0 := s.knots[seg+s.degree]
	return s.cfg.rule.Integrate(s.Speed, t0, t0+t)
}

// SegmentSpeed returns the speed of the curve at local parameter t of span seg,
// the derivative of SegmentArcLength.
func (s *Spline[T]) SegmentSpeed(seg int, t float64) float64 {
	return s.Speed(s.knots[seg+s.degree] + t)
}

// TimeForSegmentArc returns the spline parameter at which span seg reaches
// arc length a, measured from the start of the span. The result lies within
// the span.
func (s *Spline[T]) TimeForSegmentArc(seg int, a float64) float64 {
	t0, t1 := s.knots[seg+s.degree], s.knots[seg+s.degree+1]
	f := func(x float64) float64 { return s.SegmentArcLength(seg, x) }
	df := func(x float64) float64 { return s.SegmentSpeed(seg, x) }
	res := newton.Solve(a, 0, f, df, s.cfg.solver)
	if res.Reason != newton.Converged {
		tracer().Debugf("span %d: arc %g solved to %g (%s)", seg, a, res.X, res.Reason)
	}
	return arclen.Clamp(t0+res.X, t0, t1)
}
