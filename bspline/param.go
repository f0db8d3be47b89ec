package bspline

import (
	"iter"
	"math"
	"slices"
)

// LinearParams yields divisions+1 spline parameters which divide the curve
// into pieces of equal arc length. The first parameter is the start of the
// domain, the last one the end of the domain.
// divisions < 1 is treated as 1.
func (s *Spline[T]) LinearParams(divisions int) iter.Seq[float64] {
	divisions = max(divisions, 1)
	step := s.spans.total / float64(divisions)
	return s.params(divisions, func(i int) float64 {
		return float64(i) * step
	})
}

// SigmoidParams yields divisions+1 spline parameters whose arc lengths follow
// a logistic curve over the division index,
//
//	arc(i) = L / (1 + exp(-k * (i/divisions - 0.5)))
//
// with L the length of the spline and k the sigmoid steepness (default 14).
// Consecutive samples are close together near both ends of the curve and
// far apart around its middle, which suits ease-in/ease-out motion along
// the curve. The first and last parameters are the ends of the domain.
// divisions < 1 is treated as 1.
func (s *Spline[T]) SigmoidParams(divisions int) iter.Seq[float64] {
	divisions = max(divisions, 1)
	k := s.cfg.steepness
	return s.params(divisions, func(i int) float64 {
		x := float64(i) / float64(divisions)
		return s.spans.total / (1 + math.Exp(-k*(x-0.5)))
	})
}

// params yields the domain start, TimeForArc(arc(i)) for the interior
// division indices i, and the domain end.
func (s *Spline[T]) params(divisions int, arc func(int) float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		lo, hi := s.knots.Domain()
		if !yield(lo) {
			return
		}
		for i := 1; i < divisions; i++ {
			if !yield(s.TimeForArc(arc(i))) {
				return
			}
		}
		yield(hi)
	}
}

// ParameterizeLinear returns the parameters of LinearParams as a slice.
func (s *Spline[T]) ParameterizeLinear(divisions int) []float64 {
	return slices.Collect(s.LinearParams(divisions))
}

// ParameterizeSigmoid returns the parameters of SigmoidParams as a slice.
func (s *Spline[T]) ParameterizeSigmoid(divisions int) []float64 {
	return slices.Collect(s.SigmoidParams(divisions))
}
