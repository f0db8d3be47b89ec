package bspline

import "github.com/npillmayer/arclen"

// Knots is a non-decreasing sequence of parameter values, partitioning the
// domain of a spline into spans.
type Knots []float64

// KnotVector creates the clamped knot vector for n control points and a
// spline of the given order: order zeros, one unit step per interior control
// point, then the last value repeated order times.
//
//	KnotVector(6, 3) = [0 0 0 1 2 3 4 4 4]
//
// Callers have to guarantee 1 <= order <= n.
func KnotVector(n, order int) Knots {
	knots := make(Knots, 0, n+order)
	for range order {
		knots = append(knots, 0)
	}
	var k float64
	for i := order; i < n; i++ {
		k++
		knots = append(knots, k)
	}
	k++
	for i := n; i < n+order; i++ {
		knots = append(knots, k)
	}
	return knots
}

// Domain returns the first and the last knot.
func (knots Knots) Domain() (float64, float64) {
	return knots[0], knots[len(knots)-1]
}

// Clamp restricts t to the domain of the knot vector.
func (knots Knots) Clamp(t float64) float64 {
	lo, hi := knots.Domain()
	return arclen.Clamp(t, lo, hi)
}

// Basis evaluates the Cox-de Boor basis function N(i,k) of degree k at t.
// Terms with a zero knot difference in their denominator (repeated knots)
// vanish.
//
// Degree-0 basis functions are indicators of the half-open span
// [knots[i], knots[i+1]); the last non-empty span is closed at the end of
// the domain, so that the basis functions sum to 1 everywhere in the domain.
func (knots Knots) Basis(i, k int, t float64) float64 {
	if k == 0 {
		return knots.indicator(i, t)
	}
	var left, right float64
	if d0 := knots[i+k] - knots[i]; d0 != 0 {
		if b0 := knots.Basis(i, k-1, t); b0 != 0 {
			left = (t - knots[i]) * b0 / d0
		}
	}
	if d1 := knots[i+k+1] - knots[i+1]; d1 != 0 {
		if b1 := knots.Basis(i+1, k-1, t); b1 != 0 {
			right = (knots[i+k+1] - t) * b1 / d1
		}
	}
	return left + right
}

func (knots Knots) indicator(i int, t float64) float64 {
	lo, hi := knots[i], knots[i+1]
	if lo == hi {
		return 0
	}
	if lo <= t && t < hi {
		return 1
	}
	if end := knots[len(knots)-1]; t == end && hi == end {
		return 1
	}
	return 0
}
