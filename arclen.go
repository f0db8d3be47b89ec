/*
Package arclen provides the numeric vocabulary for arc-length parameterized
B-splines: tolerant float predicates, the capability contract for
control-point types, a 2D point type, an n-dimensional way-point type and
affine transformations for 2D points.

The heavy lifting lives in the sub-packages:

	gauss    Gauss-Legendre quadrature
	newton   Newton-Raphson inversion of monotonic functions
	bspline  B-spline curves, span-length caching and re-parameterization
	polygon  polylines and polygons of flattened 2D splines

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package arclen

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arclen'
func tracer() tracing.Trace {
	return tracing.Select("arclen")
}

// === Numeric helpers =======================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// Clamp restricts n to the closed interval [lo, hi]. NaN is mapped to lo.
func Clamp(n, lo, hi float64) float64 {
	if math.IsNaN(n) {
		tracer().Errorf("clamping NaN to %g", lo)
		return lo
	}
	return math.Max(lo, math.Min(hi, n))
}
