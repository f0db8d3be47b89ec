// Package bspline evaluates clamped, non-periodic B-spline curves over
// arbitrary control-point types and re-parameterizes them by arc length.
/*

A B-spline of order k (degree k-1) over n control points is a piecewise
polynomial curve. Its knot vector is clamped: the first and the last k knots
coincide, which makes the curve start at the first control point and end at
the last one. Interior knots are spaced at unit distance, so the parameter
domain is [0, n-k+1] and every unit interval of it is one span of the curve.

Evaluating a spline at equally spaced parameter values does not produce
equally spaced points on the curve: the speed of the curve varies. Package
bspline therefore measures the arc length of every span once, at
construction time, by integrating the speed of the curve with a 64-point
Gauss-Legendre rule (package gauss). Arc-length queries then only need to
integrate the remainder within a single span, and the inverse question --
which parameter lies at a given distance along the curve -- is answered by a
Newton-Raphson solve (package newton) within the span containing that
distance.

Usage

Control points are any type implementing arclen.Vector, e.g. arclen.Pair or
arclen.VecN:

	cps := []arclen.Pair{arclen.P(-2, -1), arclen.P(-1, 1), arclen.P(-0.25, 1),
		arclen.P(0.25, -1), arclen.P(1, -1), arclen.P(2, 1)}
	spline, err := bspline.New(cps, 3)
	...
	for _, t := range spline.ParameterizeLinear(10) {
		fmt.Println(spline.P(t)) // 11 points at equal distances along the curve
	}

A Spline is immutable after construction and safe for concurrent use.
Changing control points means building a new spline (see WithControlPoints),
which re-measures all spans.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bspline
