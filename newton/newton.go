/*
Package newton inverts monotonic scalar functions with the Newton-Raphson
method.

The solver never fails: when it cannot converge it hands back the best
estimate it has. Three situations end an iteration early:

   - the derivative is too flat to divide by (below Params.Epsilon),
   - the step size repeats identically for more than Params.StagnationLimit
     iterations, which happens when the iteration oscillates between two
     values; the midpoint of the last two estimates is returned,
   - the step limit Params.MaxSteps is reached.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package newton

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arclen.newton'
func tracer() tracing.Trace {
	return tracing.Select("arclen.newton")
}

// Func is a scalar function of one variable.
type Func func(float64) float64

// Params configures the solver.
// Fields with a value <= 0 are replaced by the corresponding default.
type Params struct {
	MaxSteps        int     // hard iteration cap
	Tolerance       float64 // relative step size to accept as converged
	Epsilon         float64 // derivatives below this magnitude end the iteration
	StagnationLimit int     // identical step sizes tolerated before bisecting
}

// DefaultParams returns the solver defaults: 100 steps, a relative
// tolerance of 1e-4, a derivative floor of 1e-4 and a stagnation limit of 10.
func DefaultParams() Params {
	return Params{
		MaxSteps:        100,
		Tolerance:       1e-4,
		Epsilon:         1e-4,
		StagnationLimit: 10,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.MaxSteps <= 0 {
		p.MaxSteps = d.MaxSteps
	}
	if p.Tolerance <= 0 {
		p.Tolerance = d.Tolerance
	}
	if p.Epsilon <= 0 {
		p.Epsilon = d.Epsilon
	}
	if p.StagnationLimit <= 0 {
		p.StagnationLimit = d.StagnationLimit
	}
	return p
}

// Reason tells why the solver stopped.
type Reason int

// Reasons for the solver to stop.
const (
	Converged      Reason = iota // relative step below tolerance
	FlatDerivative               // derivative below epsilon
	Stagnated                    // step size repeated, midpoint returned
	StepLimit                    // MaxSteps exhausted
)

func (r Reason) String() string {
	switch r {
	case Converged:
		return "converged"
	case FlatDerivative:
		return "flat_derivative"
	case Stagnated:
		return "stagnated"
	case StepLimit:
		return "step_limit"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Result is the outcome of a solver run.
type Result struct {
	X      float64 // best estimate for f(X) = target
	Steps  int     // Newton steps performed
	Reason Reason
}

// Solve searches x with f(x) = target, starting at hint. df is the
// derivative of f.
func Solve(target, hint float64, f, df Func, params Params) Result {
	params = params.withDefaults()
	res := solve(target, hint, f, df, params)
	observe(res)
	switch res.Reason {
	case Stagnated, StepLimit:
		tracer().Debugf("newton: target %g not reached (%s after %d steps), x = %g",
			target, res.Reason, res.Steps, res.X)
	}
	return res
}

// Find is Solve with default parameters, returning just the estimate.
func Find(target, hint float64, f, df Func) float64 {
	return Solve(target, hint, f, df, DefaultParams()).X
}

func solve(target, hint float64, f, df Func, params Params) Result {
	x0, x1 := hint, hint
	var lastDelta float64
	repeats := 0
	for n := 1; n <= params.MaxSteps; n++ {
		yp := df(x0)
		if math.Abs(yp) < params.Epsilon {
			return Result{X: x0, Steps: n, Reason: FlatDerivative}
		}
		x1 = x0 - (f(x0)-target)/yp
		delta := math.Abs(x1 - x0)
		if delta == 0 || delta/math.Abs(x1) < params.Tolerance {
			return Result{X: x1, Steps: n, Reason: Converged}
		}
		if n > 1 && delta == lastDelta {
			if repeats >= params.StagnationLimit {
				return Result{X: (x0 + x1) / 2, Steps: n, Reason: Stagnated}
			}
			repeats++
		} else {
			repeats = 0
		}
		lastDelta = delta
		x0 = x1
	}
	return Result{X: x1, Steps: params.MaxSteps, Reason: StepLimit}
}
