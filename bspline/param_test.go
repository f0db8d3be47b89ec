package bspline

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arcs[T interface{ ArcLength(float64) float64 }](s T, params []float64) []float64 {
	a := make([]float64, len(params))
	for i, p := range params {
		a[i] = s.ArcLength(p)
	}
	return a
}

func TestParameterizeLinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, order := range []int{3, 4} {
		s := mustSpline(t, wave(), order)
		_, hi := s.Domain()
		params := s.ParameterizeLinear(10)
		require.Len(t, params, 11)
		assert.Equal(t, 0.0, params[0])
		assert.Equal(t, hi, params[10])
		a := arcs(s, params)
		for i := 1; i < len(a); i++ {
			assert.Greater(t, params[i], params[i-1])
			assert.InDelta(t, s.Length()/10, a[i]-a[i-1], 1e-3, "order %d, division %d", order, i)
		}
	}
}

func TestParameterizeSigmoid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := mustSpline(t, wave(), 3)
	L := s.Length()
	params := s.ParameterizeSigmoid(10)
	require.Len(t, params, 11)
	assert.Equal(t, 0.0, params[0])
	assert.Equal(t, 4.0, params[10])
	a := arcs(s, params)
	for i := 1; i < 10; i++ {
		want := L / (1 + math.Exp(-14*(float64(i)/10-0.5)))
		assert.InDelta(t, want, a[i], 1e-3, "division %d", i)
		assert.InDelta(t, L, a[i]+a[10-i], 2e-3, "symmetry at %d", i)
		assert.GreaterOrEqual(t, params[i], params[i-1])
	}
	delta := func(i int) float64 { return a[i] - a[i-1] }
	// dense near the ends, sparse around the middle
	assert.Less(t, delta(2), delta(5))
	assert.Less(t, delta(9), delta(6))
	assert.Less(t, delta(1), delta(3))
}

func TestSigmoidSteepnessOption(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := mustSpline(t, wave(), 3, WithSigmoidSteepness(4))
	params := s.ParameterizeSigmoid(10)
	want := s.Length() / (1 + math.Exp(1.6))
	assert.InDelta(t, want, s.ArcLength(params[1]), 1e-3)
}

func TestDivisionsAreAtLeastOne(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := mustSpline(t, wave(), 3)
	assert.Equal(t, []float64{0, 4}, s.ParameterizeLinear(0))
	assert.Equal(t, []float64{0, 4}, s.ParameterizeSigmoid(-3))
	assert.Equal(t, []float64{0, 4}, s.ParameterizeLinear(1))
}

func TestParamSequenceStopsEarly(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := mustSpline(t, wave(), 3)
	var got []float64
	for p := range s.LinearParams(10) {
		if len(got) == 3 {
			break
		}
		got = append(got, p)
	}
	assert.Equal(t, s.ParameterizeLinear(10)[:3], got)
	n := 0
	for range s.SigmoidParams(5) {
		n++
	}
	assert.Equal(t, 6, n)
}
