package polygon

import (
	"math"
	"testing"

	"github.com/npillmayer/arclen"
	"github.com/npillmayer/arclen/bspline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(arclen.P(0, 0)).Knot(arclen.P(1, 3)).Knot(arclen.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.True(t, pg.IsCycle())
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.Equal(t, arclen.P(0, 0), pg.Pt(3))
	assert.Equal(t, arclen.P(3, 0), pg.Pt(-1))
	open := NullPolygon().Knot(arclen.P(0, 0)).Knot(arclen.P(3, 4)).End()
	assert.False(t, open.IsCycle())
	assert.InDelta(t, 5.0, open.Length(), 1e-12)
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(arclen.P(0, 5), arclen.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	assert.Equal(t, 16.0, box.Length())
	assert.Equal(t, 16.0, box.Area())
	lo, hi := box.BoundingBox()
	assert.Equal(t, arclen.P(0, 1), lo)
	assert.Equal(t, arclen.P(4, 5), hi)
	assert.True(t, box.Contains(arclen.P(2, 3)))
	assert.False(t, box.Contains(arclen.P(5, 3)))
}

func TestTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(arclen.P(0, 0), arclen.P(2, 1))
	moved := box.Transformed(arclen.Translation(arclen.P(1, 1)))
	lo, hi := moved.BoundingBox()
	assert.True(t, lo.Equal(arclen.P(1, 1)))
	assert.True(t, hi.Equal(arclen.P(3, 2)))
	assert.True(t, moved.IsCycle())
	scaled := box.Transformed(arclen.Scaling(3, 3))
	assert.InDelta(t, 9*box.Area(), scaled.Area(), 1e-12)
	lo, _ = box.BoundingBox()
	assert.Equal(t, arclen.Origin, lo, "box must not change")
}

func totalArea(pgs []*Polygon) float64 {
	var a float64
	for _, pg := range pgs {
		a += math.Abs(pg.Area())
	}
	return a
}

func TestClipping(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(arclen.P(0, 0), arclen.P(2, 2))
	b := Box(arclen.P(1, 1), arclen.P(3, 3))
	isect := a.Intersect(b)
	require.NotEmpty(t, isect)
	assert.InDelta(t, 1.0, totalArea(isect), 1e-9)
	lo, hi := isect[0].BoundingBox()
	assert.True(t, lo.Equal(arclen.P(1, 1)), "lower left %v", lo)
	assert.True(t, hi.Equal(arclen.P(2, 2)), "upper right %v", hi)
	assert.InDelta(t, 7.0, totalArea(a.Union(b)), 1e-9)
	assert.InDelta(t, 3.0, totalArea(a.Difference(b)), 1e-9)
	far := Box(arclen.P(10, 10), arclen.P(11, 11))
	assert.Empty(t, a.Intersect(far))
}

func wave(t *testing.T) *bspline.Spline[arclen.Pair] {
	s, err := bspline.New([]arclen.Pair{
		arclen.P(-2, -1), arclen.P(-1, 1), arclen.P(-0.25, 1),
		arclen.P(0.25, -1), arclen.P(1, -1), arclen.P(2, 1),
	}, 3)
	require.NoError(t, err)
	return s
}

func TestFromSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := wave(t)
	pg := FromSpline(s, 50)
	require.Equal(t, 51, pg.N())
	assert.False(t, pg.IsCycle())
	assert.True(t, pg.Pt(0).Equal(arclen.P(-2, -1)))
	assert.True(t, pg.Pt(50).Equal(arclen.P(2, 1)))
	assert.LessOrEqual(t, pg.Length(), s.Length())
	assert.Greater(t, pg.Length(), 0.99*s.Length())
	step := s.Length() / 50
	for i := 1; i < pg.N(); i++ {
		edge := pg.Pt(i).Sub(pg.Pt(i - 1)).Mag()
		assert.LessOrEqual(t, edge, step+1e-3, "edge %d", i)
		assert.Greater(t, edge, 0.9*step, "edge %d", i)
	}
	lo, hi := pg.BoundingBox()
	assert.InDelta(t, -2.0, lo.X(), 1e-9)
	assert.InDelta(t, 2.0, hi.X(), 1e-9)
	assert.GreaterOrEqual(t, lo.Y(), -1-1e-9)
	assert.LessOrEqual(t, hi.Y(), 1+1e-9)
}

func TestClipFlattenedSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// area below the curve, down to y = -3
	region := FromSpline(wave(t), 40).Knot(arclen.P(2, -3)).Knot(arclen.P(-2, -3)).Cycle()
	require.Equal(t, 43, region.N())
	total := math.Abs(region.Area())
	assert.Greater(t, total, 8.0)
	assert.Less(t, total, 16.0)
	window := Box(arclen.P(0, -4), arclen.P(3, 2))
	right := region.Intersect(window)
	require.NotEmpty(t, right)
	for _, pg := range right {
		lo, _ := pg.BoundingBox()
		assert.GreaterOrEqual(t, lo.X(), -1e-9)
	}
	assert.Less(t, totalArea(right), total)
	left := region.Difference(window)
	assert.InDelta(t, total, totalArea(right)+totalArea(left), 1e-6)
}
