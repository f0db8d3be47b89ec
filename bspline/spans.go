package bspline

import (
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// spanCache holds the arc length of every active span of a spline.
// It is built once and never updated.
type spanCache struct {
	lengths []float64    // arc length of span j
	offsets []float64    // arc length from the start of the curve to the start of span j
	starts  []float64    // parameter at the start of span j
	total   float64      // sum of lengths, in span order
	byParam *treemap.Map // span start parameter => j
	byArc   *treemap.Map // offsets[j] => j
}

// measureSpans integrates the speed of the curve over each active span,
// i.e. over knot intervals order-1 … len(knots)-order-1.
func (s *Spline[T]) measureSpans() *spanCache {
	first, last := s.order-1, len(s.knots)-s.order
	c := &spanCache{
		lengths: make([]float64, 0, last-first),
		offsets: make([]float64, 0, last-first),
		starts:  make([]float64, 0, last-first),
		byParam: treemap.NewWith(utils.Float64Comparator),
		byArc:   treemap.NewWith(utils.Float64Comparator),
	}
	for i := first; i < last; i++ {
		t0, t1 := s.knots[i], s.knots[i+1]
		l := s.cfg.rule.Integrate(s.Speed, t0, t1)
		j := len(c.lengths)
		c.lengths = append(c.lengths, l)
		c.offsets = append(c.offsets, c.total)
		c.starts = append(c.starts, t0)
		if t1 > t0 { // empty spans cannot contain a parameter or an arc length
			c.byParam.Put(t0, j)
			if l > 0 {
				c.byArc.Put(c.total, j)
			}
		}
		c.total += l
		tracer().Debugf("span %d [%g,%g] has length %.6f", j, t0, t1, l)
	}
	if math.IsNaN(c.total) || math.IsInf(c.total, 0) {
		tracer().Errorf("spline has non-finite length %g", c.total)
	}
	cacheBuilds.Inc()
	spansPerBuild.Observe(float64(len(c.lengths)))
	tracer().Infof("measured %d spans, total length %.6f", len(c.lengths), c.total)
	return c
}

// spanAtParam returns the index of the span containing parameter t, which
// has to be clamped to the domain.
func (c *spanCache) spanAtParam(t float64) int {
	_, j := c.byParam.Floor(t)
	if j == nil {
		return 0
	}
	return j.(int)
}

// spanAtArc returns the index of the span containing arc length a,
// 0 <= a < total.
func (c *spanCache) spanAtArc(a float64) int {
	_, j := c.byArc.Floor(a)
	if j == nil {
		return 0
	}
	return j.(int)
}

// Length returns the total arc length of the spline.
func (s *Spline[T]) Length() float64 {
	return s.spans.total
}

// Spans returns the number of active spans of s.
func (s *Spline[T]) Spans() int {
	return len(s.spans.lengths)
}

// SpanLengths returns a copy of the cached arc length of every span.
func (s *Spline[T]) SpanLengths() []float64 {
	return append([]float64(nil), s.spans.lengths...)
}
