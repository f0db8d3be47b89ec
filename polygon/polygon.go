/*
Package polygon deals with polylines and polygons of 2D points, most notably
with flattened B-splines.

Flattening samples a spline at equal arc-length distances, so the edges of
the resulting polyline all have about the same length, regardless of how
fast the spline's parameter moves along the curve.

Clipping operations are delegated to polyclip-go (an implementation of the
Martinez-Rueda-Feito algorithm). For clipping, every polygon is treated as
closed, even if it has been built as an open polyline.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/arclen"
	"github.com/npillmayer/arclen/bspline"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'arclen.polygon'.
func L() tracing.Trace {
	return tracing.Select("arclen.polygon")
}

// Polygon is a sequence of 2D points, either open (a polyline) or closed.
// To construct a polygon, start with NullPolygon() and extend it.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(arclen.P(0, 0)).Knot(arclen.P(1, 3)).Knot(arclen.P(3, 0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a point. Part of builder functionality.
func (pg *Polygon) Knot(p arclen.Pair) *Polygon {
	pg.contour.Add(point(p))
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polyline. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Box creates a closed, axis-aligned rectangle from two opposite corners.
func Box(corner, opposite arclen.Pair) *Polygon {
	x0, x1 := math.Min(corner.X(), opposite.X()), math.Max(corner.X(), opposite.X())
	y0, y1 := math.Min(corner.Y(), opposite.Y()), math.Max(corner.Y(), opposite.Y())
	return NullPolygon().Knot(arclen.P(x0, y0)).Knot(arclen.P(x1, y0)).
		Knot(arclen.P(x1, y1)).Knot(arclen.P(x0, y1)).Cycle()
}

// FromSpline flattens a 2D spline into an open polyline of divisions+1
// points, spaced at equal arc length.
func FromSpline(s *bspline.Spline[arclen.Pair], divisions int) *Polygon {
	pg := NullPolygon()
	for t := range s.LinearParams(divisions) {
		pg.Knot(s.P(t))
	}
	L().Debugf("flattened spline of length %.4f into %d points", s.Length(), pg.N())
	return pg.End()
}

// N returns the number of points of the polygon.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Pt returns the point at position (i mod N).
func (pg *Polygon) Pt(i int) arclen.Pair {
	n := pg.N()
	i = ((i % n) + n) % n
	return pair(pg.contour[i])
}

// Length returns the sum of all edge lengths, including the closing edge of
// a cycle.
func (pg *Polygon) Length() float64 {
	var l float64
	for i := 1; i < pg.N(); i++ {
		l += pg.Pt(i).Sub(pg.Pt(i - 1)).Mag()
	}
	if pg.cycle && pg.N() > 2 {
		l += pg.Pt(0).Sub(pg.Pt(-1)).Mag()
	}
	return l
}

// Area returns the area enclosed by the polygon, treated as closed.
// Counter-clockwise polygons have positive area.
func (pg *Polygon) Area() float64 {
	var a float64
	for i := 0; i < pg.N(); i++ {
		p, q := pg.Pt(i), pg.Pt(i+1)
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return a / 2
}

// BoundingBox returns the lower left and upper right corners of the smallest
// axis-aligned rectangle containing all points.
func (pg *Polygon) BoundingBox() (arclen.Pair, arclen.Pair) {
	if pg.N() == 0 {
		return arclen.Origin, arclen.Origin
	}
	r := pg.contour.BoundingBox()
	return pair(r.Min), pair(r.Max)
}

// Contains checks if p lies inside the polygon, treated as closed.
func (pg *Polygon) Contains(p arclen.Pair) bool {
	return pg.contour.Contains(point(p))
}

// Transformed returns a copy of the polygon with all points transformed by m.
func (pg *Polygon) Transformed(m arclen.AT) *Polygon {
	t := &Polygon{cycle: pg.cycle}
	for _, p := range pg.contour {
		t.contour.Add(point(m.Transform(pair(p))))
	}
	return t
}

// Intersect clips pg against clip. The result may consist of any number of
// closed polygons.
func (pg *Polygon) Intersect(clip *Polygon) []*Polygon {
	return pg.construct(polyclip.INTERSECTION, clip)
}

// Union merges pg and clip.
func (pg *Polygon) Union(clip *Polygon) []*Polygon {
	return pg.construct(polyclip.UNION, clip)
}

// Difference removes clip from pg.
func (pg *Polygon) Difference(clip *Polygon) []*Polygon {
	return pg.construct(polyclip.DIFFERENCE, clip)
}

func (pg *Polygon) construct(op polyclip.Op, clip *Polygon) []*Polygon {
	subject := polyclip.Polygon{pg.contour}
	result := subject.Construct(op, polyclip.Polygon{clip.contour})
	polygons := make([]*Polygon, 0, len(result))
	for _, c := range result {
		polygons = append(polygons, &Polygon{contour: c, cycle: true})
	}
	L().Debugf("clipping resulted in %d contour(s)", len(polygons))
	return polygons
}

// AsString returns a polygon as a (debugging) string:
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		p := pg.Pt(i)
		fmt.Fprintf(&b, "(%.4g,%.4g)", p.X(), p.Y())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func point(p arclen.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) arclen.Pair {
	return arclen.P(p.X, p.Y)
}
