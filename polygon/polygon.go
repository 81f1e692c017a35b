/*
Package polygon implements simple polygons, used to describe drawing surfaces
and the extent of strokes.

Polygons are built like paths:

   pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

Geometry operations are delegated to github.com/akavel/polyclip-go.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sigpath"
)

// L traces with key 'sigpath'.
func L() tracing.Trace {
	return tracing.Select("sigpath")
}

// Polygon is a sequence of knots. Cyclic polygons enclose an area.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by Knot(…).
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Box creates a rectangular cyclic polygon from two opposite corners, in
// counter-clockwise order starting at the lower left corner.
func Box(a, b sigpath.Pair) *Polygon {
	x0, x1 := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	y0, y1 := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return NullPolygon().
		Knot(sigpath.P(x0, y0)).Knot(sigpath.P(x1, y0)).
		Knot(sigpath.P(x1, y1)).Knot(sigpath.P(x0, y1)).Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p sigpath.Pair) *Polygon {
	pg.contour.Add(point(p))
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End finishes an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) sigpath.Pair {
	return pair(pg.contour[i])
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-aligned rectangle containing all knots. An empty polygon results in
// NaN corners.
func (pg *Polygon) BoundingBox() (sigpath.Pair, sigpath.Pair) {
	if pg.N() == 0 {
		nan := sigpath.P(math.NaN(), math.NaN())
		return nan, nan
	}
	r := pg.contour.BoundingBox()
	return pair(r.Min), pair(r.Max)
}

// Contains checks if p lies inside a cyclic polygon. Open polygons contain
// nothing. Results for points on the border are unspecified.
func (pg *Polygon) Contains(p sigpath.Pair) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(point(p))
}

// Intersection returns the bounding box of the overlap of two cyclic
// polygons. ok is false if they do not overlap.
func Intersection(a, b *Polygon) (lo, hi sigpath.Pair, ok bool) {
	if !a.cycle || !b.cycle {
		return
	}
	clip := polyclip.Polygon{a.contour}.Construct(polyclip.INTERSECTION, polyclip.Polygon{b.contour})
	if len(clip) == 0 || clip.NumVertices() == 0 {
		L().Debugf("polygons do not overlap")
		return
	}
	r := clip.BoundingBox()
	return pair(r.Min), pair(r.Max), true
}

// Enclosing returns the bounding box of a set of points as a cyclic polygon,
// padded by pad on every side. It returns nil for an empty set of points.
func Enclosing(pts []sigpath.Pair, pad float64) *Polygon {
	if len(pts) == 0 {
		return nil
	}
	c := make(polyclip.Contour, 0, len(pts))
	for _, p := range pts {
		c.Add(point(p))
	}
	r := c.BoundingBox()
	return Box(pair(r.Min)-sigpath.P(pad, pad), pair(r.Max)+sigpath.P(pad, pad))
}

// AsString returns a polygon as a string, for debugging.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.contour {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%g,%g)", p.X, p.Y)
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func point(p sigpath.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) sigpath.Pair {
	return sigpath.P(p.X, p.Y)
}
