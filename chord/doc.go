// Package chord fits smooth cubic Bézier curves through a sequence of knots,
// using chord-length parameterization.
/*

For every knot the direction and length of the chord between its two
neighbours is taken as an estimate of the curve's tangent. The control
points of the knot are placed along this direction, at a distance of
tension × chord length, on either side of the knot. At the ends of an open
path a missing neighbour is replaced by the knot itself. For cyclic paths
neighbours wrap around.

The approach is the one explained in

   Smooth a Svg path with cubic bezier curves -- François Romain
   https://francoisromain.medium.com/smooth-a-svg-path-with-cubic-bezier-curves-e37b49d46c74

It is much simpler than John Hobby's algorithm, as no system of equations
has to be solved, but the resulting curves are pleasing enough for hand
drawn strokes, where knots are dense.

Usage

Clients build a skeleton path with a kind of builder pattern (package
qualifiers omitted for clarity and brevity):

   path := Nullpath().Knot(P(0,0)).Knot(P(2,3)).Knot(P(5,3)).End()

A built path is then subjected to a call to FindControls(...)

   controls, err := FindControls(path, 0.15)

which returns the control points for every knot. PathData(path, controls)
converts the result to path data, starting with a move-to to the first knot
and a cubic curve for every further knot. Closed paths are terminated by a
close-path command. Fit(...) does all of this in one step.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package chord

import "fmt"

// AsString returns
// a path -- optionally including spline control points -- as a (debugging)
// string. The string contains newlines if control point information is present.
// Otherwise it will include the knot coordinates in one line.
//
// Example, a triangle with tension 0.2:
//
//	(0,0) .. controls (-0.2000,0.4000) and (0.6000,2.0000)
//	  .. (1,2) .. controls (1.4000,2.0000) and (2.2000,0.4000)
//	  .. (2,0) .. controls (1.8000,-0.4000) and (0.2000,-0.4000)
//	  .. cycle
func AsString(path *Path, contr *Controls) string {
	var s string
	for i := 0; i < path.N(); i++ {
		pt := path.Z(i)
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && (i < path.N()-1 || path.IsCycle()) {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	if path.IsCycle() {
		if contr != nil {
			s += fmt.Sprintf(" and %s\n ", ptstring(contr.PreControl(0), true))
		}
		s += " .. cycle"
	}
	return s
}
