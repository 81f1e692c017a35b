package chord

import (
	"github.com/npillmayer/sigpath"
)

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed path of three knots.
//
//	var path *Path
//	path = Nullpath().Knot(P(0,0)).Knot(P(3,2)).Knot(P(5,2.5)).Cycle()
//
// Calling Cycle() or End() returns a path. Its control point container
// (path.Controls) is empty and to be filled by calculating the control
// points.
func Nullpath() *Path {
	return &Path{Controls: &Controls{}}
}

// FromPoints creates an open skeleton path through points. The slice is
// copied.
func FromPoints(points []sigpath.Pair) *Path {
	path := Nullpath()
	path.points = append(make([]sigpath.Pair, 0, len(points)), points...)
	return path
}

// End an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Cycle closes a cyclic path. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// Knot adds a knot to a path. Part of builder functionality.
func (path *Path) Knot(p sigpath.Pair) *Path {
	path.points = append(path.points, p)
	return path
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position (i mod N).
func (path *Path) Z(i int) sigpath.Pair {
	n := path.N()
	return path.points[((i%n)+n)%n]
}

// neighbour returns the knot at position i, if i is a valid index or the
// path is cyclic. Otherwise, the knot at position fallback is returned.
func (path *Path) neighbour(i, fallback int) sigpath.Pair {
	if path.IsCycle() || (i >= 0 && i < path.N()) {
		return path.Z(i)
	}
	return path.Z(fallback)
}

// SetPreControl is a property setter.
func (ctrls *Controls) SetPreControl(i int, c sigpath.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, unknown)
	ctrls.prec[i] = c
}

// SetPostControl is a property setter.
func (ctrls *Controls) SetPostControl(i int, c sigpath.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, unknown)
	ctrls.postc[i] = c
}

// PreControl returns the incoming control point of knot i. Unknown control
// points are NaN.
func (ctrls *Controls) PreControl(i int) sigpath.Pair {
	return getC(ctrls.prec, i, unknown)
}

// PostControl returns the outgoing control point of knot i. Unknown control
// points are NaN.
func (ctrls *Controls) PostControl(i int) sigpath.Pair {
	return getC(ctrls.postc, i, unknown)
}
