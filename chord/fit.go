package chord

import (
	"fmt"
	"math"

	"github.com/npillmayer/sigpath"
	"github.com/npillmayer/sigpath/pathdata"
)

// Validate checks if a path may be subjected to FindControls.
func (path *Path) Validate() error {
	if path == nil {
		return ErrNilPath
	}
	if path.N() < 1 {
		return ErrTooFewKnots
	}
	for i, p := range path.points {
		if p.IsNaN() || math.IsInf(p.X(), 0) || math.IsInf(p.Y(), 0) {
			return fmt.Errorf("%w: knot %d = %v", ErrInvalidKnot, i, p)
		}
	}
	return nil
}

/*
FindControls calculates the spline control points for every knot of a path.

Clients may provide a container for the control points via path.Controls.
If none is provided, this function will allocate one. tension is the
fraction of the chord length between a knot's neighbours the control
points are placed away from the knot.

For open paths, the first knot has no incoming and the last knot no outgoing
control point.
*/
func FindControls(path *Path, tension float64) (*Controls, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(tension) || math.IsInf(tension, 0) {
		return nil, fmt.Errorf("invalid tension %v", tension)
	}
	controls := path.Controls
	if controls == nil {
		controls = &Controls{}
		path.Controls = controls
	}
	n := path.N()
	for i := 0; i < n; i++ {
		z := path.Z(i)
		length, angle := line(path.neighbour(i-1, i), path.neighbour(i+1, i))
		length *= tension
		if i > 0 || path.IsCycle() {
			controls.SetPreControl(i, z+controlOffset(angle+math.Pi, length))
		}
		if i < n-1 || path.IsCycle() {
			controls.SetPostControl(i, z+controlOffset(angle, length))
		}
	}
	tracer().Debugf("controls for %d knots, tension %.3f", n, tension)
	return controls, nil
}

// MustFindControls is like FindControls, but panics on invalid paths.
func MustFindControls(path *Path, tension float64) *Controls {
	c, err := FindControls(path, tension)
	if err != nil {
		panic(err)
	}
	return c
}

func controlOffset(angle, length float64) sigpath.Pair {
	return sigpath.P(math.Cos(angle)*length, math.Sin(angle)*length)
}

// PathData converts a path and its control points into absolute path data:
// a move-to to the first knot, a cubic curve to every further knot, and
// for cyclic paths a final curve back to the first knot, followed by a
// close-path.
func PathData(path *Path, controls *Controls) (pathdata.Data, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	if controls == nil {
		return nil, fmt.Errorf("no control points for path %s", AsString(path, nil))
	}
	n := path.N()
	d := make(pathdata.Data, 0, n+2)
	d = append(d, pathdata.M(path.Z(0).F()))
	segments := n - 1
	if path.IsCycle() && n > 1 {
		segments = n
	}
	for i := 0; i < segments; i++ {
		j := (i + 1) % n
		c1, c2, z := controls.PostControl(i), controls.PreControl(j), path.Z(j)
		if c1.IsNaN() || c2.IsNaN() {
			return nil, fmt.Errorf("missing control point for segment %d", i)
		}
		d = append(d, pathdata.C(c1.X(), c1.Y(), c2.X(), c2.Y(), z.X(), z.Y()))
	}
	if path.IsCycle() {
		d = append(d, pathdata.Z())
	}
	return d, nil
}

// Fit builds a path through points, finds its control points for a given
// tension, and returns the resulting path data. A single point results in a
// lone move-to.
//
// Fit is a convenience function which combines FromPoints(…), FindControls(…)
// and PathData(…).
func Fit(points []sigpath.Pair, tension float64, closed bool) (pathdata.Data, error) {
	path := FromPoints(points)
	if closed {
		path.Cycle()
	}
	controls, err := FindControls(path, tension)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("fit %s", AsString(path, nil))
	return PathData(path, controls)
}
