package chord

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sigpath"
	"github.com/npillmayer/sigpath/pathdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func testpath() *Path {
	return Nullpath().Knot(sigpath.P(1, 1)).Knot(sigpath.P(2, 2)).Knot(sigpath.P(3, 1)).End()
}

func TestSliceEnlargement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arr := make([]sigpath.Pair, 0)
	arr = extendC(arr, 3, 2+1i)
	assert.Len(t, arr, 4)
	assert.Equal(t, sigpath.Pair(2+1i), arr[3])
	assert.Equal(t, sigpath.Pair(2+1i), arr[0])
}

func TestCreatePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	assert.Equal(t, 3, path.N())
	assert.False(t, path.IsCycle())
	assert.Equal(t, sigpath.P(1, 1), path.Z(3))
	assert.Equal(t, sigpath.P(3, 1), path.Z(-1))
}

func TestFromPointsCopies(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []sigpath.Pair{sigpath.P(0, 0), sigpath.P(1, 1)}
	path := FromPoints(pts)
	pts[0] = sigpath.P(9, 9)
	assert.Equal(t, sigpath.P(0, 0), path.Z(0))
}

func TestAsStringSnapshots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "(1,1) .. (2,2) .. (3,1)", AsString(testpath(), nil))
	cycle := Nullpath().Knot(sigpath.P(1, 1)).Knot(sigpath.P(2, 2)).
		Knot(sigpath.P(3, 1)).Knot(sigpath.P(2, 0)).Cycle()
	assert.Equal(t, "(1,1) .. (2,2) .. (3,1) .. (2,0) .. cycle", AsString(cycle, nil))
	assert.Contains(t, AsString(cycle, cycle.Controls), "(<unknown>)")
}

func TestFitTwoPointsColinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d, err := Fit([]sigpath.Pair{sigpath.P(0, 0), sigpath.P(10, 0)}, DefaultTension, false)
	require.NoError(t, err)
	require.Len(t, d, 2)
	assert.Equal(t, pathdata.M(0, 0), d[0])
	c := d[1]
	require.Equal(t, pathdata.CubicTo, c.Kind)
	assert.InDelta(t, 0, c.Values[1], 1e-12)
	assert.InDelta(t, 0, c.Values[3], 1e-12)
	assert.InDelta(t, 1.5, c.Values[0], 1e-12)
	assert.InDelta(t, 8.5, c.Values[2], 1e-12)
	assert.Equal(t, []float64{10, 0}, c.Values[4:])
}

func TestFitEndpointsAnchored(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []sigpath.Pair{
		sigpath.P(0, 0), sigpath.P(3, 4), sigpath.P(7, 1), sigpath.P(10, 6), sigpath.P(12, 2),
	}
	d, err := Fit(pts, 0.2, false)
	require.NoError(t, err)
	require.Len(t, d, len(pts))
	assert.Equal(t, pts, d.Endpoints())
	for _, c := range d[1:] {
		assert.Equal(t, pathdata.CubicTo, c.Kind)
		assert.False(t, c.Relative)
	}
	// the first control point of an open path lies on the chord to its
	// successor, the last one on the chord from its predecessor
	first := sigpath.P(d[1].Values[0], d[1].Values[1])
	assert.InDelta(t, pts[1].Angle(), first.Angle(), 1e-9)
	last := sigpath.P(d[4].Values[2], d[4].Values[3])
	assert.InDelta(t, (pts[3] - pts[4]).Angle(), (last - pts[4]).Angle(), 1e-9)
}

func TestFitTangentContinuity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(sigpath.P(0, 0)).Knot(sigpath.P(2, 3)).Knot(sigpath.P(5, 3)).
		Knot(sigpath.P(6, 0)).End()
	controls := MustFindControls(path, DefaultTension)
	for i := 1; i < path.N()-1; i++ {
		pre := controls.PreControl(i) - path.Z(i)
		post := controls.PostControl(i) - path.Z(i)
		assert.InDelta(t, 0, (pre + post).Length(), 1e-9, "knot %d", i)
	}
	assert.True(t, controls.PreControl(0).IsNaN())
	assert.True(t, controls.PostControl(3).IsNaN())
}

func TestFitClosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []sigpath.Pair{sigpath.P(0, 0), sigpath.P(1, 2), sigpath.P(2, 0)}
	d, err := Fit(pts, 0.2, true)
	require.NoError(t, err)
	require.Len(t, d, 5)
	assert.Equal(t, pathdata.ClosePath, d[4].Kind)
	assert.Equal(t, []float64{0, 0}, d[3].Values[4:])
	// wrap-around control point of the first knot
	assert.InDelta(t, -0.2, d[1].Values[0], 1e-9)
	assert.InDelta(t, 0.4, d[1].Values[1], 1e-9)
	assert.InDelta(t, 0.2, d[3].Values[2], 1e-9)
	assert.InDelta(t, -0.4, d[3].Values[3], 1e-9)
	require.NoError(t, d.Validate())
}

func TestFitSinglePoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d, err := Fit([]sigpath.Pair{sigpath.P(4, 2)}, DefaultTension, false)
	require.NoError(t, err)
	assert.Equal(t, pathdata.Data{pathdata.M(4, 2)}, d)
}

func TestFindControlsRejectsNilPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FindControls(nil, DefaultTension)
	assert.True(t, errors.Is(err, ErrNilPath))
}

func TestFindControlsRejectsEmptyPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FindControls(Nullpath().End(), DefaultTension)
	assert.True(t, errors.Is(err, ErrTooFewKnots))
	_, err = Fit(nil, DefaultTension, false)
	assert.True(t, errors.Is(err, ErrTooFewKnots))
}

func TestFindControlsRejectsInvalidKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(sigpath.P(0, 0)).Knot(sigpath.P(math.NaN(), 0)).End()
	_, err := FindControls(path, DefaultTension)
	assert.True(t, errors.Is(err, ErrInvalidKnot))
	mustPanic(t, func() { MustFindControls(path, DefaultTension) })
}

func TestPathDataWithoutControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := PathData(testpath(), nil)
	assert.Error(t, err)
	_, err = PathData(testpath(), &Controls{})
	assert.Error(t, err)
}

// Fit a closed triangle. The builder statement returns a concrete Path.
// Type Path contains a link to its spline controls (field path.Controls).
// These controls are initially empty and get filled by FindControls(...).
func ExampleFindControls() {
	path := Nullpath().Knot(sigpath.P(0, 0)).Knot(sigpath.P(1, 2)).Knot(sigpath.P(2, 0)).Cycle()
	fmt.Printf("skeleton path = %s\n", AsString(path, nil))
	controls := MustFindControls(path, 0.2)
	fmt.Printf("smooth path =\n%s\n", AsString(path, controls))
	// Output:
	// skeleton path = (0,0) .. (1,2) .. (2,0) .. cycle
	// smooth path =
	// (0,0) .. controls (-0.2000,0.4000) and (0.6000,2.0000)
	//   .. (1,2) .. controls (1.4000,2.0000) and (2.2000,0.4000)
	//   .. (2,0) .. controls (1.8000,-0.4000) and (0.2000,-0.4000)
	//   .. cycle
}

func ExampleFit() {
	pts := []sigpath.Pair{sigpath.P(0, 0), sigpath.P(10, 0)}
	d, _ := Fit(pts, DefaultTension, false)
	fmt.Println(pathdata.MustSerialize(d, 1, false))
	// Output: M0 0C1.5 0 8.5 0 10 0
}
