package polygon

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sigpath"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(sigpath.P(0, 0)).Knot(sigpath.P(1, 3)).Knot(sigpath.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	assert.Equal(t, 3, pg.N())
	assert.True(t, pg.IsCycle())
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(sigpath.P(0, 5), sigpath.P(4, 1))
	L().Infof("box = %s", AsString(box))
	assert.Equal(t, 4, box.N())
	assert.Equal(t, sigpath.P(0, 1), box.Pt(0))
	assert.Equal(t, sigpath.P(4, 5), box.Pt(2))
	min, max := box.BoundingBox()
	assert.Equal(t, sigpath.P(0, 1), min)
	assert.Equal(t, sigpath.P(4, 5), max)
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(sigpath.P(0, 0), sigpath.P(10, 10))
	assert.True(t, box.Contains(sigpath.P(5, 5)))
	assert.True(t, box.Contains(sigpath.P(0.5, 9.5)))
	assert.False(t, box.Contains(sigpath.P(-1, 5)))
	assert.False(t, box.Contains(sigpath.P(5, 11)))
	open := NullPolygon().Knot(sigpath.P(0, 0)).Knot(sigpath.P(10, 0)).Knot(sigpath.P(5, 10)).End()
	assert.False(t, open.Contains(sigpath.P(5, 2)))
}

func TestEmptyBoundingBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	min, max := NullPolygon().BoundingBox()
	assert.True(t, math.IsNaN(min.X()))
	assert.True(t, math.IsNaN(max.Y()))
}

func TestEnclosing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Nil(t, Enclosing(nil, 1))
	pg := Enclosing([]sigpath.Pair{sigpath.P(3, 4), sigpath.P(1, 7), sigpath.P(2, 5)}, 1)
	min, max := pg.BoundingBox()
	assert.Equal(t, sigpath.P(0, 3), min)
	assert.Equal(t, sigpath.P(4, 8), max)
}

func TestIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(sigpath.P(0, 0), sigpath.P(10, 10))
	b := Box(sigpath.P(5, -5), sigpath.P(15, 5))
	min, max, ok := Intersection(a, b)
	assert.True(t, ok)
	assert.InDelta(t, 5, min.X(), 1e-9)
	assert.InDelta(t, 0, min.Y(), 1e-9)
	assert.InDelta(t, 10, max.X(), 1e-9)
	assert.InDelta(t, 5, max.Y(), 1e-9)
	_, _, ok = Intersection(a, Box(sigpath.P(20, 20), sigpath.P(30, 30)))
	assert.False(t, ok)
}
