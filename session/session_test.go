package session

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sigpath"
	"github.com/npillmayer/sigpath/config"
	"github.com/npillmayer/sigpath/pathdata"
	"github.com/npillmayer/sigpath/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, window int, delay time.Duration) *Session {
	t.Helper()
	opts := config.Default()
	opts.SmoothingWindow = window
	opts.LeaveDelay = delay
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func TestInvalidOptions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := config.Default()
	opts.SmoothingWindow = 0
	_, err := New(opts)
	assert.ErrorIs(t, err, config.ErrInvalidOption)
}

func TestStraightStroke(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newSession(t, 1, time.Second)
	require.NoError(t, s.Begin(sigpath.P(0, 0)))
	s.Move(sigpath.P(10, 0))
	assert.True(t, s.Drawing())
	assert.Equal(t, "M0 0 10 0 10 0", s.Preview())
	d, err := s.End()
	require.NoError(t, err)
	assert.Equal(t, "M0 0c1.5 0 8.5 0 10 0", d)
	assert.Equal(t, d, s.D())
	assert.Equal(t, d, s.Preview())
	assert.Equal(t, 1, s.Strokes())
	assert.False(t, s.Drawing())
	data := s.Data()
	require.Len(t, data, 2)
	assert.Equal(t, pathdata.M(0, 0), data[0])
}

func TestSinglePointGestureIsDiscarded(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newSession(t, 6, time.Second)
	require.NoError(t, s.Begin(sigpath.P(3, 3)))
	d, err := s.End()
	require.NoError(t, err)
	assert.Equal(t, "", d)
	assert.Equal(t, 0, s.Strokes())
	assert.Empty(t, s.Data())
	// moves outside of gestures are ignored
	s.Move(sigpath.P(5, 5))
	assert.False(t, s.Drawing())
	assert.Equal(t, "", s.Preview())
}

func TestMultipleStrokes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newSession(t, 6, time.Second)
	var finished []string
	s.OnFinish(func(d string) { finished = append(finished, d) })
	for stroke := 0; stroke < 2; stroke++ {
		y := float64(20 + 40*stroke)
		require.NoError(t, s.Begin(sigpath.P(10, y)))
		for i := 1; i <= 30; i++ {
			x := 10 + 4*float64(i)
			s.Move(sigpath.P(x, y+10*float64(i%5)))
		}
		_, err := s.End()
		require.NoError(t, err)
	}
	assert.Equal(t, 2, s.Strokes())
	require.Len(t, finished, 2)
	assert.Equal(t, s.D(), finished[1])
	data := s.Data()
	moves := 0
	for _, c := range data {
		if c.Kind == pathdata.MoveTo {
			moves++
		}
	}
	assert.Equal(t, 2, moves)
	// the encoded form decodes to the same geometry
	parsed, err := pathdata.Parse(s.D())
	require.NoError(t, err)
	got, err := pathdata.Sample(parsed, 0.5)
	require.NoError(t, err)
	want, err := pathdata.Sample(data, 0.5)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X(), got[i].X(), 2, "sample %d", i)
		assert.InDelta(t, want[i].Y(), got[i].Y(), 2, "sample %d", i)
	}
	assert.False(t, strings.ContainsAny(s.D(), "LHV"))
}

func TestBeginFinishesPreviousGesture(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newSession(t, 1, time.Second)
	require.NoError(t, s.Begin(sigpath.P(0, 0)))
	s.Move(sigpath.P(10, 0))
	require.NoError(t, s.Begin(sigpath.P(0, 10)))
	assert.Equal(t, 1, s.Strokes())
	assert.True(t, s.Drawing())
}

func TestLeaveFinishesGesture(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newSession(t, 1, 5*time.Millisecond)
	var calls int32
	s.OnFinish(func(string) { atomic.AddInt32(&calls, 1) })
	require.NoError(t, s.Begin(sigpath.P(0, 10)))
	s.Move(sigpath.P(5, 10))
	s.Leave(sigpath.P(20, 10))
	s.Leave(sigpath.P(30, 10))
	assert.Eventually(t, func() bool { return s.Strokes() == 1 }, time.Second, time.Millisecond)
	assert.False(t, s.Drawing())
	assert.Equal(t, "M0 10c3 0 17 0 20 0", s.D())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)
}

func TestEndBeforeLeaveTimer(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newSession(t, 1, 20*time.Millisecond)
	require.NoError(t, s.Begin(sigpath.P(0, 0)))
	s.Move(sigpath.P(5, 0))
	s.Leave(sigpath.P(20, 0))
	d, err := s.End()
	require.NoError(t, err)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, s.Strokes())
	assert.Equal(t, d, s.D())
}

func TestLeavingSurface(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newSession(t, 1, 5*time.Millisecond)
	s.SetSurface(polygon.Box(sigpath.P(0, 0), sigpath.P(100, 100)))
	require.NoError(t, s.Begin(sigpath.P(50, 50)))
	s.Move(sigpath.P(80, 50))
	s.Move(sigpath.P(120, 50))
	assert.Eventually(t, func() bool { return s.Strokes() == 1 }, time.Second, time.Millisecond)
	// without a surface, leaving goes unnoticed
	s.SetSurface(nil)
	require.NoError(t, s.Begin(sigpath.P(50, 50)))
	s.Move(sigpath.P(500, 50))
	time.Sleep(20 * time.Millisecond)
	assert.True(t, s.Drawing())
}

func TestClear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := newSession(t, 1, time.Second)
	cleared := false
	s.OnFinish(func(d string) { cleared = d == "" })
	require.NoError(t, s.Begin(sigpath.P(0, 0)))
	s.Move(sigpath.P(10, 0))
	_, err := s.End()
	require.NoError(t, err)
	require.NoError(t, s.Begin(sigpath.P(0, 0)))
	s.Clear()
	assert.True(t, cleared)
	assert.Equal(t, "", s.D())
	assert.Equal(t, 0, s.Strokes())
	assert.Empty(t, s.Data())
	assert.False(t, s.Drawing())
}
