/*
Package session captures hand-drawn strokes and turns them into compact SVG
path data.

A Session receives pointer samples of a drawing surface, one gesture at a
time:

   s, _ := session.New(config.Default())
   s.Begin(P(10, 10))
   s.Move(P(11, 12))
   ...
   d, err := s.End()

Every sample is smoothed on arrival. When a gesture ends, its points are
simplified, fitted with cubic Bézier curves and appended to the signature,
which is then re-encoded as a whole (shorthands, relative coordinates,
rounding, optional minification).

If the pointer leaves the drawing surface while still pressed, the gesture
is finished after a short delay, unless it is ended explicitly before.

All methods of Session are safe for concurrent use.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sigpath"
	"github.com/npillmayer/sigpath/chord"
	"github.com/npillmayer/sigpath/config"
	"github.com/npillmayer/sigpath/pathdata"
	"github.com/npillmayer/sigpath/polygon"
	"github.com/npillmayer/sigpath/simplify"
	"github.com/npillmayer/sigpath/smooth"
)

// tracer writes to trace with key 'sigpath.session'
func tracer() tracing.Trace {
	return tracing.Select("sigpath.session")
}

// Session holds the drawing state of a signature.
type Session struct {
	mu       sync.Mutex
	opts     config.Options
	buffer   *smooth.Buffer   // recent samples of the current gesture
	pts      []sigpath.Pair   // confirmed points of the current gesture
	tail     []sigpath.Pair   // preview points of the current gesture
	data     pathdata.Data    // all finished strokes, absolute
	d        string           // encoded form of data
	strokes  int              // number of finished strokes
	drawing  bool             // inside a gesture ?
	gen      uint64           // gesture generation, invalidates stale timers
	timer    *time.Timer      // pending leave timer
	surface  *polygon.Polygon // drawing surface, may be nil
	onFinish func(d string)
}

// New creates a session. The drawing surface is a box of the configured
// width and height, with its origin at (0,0).
func New(opts config.Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		opts:    opts,
		buffer:  smooth.New(opts.SmoothingWindow),
		surface: polygon.Box(sigpath.Origin, sigpath.P(opts.Width, opts.Height)),
	}, nil
}

// Options returns the options of s.
func (s *Session) Options() config.Options {
	return s.opts
}

// SetSurface replaces the drawing surface. Samples outside of a cyclic
// surface start the leave timer. A nil surface disables this check.
func (s *Session) SetSurface(surface *polygon.Polygon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface = surface
}

// OnFinish registers a callback, called with the encoded signature after
// every finished gesture and after Clear. The callback is not called with
// the session locked.
func (s *Session) OnFinish(f func(d string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFinish = f
}

// Begin starts a gesture at p. An unfinished gesture is finished first.
func (s *Session) Begin(p sigpath.Pair) error {
	s.mu.Lock()
	var err error
	finished := false
	if s.drawing {
		tracer().Debugf("begin while drawing, finishing previous gesture")
		finished, err = s.end()
	}
	s.buffer.Reset()
	s.buffer.Push(p)
	s.pts = append(s.pts[:0], p)
	s.tail = s.tail[:0]
	s.drawing = true
	s.gen++
	s.mu.Unlock()
	if finished {
		s.notify()
	}
	return err
}

// Move adds a sample to the current gesture. Samples outside of a gesture
// are ignored.
func (s *Session) Move(p sigpath.Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.drawing || len(s.pts) == 0 {
		return
	}
	s.buffer.Push(p)
	if avg, ok := s.buffer.Average(0); ok {
		s.pts = append(s.pts, avg)
		s.tail = append(s.tail[:0], s.buffer.Tail()...)
	}
	if s.surface != nil && s.surface.IsCycle() && !s.surface.Contains(p) {
		s.leave(p)
	}
}

// Leave signals that the pointer left the drawing surface at p. The current
// gesture will be finished after the configured delay, with p as its last
// point, unless it is finished before. Calling Leave again while a leave
// timer is pending has no effect.
func (s *Session) Leave(p sigpath.Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leave(p)
}

func (s *Session) leave(p sigpath.Pair) {
	if !s.drawing || len(s.pts) == 0 || s.timer != nil {
		return
	}
	gen := s.gen
	tracer().Debugf("left surface at %v, finishing gesture in %v", p, s.opts.LeaveDelay)
	s.timer = time.AfterFunc(s.opts.LeaveDelay, func() {
		s.mu.Lock()
		if s.gen != gen || !s.drawing {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.pts = append(s.pts, s.tail...)
		s.tail = s.tail[:0]
		s.pts = append(s.pts, p)
		finished, err := s.end()
		s.mu.Unlock()
		if err != nil {
			tracer().Errorf("finishing gesture after leave: %v", err)
		}
		if finished {
			s.notify()
		}
	})
}

// End finishes the current gesture and returns the encoded signature.
// Gestures with fewer than 2 points are discarded silently.
func (s *Session) End() (string, error) {
	s.mu.Lock()
	finished, err := s.end()
	d := s.d
	s.mu.Unlock()
	if finished {
		s.notify()
	}
	return d, err
}

// end finishes a gesture. s has to be locked.
func (s *Session) end() (finished bool, err error) {
	defer s.reset()
	if len(s.pts) < 2 {
		tracer().Debugf("discarding gesture with %d point(s)", len(s.pts))
		return false, nil
	}
	pts := append(s.pts, s.tail...)
	pts = simplify.Simplify(pts, s.opts.SimplifyTolerance, s.opts.HighestQuality)
	stroke, err := chord.Fit(pts, s.opts.Tension, s.opts.Closed)
	if err != nil {
		return false, fmt.Errorf("fitting stroke: %w", err)
	}
	data := s.data.Append(stroke)
	d, err := pathdata.Encode(data, s.opts.Decimals, s.opts.Minify)
	if err != nil {
		return false, err
	}
	s.data, s.d = data, d
	s.strokes++
	tracer().Infof("stroke %d: %d points, %d commands", s.strokes, len(pts), len(stroke))
	return true, nil
}

// reset prepares for the next gesture. s has to be locked.
func (s *Session) reset() {
	s.buffer.Reset()
	s.pts = s.pts[:0]
	s.tail = s.tail[:0]
	s.drawing = false
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) notify() {
	s.mu.Lock()
	f, d := s.onFinish, s.d
	s.mu.Unlock()
	if f != nil {
		f(d)
	}
}

// Preview returns the encoded signature, followed by the current gesture
// as a polyline of its confirmed and preview points.
func (s *Session) Preview() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pts) == 0 {
		return s.d
	}
	line := make(pathdata.Data, 0, len(s.pts)+len(s.tail))
	line = append(line, pathdata.M(s.pts[0].F()))
	for _, p := range s.pts[1:] {
		line = append(line, pathdata.L(p.F()))
	}
	for _, p := range s.tail {
		line = append(line, pathdata.L(p.F()))
	}
	gesture, err := pathdata.Serialize(line, s.opts.Decimals, true)
	if err != nil {
		tracer().Errorf("preview: %v", err)
		return s.d
	}
	return s.d + gesture
}

// Data returns a copy of the finished strokes in absolute coordinates.
func (s *Session) Data() pathdata.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// D returns the encoded signature.
func (s *Session) D() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d
}

// Strokes returns the number of finished strokes.
func (s *Session) Strokes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strokes
}

// Drawing is a predicate: is a gesture in progress?
func (s *Session) Drawing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawing
}

// Clear discards the signature and any gesture in progress.
func (s *Session) Clear() {
	s.mu.Lock()
	s.reset()
	s.data = nil
	s.d = ""
	s.strokes = 0
	s.mu.Unlock()
	tracer().Infof("signature cleared")
	s.notify()
}
