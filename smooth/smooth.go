// Package smooth implements jitter correction for incoming pointer samples.
//
// A Buffer keeps the most recent samples of a stroke, up to a window size.
// The average of the buffered samples is a stable point to be appended to
// the permanent stroke, while averages over the trailing part of the buffer
// give a short preview of points not yet confirmed.
package smooth

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sigpath"
)

// tracer writes to trace with key 'sigpath.smooth'
func tracer() tracing.Trace {
	return tracing.Select("sigpath.smooth")
}

// DefaultWindow is the default number of samples averaged.
const DefaultWindow = 6

// Buffer is a bounded FIFO of recent samples.
type Buffer struct {
	window int
	pts    []sigpath.Pair
}

// New creates a sample buffer for a given window size. Window sizes below 1
// are treated as 1.
func New(window int) *Buffer {
	if window < 1 {
		window = 1
	}
	return &Buffer{
		window: window,
		pts:    make([]sigpath.Pair, 0, window+1),
	}
}

// Window returns the capacity of the buffer.
func (b *Buffer) Window() int {
	return b.window
}

// Len returns the number of buffered samples.
func (b *Buffer) Len() int {
	return len(b.pts)
}

// Reset drops all buffered samples.
func (b *Buffer) Reset() {
	b.pts = b.pts[:0]
}

// Push appends a sample and evicts the oldest samples until the buffer
// holds at most Window() samples.
func (b *Buffer) Push(p sigpath.Pair) {
	b.pts = append(b.pts, p)
	if len(b.pts) > b.window {
		n := copy(b.pts, b.pts[len(b.pts)-b.window:])
		b.pts = b.pts[:n]
	}
	tracer().Debugf("push %v, %d buffered", p, len(b.pts))
}

// Average returns the mean of the samples from offset to the end of the
// buffer. With fewer than 2 samples buffered the single sample is returned
// as is, so the very start of a stroke is not flattened. The flag is false
// if there is nothing to average.
func (b *Buffer) Average(offset int) (sigpath.Pair, bool) {
	switch {
	case len(b.pts) == 0:
		return sigpath.Origin, false
	case len(b.pts) < 2:
		return b.pts[0], true
	case offset < 0 || offset >= len(b.pts):
		return sigpath.Origin, false
	}
	return sigpath.Mean(b.pts[offset:]), true
}

// Tail returns averages over the trailing half of the buffer, starting at
// offset len/2 and stepping by 2. These points preview where the stroke is
// heading and are never meant to be persisted.
func (b *Buffer) Tail() []sigpath.Pair {
	if len(b.pts) == 0 {
		return nil
	}
	var tail []sigpath.Pair
	for offset := len(b.pts) / 2; offset < len(b.pts); offset += 2 {
		if p, ok := b.Average(offset); ok {
			tail = append(tail, p)
		}
	}
	return tail
}
