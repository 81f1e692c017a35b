package pathdata

import (
	"fmt"

	"github.com/npillmayer/sigpath"
)

// Data is a sequence of path commands, starting with a move-to.
type Data []Command

// New creates path data from a sequence of commands and validates it.
func New(cmds ...Command) (Data, error) {
	d := Data(cmds).Clone()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks that d is non-empty, starts with a move-to and that every
// command is supported and has the right number of values.
func (d Data) Validate() error {
	if len(d) == 0 {
		return ErrEmptyPath
	}
	if d[0].Kind != MoveTo {
		return fmt.Errorf("%w, found %s", ErrMissingMoveTo, d[0].Kind)
	}
	for i, c := range d {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}
	return nil
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	if d == nil {
		return nil
	}
	c := make(Data, len(d))
	for i, cmd := range d {
		c[i] = cmd.Clone()
	}
	return c
}

// HasRelative is a predicate: does d contain any relative command?
func (d Data) HasRelative() bool {
	for _, c := range d {
		if c.Relative {
			return true
		}
	}
	return false
}

// Append returns the concatenation of d and other, which is expected to
// start a new subpath. Both are copied.
func (d Data) Append(other Data) Data {
	out := make(Data, 0, len(d)+len(other))
	out = append(out, d.Clone()...)
	return append(out, other.Clone()...)
}

// Endpoints returns the absolute end point of every command. d has to be
// valid.
func (d Data) Endpoints() []sigpath.Pair {
	pts := make([]sigpath.Pair, len(d))
	var cur cursor
	for i, c := range d {
		cur.advance(c)
		pts[i] = cur.pos
	}
	return pts
}

func (d Data) String() string {
	s, err := Serialize(d, -1, false)
	if err != nil {
		return fmt.Sprintf("<invalid path data: %v>", err)
	}
	return s
}

// cursor tracks the current point and the start of the current subpath
// while interpreting path data left to right.
type cursor struct {
	pos   sigpath.Pair // current point
	start sigpath.Pair // start of the current subpath
}

// advance moves the cursor past c, which may be absolute or relative.
func (cur *cursor) advance(c Command) {
	v := c.Values
	n := len(v)
	x, y := cur.pos.F()
	switch c.Kind {
	case ClosePath:
		cur.pos = cur.start
		return
	case HorizontalTo:
		if c.Relative {
			x += v[0]
		} else {
			x = v[0]
		}
	case VerticalTo:
		if c.Relative {
			y += v[0]
		} else {
			y = v[0]
		}
	default:
		if c.Relative {
			x += v[n-2]
			y += v[n-1]
		} else {
			x, y = v[n-2], v[n-1]
		}
	}
	cur.pos = sigpath.P(x, y)
	if c.Kind == MoveTo {
		cur.start = cur.pos
	}
}

func roundValues(values []float64, decimals int) []float64 {
	if decimals < 0 {
		return values
	}
	for i, v := range values {
		values[i] = sigpath.RoundTo(v, decimals)
	}
	return values
}
