package pathdata

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sigpath"
)

// tracer writes to trace with key 'sigpath.pathdata'
func tracer() tracing.Trace {
	return tracing.Select("sigpath.pathdata")
}

var (
	// ErrValidation indicates a command whose values do not match its arity.
	ErrValidation = errors.New("path command has wrong number of values")
	// ErrUnsupportedCommand indicates a command kind outside the supported grammar.
	ErrUnsupportedCommand = errors.New("unsupported path command")
	// ErrEmptyPath indicates path data without any command.
	ErrEmptyPath = errors.New("path data is empty")
	// ErrMissingMoveTo indicates path data not starting with a move-to.
	ErrMissingMoveTo = errors.New("path data must start with a move-to")
	// ErrSyntax indicates a malformed path data string.
	ErrSyntax = errors.New("malformed path data")
)

// Kind is the type of a path command.
type Kind uint8

// The command kinds of the path-data grammar.
const (
	MoveTo Kind = iota
	LineTo
	CubicTo
	QuadTo
	ArcTo
	HorizontalTo
	VerticalTo
	SmoothCubicTo
	SmoothQuadTo
	ClosePath
	kindCount
)

var kindLetters = [kindCount]byte{'M', 'L', 'C', 'Q', 'A', 'H', 'V', 'S', 'T', 'Z'}

var kindArity = [kindCount]int{2, 2, 6, 4, 7, 1, 1, 4, 2, 0}

var kindNames = [kindCount]string{
	"MoveTo", "LineTo", "CubicTo", "QuadTo", "ArcTo",
	"HorizontalTo", "VerticalTo", "SmoothCubicTo", "SmoothQuadTo", "ClosePath",
}

// Valid is a predicate: is k one of the supported command kinds?
func (k Kind) Valid() bool {
	return k < kindCount
}

// Arity returns the fixed number of values for commands of kind k,
// or -1 for an unsupported kind.
func (k Kind) Arity() int {
	if !k.Valid() {
		return -1
	}
	return kindArity[k]
}

// Letter returns the command letter, lowercase for relative commands.
func (k Kind) Letter(relative bool) byte {
	if !k.Valid() {
		return '?'
	}
	l := kindLetters[k]
	if relative {
		l += 'a' - 'A'
	}
	return l
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// IsShorthand is a predicate: does k omit values inferable from the
// preceding command?
func (k Kind) IsShorthand() bool {
	return k == HorizontalTo || k == VerticalTo || k == SmoothCubicTo || k == SmoothQuadTo
}

// KindOf maps a command letter to its kind and relative flag.
func KindOf(letter byte) (kind Kind, relative bool, ok bool) {
	upper := letter
	if letter >= 'a' && letter <= 'z' {
		upper = letter - ('a' - 'A')
		relative = true
	}
	for k, l := range kindLetters {
		if l == upper {
			return Kind(k), relative, true
		}
	}
	return 0, false, false
}

// ValidationError reports a command constructed with the wrong number of values.
type ValidationError struct {
	Kind Kind
	Want int
	Got  int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s needs %d values, got %d", ErrValidation, e.Kind, e.Want, e.Got)
}

// Unwrap makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UnsupportedCommandError reports a command kind outside the grammar.
type UnsupportedCommandError struct {
	Kind Kind
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedCommand, e.Kind)
}

// Unwrap makes errors.Is(err, ErrUnsupportedCommand) hold.
func (e *UnsupportedCommandError) Unwrap() error {
	return ErrUnsupportedCommand
}

// Command is a single path command. Relative commands carry values as
// offsets from the current point.
type Command struct {
	Kind     Kind
	Relative bool
	Values   []float64
}

// NewCommand creates a command, checking the number of values against the
// arity of kind.
func NewCommand(kind Kind, relative bool, values ...float64) (Command, error) {
	c := Command{Kind: kind, Relative: relative, Values: values}
	if err := c.Validate(); err != nil {
		return Command{}, err
	}
	c.Values = append([]float64(nil), values...)
	return c, nil
}

// MustCommand is like NewCommand, but panics on arity violations.
func MustCommand(kind Kind, relative bool, values ...float64) Command {
	c, err := NewCommand(kind, relative, values...)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks kind and arity of c.
func (c Command) Validate() error {
	if !c.Kind.Valid() {
		return &UnsupportedCommandError{Kind: c.Kind}
	}
	if len(c.Values) != c.Kind.Arity() {
		return &ValidationError{Kind: c.Kind, Want: c.Kind.Arity(), Got: len(c.Values)}
	}
	return nil
}

// Clone returns a deep copy of c.
func (c Command) Clone() Command {
	c.Values = append([]float64(nil), c.Values...)
	return c
}

// Rel returns a relative copy of c. Values are not converted.
func (c Command) Rel() Command {
	c = c.Clone()
	c.Relative = true
	return c
}

func (c Command) String() string {
	return fmt.Sprintf("%c%v", c.Kind.Letter(c.Relative), c.Values)
}

// pt returns the value pair at index i as a point.
func (c Command) pt(i int) sigpath.Pair {
	return sigpath.P(c.Values[i], c.Values[i+1])
}

// Quick constructors for absolute commands.

// M creates an absolute move-to.
func M(x, y float64) Command { return MustCommand(MoveTo, false, x, y) }

// L creates an absolute line-to.
func L(x, y float64) Command { return MustCommand(LineTo, false, x, y) }

// C creates an absolute cubic Bézier curve.
func C(x1, y1, x2, y2, x, y float64) Command {
	return MustCommand(CubicTo, false, x1, y1, x2, y2, x, y)
}

// Q creates an absolute quadratic Bézier curve.
func Q(x1, y1, x, y float64) Command { return MustCommand(QuadTo, false, x1, y1, x, y) }

// A creates an absolute elliptical arc. Flags are 0 or 1.
func A(rx, ry, rot, largeArc, sweep, x, y float64) Command {
	return MustCommand(ArcTo, false, rx, ry, rot, largeArc, sweep, x, y)
}

// H creates an absolute horizontal line.
func H(x float64) Command { return MustCommand(HorizontalTo, false, x) }

// V creates an absolute vertical line.
func V(y float64) Command { return MustCommand(VerticalTo, false, y) }

// S creates an absolute smooth cubic Bézier curve.
func S(x2, y2, x, y float64) Command { return MustCommand(SmoothCubicTo, false, x2, y2, x, y) }

// T creates an absolute smooth quadratic Bézier curve.
func T(x, y float64) Command { return MustCommand(SmoothQuadTo, false, x, y) }

// Z creates a close-path command.
func Z() Command { return Command{Kind: ClosePath} }
