package chord

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sigpath"
)

// tracer writes to trace with key 'sigpath.chord'
func tracer() tracing.Trace {
	return tracing.Select("sigpath.chord")
}

// DefaultTension is the default fraction of the chord length control points
// are offset from their knot.
const DefaultTension = 0.15

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewKnots indicates an empty path.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
)

// Path is the concrete type for building a skeleton path of knots.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	points   []sigpath.Pair // knot i
	cycle    bool           // is this path cyclic ?
	Controls *Controls      // control points to be calculated
}

// Controls collects calculated spline control points.
type Controls struct {
	prec  []sigpath.Pair // control point i-, incoming
	postc []sigpath.Pair // control point i+, outgoing
}
