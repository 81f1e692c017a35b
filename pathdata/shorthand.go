package pathdata

import "github.com/npillmayer/sigpath"

// Tolerances for shorthand detection, as number of fractional digits both
// sides of a comparison are rounded to. They decide how much deviation a
// shorthand may introduce compared to its longhand form.
const (
	// LineTolerance applies to the unchanged axis of a line.
	LineTolerance = 2
	// ReflectTolerance applies to reflected control points, which are
	// recomputed and therefore noisier.
	ReflectTolerance = 1
)

// smoothing tracks the control points a renderer would reflect for a
// following smooth curve command.
type smoothing struct {
	cursor
	cubicCtrl sigpath.Pair // last second control point of C or S
	quadCtrl  sigpath.Pair // last control point of Q or T
	hasCubic  bool
	hasQuad   bool
}

// implied returns the first control point a smooth command of kind k would
// infer at the current point.
func (sm *smoothing) implied(k Kind) sigpath.Pair {
	switch {
	case k == SmoothCubicTo && sm.hasCubic:
		return sm.cubicCtrl.Reflected(sm.pos)
	case k == SmoothQuadTo && sm.hasQuad:
		return sm.quadCtrl.Reflected(sm.pos)
	}
	return sm.pos
}

// step records the absolute command c, which is rendered with first
// control point ctrl for quadratic and smooth cubic curves.
func (sm *smoothing) step(c Command, ctrl sigpath.Pair) {
	sm.hasCubic, sm.hasQuad = false, false
	switch c.Kind {
	case CubicTo:
		sm.cubicCtrl, sm.hasCubic = c.pt(2), true
	case SmoothCubicTo:
		sm.cubicCtrl, sm.hasCubic = c.pt(0), true
	case QuadTo, SmoothQuadTo:
		sm.quadCtrl, sm.hasQuad = ctrl, true
	}
	sm.advance(c)
}

// ToShorthands replaces commands by shorthand commands wherever the omitted
// values are inferable from the preceding command:
//
//	L → H or V   if the line keeps one axis of the current point
//	Q → T        if the control point reflects the previous one
//	C → S        if the first control point reflects the previous one
//
// Comparisons are done on rounded values (LineTolerance, ReflectTolerance).
// The line test is exact if the previous command already was H or V.
// Relative input is converted to absolute first, as reflection is only
// meaningful within a single coordinate frame. The result is absolute;
// with decimals ≥ 0 its values are rounded.
func ToShorthands(d Data, decimals int) (Data, error) {
	abs := d
	var err error
	if d.HasRelative() {
		abs, err = ToAbsolute(d, decimals)
	} else {
		err = d.Validate()
	}
	if err != nil {
		return nil, err
	}
	out := make(Data, 0, len(abs))
	var sm smoothing
	prev := MoveTo
	for _, c := range abs {
		short := c.Clone()
		ctrl := sm.pos
		switch c.Kind {
		case LineTo:
			short = shortLine(c, sm.pos, prev == HorizontalTo || prev == VerticalTo)
		case QuadTo:
			ctrl = c.pt(0)
			implied := sm.implied(SmoothQuadTo)
			if sameAt(ctrl, implied, ReflectTolerance) {
				short = Command{Kind: SmoothQuadTo, Values: []float64{c.Values[2], c.Values[3]}}
				ctrl = implied
			}
		case CubicTo:
			if sameAt(c.pt(0), sm.implied(SmoothCubicTo), ReflectTolerance) {
				short = Command{Kind: SmoothCubicTo, Values: append([]float64(nil), c.Values[2:]...)}
			}
		case SmoothQuadTo:
			ctrl = sm.implied(SmoothQuadTo)
		}
		sm.step(c, ctrl)
		roundValues(short.Values, decimals)
		out = append(out, short)
		prev = c.Kind
	}
	tracer().Debugf("shorthands: %d commands", len(out))
	return out, nil
}

func shortLine(c Command, cur sigpath.Pair, exact bool) Command {
	x, y := c.Values[0], c.Values[1]
	px, py := cur.F()
	if !exact {
		x, y = sigpath.RoundTo(x, LineTolerance), sigpath.RoundTo(y, LineTolerance)
		px, py = sigpath.RoundTo(px, LineTolerance), sigpath.RoundTo(py, LineTolerance)
	}
	if py == y && px != x {
		return Command{Kind: HorizontalTo, Values: []float64{c.Values[0]}}
	} else if px == x && py != y {
		return Command{Kind: VerticalTo, Values: []float64{c.Values[1]}}
	}
	return c.Clone()
}

func sameAt(p, q sigpath.Pair, decimals int) bool {
	return p.Round(decimals) == q.Round(decimals)
}

// ToLonghands is the reverse of ToShorthands: H, V, S and T are replaced by
// L, C and Q with their inferred values made explicit. The result is
// absolute; with decimals ≥ 0 its values are rounded.
func ToLonghands(d Data, decimals int) (Data, error) {
	abs, err := ToAbsolute(d, -1)
	if err != nil {
		return nil, err
	}
	out := make(Data, 0, len(abs))
	var sm smoothing
	for _, c := range abs {
		long := c.Clone()
		ctrl := sm.pos
		x, y := sm.pos.F()
		switch c.Kind {
		case HorizontalTo:
			long = Command{Kind: LineTo, Values: []float64{c.Values[0], y}}
		case VerticalTo:
			long = Command{Kind: LineTo, Values: []float64{x, c.Values[0]}}
		case SmoothCubicTo:
			cp := sm.implied(SmoothCubicTo)
			long = Command{Kind: CubicTo, Values: append([]float64{cp.X(), cp.Y()}, c.Values...)}
		case SmoothQuadTo:
			ctrl = sm.implied(SmoothQuadTo)
			long = Command{Kind: QuadTo, Values: append([]float64{ctrl.X(), ctrl.Y()}, c.Values...)}
		case QuadTo:
			ctrl = c.pt(0)
		}
		sm.step(c, ctrl)
		roundValues(long.Values, decimals)
		out = append(out, long)
	}
	return out, nil
}
