package pathdata

import (
	"math"

	"github.com/npillmayer/sigpath"
)

// Transform applies an affine transformation to d. Lines and Bézier curves
// are mapped exactly. Arcs are mapped exactly for similarity transforms
// (translation, rotation, uniform scaling, reflection); radii are scaled by
// the square root of the determinant's magnitude. The result is absolute and
// in longhand form.
func Transform(d Data, m sigpath.AT) (Data, error) {
	long, err := ToLonghands(d, -1)
	if err != nil {
		return nil, err
	}
	det := m.Det()
	scale := math.Sqrt(math.Abs(det))
	rot := m.TransformVector(sigpath.P(1, 0)).Angle() / sigpath.Deg2Rad
	for i := range long {
		c := &long[i]
		v := c.Values
		if c.Kind == ArcTo {
			v[0] *= scale
			v[1] *= scale
			if det < 0 {
				v[2] = rot - v[2]
				v[4] = 1 - v[4]
			} else {
				v[2] += rot
			}
			end := m.Transform(c.pt(5))
			v[5], v[6] = end.X(), end.Y()
			continue
		}
		for j := 0; j+1 < len(v); j += 2 {
			p := m.Transform(c.pt(j))
			v[j], v[j+1] = p.X(), p.Y()
		}
	}
	return long, nil
}

// Sample evaluates every segment of d at the given curve parameters
// (0 ≤ t ≤ 1) and returns the points in order. Each move-to contributes its
// point once; a close-path is evaluated as a line back to the start of the
// subpath.
func Sample(d Data, ts ...float64) ([]sigpath.Pair, error) {
	long, err := ToLonghands(d, -1)
	if err != nil {
		return nil, err
	}
	var pts []sigpath.Pair
	var cur cursor
	for _, c := range long {
		p0 := cur.pos
		switch c.Kind {
		case MoveTo:
			pts = append(pts, c.pt(0))
		case LineTo:
			pts = appendLine(pts, p0, c.pt(0), ts)
		case ClosePath:
			pts = appendLine(pts, p0, cur.start, ts)
		case QuadTo:
			for _, t := range ts {
				pts = append(pts, quadAt(p0, c.pt(0), c.pt(2), t))
			}
		case CubicTo:
			for _, t := range ts {
				pts = append(pts, cubicAt(p0, c.pt(0), c.pt(2), c.pt(4), t))
			}
		case ArcTo:
			arc := newEllipticalArc(p0, c)
			for _, t := range ts {
				pts = append(pts, arc.at(t))
			}
		}
		cur.advance(c)
	}
	return pts, nil
}

func appendLine(pts []sigpath.Pair, p0, p1 sigpath.Pair, ts []float64) []sigpath.Pair {
	for _, t := range ts {
		pts = append(pts, lerp(p0, p1, t))
	}
	return pts
}

func lerp(p0, p1 sigpath.Pair, t float64) sigpath.Pair {
	return p0 + (p1-p0)*sigpath.Pair(complex(t, 0))
}

func quadAt(p0, p1, p2 sigpath.Pair, t float64) sigpath.Pair {
	return lerp(lerp(p0, p1, t), lerp(p1, p2, t), t)
}

func cubicAt(p0, p1, p2, p3 sigpath.Pair, t float64) sigpath.Pair {
	a, b, c := lerp(p0, p1, t), lerp(p1, p2, t), lerp(p2, p3, t)
	return lerp(lerp(a, b, t), lerp(b, c, t), t)
}

// ellipticalArc is an arc in center parameterization.
type ellipticalArc struct {
	p0, p1         sigpath.Pair
	center         sigpath.Pair
	rx, ry         float64
	phi            float64 // x-axis rotation in radians
	theta, dtheta  float64 // start angle and sweep
	degenerateLine bool
}

// newEllipticalArc converts an arc command starting at p0 from endpoint to
// center parameterization. Radii too small to span the endpoints are scaled
// up; zero radii turn the arc into a line.
func newEllipticalArc(p0 sigpath.Pair, c Command) ellipticalArc {
	v := c.Values
	arc := ellipticalArc{
		p0:  p0,
		p1:  c.pt(5),
		rx:  math.Abs(v[0]),
		ry:  math.Abs(v[1]),
		phi: v[2] * sigpath.Deg2Rad,
	}
	if arc.rx == 0 || arc.ry == 0 || p0 == arc.p1 {
		arc.degenerateLine = true
		return arc
	}
	sin, cos := math.Sincos(arc.phi)
	dx, dy := (p0.X()-arc.p1.X())/2, (p0.Y()-arc.p1.Y())/2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy
	if lambda := x1*x1/(arc.rx*arc.rx) + y1*y1/(arc.ry*arc.ry); lambda > 1 {
		s := math.Sqrt(lambda)
		arc.rx *= s
		arc.ry *= s
	}
	rx2, ry2 := arc.rx*arc.rx, arc.ry*arc.ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if (v[3] != 0) == (v[4] != 0) {
		coef = -coef
	}
	cx1 := coef * arc.rx * y1 / arc.ry
	cy1 := -coef * arc.ry * x1 / arc.rx
	mx, my := (p0.X()+arc.p1.X())/2, (p0.Y()+arc.p1.Y())/2
	arc.center = sigpath.P(cos*cx1-sin*cy1+mx, sin*cx1+cos*cy1+my)
	u := sigpath.P((x1-cx1)/arc.rx, (y1-cy1)/arc.ry)
	w := sigpath.P((-x1-cx1)/arc.rx, (-y1-cy1)/arc.ry)
	arc.theta = u.Angle()
	arc.dtheta = math.Remainder(w.Angle()-u.Angle(), 2*math.Pi)
	if v[4] == 0 && arc.dtheta > 0 {
		arc.dtheta -= 2 * math.Pi
	} else if v[4] != 0 && arc.dtheta < 0 {
		arc.dtheta += 2 * math.Pi
	}
	return arc
}

func (arc ellipticalArc) at(t float64) sigpath.Pair {
	switch {
	case arc.degenerateLine:
		return lerp(arc.p0, arc.p1, t)
	case t <= 0:
		return arc.p0
	case t >= 1:
		return arc.p1
	}
	a := arc.theta + t*arc.dtheta
	sin, cos := math.Sincos(arc.phi)
	x, y := arc.rx*math.Cos(a), arc.ry*math.Sin(a)
	return arc.center + sigpath.P(cos*x-sin*y, sin*x+cos*y)
}
