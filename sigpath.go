/*
Package sigpath turns noisy pointer samples into compact, smooth vector
paths. The root package provides points, rounding helpers and affine
transformations shared by the sub-packages:

	smooth    – moving-average jitter filter for incoming samples
	simplify  – Ramer–Douglas–Peucker polyline reduction
	chord     – cubic curve fitting by chord-length parameterization
	pathdata  – path-data model, relative/absolute/shorthand transforms,
	            serialization and parsing of "d" strings
	polygon   – drawing surfaces and stroke extents
	session   – a stroke session wiring the stages together
	config    – options, loaded from YAML
	svgdoc    – export of signatures as SVG documents

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sigpath

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sigpath'
func tracer() tracing.Trace {
	return tracing.Select("sigpath")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// RoundTo rounds n to a given number of fractional digits. A negative
// number of decimals leaves n untouched. Negative zero is normalized to 0.
func RoundTo(n float64, decimals int) float64 {
	if decimals < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}
	scale := math.Pow(10, float64(decimals))
	r := math.Round(n*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// === Pair Data Type ========================================================

// Pair is a 2D-point, i.e. a sample of the pointer or a path coordinate.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsNaN is a predicate: does either coordinate of p not denote a number?
func (p Pair) IsNaN() bool {
	return cmplx.IsNaN(p.C()) || cmplx.IsInf(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Round rounds both coordinates to a number of fractional digits.
func (p Pair) Round(decimals int) Pair {
	return P(RoundTo(p.X(), decimals), RoundTo(p.Y(), decimals))
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Reflected returns p mirrored about center c.
func (p Pair) Reflected(c Pair) Pair {
	return 2*c - p
}

// Length returns the distance of p from the origin.
func (p Pair) Length() float64 {
	return cmplx.Abs(p.C())
}

// Angle returns the direction of p in radians, in -π … π.
func (p Pair) Angle() float64 {
	return cmplx.Phase(p.C())
}

// SqDist returns the squared Euclidean distance between two pairs.
func SqDist(p1, p2 Pair) float64 {
	dx, dy := p1.X()-p2.X(), p1.Y()-p2.Y()
	return dx*dx + dy*dy
}

// Mean returns the arithmetic mean of a non-empty sequence of pairs.
func Mean(pts []Pair) Pair {
	var sx, sy float64
	for _, pt := range pts {
		sx += pt.X()
		sy += pt.Y()
	}
	n := float64(len(pts))
	return P(sx/n, sy/n)
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	return make([]float64, 9)
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	return []float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scale a point by sx in x-direction and sy in y-direction.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one, applying m first and n
// second. Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	v := []float64{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), v), dotProd(m.row(1), v))
}

// TransformVector transforms a direction vector, i.e. ignores the translation
// part of m.
func (m AT) TransformVector(p Pair) Pair {
	return P(m.get(0, 0)*p.X()+m.get(0, 1)*p.Y(), m.get(1, 0)*p.X()+m.get(1, 1)*p.Y())
}

// Det returns the determinant of the linear part of m.
func (m AT) Det() float64 {
	return m.get(0, 0)*m.get(1, 1) - m.get(0, 1)*m.get(1, 0)
}
