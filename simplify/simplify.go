// Package simplify reduces the number of points of a polyline while keeping
// its shape within a distance tolerance.
//
// Two reductions are available: a fast radial-distance pass dropping points
// which are too close to their predecessor, and the Ramer–Douglas–Peucker
// algorithm. Both work on squared distances to avoid a square root per
// candidate point.
package simplify

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sigpath"
)

// tracer writes to trace with key 'sigpath.simplify'
func tracer() tracing.Trace {
	return tracing.Select("sigpath.simplify")
}

// Simplify reduces points to a simplified polyline. If highestQuality is
// false, a radial-distance pass runs before Douglas-Peucker, which is faster
// for dense input at the cost of slightly less faithful output.
// Inputs with at most 2 points are returned unchanged.
func Simplify(points []sigpath.Pair, tolerance float64, highestQuality bool) []sigpath.Pair {
	if len(points) <= 2 {
		return points
	}
	n := len(points)
	if !highestQuality {
		points = RadialDistance(points, tolerance)
	}
	points = DouglasPeucker(points, tolerance)
	tracer().Debugf("simplified %d points to %d", n, len(points))
	return points
}

// RadialDistance drops consecutive points closer than tolerance to the last
// retained point. The first and the last point are always retained.
func RadialDistance(points []sigpath.Pair, tolerance float64) []sigpath.Pair {
	if len(points) <= 2 {
		return points
	}
	sqTolerance := tolerance * tolerance
	prev := points[0]
	simplified := []sigpath.Pair{prev}
	var pt sigpath.Pair
	for _, pt = range points[1:] {
		if sigpath.SqDist(pt, prev) > sqTolerance {
			simplified = append(simplified, pt)
			prev = pt
		}
	}
	if prev != pt {
		simplified = append(simplified, pt)
	}
	return simplified
}

// DouglasPeucker runs the Ramer–Douglas–Peucker reduction. Every dropped
// point lies within tolerance of the resulting polyline; the first and the
// last point are always retained. Inputs with at most 2 points are returned
// unchanged.
func DouglasPeucker(points []sigpath.Pair, tolerance float64) []sigpath.Pair {
	if len(points) <= 2 {
		return points
	}
	last := len(points) - 1
	simplified := []sigpath.Pair{points[0]}
	simplified = dpStep(points, 0, last, tolerance*tolerance, simplified)
	return append(simplified, points[last])
}

// dpStep emits the retained points strictly between first and last.
// On ties the point with the lowest index wins.
func dpStep(points []sigpath.Pair, first, last int, sqTolerance float64, simplified []sigpath.Pair) []sigpath.Pair {
	maxSqDist := sqTolerance
	index := -1
	for i := first + 1; i < last; i++ {
		sqDist := sqSegDist(points[i], points[first], points[last])
		if sqDist > maxSqDist {
			index = i
			maxSqDist = sqDist
		}
	}
	if index < 0 {
		return simplified
	}
	if index-first > 1 {
		simplified = dpStep(points, first, index, sqTolerance, simplified)
	}
	simplified = append(simplified, points[index])
	if last-index > 1 {
		simplified = dpStep(points, index, last, sqTolerance, simplified)
	}
	return simplified
}

// Squared distance from p to the segment (p1,p2). A degenerate segment
// falls back to the distance between p and p1.
func sqSegDist(p, p1, p2 sigpath.Pair) float64 {
	x, y := p1.F()
	dx, dy := p2.X()-x, p2.Y()-y
	if dx != 0 || dy != 0 {
		t := ((p.X()-x)*dx + (p.Y()-y)*dy) / (dx*dx + dy*dy)
		if t > 1 {
			x, y = p2.F()
		} else if t > 0 {
			x += dx * t
			y += dy * t
		}
	}
	return sigpath.SqDist(p, sigpath.P(x, y))
}
