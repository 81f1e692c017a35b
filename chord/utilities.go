package chord

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/sigpath"
)

var unknown = sigpath.Pair(cmplx.NaN())

// Extend an array/slice of pairs to make room for index i.
// Will do nothing if the array is already large enough.
func extendC(arr []sigpath.Pair, i int, deflt sigpath.Pair) []sigpath.Pair {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]sigpath.Pair, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from an array/slice if present, default value deflt otherwise.
func getC(arr []sigpath.Pair, i int, deflt sigpath.Pair) sigpath.Pair {
	if i < 0 || i >= len(arr) {
		return deflt
	}
	return arr[i]
}

// Properties of the line from a to b.
func line(a, b sigpath.Pair) (length, angle float64) {
	return cmplx.Polar((b - a).C())
}

func ptstring(p sigpath.Pair, iscontrol bool) string {
	if p.IsNaN() {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	return math.Round(x*10000.0) / 10000.0
}
