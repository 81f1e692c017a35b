package pathdata

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0, 0
	}
	return f, i + n
}

// Arc flags are single digits and may be written without separators.
func parseFlag(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	if i < len(path) && (path[i] == '0' || path[i] == '1') {
		return float64(path[i] - '0'), i + 1
	}
	return 0, 0
}

// Parse reads a path-data string, as produced by Serialize in plain or
// minified mode. Commands keep their letter case as relative flag; values
// following a command without a letter repeat it, where a repeated move-to
// becomes a line-to.
func Parse(s string) (Data, error) {
	path := []byte(s)
	var d Data
	var prev *Command
	i := skipCommaWhitespace(path)
	for i < len(path) {
		var c Command
		if kind, rel, ok := KindOf(path[i]); ok {
			c.Kind, c.Relative = kind, rel
			i++
		} else if prev != nil && prev.Kind != ClosePath {
			c.Kind, c.Relative = prev.Kind, prev.Relative
			if c.Kind == MoveTo {
				c.Kind = LineTo
			}
		} else {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, path[i], i)
		}
		n := c.Kind.Arity()
		if n > 0 {
			c.Values = make([]float64, n)
		}
		for j := 0; j < n; j++ {
			var f float64
			var k int
			if c.Kind == ArcTo && (j == 3 || j == 4) {
				f, k = parseFlag(path[i:])
			} else {
				f, k = parseNum(path[i:])
			}
			if k == 0 {
				return nil, fmt.Errorf("%w: %s expects %d values at offset %d", ErrSyntax, c.Kind, n, i)
			}
			c.Values[j] = f
			i += k
		}
		d = append(d, c)
		prev = &d[len(d)-1]
		i += skipCommaWhitespace(path[i:])
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %d commands", len(d))
	return d, nil
}
