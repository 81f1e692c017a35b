package pathdata

import (
	"strconv"
	"strings"

	"github.com/npillmayer/sigpath"
)

// Serialize renders d as a path-data string. Every command is written as its
// letter followed by its values, separated by single spaces; there is no
// separator between commands. With decimals ≥ 0 values are rounded to as
// many fractional digits.
//
// In minified mode the output is shrunk further, keeping it equivalent for
// rendering:
//
//   - a leading move-to followed by a relative line-to is written as "m",
//     so the line-to may be given implicitly
//   - the letter of a command repeating the previous letter is replaced by
//     a space, as is the letter of a line-to implied by a preceding move-to
//     (never for move-to and close-path)
//   - the flags and the x-coordinate of arcs are joined without spaces
//   - " 0." becomes " .", " -" becomes "-", "-0." becomes "-.", and "Z"
//     becomes "z"
//
// d is not modified.
func Serialize(d Data, decimals int, minify bool) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	var prev byte
	for i, c := range d {
		letter := c.Kind.Letter(c.Relative)
		if minify && i == 0 && len(d) > 1 && d[1].Kind == LineTo && d[1].Relative {
			letter = 'm'
		}
		omit := minify && i > 0 && c.Kind != MoveTo && c.Kind != ClosePath &&
			(letter == prev || (prev == 'M' && letter == 'L') || (prev == 'm' && letter == 'l'))
		if omit {
			b.WriteByte(' ')
		} else {
			b.WriteByte(letter)
		}
		b.WriteString(strings.Join(formatValues(c, decimals, minify), " "))
		prev = letter
	}
	s := b.String()
	if minify {
		s = strings.ReplaceAll(s, " 0.", " .")
		s = strings.ReplaceAll(s, " -", "-")
		s = strings.ReplaceAll(s, "-0.", "-.")
		s = strings.ReplaceAll(s, "Z", "z")
	}
	return s, nil
}

// MustSerialize is like Serialize, but panics on invalid path data.
func MustSerialize(d Data, decimals int, minify bool) string {
	s, err := Serialize(d, decimals, minify)
	if err != nil {
		panic(err)
	}
	return s
}

// Encode converts absolute path data into its most compact form: implied
// control points are turned into shorthands, coordinates are made relative
// and rounded, and the result is serialized.
func Encode(d Data, decimals int, minify bool) (string, error) {
	short, err := ToShorthands(d, -1)
	if err != nil {
		return "", err
	}
	rel, err := ToRelative(short, decimals)
	if err != nil {
		return "", err
	}
	return Serialize(rel, decimals, minify)
}

func formatValues(c Command, decimals int, minify bool) []string {
	vals := make([]string, len(c.Values))
	for i, v := range c.Values {
		vals[i] = formatNumber(sigpath.RoundTo(v, decimals))
	}
	if minify && c.Kind == ArcTo && isFlag(c.Values[3]) && isFlag(c.Values[4]) {
		vals = []string{vals[0], vals[1], vals[2], vals[3] + vals[4] + vals[5], vals[6]}
	}
	return vals
}

func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // no negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isFlag(v float64) bool {
	return v == 0 || v == 1
}
