package polymorph

import (
	"math"
	"strconv"
	"strings"
)

// Formatter turns a coordinate into its textual form.
type Formatter func(float64) string

// RoundFormatter rounds half up to the nearest integer.
func RoundFormatter(n float64) string {
	r := math.Floor(n + 0.5)
	if r == 0 {
		// no "-0"
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ExactFormatter prints the shortest representation that parses back to
// the same number.
func ExactFormatter(n float64) string {
	if n == 0 {
		n = 0
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FixedFormatter prints numbers with prec decimals.
func FixedFormatter(prec int) Formatter {
	return func(n float64) string {
		return strconv.FormatFloat(n, 'f', prec, 64)
	}
}

// Render serializes subpaths into a path description made of M and C
// commands only. A stationary segment that repeats the stationary segment
// right before it is dropped.
func Render(subpaths [][]float64, f Formatter) string {
	if f == nil {
		f = RoundFormatter
	}
	var b strings.Builder
	for _, ns := range subpaths {
		b.WriteByte('M')
		b.WriteString(f(ns[0]))
		b.WriteByte(' ')
		b.WriteString(f(ns[1]))
		if len(ns) > 2 {
			b.WriteByte('C')
		}

		var last [6]string
		lastPoint := false
		first := true
		for i := 2; i+5 < len(ns); i += 6 {
			var seg [6]string
			for k := range seg {
				seg[k] = f(ns[i+k])
			}
			isPoint := seg[0] == seg[4] && seg[2] == seg[4] && seg[1] == seg[5] && seg[3] == seg[5]
			if isPoint && lastPoint && seg == last {
				continue
			}
			last, lastPoint = seg, isPoint
			for _, s := range seg {
				if !first {
					b.WriteByte(' ')
				}
				b.WriteString(s)
				first = false
			}
		}
	}
	return b.String()
}
