package polymorph

import (
	"cmp"
	"fmt"
	"slices"
)

// Matrix is a keyframe pair after normalization: Matrix[0] and Matrix[1]
// hold the same number of subpaths, and paired subpaths hold the same
// number of points.
type Matrix [2][][]float64

// Normalize makes two outlines structurally identical so they can be
// blended point by point. Neither outline is modified.
func Normalize(left, right *Outline, opts *Options) (Matrix, error) {
	opts = opts.orDefault()
	if opts.AddPoints < 0 {
		return Matrix{}, fmt.Errorf("%w: negative AddPoints %d", ErrInvalidArguments, opts.AddPoints)
	}
	l := sortedSubpaths(left.Subpaths)
	r := sortedSubpaths(right.Subpaths)

	if len(l) != len(r) {
		if opts.PadStrategy == PadNone {
			return Matrix{}, fmt.Errorf("%w: %d subpaths against %d", ErrShapeMismatch, len(l), len(r))
		}
		l, r = fillSubpaths(l, r, opts)
	}

	m := Matrix{make([][]float64, len(l)), make([][]float64, len(r))}
	for i := range l {
		a, b := l[i].Points, r[i].Points
		if opts.PadStrategy == PadNone {
			if len(a) != len(b) {
				return Matrix{}, fmt.Errorf("%w: subpath %d has %d segments against %d",
					ErrShapeMismatch, i, l[i].Segments(), r[i].Segments())
			}
			m[0][i], m[1][i] = slices.Clone(a), slices.Clone(b)
			continue
		}
		ax, ay := opts.reference(l[i])
		bx, by := opts.reference(r[i])
		a = rotatePoints(ax, ay, a)
		b = rotatePoints(bx, by, b)
		m[0][i], m[1][i] = fillPoints(a, b, opts.AddPoints*6)
	}
	return m, nil
}

// sortedSubpaths orders subpaths by descending perimeter. Ties keep their
// original order.
func sortedSubpaths(subpaths []Subpath) []Subpath {
	sorted := slices.Clone(subpaths)
	slices.SortStableFunc(sorted, func(a, b Subpath) int {
		return cmp.Compare(b.Perimeter, a.Perimeter)
	})
	return sorted
}

// fillSubpaths pads the shorter list with stationary subpaths shaped like
// their companions on the other side.
func fillSubpaths(l, r []Subpath, opts *Options) ([]Subpath, []Subpath) {
	if len(l) < len(r) {
		r, l = fillSubpaths(r, l, opts)
		return l, r
	}
	filled := slices.Grow(slices.Clone(r), len(l)-len(r))
	for _, companion := range l[len(r):] {
		x, y := opts.fillAnchor(companion)
		points := make([]float64, len(companion.Points))
		for k := 0; k < len(points); k += 2 {
			points[k], points[k+1] = x, y
		}
		s := companion
		s.Points = points
		filled = append(filled, s)
	}
	return l, filled
}

// rotatePoints returns a closed subpath rotated to start at the segment
// start nearest (x, y). Open subpaths are returned unchanged.
func rotatePoints(x, y float64, points []float64) []float64 {
	segs := (len(points) - 2) / 6
	if segs < 2 || !isClosed(points) {
		return slices.Clone(points)
	}
	best := 0
	nearest := distance(x, y, points[0], points[1])
	for j := 1; j < segs; j++ {
		// segment j starts where segment j-1 ends
		if d := distance(x, y, points[6*j], points[6*j+1]); d < nearest {
			best, nearest = j, d
		}
	}
	if best == 0 {
		return slices.Clone(points)
	}

	body := points[2:]
	split := 6 * best
	out := make([]float64, 0, len(points))
	out = append(out, points[split], points[split+1])
	out = append(out, body[split:]...)
	return append(out, body[:split]...)
}

// fillPoints pads both subpaths to the longer one's length plus extra.
func fillPoints(a, b []float64, extra int) ([]float64, []float64) {
	total := max(len(a), len(b)) + extra
	return padSubpath(a, total), padSubpath(b, total)
}

// padSubpath spreads stationary segments evenly along points until it
// holds total numbers. Each inserted segment collapses onto the endpoint
// of the segment before it.
func padSubpath(points []float64, total int) []float64 {
	needed := (total - len(points)) / 6
	if needed <= 0 {
		return slices.Clone(points)
	}
	out := make([]float64, 0, total)
	out = append(out, points[0], points[1])

	segs := (len(points) - 2) / 6
	if segs == 0 {
		return appendStationary(out, points[0], points[1], needed)
	}
	for j := 0; j < segs; j++ {
		seg := points[2+6*j : 8+6*j]
		out = append(out, seg...)
		count := (j+1)*needed/segs - j*needed/segs
		out = appendStationary(out, seg[4], seg[5], count)
	}
	return out
}

func appendStationary(out []float64, x, y float64, count int) []float64 {
	for ; count > 0; count-- {
		out = append(out, x, y, x, y, x, y)
	}
	return out
}
