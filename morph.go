package polymorph

import (
	"fmt"
	"math"
)

// epsilon is the tolerance for offsets at the ends of the timeline and
// for coordinate comparisons in arc conversion.
const epsilon = 0x1p-52

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// Interpolator returns the path description at an offset in [0, 1]. It is
// safe for concurrent use. Offsets outside the range extrapolate, and NaN
// returns the first keyframe.
type Interpolator func(offset float64) string

// Morph resolves and parses every input, then chains them into one
// timeline. At least two inputs are required.
func Morph(inputs []string, opts *Options) (Interpolator, error) {
	if len(inputs) < 2 {
		return nil, fmt.Errorf("%w: morph needs at least 2 paths, got %d", ErrInvalidArguments, len(inputs))
	}
	outlines := make([]*Outline, len(inputs))
	for i, in := range inputs {
		o, err := Parse(in, opts)
		if err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
		outlines[i] = o
	}
	return Interpolate(outlines, opts)
}

// Interpolate chains parsed keyframes into one timeline. Each adjacent pair
// is normalized once, here.
func Interpolate(outlines []*Outline, opts *Options) (Interpolator, error) {
	if len(outlines) < 2 {
		return nil, fmt.Errorf("%w: morph needs at least 2 paths, got %d", ErrInvalidArguments, len(outlines))
	}
	hlen := len(outlines) - 1
	pairs := make([]pairInterpolator, hlen)
	for h := range pairs {
		p, err := newPairInterpolator(outlines[h], outlines[h+1], opts)
		if err != nil {
			return nil, fmt.Errorf("keyframes %d and %d: %w", h, h+1, err)
		}
		pairs[h] = p
	}
	f := opts.formatter()
	first, last := outlines[0].Path, outlines[hlen].Path

	return func(offset float64) string {
		if math.IsNaN(offset) || near(offset, 0) {
			return first
		}
		if near(offset, 1) {
			return last
		}
		// offsets outside [0, 1] extrapolate the first or last pair
		d := float64(hlen) * offset
		flr := max(min(int(math.Floor(d)), hlen-1), 0)
		// later pairs scale their local offset down by flr+1
		return pairs[flr].at((d-float64(flr))/float64(flr+1), f)
	}, nil
}

type pairInterpolator struct {
	left, right string
	matrix      Matrix
}

func newPairInterpolator(left, right *Outline, opts *Options) (pairInterpolator, error) {
	m, err := Normalize(left, right, opts)
	if err != nil {
		return pairInterpolator{}, err
	}
	return pairInterpolator{left: left.Path, right: right.Path, matrix: m}, nil
}

func (p pairInterpolator) at(offset float64, f Formatter) string {
	if near(offset, 0) {
		return p.left
	}
	if near(offset, 1) {
		return p.right
	}
	return Render(p.mix(offset), f)
}

// mix blends the pair linearly into freshly allocated subpaths.
func (p pairInterpolator) mix(offset float64) [][]float64 {
	results := make([][]float64, len(p.matrix[0]))
	for h := range results {
		results[h] = mixPoints(p.matrix[0][h], p.matrix[1][h], offset)
	}
	return results
}

func mixPoints(a, b []float64, o float64) []float64 {
	results := make([]float64, len(a))
	for i := range a {
		results[i] = a[i] + (b[i]-a[i])*o
	}
	return results
}
