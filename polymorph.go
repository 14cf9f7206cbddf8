// Package polymorph morphs between SVG path descriptions.
//
// Every description is lowered to subpaths of absolute cubic Bézier
// segments. Two outlines are then normalized to the same number of
// subpaths and segments, and blended coordinate by coordinate:
//
//	morph, err := polymorph.Morph([]string{"M0,0 L10,10", "M0,0 L20,20"}, nil)
//	if err != nil {
//		return err
//	}
//	d := morph(0.5) // "M0 0C0 0 15 15 15 15"
//
// The returned function is pure; the caller drives the offset and applies
// any easing before calling it.
package polymorph

// Outline is a parsed path description.
type Outline struct {
	// Path is the description the outline was parsed from.
	Path     string
	Subpaths []Subpath
}

// Parse resolves input with the configured resolver and lowers it to cubic
// subpaths.
func Parse(input string, opts *Options) (*Outline, error) {
	d, err := opts.resolve(input)
	if err != nil {
		return nil, err
	}
	points, err := parsePoints(d)
	if err != nil {
		return nil, err
	}
	o := &Outline{Path: d, Subpaths: make([]Subpath, len(points))}
	for i, p := range points {
		o.Subpaths[i] = newSubpath(p)
	}
	return o, nil
}

// Points returns the raw point lists of the outline's subpaths.
func (o *Outline) Points() [][]float64 {
	points := make([][]float64, len(o.Subpaths))
	for i, s := range o.Subpaths {
		points[i] = s.Points
	}
	return points
}

// ToBezier normalizes input to an equivalent description that uses M and
// C commands only.
func ToBezier(input string, opts *Options) (string, error) {
	o, err := Parse(input, opts)
	if err != nil {
		return "", err
	}
	return Render(o.Points(), opts.formatter()), nil
}

// Reverse returns input drawn in the opposite direction: every subpath is
// walked backwards and the subpath order is reversed.
func Reverse(input string, opts *Options) (string, error) {
	o, err := Parse(input, opts)
	if err != nil {
		return "", err
	}
	points := o.Points()
	reversed := make([][]float64, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = reversePoints(p)
	}
	return Render(reversed, opts.formatter()), nil
}

// reversePoints rebuilds a subpath from its last endpoint back to its
// anchor. Each segment keeps its control points, swapped.
func reversePoints(ns []float64) []float64 {
	n := len(ns)
	out := make([]float64, 0, n)
	out = append(out, ns[n-2], ns[n-1])
	for i := n - 6; i >= 2; i -= 6 {
		// the segment at i starts at the endpoint just before it
		out = append(out, ns[i+2], ns[i+3], ns[i], ns[i+1], ns[i-2], ns[i-1])
	}
	return out
}
