package polymorph

import (
	"fmt"
	"strings"
)

// PadStrategy selects what the normalizer does when two keyframes have
// different geometry counts.
type PadStrategy int

const (
	// PadFill synthesizes stationary subpaths and segments.
	PadFill PadStrategy = iota
	// PadNone fails with ErrShapeMismatch.
	PadNone
)

func (p PadStrategy) String() string {
	switch p {
	case PadFill:
		return "fill"
	case PadNone:
		return "none"
	}
	return fmt.Sprintf("PadStrategy(%d)", int(p))
}

// ParsePadStrategy parses "fill" or "none".
func ParsePadStrategy(s string) (PadStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fill":
		return PadFill, nil
	case "none":
		return PadNone, nil
	}
	return 0, fmt.Errorf("%w: unknown pad strategy %q", ErrInvalidArguments, s)
}

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// ParsePoint parses "x,y" or "x y" with the number syntax of path
// descriptions.
func ParsePoint(s string) (Point, error) {
	fields := strings.FieldsFunc(prepareDescription(s), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("%w: point %q: want x,y", ErrInvalidArguments, s)
	}
	x, err := parseNumber(fields[0])
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q: %w", ErrInvalidArguments, s, err)
	}
	y, err := parseNumber(fields[1])
	if err != nil {
		return Point{}, fmt.Errorf("%w: point %q: %w", ErrInvalidArguments, s, err)
	}
	return Point{X: x, Y: y}, nil
}

// Options configures parsing, normalization and rendering. A nil *Options
// is valid and means the defaults.
type Options struct {
	// Origin is the reference point for start-point rotation and the anchor
	// of synthesized subpaths. It is a fraction of each subpath's bounding
	// box unless OriginAbsolute is set. When nil, rotation uses the box's
	// top-left corner and synthesized subpaths collapse to the box centre.
	Origin         *Point
	OriginAbsolute bool

	// Precision is the number of decimals rendered; 0 rounds to integers.
	Precision int

	PadStrategy PadStrategy

	// AddPoints inserts that many extra stationary segments into every
	// subpath pair. It must not be negative.
	AddPoints int

	// Resolver turns selectors into path descriptions. Nil passes every
	// input through unchanged.
	Resolver Resolver
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return &Options{}
	}
	return o
}

// formatter returns the numeric formatting policy for rendering.
func (o *Options) formatter() Formatter {
	if o == nil || o.Precision <= 0 {
		return RoundFormatter
	}
	return FixedFormatter(o.Precision)
}

// reference resolves the origin against a subpath's bounding box.
func (o *Options) reference(s Subpath) (x, y float64) {
	var origin Point
	if o.Origin != nil {
		origin = *o.Origin
	}
	if o.OriginAbsolute {
		return origin.X, origin.Y
	}
	return s.X + s.W*origin.X, s.Y + s.H*origin.Y
}

// fillAnchor is where the points of a subpath synthesized opposite s
// collapse to.
func (o *Options) fillAnchor(s Subpath) (x, y float64) {
	if o.Origin == nil && !o.OriginAbsolute {
		return s.Center()
	}
	return o.reference(s)
}

func (o *Options) resolve(input string) (string, error) {
	if o == nil || o.Resolver == nil {
		return input, nil
	}
	d, err := o.Resolver.Resolve(input)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", input, err)
	}
	return d, nil
}
