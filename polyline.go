package polymorph

import "strings"

// PolyLine
// set of connected line segments that typically form a closed shape.
type PolyLine struct {
	shapeAttrs
	Points string `xml:"points,attr"`
}

// Tag implements Element.
func (p *PolyLine) Tag() string { return "polyline" }

// Describe implements Element. The point list becomes a move followed by
// implicit lines.
func (p *PolyLine) Describe() (string, error) {
	return pointsPath(p.Points, false), nil
}

// Polygon is a PolyLine that closes back on its first point.
type Polygon struct {
	shapeAttrs
	Points string `xml:"points,attr"`
}

// Tag implements Element.
func (p *Polygon) Tag() string { return "polygon" }

// Describe implements Element.
func (p *Polygon) Describe() (string, error) {
	return pointsPath(p.Points, true), nil
}

func pointsPath(points string, closed bool) string {
	points = strings.TrimSpace(points)
	if points == "" {
		return ""
	}
	d := "M" + points
	if closed {
		d += "Z"
	}
	return d
}
