package polymorph

import (
	"fmt"
	"strings"
)

// Circle is an SVG circle element
type Circle struct {
	shapeAttrs
	Cx     string `xml:"cx,attr"`
	Cy     string `xml:"cy,attr"`
	Radius string `xml:"r,attr"`
}

// Tag implements Element.
func (c *Circle) Tag() string { return "circle" }

// Describe implements Element. The circle is drawn as two half arcs
// starting at its leftmost point.
func (c *Circle) Describe() (string, error) {
	n, err := attrNumbers(map[string]string{"cx": c.Cx, "cy": c.Cy, "r": c.Radius})
	if err != nil {
		return "", fmt.Errorf("circle: %w", err)
	}
	return ellipsePath(n["cx"], n["cy"], n["r"], n["r"]), nil
}

// Ellipse is an SVG ellipse element
type Ellipse struct {
	shapeAttrs
	Cx string `xml:"cx,attr"`
	Cy string `xml:"cy,attr"`
	Rx string `xml:"rx,attr"`
	Ry string `xml:"ry,attr"`
}

// Tag implements Element.
func (e *Ellipse) Tag() string { return "ellipse" }

// Describe implements Element.
func (e *Ellipse) Describe() (string, error) {
	n, err := attrNumbers(map[string]string{"cx": e.Cx, "cy": e.Cy, "rx": e.Rx, "ry": e.Ry})
	if err != nil {
		return "", fmt.Errorf("ellipse: %w", err)
	}
	return ellipsePath(n["cx"], n["cy"], n["rx"], n["ry"]), nil
}

func ellipsePath(cx, cy, rx, ry float64) string {
	f := ExactFormatter
	r := f(rx) + " " + f(ry)
	return "M" + f(cx-rx) + " " + f(cy) +
		"A" + r + " 0 1 0 " + f(cx+rx) + " " + f(cy) +
		"A" + r + " 0 1 0 " + f(cx-rx) + " " + f(cy) + "Z"
}

// attrNumbers parses numeric attributes. Missing attributes are zero and a
// "px" unit is accepted.
func attrNumbers(attrs map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(attrs))
	for name, v := range attrs {
		v = strings.TrimSuffix(strings.TrimSpace(v), "px")
		if v == "" {
			out[name] = 0
			continue
		}
		n, err := parseNumber(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		out[name] = n
	}
	return out, nil
}
