package polymorph

import "fmt"

// Rect is an SVG rect element. Rounded corners are not drawn.
type Rect struct {
	shapeAttrs
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

// Tag implements Element.
func (r *Rect) Tag() string { return "rect" }

// Describe implements Element.
func (r *Rect) Describe() (string, error) {
	n, err := attrNumbers(map[string]string{"x": r.X, "y": r.Y, "width": r.Width, "height": r.Height})
	if err != nil {
		return "", fmt.Errorf("rect: %w", err)
	}
	f := ExactFormatter
	x, y := n["x"], n["y"]
	return "M" + f(x) + " " + f(y) +
		"H" + f(x+n["width"]) +
		"V" + f(y+n["height"]) +
		"H" + f(x) + "Z", nil
}
