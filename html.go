package polymorph

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	mt "github.com/rustyoz/Mtransform"
)

// HTMLDocument resolves CSS selectors against an HTML page with inline SVG.
type HTMLDocument struct {
	doc *goquery.Document
}

// NewHTMLDocument parses an HTML document.
func NewHTMLDocument(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &HTMLDocument{doc: doc}, nil
}

// Resolve implements Resolver. The first element matching selector is
// drawn with the transforms of its ancestors applied.
func (h *HTMLDocument) Resolve(selector string) (string, error) {
	if !IsSelector(selector) {
		return selector, nil
	}
	sel := h.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, selector)
	}
	el := elementFromSelection(sel)
	if el == nil {
		return "", fmt.Errorf("%w: %q matches a %s element, not a shape", ErrNotFound, selector, goquery.NodeName(sel))
	}

	t := mt.Identity()
	parents := sel.Parents()
	// outermost ancestor first
	for i := parents.Length() - 1; i >= 0; i-- {
		ts, ok := parents.Eq(i).Attr("transform")
		if !ok || strings.TrimSpace(ts) == "" {
			continue
		}
		pt, err := parseTransform(ts)
		if err != nil {
			return "", err
		}
		t = mt.MultiplyTransforms(t, pt)
	}
	return describe(el, t)
}

// elementFromSelection builds the shape element for a single node, or nil
// when the node is not a shape.
func elementFromSelection(sel *goquery.Selection) Element {
	attr := func(name string) string {
		return sel.AttrOr(name, "")
	}
	attrs := shapeAttrs{ID: attr("id"), Class: attr("class"), TransformString: attr("transform")}

	switch goquery.NodeName(sel) {
	case "path":
		return &PathElement{shapeAttrs: attrs, D: attr("d")}
	case "circle":
		return &Circle{shapeAttrs: attrs, Cx: attr("cx"), Cy: attr("cy"), Radius: attr("r")}
	case "ellipse":
		return &Ellipse{shapeAttrs: attrs, Cx: attr("cx"), Cy: attr("cy"), Rx: attr("rx"), Ry: attr("ry")}
	case "rect":
		return &Rect{shapeAttrs: attrs, X: attr("x"), Y: attr("y"), Width: attr("width"), Height: attr("height")}
	case "polyline":
		return &PolyLine{shapeAttrs: attrs, Points: attr("points")}
	case "polygon":
		return &Polygon{shapeAttrs: attrs, Points: attr("points")}
	}
	if d, ok := sel.Attr("d"); ok {
		return &PathElement{shapeAttrs: attrs, D: d}
	}
	return nil
}
