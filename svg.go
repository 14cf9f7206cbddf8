package polymorph

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// Element is a shape of an SVG document that can be drawn as a path
// description.
type Element interface {
	// Tag is the element's local name.
	Tag() string
	// Describe returns the element's outline in its own coordinates.
	Describe() (string, error)
	attributes() *shapeAttrs
}

// shapeAttrs are the attributes shared by every element.
type shapeAttrs struct {
	ID              string `xml:"id,attr"`
	Class           string `xml:"class,attr"`
	TransformString string `xml:"transform,attr"`
}

func (a *shapeAttrs) attributes() *shapeAttrs { return a }

// PathElement is an SVG path element.
type PathElement struct {
	shapeAttrs
	D string `xml:"d,attr"`
}

// Tag implements Element.
func (p *PathElement) Tag() string { return "path" }

// Describe implements Element.
func (p *PathElement) Describe() (string, error) { return p.D, nil }

// Svg is a parsed SVG document. Its shapes resolve selectors to path
// descriptions, so a *Svg can be used as Options.Resolver.
type Svg struct {
	Title string
	Group
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	shapeAttrs
	Elements []Element
	Groups   []*Group
	Parent   *Group
	// Transform is the parsed transform attribute, nil for none.
	Transform *mt.Transform
	// children in document order, shapes and groups mixed
	children []any
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str))
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader) (*Svg, error) {
	var svg Svg
	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %v", err)
	}
	return &svg, nil
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	if err := s.readAttrs(start); err != nil {
		return err
	}
	return s.decodeChildren(decoder, &s.Title)
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	if err := g.readAttrs(start); err != nil {
		return err
	}
	return g.decodeChildren(decoder, nil)
}

func (g *Group) readAttrs(start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "class":
			g.Class = attr.Value
		case "transform":
			g.TransformString = attr.Value
			t, err := parseTransform(g.TransformString)
			if err != nil {
				return err
			}
			g.Transform = &t
		}
	}
	return nil
}

// decodeChildren reads elements up to the group's end tag. The document
// title is stored in title when it is not nil.
func (g *Group) decodeChildren(decoder *xml.Decoder, title *string) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch {
			case tok.Name.Local == "g":
				child := &Group{Parent: g}
				if err = decoder.DecodeElement(child, &tok); err != nil {
					return fmt.Errorf("error decoding group element: %s", err)
				}
				g.Groups = append(g.Groups, child)
				g.children = append(g.children, child)
				continue
			case tok.Name.Local == "title" && title != nil:
				if err = decoder.DecodeElement(title, &tok); err != nil {
					return err
				}
				*title = strings.TrimSpace(*title)
				continue
			}

			el := newElement(tok.Name.Local)
			if el == nil {
				if err = decoder.Skip(); err != nil {
					return err
				}
				continue
			}
			if err = decoder.DecodeElement(el, &tok); err != nil {
				return fmt.Errorf("error decoding %s element: %s", tok.Name.Local, err)
			}
			g.Elements = append(g.Elements, el)
			g.children = append(g.children, el)

		case xml.EndElement:
			return nil
		}
	}
}

func newElement(tag string) Element {
	switch tag {
	case "path":
		return &PathElement{}
	case "circle":
		return &Circle{}
	case "ellipse":
		return &Ellipse{}
	case "rect":
		return &Rect{}
	case "polyline":
		return &PolyLine{}
	case "polygon":
		return &Polygon{}
	}
	return nil
}

// Find returns the first shape in document order matching a tag, #id or
// .class selector, with the combined transform of its groups.
func (g *Group) Find(selector string) (Element, mt.Transform, bool) {
	return g.find(parseSimpleSelector(selector), mt.Identity())
}

func (g *Group) find(sel simpleSelector, parent mt.Transform) (Element, mt.Transform, bool) {
	t := parent
	if g.Transform != nil {
		t = mt.MultiplyTransforms(t, *g.Transform)
	}
	for _, c := range g.children {
		switch c := c.(type) {
		case Element:
			a := c.attributes()
			if sel.matches(c.Tag(), a.ID, a.Class) {
				return c, t, true
			}
		case *Group:
			if el, et, ok := c.find(sel, t); ok {
				return el, et, true
			}
		}
	}
	return nil, t, false
}

// Resolve implements Resolver. Inputs that are not selectors are returned
// unchanged.
func (s *Svg) Resolve(selector string) (string, error) {
	if !IsSelector(selector) {
		return selector, nil
	}
	el, t, ok := s.Find(selector)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, selector)
	}
	return describe(el, t)
}

// describe draws el with its own transform applied after t.
func describe(el Element, t mt.Transform) (string, error) {
	d, err := el.Describe()
	if err != nil {
		return "", err
	}
	if ts := el.attributes().TransformString; ts != "" {
		et, err := parseTransform(ts)
		if err != nil {
			return "", err
		}
		t = mt.MultiplyTransforms(t, et)
	}
	return transformDescription(d, t)
}
