package polymorph

import (
	"fmt"
	"math"
	"strings"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// parseTransform parses an SVG transform attribute such as
// "translate(10 20) rotate(45)". Functions apply right to left, as in SVG.
func parseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()
	src := prepareDescription(s)
	l, items := gl.Lex("transform", src)
	defer func() {
		for range items {
		}
	}()

	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return t, nil
		case gl.ItemWSP, gl.ItemComma:
			continue
		case gl.ItemWord, gl.ItemLetter:
		default:
			return t, fmt.Errorf("%w: transform %q: unexpected %q", ErrSyntax, s, i.Value)
		}

		name := i.Value
		args, err := parseTransformArgs(l)
		if err != nil {
			return t, fmt.Errorf("transform %q: %w", s, err)
		}
		if err := applyTransform(&t, name, args); err != nil {
			return t, fmt.Errorf("transform %q: %w", s, err)
		}
	}
}

// parseTransformArgs reads "(n, n ...)" following a function name.
func parseTransformArgs(l *gl.Lexer) ([]float64, error) {
	l.ConsumeWhiteSpace()
	if i := l.NextItem(); i.Type != gl.ItemParan || i.Value != "(" {
		return nil, fmt.Errorf("%w: expected ( got %q", ErrSyntax, i.Value)
	}
	var args []float64
	for {
		l.ConsumeWhiteSpace()
		l.ConsumeComma()
		i := l.NextItem()
		switch {
		case i.Type == gl.ItemNumber:
			n, err := parseNumber(i.Value)
			if err != nil {
				return nil, err
			}
			args = append(args, n)
		case i.Type == gl.ItemParan && i.Value == ")":
			return args, nil
		default:
			return nil, fmt.Errorf("%w: unexpected %q in arguments", ErrSyntax, i.Value)
		}
	}
}

func applyTransform(t *mt.Transform, name string, args []float64) error {
	argc := func(counts ...int) error {
		for _, c := range counts {
			if len(args) == c {
				return nil
			}
		}
		return fmt.Errorf("%w: %s takes %v arguments, got %d", ErrSyntax, name, counts, len(args))
	}

	switch strings.ToLower(name) {
	case "matrix":
		if err := argc(6); err != nil {
			return err
		}
		t.MultiplyWith(mt.Transform{
			{args[0], args[2], args[4]},
			{args[1], args[3], args[5]},
			{0, 0, 1},
		})
	case "translate":
		if err := argc(1, 2); err != nil {
			return err
		}
		args = append(args, 0)
		t.Translate(args[0], args[1])
	case "scale":
		if err := argc(1, 2); err != nil {
			return err
		}
		args = append(args, args[0])
		t.Scale(args[0], args[1])
	case "rotate":
		if err := argc(1, 3); err != nil {
			return err
		}
		a := args[0] * math.Pi / 180
		if len(args) == 3 {
			t.Translate(args[1], args[2])
			t.RotateOrigin(a)
			t.Translate(-args[1], -args[2])
		} else {
			t.RotateOrigin(a)
		}
	case "skewx":
		if err := argc(1); err != nil {
			return err
		}
		t.SkewX(args[0] * math.Pi / 180)
	case "skewy":
		if err := argc(1); err != nil {
			return err
		}
		t.SkewY(args[0] * math.Pi / 180)
	default:
		return fmt.Errorf("%w: unknown transform %q", ErrSyntax, name)
	}
	return nil
}

// transformDescription applies t to every point of d and renders the result
// at full precision. The identity returns d unchanged.
func transformDescription(d string, t mt.Transform) (string, error) {
	if t == mt.Identity() {
		return d, nil
	}
	points, err := parsePoints(d)
	if err != nil {
		return "", err
	}
	for _, ns := range points {
		for i := 0; i+1 < len(ns); i += 2 {
			ns[i], ns[i+1] = t.Apply(ns[i], ns[i+1])
		}
	}
	return Render(points, ExactFormatter), nil
}
