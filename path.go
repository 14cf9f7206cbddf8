package polymorph

// quadraticRatio promotes a quadratic control point to the two control
// points of the equivalent cubic.
const quadraticRatio = 2.0 / 3

// pathState is the expander's position between two commands. It is a
// value: next never changes the state it was called on.
type pathState struct {
	x, y           float64
	startX, startY float64
	// reflection point for S (cubic) or T (quadratic)
	ctrlX, ctrlY float64
	last         CommandKind
	// open is false before the first move and after a close
	open bool
}

// emitted is the output of a single transition: a new subpath anchor, or
// cubic sextuples for the active subpath.
type emitted struct {
	move   bool
	x, y   float64
	curves []float64
}

// absolute returns the arguments of c with relative coordinates resolved
// against the cursor. The command's own slice is never modified.
func (s pathState) absolute(c Command) []float64 {
	args := append([]float64(nil), c.Args...)
	if !c.Relative {
		return args
	}
	switch c.Kind {
	case HLineTo:
		args[0] += s.x
	case VLineTo:
		args[0] += s.y
	case ArcTo:
		args[5] += s.x
		args[6] += s.y
	default:
		for j := 0; j+1 < len(args); j += 2 {
			args[j] += s.x
			args[j+1] += s.y
		}
	}
	return args
}

// next applies one command to the state.
func (s pathState) next(c Command) (pathState, emitted) {
	n := s.absolute(c)
	var out emitted

	if c.Kind != MoveTo && !s.open {
		// drawing without a move, or after a close, starts at the anchor
		s.startX, s.startY = s.x, s.y
		s.open = true
		out.move = true
		out.x, out.y = s.x, s.y
	}

	x, y := s.x, s.y
	switch c.Kind {
	case MoveTo:
		s.x, s.y = n[0], n[1]
		s.startX, s.startY = s.x, s.y
		s.open = true
		out.move = true
		out.x, out.y = s.x, s.y
	case HLineTo:
		out.curves = s.line(n[0], y)
		s.x = n[0]
	case VLineTo:
		out.curves = s.line(x, n[0])
		s.y = n[0]
	case LineTo:
		out.curves = s.line(n[0], n[1])
		s.x, s.y = n[0], n[1]
	case ClosePath:
		out.curves = s.line(s.startX, s.startY)
		s.x, s.y = s.startX, s.startY
		s.open = false
	case CurveTo:
		out.curves = []float64{n[0], n[1], n[2], n[3], n[4], n[5]}
		s.ctrlX, s.ctrlY = n[2], n[3]
		s.x, s.y = n[4], n[5]
	case SmoothCurveTo:
		x1, y1 := x, y
		if s.last == CurveTo || s.last == SmoothCurveTo {
			x1, y1 = x*2-s.ctrlX, y*2-s.ctrlY
		}
		out.curves = []float64{x1, y1, n[0], n[1], n[2], n[3]}
		s.ctrlX, s.ctrlY = n[0], n[1]
		s.x, s.y = n[2], n[3]
	case QuadTo:
		out.curves = quadToCubic(x, y, n[0], n[1], n[2], n[3])
		s.ctrlX, s.ctrlY = n[0], n[1]
		s.x, s.y = n[2], n[3]
	case SmoothQuadTo:
		dx, dy := n[0], n[1]
		if s.last == QuadTo || s.last == SmoothQuadTo {
			qx, qy := x*2-s.ctrlX, y*2-s.ctrlY
			out.curves = quadToCubic(x, y, qx, qy, dx, dy)
			s.ctrlX, s.ctrlY = qx, qy
		} else {
			out.curves = []float64{x, y, x, y, dx, dy}
			s.ctrlX, s.ctrlY = x, y
		}
		s.x, s.y = dx, dy
	case ArcTo:
		out.curves = arcToCubic(x, y, n[0], n[1], n[2], n[3] != 0, n[4] != 0, n[5], n[6])
		if len(out.curves) > 0 {
			s.x, s.y = out.curves[len(out.curves)-2], out.curves[len(out.curves)-1]
		}
	}
	s.last = c.Kind
	return s, out
}

// line expresses a straight line from the cursor as a cubic whose control
// points sit on the two ends.
func (s pathState) line(dx, dy float64) []float64 {
	return []float64{s.x, s.y, dx, dy, dx, dy}
}

func quadToCubic(x, y, qx, qy, dx, dy float64) []float64 {
	return []float64{
		x + (qx-x)*quadraticRatio,
		y + (qy-y)*quadraticRatio,
		dx + (qx-dx)*quadraticRatio,
		dy + (qy-dy)*quadraticRatio,
		dx,
		dy,
	}
}

// expand lowers a command sequence to subpaths of cubic segments.
func expand(cmds []Command) [][]float64 {
	var (
		s        pathState
		out      emitted
		subpaths [][]float64
	)
	for _, c := range cmds {
		s, out = s.next(c)
		if out.move {
			subpaths = append(subpaths, []float64{out.x, out.y})
		}
		if len(out.curves) > 0 {
			cur := len(subpaths) - 1
			subpaths[cur] = append(subpaths[cur], out.curves...)
		}
	}
	return subpaths
}

// parsePoints tokenizes and expands a path description.
func parsePoints(d string) ([][]float64, error) {
	toks, err := tokenize(d)
	if err != nil {
		return nil, err
	}
	cmds, err := commands(toks)
	if err != nil {
		return nil, err
	}
	return expand(cmds), nil
}
