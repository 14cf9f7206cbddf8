package polymorph

import "math"

// Subpath is one continuous pen stroke in canonical form: the start anchor
// followed by one sextuple (c1.x, c1.y, c2.x, c2.y, end.x, end.y) per cubic
// segment. X, Y, W and H are the bounding box of its endpoints.
type Subpath struct {
	Points    []float64
	X, Y      float64
	W, H      float64
	Perimeter float64
}

// newSubpath annotates points with their bounding box and perimeter.
func newSubpath(points []float64) Subpath {
	xmin, ymin := points[0], points[1]
	xmax, ymax := xmin, ymin
	for i := 6; i < len(points); i += 6 {
		x, y := points[i], points[i+1]
		xmin = math.Min(xmin, x)
		xmax = math.Max(xmax, x)
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}
	return Subpath{
		Points:    points,
		X:         xmin,
		Y:         ymin,
		W:         xmax - xmin,
		H:         ymax - ymin,
		Perimeter: perimeter(points),
	}
}

// perimeter sums the chords between consecutive endpoints, starting with
// the chord from the last endpoint back to the anchor. Control points are
// ignored; the result only has to order subpaths.
func perimeter(points []float64) float64 {
	var p float64
	x, y := points[len(points)-2], points[len(points)-1]
	for i := 0; i < len(points); i += 6 {
		p += distance(x, y, points[i], points[i+1])
		x, y = points[i], points[i+1]
	}
	return math.Floor(p)
}

// Segments returns the number of cubic segments.
func (s Subpath) Segments() int {
	return (len(s.Points) - 2) / 6
}

// Closed reports whether the subpath ends exactly where it starts.
func (s Subpath) Closed() bool {
	return isClosed(s.Points)
}

func isClosed(points []float64) bool {
	n := len(points)
	return points[n-2] == points[0] && points[n-1] == points[1]
}

// Center returns the centre of the bounding box.
func (s Subpath) Center() (x, y float64) {
	return s.X + s.W/2, s.Y + s.H/2
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2))
}
