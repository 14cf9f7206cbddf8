package polymorph

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// maxArcSweep is the largest angle a single cubic approximates.
const maxArcSweep = math.Pi * 120 / 180

// arcToCubic approximates the elliptical arc from (x1, y1) to (x2, y2) with
// cubic segments. The result is a flat list of sextuples in absolute
// coordinates; angle is the x-axis rotation in degrees.
func arcToCubic(x1, y1, rx, ry, angle float64, large, sweep bool, x2, y2 float64) []float64 {
	if rx <= 0 || ry <= 0 {
		return []float64{x2, y2, x2, y2, x2, y2}
	}
	if near(x1, x2) && near(y1, y2) {
		return nil
	}
	endX, endY := x2, y2

	rad := math.Pi / 180 * angle
	toLocal := mt.NewTransform()
	toLocal.RotateOrigin(-rad)
	x1, y1 = toLocal.Apply(x1, y1)
	x2, y2 = toLocal.Apply(x2, y2)

	x := (x1 - x2) / 2
	y := (y1 - y2) / 2
	h := x*x/(rx*rx) + y*y/(ry*ry)
	if h > 1 {
		h = math.Sqrt(h)
		rx = h * rx
		ry = h * ry
	}
	rx2, ry2 := rx*rx, ry*ry
	k := math.Sqrt(math.Abs((rx2*ry2 - rx2*y*y - ry2*x*x) / (rx2*y*y + ry2*x*x)))
	if large == sweep {
		k = -k
	}
	cx := k*rx*y/ry + (x1+x2)/2
	cy := k*-ry*x/rx + (y1+y2)/2

	f1 := math.Asin(clamp((y1-cy)/ry, -1, 1))
	f2 := math.Asin(clamp((y2-cy)/ry, -1, 1))
	if x1 < cx {
		f1 = math.Pi - f1
	}
	if x2 < cx {
		f2 = math.Pi - f2
	}
	if f1 < 0 {
		f1 += 2 * math.Pi
	}
	if f2 < 0 {
		f2 += 2 * math.Pi
	}
	if sweep && f1 > f2 {
		f1 -= 2 * math.Pi
	}
	if !sweep && f2 > f1 {
		f2 -= 2 * math.Pi
	}

	res := arcSegments(x1, y1, rx, ry, sweep, x2, y2, f1, f2, cx, cy)

	toWorld := mt.NewTransform()
	toWorld.RotateOrigin(rad)
	for i := 0; i < len(res); i += 2 {
		res[i], res[i+1] = toWorld.Apply(res[i], res[i+1])
	}
	// rotating there and back may move the endpoint by an ulp
	res[len(res)-2], res[len(res)-1] = endX, endY
	return res
}

// arcSegments approximates the arc between angles f1 and f2 of the ellipse
// centred at (cx, cy), in the ellipse's unrotated frame. Spans wider than
// maxArcSweep are split, recursing toward the end point.
func arcSegments(x1, y1, rx, ry float64, sweep bool, x2, y2, f1, f2, cx, cy float64) []float64 {
	var rest []float64
	if math.Abs(f2-f1)-maxArcSweep > epsilon {
		f2old, x2old, y2old := f2, x2, y2
		dir := -1.0
		if sweep && f2 > f1 {
			dir = 1
		}
		f2 = f1 + maxArcSweep*dir
		x2 = cx + rx*math.Cos(f2)
		y2 = cy + ry*math.Sin(f2)
		rest = arcSegments(x2, y2, rx, ry, sweep, x2old, y2old, f2, f2old, cx, cy)
	}

	t := 4.0 / 3 * math.Tan((f2-f1)/4)
	res := make([]float64, 0, 6+len(rest))
	res = append(res,
		2*x1-(x1+t*rx*math.Sin(f1)),
		2*y1-(y1-t*ry*math.Cos(f1)),
		x2+t*rx*math.Sin(f2),
		y2-t*ry*math.Cos(f2),
		x2,
		y2,
	)
	return append(res, rest...)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
