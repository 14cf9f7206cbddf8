package polymorph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubicAt evaluates the cubic from (x0, y0) through the sextuple seg at t.
func cubicAt(x0, y0 float64, seg []float64, t float64) (x, y float64) {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return a*x0 + b*seg[0] + c*seg[2] + d*seg[4],
		a*y0 + b*seg[1] + c*seg[3] + d*seg[5]
}

// maxRadialError returns the largest distance between the curves and the
// circle of radius r centred at (cx, cy), sampled along each segment.
func maxRadialError(x0, y0 float64, curves []float64, cx, cy, r float64) float64 {
	var worst float64
	for i := 0; i+5 < len(curves); i += 6 {
		seg := curves[i : i+6]
		for k := 0; k <= 100; k++ {
			x, y := cubicAt(x0, y0, seg, float64(k)/100)
			worst = math.Max(worst, math.Abs(distance(x, y, cx, cy)-r))
		}
		x0, y0 = seg[4], seg[5]
	}
	return worst
}

func TestArcToCubicWideSweep(t *testing.T) {
	const r = 100
	a := 350 * math.Pi / 180
	x2, y2 := r*math.Cos(a), r*math.Sin(a)

	curves := arcToCubic(r, 0, r, r, 0, true, true, x2, y2)
	require.Len(t, curves, 3*6)
	assert.Equal(t, x2, curves[16])
	assert.Equal(t, y2, curves[17])

	// the first split lands 120 degrees along the circle
	assert.InDelta(t, -50, curves[4], 1e-9)
	assert.InDelta(t, 86.60254037844386, curves[5], 1e-9)

	assert.Less(t, maxRadialError(r, 0, curves, 0, 0, r), 0.003*r)
}

func TestArcToCubicHalfCircle(t *testing.T) {
	curves := arcToCubic(-10, 0, 10, 10, 0, true, false, 10, 0)
	require.Len(t, curves, 2*6)
	assert.InDelta(t, 5, curves[4], 1e-9)
	assert.InDelta(t, 8.660254037844386, curves[5], 1e-9)
	assert.Equal(t, []float64{10, 0}, curves[10:])
	assert.Less(t, maxRadialError(-10, 0, curves, 0, 0, 10), 0.03)
}

func TestArcToCubicRotationOfACircle(t *testing.T) {
	plain := arcToCubic(-10, 0, 10, 10, 0, true, false, 10, 0)
	rotated := arcToCubic(-10, 0, 10, 10, 45, true, false, 10, 0)
	require.Len(t, rotated, len(plain))
	for i := range plain {
		assert.InDelta(t, plain[i], rotated[i], 1e-6, "index %d", i)
	}
}

func TestArcToCubicRotatedEllipse(t *testing.T) {
	curves := arcToCubic(0, 0, 50, 25, 30, false, true, 60, 20)
	require.Len(t, curves, 6)
	assert.Equal(t, []float64{60, 20}, curves[4:])
}

func TestArcToCubicScalesSmallRadii(t *testing.T) {
	// a radius of 1 cannot span 20 units; it grows to a half circle
	curves := arcToCubic(0, 0, 1, 1, 0, false, true, 20, 0)
	require.Len(t, curves, 2*6)
	assert.Equal(t, []float64{20, 0}, curves[10:])
	assert.Less(t, maxRadialError(0, 0, curves, 10, 0, 10), 0.03)
}

func TestArcToCubicDegenerate(t *testing.T) {
	assert.Equal(t, []float64{10, 5, 10, 5, 10, 5}, arcToCubic(0, 0, 0, 4, 0, false, false, 10, 5))
	assert.Equal(t, []float64{10, 5, 10, 5, 10, 5}, arcToCubic(0, 0, 4, -1, 0, false, false, 10, 5))
	assert.Empty(t, arcToCubic(3, 3, 4, 4, 0, false, true, 3, 3))
}

func TestArcToCubicSegmentBound(t *testing.T) {
	const r = 50
	for deg := 10; deg < 360; deg += 7 {
		a := float64(deg) * math.Pi / 180
		x2, y2 := r*math.Cos(a), r*math.Sin(a)

		curves := arcToCubic(r, 0, r, r, 0, deg > 180, true, x2, y2)
		segs := len(curves) / 6
		require.Equal(t, 0, len(curves)%6, "%d degrees", deg)
		assert.True(t, segs >= 1 && segs <= 3, "%d degrees: %d segments", deg, segs)
		assert.Less(t, maxRadialError(r, 0, curves, 0, 0, r), 0.003*r, "%d degrees", deg)
	}
}
