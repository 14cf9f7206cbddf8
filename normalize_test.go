package polymorph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, d string) *Outline {
	t.Helper()
	o, err := Parse(d, nil)
	require.NoError(t, err)
	return o
}

func TestSubpathMetrics(t *testing.T) {
	o := mustParse(t, "M0,0 L10,0 L10,10 Z")
	require.Len(t, o.Subpaths, 1)

	s := o.Subpaths[0]
	require.Equal(t, 0.0, s.X)
	require.Equal(t, 0.0, s.Y)
	require.Equal(t, 10.0, s.W)
	require.Equal(t, 10.0, s.H)
	// 10 + 10 + 14.14, floored
	require.Equal(t, 34.0, s.Perimeter)
	require.Equal(t, 3, s.Segments())
	require.True(t, s.Closed())

	x, y := s.Center()
	require.Equal(t, 5.0, x)
	require.Equal(t, 5.0, y)

	open := mustParse(t, "M0 0 L3 4").Subpaths[0]
	require.False(t, open.Closed())
	// the chord back to the anchor counts for open subpaths too
	require.Equal(t, 10.0, open.Perimeter)
}

func TestSortedSubpathsCountsReturnChord(t *testing.T) {
	o := mustParse(t, "M0,0 L10,0 L10,10 Z M0,0 L0,30")
	sorted := sortedSubpaths(o.Subpaths)
	require.Equal(t, 60.0, sorted[0].Perimeter)
	require.Equal(t, 34.0, sorted[1].Perimeter)
	require.Equal(t, o.Subpaths[1].Points, sorted[0].Points)
}

func TestSubpathBoxIgnoresControlPoints(t *testing.T) {
	s := mustParse(t, "M0 0 C0 100 10 100 10 0").Subpaths[0]
	require.Equal(t, 0.0, s.H)
	require.Equal(t, 10.0, s.W)
}

func TestNormalizePadsSegments(t *testing.T) {
	m, err := Normalize(mustParse(t, "M0,0 Z"), mustParse(t, "M0,0 L10,0 L10,10 Z"), nil)
	require.NoError(t, err)
	require.Equal(t, Matrix{
		{{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{{0, 0, 0, 0, 10, 0, 10, 0, 10, 0, 10, 10, 10, 10, 10, 10, 0, 0, 0, 0}},
	}, m)
}

func TestNormalizeFillsSubpaths(t *testing.T) {
	left := mustParse(t, "M20 20 L22 20 M0 0 L10 0 L10 10 Z")
	right := mustParse(t, "M0 0 L10 0 L10 10 Z")

	m, err := Normalize(left, right, nil)
	require.NoError(t, err)
	require.Len(t, m[0], 2)
	require.Len(t, m[1], 2)

	// subpaths are paired longest first
	require.Equal(t, left.Subpaths[1].Points, m[0][0])
	require.Equal(t, []float64{20, 20, 20, 20, 22, 20, 22, 20}, m[0][1])
	// the missing subpath collapses to the centre of its companion
	require.Equal(t, []float64{21, 20, 21, 20, 21, 20, 21, 20}, m[1][1])

	m, err = Normalize(right, left, &Options{Origin: &Point{100, 50}, OriginAbsolute: true})
	require.NoError(t, err)
	require.Equal(t, []float64{100, 50, 100, 50, 100, 50, 100, 50}, m[0][1])

	m, err = Normalize(right, left, &Options{Origin: &Point{0, 1}})
	require.NoError(t, err)
	require.Equal(t, []float64{20, 20, 20, 20, 20, 20, 20, 20}, m[0][1])
}

func TestNormalizeLeavesOutlinesAlone(t *testing.T) {
	left := mustParse(t, "M0 0 L10 0 L10 10 L0 10 Z")
	right := mustParse(t, "M0 0 L5 0")
	before := append([]float64(nil), left.Subpaths[0].Points...)

	_, err := Normalize(left, right, &Options{Origin: &Point{1, 1}, AddPoints: 2})
	require.NoError(t, err)
	require.Equal(t, before, left.Subpaths[0].Points)
	require.Equal(t, []float64{0, 0, 0, 0, 5, 0, 5, 0}, right.Subpaths[0].Points)
}

func TestNormalizeShapesMatch(t *testing.T) {
	pairs := [][2]string{
		{"M0 0 L10 0", "M0 0 C1 1 2 2 3 3 S5 5 6 6 Q1 1 2 2 Z"},
		{"M0 0 L10 0 M5 5 L6 6 M1 1 L2 2", "M0 0 A10 10 0 1 1 20 0"},
		{"M5 5", "M0 0 L10 0 L10 10 Z"},
		{"", "M0 0 L10 10"},
		{"M0 0 H10 V10 H0 Z", "M0 0 H10 V10 H0 Z"},
	}
	for _, opts := range []*Options{nil, {AddPoints: 3}, {Origin: &Point{0.5, 0.5}}} {
		for _, p := range pairs {
			m, err := Normalize(mustParse(t, p[0]), mustParse(t, p[1]), opts)
			require.NoError(t, err, "%q %q", p[0], p[1])
			require.Equal(t, len(m[0]), len(m[1]))
			for i := range m[0] {
				require.Equal(t, len(m[0][i]), len(m[1][i]), "%q %q subpath %d", p[0], p[1], i)
				require.Zero(t, (len(m[0][i])-2)%6)
			}
		}
	}
}

func TestNormalizeWithoutPadding(t *testing.T) {
	opts := &Options{PadStrategy: PadNone, Origin: &Point{1, 1}}

	_, err := Normalize(mustParse(t, "M0 0 L10 0"), mustParse(t, "M0 0 L10 0 L20 0"), opts)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Normalize(mustParse(t, "M0 0 L10 0"), mustParse(t, "M0 0 L10 0 M5 5 L6 6"), opts)
	require.ErrorIs(t, err, ErrShapeMismatch)

	// matching shapes keep their start points
	square := mustParse(t, "M0 0 L10 0 L10 10 L0 10 Z")
	m, err := Normalize(square, square, opts)
	require.NoError(t, err)
	require.Equal(t, square.Subpaths[0].Points, m[0][0])
}

func TestRotatePoints(t *testing.T) {
	square := mustParse(t, "M0 0 L10 0 L10 10 L0 10 Z").Subpaths[0].Points

	require.Equal(t, []float64{
		10, 10,
		10, 10, 0, 10, 0, 10,
		0, 10, 0, 0, 0, 0,
		0, 0, 10, 0, 10, 0,
		10, 0, 10, 10, 10, 10,
	}, rotatePoints(10, 10, square))

	require.Equal(t, square, rotatePoints(-1, -1, square))

	open := mustParse(t, "M0 0 L10 0 L10 10").Subpaths[0].Points
	require.Equal(t, open, rotatePoints(10, 10, open))
}

func TestPadSubpathSpreadsEvenly(t *testing.T) {
	line := mustParse(t, "M0 0 L10 0 L20 0").Subpaths[0].Points

	require.Equal(t, []float64{
		0, 0,
		0, 0, 10, 0, 10, 0,
		10, 0, 10, 0, 10, 0,
		10, 0, 20, 0, 20, 0,
		20, 0, 20, 0, 20, 0,
		20, 0, 20, 0, 20, 0,
	}, padSubpath(line, len(line)+3*6))

	require.Equal(t, line, padSubpath(line, len(line)))
	require.Equal(t, []float64{4, 2, 4, 2, 4, 2, 4, 2}, padSubpath([]float64{4, 2}, 8))
}

func TestNormalizeRejectsNegativeAddPoints(t *testing.T) {
	left, right := mustParse(t, "M0 0 L1 0 L2 0"), mustParse(t, "M0 0 L1 0")
	_, err := Normalize(left, right, &Options{AddPoints: -1})
	require.ErrorIs(t, err, ErrInvalidArguments)

	_, err = Morph([]string{"M0 0 L1 0 L2 0", "M0 0 L1 0"}, &Options{AddPoints: -1})
	require.ErrorIs(t, err, ErrInvalidArguments)
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in   string
		want Point
	}{
		{"1,2", Point{1, 2}},
		{"1, 2", Point{1, 2}},
		{"0.5 .5", Point{0.5, 0.5}},
		{".5.5", Point{0.5, 0.5}},
		{"5-3", Point{5, -3}},
		{"1E1,2", Point{10, 2}},
	}
	for _, test := range tests {
		p, err := ParsePoint(test.in)
		require.NoError(t, err, test.in)
		require.Equal(t, test.want, p, test.in)
	}
	for _, in := range []string{"", "1", "1,2,3", "a,b", "1,2x"} {
		_, err := ParsePoint(in)
		require.ErrorIs(t, err, ErrInvalidArguments, in)
	}
}

func TestParsePadStrategy(t *testing.T) {
	for in, want := range map[string]PadStrategy{"": PadFill, "fill": PadFill, " None ": PadNone} {
		got, err := ParsePadStrategy(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParsePadStrategy("diagonal")
	require.ErrorIs(t, err, ErrInvalidArguments)
	require.Equal(t, "none", PadNone.String())
}
