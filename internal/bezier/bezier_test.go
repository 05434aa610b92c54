package bezier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/tphakala/go-hair-strands/internal/geom"
	"github.com/tphakala/go-hair-strands/internal/testutil"
)

var testPolygons = map[string][]geom.Point{
	"line": {{X: -0.5, Y: 0.2}, {X: 0.5, Y: -0.3}},
	"quadratic": {
		{X: 0, Y: 0}, {X: 0.5, Y: 1}, {X: 1, Y: 0},
	},
	"cubic hair": {
		{X: 0.4, Y: 0}, {X: 0.43, Y: -0.25}, {X: 0.43, Y: -0.5}, {X: 0.43, Y: -0.75},
	},
	"quintic": {
		{X: -1, Y: -1}, {X: -0.6, Y: 0.9}, {X: -0.1, Y: -0.7},
		{X: 0.2, Y: 0.8}, {X: 0.7, Y: -0.2}, {X: 1, Y: 1},
	},
}

// TestEvaluate_Endpoints checks exact endpoint interpolation.
func TestEvaluate_Endpoints(t *testing.T) {
	for name, ctrl := range testPolygons {
		t.Run(name, func(t *testing.T) {
			n := len(ctrl) - 1
			assert.Equal(t, ctrl[0], Evaluate(0, ctrl))
			assert.Equal(t, ctrl[n], Evaluate(1, ctrl))
		})
	}
}

// TestBasis_PartitionOfUnity tests Σ C(n,i)(1-t)^(n-i)t^i = 1.
func TestBasis_PartitionOfUnity(t *testing.T) {
	for n := 0; n <= MaxDegree; n++ {
		w := make([]float64, n+1)
		for _, tt := range floats.Span(make([]float64, 51), 0, 1) {
			Basis(w, tt, n)
			assert.InDelta(t, 1.0, floats.Sum(w), 1e-12, "degree %d, t=%v", n, tt)
		}
	}
}

// TestBasis_MatchesFormula compares against the textbook expression.
func TestBasis_MatchesFormula(t *testing.T) {
	const n = 3
	w := make([]float64, n+1)
	for _, tt := range []float64{0, 0.1, 0.25, 1.0 / 3, 0.5, 0.9, 1} {
		Basis(w, tt, n)
		for i := 0; i <= n; i++ {
			want := float64(combin.Binomial(n, i)) * math.Pow(1-tt, float64(n-i)) * math.Pow(tt, float64(i))
			assert.InDelta(t, want, w[i], 1e-15, "t=%v i=%d", tt, i)
		}
	}
}

// TestBasis_OneHotAtEnds checks weights are exactly one-hot at t=0 and t=1.
func TestBasis_OneHotAtEnds(t *testing.T) {
	w := Basis(make([]float64, 4), 0, 3)
	assert.Equal(t, []float64{1, 0, 0, 0}, w)

	w = Basis(make([]float64, 4), 1, 3)
	assert.Equal(t, []float64{0, 0, 0, 1}, w)
}

// TestEvaluate_StraightCubic checks the hand-computable case x(t) = t³.
func TestEvaluate_StraightCubic(t *testing.T) {
	ctrl := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}

	tests := []struct {
		t, x float64
	}{
		{0, 0},
		{1.0 / 3, 1.0 / 27},
		{2.0 / 3, 8.0 / 27},
		{1, 1},
	}
	for _, tt := range tests {
		p := Evaluate(tt.t, ctrl)
		assert.InDelta(t, tt.x, p.X, 1e-15, "t=%v", tt.t)
		assert.Equal(t, 0.0, p.Y)
	}
}

// TestEvaluate_Continuity checks small parameter steps give small moves.
func TestEvaluate_Continuity(t *testing.T) {
	ctrl := testPolygons["quintic"]
	const step = 1e-6
	for tt := step; tt <= 1; tt += 1e-3 {
		p := Evaluate(tt, ctrl)
		q := Evaluate(tt-step, ctrl)
		assert.Less(t, math.Hypot(p.X-q.X, p.Y-q.Y), 1e-4, "jump at t=%v", tt)
	}
}

// TestEvaluate_Degree1IsLerp tests a two-point polygon is linear interpolation.
func TestEvaluate_Degree1IsLerp(t *testing.T) {
	a, b := geom.Point{X: -1, Y: 2}, geom.Point{X: 3, Y: -2}
	for _, tt := range []float64{0, 0.2, 0.5, 0.75, 1} {
		p := Evaluate(tt, []geom.Point{a, b})
		assert.InDelta(t, a.X+(b.X-a.X)*tt, p.X, 1e-15)
		assert.InDelta(t, a.Y+(b.Y-a.Y)*tt, p.Y, 1e-15)
	}
}

func TestEvaluate_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Evaluate(0.5, nil) })
}

func TestCheckDegree(t *testing.T) {
	require.NoError(t, CheckDegree(2))
	require.NoError(t, CheckDegree(MaxDegree+1))
	assert.ErrorIs(t, CheckDegree(1), ErrDegree)
	assert.ErrorIs(t, CheckDegree(0), ErrDegree)
	assert.ErrorIs(t, CheckDegree(MaxDegree+2), ErrDegree)
}

func TestSplit(t *testing.T) {
	xs, ys := Split(testPolygons["quadratic"])
	assert.Equal(t, []float64{0, 0.5, 1}, xs)
	assert.Equal(t, []float64{0, 1, 0}, ys)
}

// TestEvaluate_SamplesStayInHull checks the convex-hull property on the
// bounding box of the control polygon.
func TestEvaluate_SamplesStayInHull(t *testing.T) {
	for name, ctrl := range testPolygons {
		xs, ys := Split(ctrl)
		px := make([]float64, 0, 101)
		py := make([]float64, 0, 101)
		for _, tt := range floats.Span(make([]float64, 101), 0, 1) {
			p := Evaluate(tt, ctrl)
			px = append(px, p.X)
			py = append(py, p.Y)
		}
		testutil.AssertAllInRange(t, px, floats.Min(xs)-1e-12, floats.Max(xs)+1e-12, name)
		testutil.AssertAllInRange(t, py, floats.Min(ys)-1e-12, floats.Max(ys)+1e-12, name)
	}
}

// BenchmarkEvaluate_Cubic benchmarks one-off evaluation.
func BenchmarkEvaluate_Cubic(b *testing.B) {
	ctrl := testPolygons["cubic hair"]
	for b.Loop() {
		_ = Evaluate(0.37, ctrl)
	}
}
