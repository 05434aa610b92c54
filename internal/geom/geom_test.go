package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 1, Y: 2}
	q := Point{X: 0.5, Y: -1}

	assert.Equal(t, Point{X: 1.5, Y: 1}, p.Add(q))
	assert.Equal(t, Point{X: 0.5, Y: 3}, p.Sub(q))
	assert.Equal(t, Point{X: 2, Y: 4}, p.Scale(2))
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Point{X: 1, Y: -1}.IsFinite())
	assert.False(t, Point{X: math.NaN()}.IsFinite())
	assert.False(t, Point{Y: math.Inf(-1)}.IsFinite())
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{7, 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Clamp01(tt.in), 0, "Clamp01(%v)", tt.in)
	}
}

func TestColorClamp(t *testing.T) {
	c := Color{R: 1.2, G: math.NaN(), B: 0.4}
	assert.False(t, c.InRange())

	got := c.Clamp()
	assert.Equal(t, Color{R: 1, G: 0, B: 0.4}, got)
	assert.True(t, got.InRange())
}

func TestColorRGB8(t *testing.T) {
	r, g, b := Color{R: 1, G: 0.5, B: -2}.RGB8()
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(128), g)
	assert.Equal(t, uint8(0), b)
}
