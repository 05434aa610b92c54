package strands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleBuffer_Layout(t *testing.T) {
	b := NewSampleBuffer(3)
	require.Equal(t, 3, b.Len())
	require.Len(t, b.Y, 3)

	copy(b.X, []float64{1, 2, 3})
	copy(b.Y, []float64{4, 5, 6})

	assert.Equal(t, Point{X: 2, Y: 5}, b.At(1))
	assert.Equal(t, []Point{{X: 1, Y: 4}, {X: 2, Y: 5}, {X: 3, Y: 6}}, b.Points())
}

func TestSampleBuffer_Interleave(t *testing.T) {
	b := NewSampleBuffer(3)
	copy(b.X, []float64{1, 2, 3})
	copy(b.Y, []float64{-1, -2, -3})

	assert.Equal(t, []float64{1, -1, 2, -2, 3, -3}, b.Interleave(nil))

	// Appends after existing content.
	got := b.Interleave([]float64{9})
	assert.Equal(t, []float64{9, 1, -1, 2, -2, 3, -3}, got)
}

func TestSampleBuffer_Float32(t *testing.T) {
	b := NewSampleBuffer(2)
	copy(b.X, []float64{0.25, -1})
	copy(b.Y, []float64{0.5, 1})

	dst := make([]float32, 0, 8)
	got := b.Float32(dst)
	assert.Equal(t, []float32{0.25, 0.5, -1, 1}, got)
	assert.Same(t, &dst[:1][0], &got[0], "dst with room is reused")
}

func TestSampleBuffer_CloneIsDeep(t *testing.T) {
	b := NewSampleBuffer(2)
	b.X[0] = 1

	c := b.Clone()
	b.X[0] = 2
	assert.InDelta(t, 1.0, c.X[0], 0)
}

func TestSampleBuffer_XGrowthDoesNotClobberY(t *testing.T) {
	b := NewSampleBuffer(2)
	b.Y[0] = 7

	x := append(b.X, 1)
	x[0] = 3
	assert.InDelta(t, 7.0, b.Y[0], 0)
}

func TestSampleBuffer_Ensure(t *testing.T) {
	b := NewSampleBuffer(8)
	small := b.ensure(4)
	assert.Equal(t, 4, small.Len())
	assert.Same(t, &b.X[0], &small.X[0])

	big := small.ensure(16)
	assert.Equal(t, 16, big.Len())
	assert.Len(t, big.Y, 16)
}

func TestPackFloat32(t *testing.T) {
	a := newAnimatorT(t, straightConfig())
	frame := a.RenderFrame(0)

	vertices := PackFloat32(nil, frame)
	require.Len(t, vertices, 2*4*2)

	// Strand j occupies vertices [j·S, (j+1)·S).
	for j, s := range frame {
		for i := range s.Samples.Len() {
			v := (j*s.Samples.Len() + i) * 2
			assert.InDelta(t, s.Samples.X[i], float64(vertices[v]), 1e-7)
			assert.InDelta(t, s.Samples.Y[i], float64(vertices[v+1]), 1e-7)
		}
	}
}

func TestRenderFloat32(t *testing.T) {
	c := GetPresetConfig(PresetCalm)
	got, err := RenderFloat32(&c, 1)
	require.NoError(t, err)
	assert.Len(t, got, c.Strands*c.Samples*2)

	c.Samples = 1
	_, err = RenderFloat32(&c, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
