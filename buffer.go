package strands

import (
	"github.com/tphakala/go-hair-strands/internal/simdops"
)

// SampleBuffer holds the samples of one strand in planar form. X and Y
// always have the same length.
type SampleBuffer struct {
	X []float64
	Y []float64
}

// NewSampleBuffer allocates a buffer of n samples.
func NewSampleBuffer(n int) SampleBuffer {
	backing := make([]float64, 2*n)
	return SampleBuffer{X: backing[:n:n], Y: backing[n:]}
}

// Len returns the number of samples.
func (b SampleBuffer) Len() int { return len(b.X) }

// At returns sample i.
func (b SampleBuffer) At(i int) Point {
	return Point{X: b.X[i], Y: b.Y[i]}
}

// Points returns the samples as a new slice of points.
func (b SampleBuffer) Points() []Point {
	pts := make([]Point, len(b.X))
	for i := range pts {
		pts[i] = b.At(i)
	}
	return pts
}

// Clone returns a deep copy.
func (b SampleBuffer) Clone() SampleBuffer {
	c := NewSampleBuffer(b.Len())
	copy(c.X, b.X)
	copy(c.Y, b.Y)
	return c
}

// Interleave appends the samples to dst as x0, y0, x1, y1, ... and returns
// the extended slice.
func (b SampleBuffer) Interleave(dst []float64) []float64 {
	n := len(b.X)
	dst = grow(dst, coordsPerVertex*n)
	simdops.Float64Ops().Interleave2(dst[len(dst)-coordsPerVertex*n:], b.X, b.Y)
	return dst
}

// Float32 appends the samples to dst as interleaved float32 x, y pairs, the
// layout of a typical line-strip vertex buffer, and returns the extended
// slice.
func (b SampleBuffer) Float32(dst []float32) []float32 {
	n := len(b.X)
	dst = grow(dst, coordsPerVertex*n)
	out := dst[len(dst)-coordsPerVertex*n:]
	for i := range n {
		out[2*i] = float32(b.X[i])
		out[2*i+1] = float32(b.Y[i])
	}
	return dst
}

// ensure returns b resized to n samples, reusing its storage when possible.
func (b SampleBuffer) ensure(n int) SampleBuffer {
	if cap(b.X) >= n && cap(b.Y) >= n {
		return SampleBuffer{X: b.X[:n], Y: b.Y[:n]}
	}
	return NewSampleBuffer(n)
}

// grow extends s by n elements.
func grow[F simdops.Float](s []F, n int) []F {
	if need := len(s) + n; need <= cap(s) {
		return s[:need]
	}
	out := make([]F, len(s)+n)
	copy(out, s)
	return out
}

// StrandFrame is one strand of a rendered frame.
type StrandFrame struct {
	// Index is the strand index in [0, N).
	Index int

	// Color is the strand colour, clamped to [0, 1].
	Color Color

	// Samples are the perturbed curve samples in NDC. They may fall
	// outside [-1, 1]; renderers clip them.
	Samples SampleBuffer
}

// PackFloat32 appends every strand of a frame to dst as interleaved float32
// vertices, strand after strand, so a whole frame fits one vertex buffer.
// Strand j occupies vertices [j·S, (j+1)·S).
func PackFloat32(dst []float32, frame []StrandFrame) []float32 {
	total := 0
	longest := 0
	for i := range frame {
		n := frame[i].Samples.Len()
		total += n
		longest = max(longest, n)
	}

	// Planar float32 scratch shared by every strand, then one SIMD
	// interleave per strand.
	ops := simdops.Float32Ops()
	xs := make([]float32, longest)
	ys := make([]float32, longest)

	dst = grow(dst, coordsPerVertex*total)
	out := dst[len(dst)-coordsPerVertex*total:]
	for i := range frame {
		s := frame[i].Samples
		n := s.Len()
		for k := range n {
			xs[k] = float32(s.X[k])
			ys[k] = float32(s.Y[k])
		}
		ops.Interleave2(out[:coordsPerVertex*n], xs[:n], ys[:n])
		out = out[coordsPerVertex*n:]
	}
	return dst
}
