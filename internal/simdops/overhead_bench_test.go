package simdops

import (
	"testing"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// cubicWidth is the weight-vector length of a cubic Bezier curve.
const cubicWidth = 4

// BenchmarkDirectF64DotProduct measures direct SIMD call overhead at
// cubic-curve width, the size evaluated once per sample per axis.
func BenchmarkDirectF64DotProduct(b *testing.B) {
	a := []float64{0.125, 0.375, 0.375, 0.125}
	c := make([]float64, cubicWidth)
	for i := range c {
		c[i] = float64(i) * 0.25
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = f64.DotProductUnsafe(a, c)
	}
}

// BenchmarkIndirectF64DotProduct measures indirect call through Ops struct.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	ops := For[float64]()
	a := []float64{0.125, 0.375, 0.375, 0.125}
	c := make([]float64, cubicWidth)
	for i := range c {
		c[i] = float64(i) * 0.25
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}

// BenchmarkScalarF64DotProduct is the plain loop baseline.
func BenchmarkScalarF64DotProduct(b *testing.B) {
	a := []float64{0.125, 0.375, 0.375, 0.125}
	c := make([]float64, cubicWidth)
	for i := range c {
		c[i] = float64(i) * 0.25
	}

	b.ReportAllocs()
	for b.Loop() {
		var sum float64
		for i := range a {
			sum += a[i] * c[i]
		}
		_ = sum
	}
}

// BenchmarkDirectF32Interleave2 measures vertex interleaving for one strand.
func BenchmarkDirectF32Interleave2(b *testing.B) {
	const samples = 100
	xs := make([]float32, samples)
	ys := make([]float32, samples)
	dst := make([]float32, 2*samples)

	b.ReportAllocs()
	for b.Loop() {
		f32.Interleave2(dst, xs, ys)
	}
}

// BenchmarkIndirectF32Interleave2 measures the same through the Ops table.
func BenchmarkIndirectF32Interleave2(b *testing.B) {
	const samples = 100
	ops := For[float32]()
	xs := make([]float32, samples)
	ys := make([]float32, samples)
	dst := make([]float32, 2*samples)

	b.ReportAllocs()
	for b.Loop() {
		ops.Interleave2(dst, xs, ys)
	}
}
