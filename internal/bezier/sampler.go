package bezier

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-hair-strands/internal/simdops"
)

// minSamples is the smallest sample count that still covers both endpoints.
const minSamples = 2

// ErrSamples indicates a sample count too small to cover both endpoints.
var ErrSamples = errors.New("invalid sample count")

// Sampler evaluates curves of one fixed degree at a fixed set of sample
// parameters t_i = i/(S-1). The Bernstein weights for every t_i are
// computed once, so sampling a curve costs two short dot products per
// sample. A Sampler is read-only after construction and safe for
// concurrent use.
type Sampler struct {
	degree int
	params []float64
	basis  [][]float64
	ops    *simdops.Ops64
}

// NewSampler creates a sampler for curves of the given degree evaluated at
// samples evenly spaced parameters in [0, 1].
func NewSampler(degree, samples int) (*Sampler, error) {
	if err := CheckDegree(degree + 1); err != nil {
		return nil, err
	}
	if samples < minSamples {
		return nil, fmt.Errorf("%w: sample count %d below %d", ErrSamples, samples, minSamples)
	}

	params := floats.Span(make([]float64, samples), 0, 1)
	// Span computes l + step·i, which can land one ulp short of u.
	params[samples-1] = 1

	// One contiguous backing array keeps the table cache friendly.
	width := degree + 1
	backing := make([]float64, samples*width)
	basis := make([][]float64, samples)
	for i, t := range params {
		basis[i] = Basis(backing[i*width:(i+1)*width], t, degree)
	}

	return &Sampler{
		degree: degree,
		params: params,
		basis:  basis,
		ops:    simdops.Float64Ops(),
	}, nil
}

// Degree returns the curve degree.
func (s *Sampler) Degree() int { return s.degree }

// Samples returns the number of sample parameters.
func (s *Sampler) Samples() int { return len(s.params) }

// Params returns the sample parameters. The slice must not be modified.
func (s *Sampler) Params() []float64 { return s.params }

// SampleUnsafe evaluates the curve with planar control coordinates cx, cy
// at every sample parameter, writing into dstX and dstY. There are no
// length checks: callers must size cx and cy to Degree()+1 and dstX and
// dstY to at least Samples().
func (s *Sampler) SampleUnsafe(dstX, dstY, cx, cy []float64) {
	for i, w := range s.basis {
		dstX[i] = s.ops.DotProductUnsafe(w, cx)
		dstY[i] = s.ops.DotProductUnsafe(w, cy)
	}
}
