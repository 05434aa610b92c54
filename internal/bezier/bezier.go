// Package bezier evaluates Bezier curves of arbitrary degree in explicit
// Bernstein form and samples them at a fixed set of parameters.
package bezier

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-hair-strands/internal/geom"
	"github.com/tphakala/go-hair-strands/internal/mathutil"
)

// MaxDegree is the highest curve degree accepted by the sampler.
// Bernstein weights of this degree are exact binomials (see
// mathutil.MaxExactBinomialDegree) and keep per-sample cost small.
const MaxDegree = 32

// ErrDegree indicates a control polygon whose size the sampler cannot use.
var ErrDegree = errors.New("invalid curve degree")

// Basis writes the Bernstein weights C(n,i)·(1-t)^(n-i)·t^i for i = 0..n
// into dst[:n+1] and returns that slice.
//
// Powers are built by repeated multiplication rather than math.Pow so the
// weights at t=0 and t=1 are exactly one-hot.
func Basis(dst []float64, t float64, degree int) []float64 {
	w := mathutil.BinomialRowInto(dst, degree)

	// w[i] *= t^i, walking up
	tp := 1.0
	for i := 0; i <= degree; i++ {
		w[i] *= tp
		tp *= t
	}

	// w[i] *= (1-t)^(n-i), walking down
	u := 1 - t
	up := 1.0
	for i := degree; i >= 0; i-- {
		w[i] *= up
		up *= u
	}
	return w
}

// Evaluate returns the point at parameter t on the curve defined by ctrl.
// The curve degree is len(ctrl)-1. Evaluate(0, P) == P[0] and
// Evaluate(1, P) == P[n] exactly.
//
// Evaluate panics on an empty polygon.
func Evaluate(t float64, ctrl []geom.Point) geom.Point {
	if len(ctrl) == 0 {
		panic("bezier: empty control polygon")
	}
	n := len(ctrl) - 1
	w := Basis(make([]float64, n+1), t, n)

	var p geom.Point
	for i, c := range ctrl {
		p.X += w[i] * c.X
		p.Y += w[i] * c.Y
	}
	return p
}

// Split separates a control polygon into planar coordinate slices.
func Split(ctrl []geom.Point) (xs, ys []float64) {
	xs = make([]float64, len(ctrl))
	ys = make([]float64, len(ctrl))
	for i, c := range ctrl {
		xs[i] = c.X
		ys[i] = c.Y
	}
	return xs, ys
}

// CheckDegree validates a control polygon length.
func CheckDegree(points int) error {
	if points < 2 {
		return fmt.Errorf("%w: need at least 2 control points, have %d", ErrDegree, points)
	}
	if points-1 > MaxDegree {
		return fmt.Errorf("%w: degree %d exceeds maximum %d", ErrDegree, points-1, MaxDegree)
	}
	return nil
}
