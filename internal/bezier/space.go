package bezier

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-hair-strands/internal/geom"
)

// ErrSpace indicates an unusable coordinate space.
var ErrSpace = errors.New("invalid coordinate space")

// ndcSpan is the width of the [-1, 1] device range.
const ndcSpan = 2.0

// Space describes the coordinate space control points are authored in.
//
// A zero Width and Height mean the points are already in normalized
// device coordinates and Normalize is the identity. Otherwise points are in
// a logical space of the given size and are mapped with
//
//	x' = x/W·2 - 1
//	y' = y/H·2 - 1, negated when FlipY is set
//
// Pixel spaces grow Y downward while device space grows Y upward, so
// logical pixel spaces should set FlipY. The flag is never consulted for
// NDC input.
type Space struct {
	Width  float64
	Height float64
	FlipY  bool
}

// IsNDC reports whether the space is already normalized device space.
func (s Space) IsNDC() bool {
	return s.Width == 0 && s.Height == 0
}

// Validate checks that a logical space has two positive dimensions.
func (s Space) Validate() error {
	if s.IsNDC() {
		return nil
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: logical space %gx%g must have positive size", ErrSpace, s.Width, s.Height)
	}
	return nil
}

// Normalize maps p from the space into normalized device coordinates.
func (s Space) Normalize(p geom.Point) geom.Point {
	if s.IsNDC() {
		return p
	}
	x := p.X/s.Width*ndcSpan - 1
	y := p.Y/s.Height*ndcSpan - 1
	if s.FlipY {
		y = -y
	}
	return geom.Point{X: x, Y: y}
}

// NormalizeAll maps every point into a new slice.
//
// Bezier curves are affine invariant, so normalizing control points gives
// the same curve as normalizing each evaluated point.
func (s Space) NormalizeAll(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = s.Normalize(p)
	}
	return out
}
