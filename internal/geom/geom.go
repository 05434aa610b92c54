// Package geom holds the small value types shared by the strand packages.
package geom

import "math"

// Point is a 2D coordinate. Depending on context it lives in normalized
// device coordinates or in a logical (pixel) space.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// IsFinite reports whether both coordinates are neither NaN nor Inf.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Color is an RGB triple. Displayable channels are in [0, 1].
type Color struct {
	R, G, B float64
}

// Clamp returns c with every channel clamped to [0, 1]. NaN maps to 0.
func (c Color) Clamp() Color {
	return Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B)}
}

// InRange reports whether every channel is within [0, 1].
func (c Color) InRange() bool {
	return in01(c.R) && in01(c.G) && in01(c.B)
}

// RGB8 converts c to 8-bit channels after clamping.
func (c Color) RGB8() (r, g, b uint8) {
	cc := c.Clamp()
	return to8(cc.R), to8(cc.G), to8(cc.B)
}

// Clamp01 clamps v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

const maxChannel8 = 255

func to8(v float64) uint8 {
	return uint8(math.Round(v * maxChannel8))
}

func in01(v float64) bool {
	return v >= 0 && v <= 1
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
