// Package strand derives the per-strand variation of a hair bundle.
//
// Every value is a pure function of the strand index, the strand count and
// the configuration, so a plain loop over the indices produces a varied but
// reproducible bundle. Nothing here depends on time.
package strand

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-hair-strands/internal/geom"
)

// ErrInvalidConfig indicates unusable strand or colour constants.
var ErrInvalidConfig = errors.New("invalid strand configuration")

// Config holds the geometric variation constants.
type Config struct {
	// ScaleFalloff shrinks strands toward the back: scale = 1 - depth·ScaleFalloff.
	ScaleFalloff float64

	// Spread fans root positions: offsetX = (depth - 0.5)·Spread.
	Spread float64

	// PhaseSpan staggers the wind: phase = depth·PhaseSpan, in seconds of
	// wind time.
	PhaseSpan float64
}

// ColorConfig holds the colour variation constants.
type ColorConfig struct {
	// Base is the unshaded strand colour.
	Base geom.Color

	// Variation is the amplitude of the per-strand oscillation
	// v = Variation·sin(index·VariationRate).
	Variation     float64
	VariationRate float64

	// Weights scales v per channel before it is added to Base.
	Weights geom.Color

	// Bands > 0 adds BandStep·(index mod Bands) to every channel, giving
	// discrete tonal stripes.
	Bands    int
	BandStep float64

	// DepthDarkening multiplies every channel by 1 - depth·DepthDarkening.
	DepthDarkening float64
}

// Validate checks the geometric constants.
func (c *Config) Validate() error {
	if !finite(c.ScaleFalloff, c.Spread, c.PhaseSpan) {
		return fmt.Errorf("%w: scale falloff, spread and phase span must be finite", ErrInvalidConfig)
	}
	// depth < 1, so a falloff up to 1 keeps every scale positive.
	if c.ScaleFalloff < 0 || c.ScaleFalloff > 1 {
		return fmt.Errorf("%w: scale falloff %g outside [0, 1]", ErrInvalidConfig, c.ScaleFalloff)
	}
	return nil
}

// Validate checks the colour constants.
func (c *ColorConfig) Validate() error {
	if !c.Base.InRange() {
		return fmt.Errorf("%w: base colour %+v outside [0, 1]", ErrInvalidConfig, c.Base)
	}
	if !finite(c.Variation, c.VariationRate, c.BandStep, c.DepthDarkening,
		c.Weights.R, c.Weights.G, c.Weights.B) {
		return fmt.Errorf("%w: colour constants must be finite", ErrInvalidConfig)
	}
	if c.Bands < 0 {
		return fmt.Errorf("%w: band count %d is negative", ErrInvalidConfig, c.Bands)
	}
	return nil
}

// Modifiers is the derived variation of one strand.
type Modifiers struct {
	Index   int
	Depth   float64 // index/count, in [0, 1)
	Scale   float64
	OffsetX float64
	Phase   float64
	Angle   float64 // 2π·index/count, the anchor angle for radial layouts
	Color   geom.Color
}

// Parameterizer derives Modifiers from a strand index. It is a value type
// with no hidden state.
type Parameterizer struct {
	Strand Config
	Color  ColorConfig
}

// Parameters returns the modifiers of strand index out of count.
//
// It panics if count is not positive or index is outside [0, count);
// callers validate both at construction time.
func (p Parameterizer) Parameters(index, count int) Modifiers {
	if count <= 0 || index < 0 || index >= count {
		panic(fmt.Sprintf("strand: index %d out of range for %d strands", index, count))
	}

	depth := float64(index) / float64(count)
	return Modifiers{
		Index:   index,
		Depth:   depth,
		Scale:   1 - depth*p.Strand.ScaleFalloff,
		OffsetX: (depth - 0.5) * p.Strand.Spread,
		Phase:   depth * p.Strand.PhaseSpan,
		Angle:   2 * math.Pi * float64(index) / float64(count),
		Color:   p.color(index, depth),
	}
}

// All returns the modifiers of every strand in index order.
func (p Parameterizer) All(count int) []Modifiers {
	mods := make([]Modifiers, count)
	for i := range mods {
		mods[i] = p.Parameters(i, count)
	}
	return mods
}

// color shades the base colour for one strand. The raw arithmetic can leave
// [0, 1] for large variations or negative darkening, so the result is
// always clamped.
func (p Parameterizer) color(index int, depth float64) geom.Color {
	c := p.Color
	v := c.Variation * math.Sin(float64(index)*c.VariationRate)

	var band float64
	if c.Bands > 0 {
		band = c.BandStep * float64(index%c.Bands)
	}

	shade := 1 - depth*c.DepthDarkening
	raw := geom.Color{
		R: (c.Base.R + v*c.Weights.R + band) * shade,
		G: (c.Base.G + v*c.Weights.G + band) * shade,
		B: (c.Base.B + v*c.Weights.B + band) * shade,
	}
	return raw.Clamp()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
