package strands

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-hair-strands/internal/bezier"
	"github.com/tphakala/go-hair-strands/internal/geom"
	"github.com/tphakala/go-hair-strands/internal/strand"
	"github.com/tphakala/go-hair-strands/internal/wind"
)

// Point is a 2D position. Animator output is in normalized device
// coordinates.
type Point = geom.Point

// Color is a linear RGB colour with channels in [0, 1].
type Color = geom.Color

// Space describes the coordinate space template points are authored in.
type Space = bezier.Space

// WindParams holds the wind constants.
type WindParams = wind.Params

// StrandConfig holds the per-strand geometric variation constants.
type StrandConfig = strand.Config

// ColorConfig holds the per-strand colour variation constants.
type ColorConfig = strand.ColorConfig

// Modifiers are the derived per-strand parameters.
type Modifiers = strand.Modifiers

// MaxDegree is the highest supported curve degree.
const MaxDegree = bezier.MaxDegree

// Layout selects how per-strand control polygons are built.
type Layout int

const (
	// LayoutTemplate shares one template polygon between all strands.
	// Each strand scales it about the root by its scale modifier and
	// shifts it sideways by its offset.
	LayoutTemplate Layout = iota

	// LayoutCircle anchors strand j on a circle at angle 2π·j/N and lets
	// the remaining control points fall downward from the anchor.
	LayoutCircle
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutTemplate:
		return "template"
	case LayoutCircle:
		return "circle"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// CircleSpec configures LayoutCircle.
type CircleSpec struct {
	// Center of the anchor circle in NDC.
	Center Point

	// Radius of the anchor circle.
	Radius float64

	// Degree of every strand curve. Strands have Degree+1 control points.
	Degree int

	// Drop is the downward step between consecutive control points.
	Drop float64

	// Curl bends the non-root control points sideways by
	// Curl·sin(angle + CurlPhase).
	Curl      float64
	CurlPhase float64
}

// Config holds the animator configuration. It is fixed at construction.
type Config struct {
	// Strands is the number of strands N.
	Strands int

	// Samples is the per-strand resolution S. Both curve endpoints are
	// always sampled, so S must be at least 2.
	Samples int

	// Layout selects how control polygons are built.
	Layout Layout

	// Template is the shared control polygon for LayoutTemplate. The first
	// point is the root. Ignored by LayoutCircle.
	Template []Point

	// Space is the coordinate space Template is authored in. The zero value
	// means NDC.
	Space Space

	// Circle configures LayoutCircle.
	Circle CircleSpec

	// Wind configures the time-varying sway.
	Wind WindParams

	// Strand configures per-strand offset, scale and wind phase.
	Strand StrandConfig

	// Color configures per-strand colour.
	Color ColorConfig

	// EnableParallel splits the strands of a frame across goroutines.
	// The output is identical to the sequential path.
	// Has no effect on a single strand.
	EnableParallel bool
}

// Preset enumerates predefined configurations.
type Preset int

const (
	// PresetCircle is a head of 120 cubic strands hanging from a circle,
	// swaying in a steady breeze with a leftward drift.
	PresetCircle Preset = iota

	// PresetFringe fans one template curve, authored in an 800×600 pixel
	// space, into a fringe that shrinks and darkens toward the back.
	PresetFringe

	// PresetCalm is PresetCircle with half the oscillation and no drift.
	PresetCalm

	// PresetGusty is PresetCircle with the drift modulated by noise gusts.
	PresetGusty

	// PresetCustom indicates a manually built configuration. It has no
	// name accepted by ParsePreset; GetPresetConfig returns the circle
	// config as a starting point to modify.
	PresetCustom
)

// String returns the preset name.
func (p Preset) String() string {
	switch p {
	case PresetCircle:
		return "circle"
	case PresetFringe:
		return "fringe"
	case PresetCalm:
		return "calm"
	case PresetGusty:
		return "gusty"
	case PresetCustom:
		return "custom"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// ParsePreset returns the named preset. Only the built-in presets have
// names; "custom" is rejected because it describes no configuration.
func ParsePreset(name string) (Preset, error) {
	for p := PresetCircle; p < PresetCustom; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return PresetCustom, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
}

// Common errors returned by the animator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid strand configuration")

	// ErrRenderer indicates a renderer rejected a strand.
	ErrRenderer = errors.New("renderer failed")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Strands < 1 {
		return fmt.Errorf("%w: strands must be at least 1", ErrInvalidConfig)
	}

	if c.Strands > maxStrands {
		return fmt.Errorf("%w: too many strands (max %d)", ErrInvalidConfig, maxStrands)
	}

	if c.Samples < minSamples || c.Samples > maxSamples {
		return fmt.Errorf("%w: samples must be %d-%d", ErrInvalidConfig, minSamples, maxSamples)
	}

	switch c.Layout {
	case LayoutTemplate:
		if err := c.validateTemplate(); err != nil {
			return err
		}
	case LayoutCircle:
		if err := c.Circle.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown layout %v", ErrInvalidConfig, c.Layout)
	}

	if err := c.Wind.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := c.Strand.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := c.Color.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func (c *Config) validateTemplate() error {
	if err := bezier.CheckDegree(len(c.Template)); err != nil {
		return fmt.Errorf("%w: template: %w", ErrInvalidConfig, err)
	}

	for i, p := range c.Template {
		if !p.IsFinite() {
			return fmt.Errorf("%w: template point %d is not finite", ErrInvalidConfig, i)
		}
	}

	if err := c.Space.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Validate checks the circle geometry.
func (s *CircleSpec) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: circle center is not finite", ErrInvalidConfig)
	}

	for _, v := range []float64{s.Radius, s.Drop, s.Curl, s.CurlPhase} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: circle geometry must be finite", ErrInvalidConfig)
		}
	}

	if s.Radius < 0 {
		return fmt.Errorf("%w: circle radius must be non-negative", ErrInvalidConfig)
	}

	if s.Degree < 1 || s.Degree > MaxDegree {
		return fmt.Errorf("%w: circle degree must be 1-%d", ErrInvalidConfig, MaxDegree)
	}

	return nil
}

// degree returns the curve degree of every strand.
func (c *Config) degree() int {
	if c.Layout == LayoutCircle {
		return c.Circle.Degree
	}
	return len(c.Template) - 1
}

// GetPresetConfig returns the configuration for a preset.
// The returned Template is a fresh slice owned by the caller.
func GetPresetConfig(preset Preset) Config {
	switch preset {
	case PresetFringe:
		return Config{
			Strands: fringeStrands,
			Samples: DefaultSamples,
			Layout:  LayoutTemplate,
			Template: []Point{
				{X: 400, Y: 140},
				{X: 430, Y: 260},
				{X: 360, Y: 380},
				{X: 410, Y: 520},
			},
			Space: Space{Width: fringeWidth, Height: fringeHeight, FlipY: true},
			Wind:  headWind(),
			Strand: StrandConfig{
				ScaleFalloff: fringeScaleFalloff,
				Spread:       fringeSpread,
				PhaseSpan:    phaseSpan,
			},
			Color: ColorConfig{
				Base:           Color{R: blondR, G: blondG, B: blondB},
				Variation:      colorVariation,
				VariationRate:  colorVariationRate,
				Weights:        Color{R: 1, G: colorWeightG, B: colorWeightB},
				DepthDarkening: depthDarkening,
			},
		}

	case PresetCalm:
		c := circleConfig()
		c.Wind.AmplitudeX *= calmAmplitudeScale
		c.Wind.AmplitudeY *= calmAmplitudeScale
		c.Wind.DriftX = 0
		c.Wind.DriftY = 0
		return c

	case PresetGusty:
		c := circleConfig()
		c.Wind.GustStrength = gustStrength
		c.Wind.GustRate = gustRate
		c.Wind.Seed = gustSeed
		return c

	default:
		return circleConfig()
	}
}

// circleConfig is the head: strands hanging from a circle in a breeze.
func circleConfig() Config {
	return Config{
		Strands: DefaultStrands,
		Samples: DefaultSamples,
		Layout:  LayoutCircle,
		Circle: CircleSpec{
			Radius:    headRadius,
			Degree:    headDegree,
			Drop:      headDrop,
			Curl:      headCurl,
			CurlPhase: headCurlPhase,
		},
		Wind: headWind(),
		Strand: StrandConfig{
			PhaseSpan: phaseSpan,
		},
		Color: ColorConfig{
			Base:           Color{R: brownR, G: brownG, B: brownB},
			Variation:      colorVariation,
			VariationRate:  colorVariationRate,
			Weights:        Color{R: 1, G: colorWeightG, B: colorWeightB},
			DepthDarkening: depthDarkening,
		},
	}
}

func headWind() WindParams {
	return WindParams{
		AmplitudeX: windAmplitudeX,
		AmplitudeY: windAmplitudeY,
		Frequency:  windFrequency,
		DriftX:     windDriftX,
		Exponent:   windExponent,
	}
}

// New creates an animator with the specified configuration.
// The configuration is copied; later changes to config have no effect.
func New(config *Config) (*Animator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newAnimator(config)
}

// Info returns information about an animator.
type Info struct {
	// Layout describes how control polygons are built.
	Layout string

	// Strands is the strand count N.
	Strands int

	// Samples is the per-strand resolution S.
	Samples int

	// Degree is the curve degree of every strand.
	Degree int

	// Workers is the number of goroutines a frame is split across.
	Workers int

	// VertexBytes is the size of one frame as interleaved float32 x,y pairs.
	VertexBytes int64

	// MemoryUsage is the approximate memory held by the animator in bytes.
	MemoryUsage int64

	// Gusts reports whether the wind drift is modulated by noise.
	Gusts bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}
