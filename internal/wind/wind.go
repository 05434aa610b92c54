// Package wind models the time-varying sway applied to strand samples.
//
// The offset grows toward the free end of a strand with factor t^e, so the
// root never moves and the tip swings the most:
//
//	Δx = t^e · (ampX·sin(freq·time) + driftX·g(time))
//	Δy = t^e · (ampY·cos(freq·time) + driftY·g(time))
//
// g is the gust envelope. With GustStrength s it is 1 - s + s·noise(time),
// where noise is seeded OpenSimplex noise in [0, 1]; s = 0 gives g = 1.
// Because |sin|, |cos|, g and t^e are all at most 1 on t ∈ [0, 1], the
// offset is bounded by (ampX + |driftX|)·t^e and (ampY + |driftY|)·t^e.
package wind

import (
	"errors"
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/tphakala/go-hair-strands/internal/geom"
)

// ErrInvalidParams indicates an unusable wind configuration.
var ErrInvalidParams = errors.New("invalid wind parameters")

// Params holds the wind constants.
type Params struct {
	// AmplitudeX and AmplitudeY are the peak oscillation offsets at the tip.
	AmplitudeX float64
	AmplitudeY float64

	// Frequency is the angular oscillation rate in radians per second.
	Frequency float64

	// DriftX and DriftY are the steady push at the tip.
	DriftX float64
	DriftY float64

	// Exponent shapes the falloff toward the root. Values above 2 give a
	// slow start and a sharp tip sway.
	Exponent float64

	// GustStrength in [0, 1] modulates the drift with noise. 0 disables gusts.
	GustStrength float64

	// GustRate scales time before sampling the gust noise.
	GustRate float64

	// Seed selects the gust noise field.
	Seed int64
}

// Validate checks the parameters.
func (p *Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"amplitude x", p.AmplitudeX},
		{"amplitude y", p.AmplitudeY},
		{"frequency", p.Frequency},
		{"drift x", p.DriftX},
		{"drift y", p.DriftY},
		{"exponent", p.Exponent},
		{"gust rate", p.GustRate},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidParams, f.name)
		}
	}

	if p.AmplitudeX < 0 || p.AmplitudeY < 0 {
		return fmt.Errorf("%w: amplitudes must be non-negative", ErrInvalidParams)
	}

	if p.Exponent <= 0 {
		return fmt.Errorf("%w: exponent must be positive so the root stays fixed", ErrInvalidParams)
	}

	if p.GustStrength < 0 || p.GustStrength > 1 || math.IsNaN(p.GustStrength) {
		return fmt.Errorf("%w: gust strength must be in [0, 1]", ErrInvalidParams)
	}

	return nil
}

// MaxOffset returns the largest possible tip displacement on each axis.
func (p *Params) MaxOffset() (dx, dy float64) {
	return p.AmplitudeX + math.Abs(p.DriftX), p.AmplitudeY + math.Abs(p.DriftY)
}

// Field evaluates the wind model. It holds no mutable state after
// construction and is safe for concurrent use.
type Field struct {
	params Params
	noise  opensimplex.Noise
}

// New creates a wind field from validated parameters.
func New(params Params) (*Field, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	f := &Field{params: params}
	if params.GustStrength > 0 {
		f.noise = opensimplex.NewNormalized(params.Seed)
	}
	return f, nil
}

// Params returns the field's parameters.
func (f *Field) Params() Params { return f.params }

// Factor returns t^e, the share of the sway applied at curve parameter t.
func (f *Field) Factor(t float64) float64 {
	return math.Pow(t, f.params.Exponent)
}

// Factors fills dst with Factor(params[i]) and returns it.
func (f *Field) Factors(dst, params []float64) []float64 {
	for i, t := range params {
		dst[i] = f.Factor(t)
	}
	return dst
}

// Gust returns the drift envelope g(time) in [1-GustStrength, 1].
func (f *Field) Gust(time float64) float64 {
	if f.noise == nil {
		return 1
	}
	s := f.params.GustStrength
	n := geom.Clamp01(f.noise.Eval2(time*f.params.GustRate, 0))
	return 1 - s + s*n
}

// Sway returns the full tip offset (kx, ky) at the given time. The offset
// of a sample at parameter t is Factor(t) times this value.
func (f *Field) Sway(time float64) (kx, ky float64) {
	p := &f.params
	g := f.Gust(time)
	phase := p.Frequency * time
	kx = p.AmplitudeX*math.Sin(phase) + p.DriftX*g
	ky = p.AmplitudeY*math.Cos(phase) + p.DriftY*g
	return kx, ky
}

// Perturb returns pt displaced by the wind at curve parameter t and time.
func (f *Field) Perturb(pt geom.Point, t, time float64) geom.Point {
	kx, ky := f.Sway(time)
	return pt.Add(geom.Point{X: kx, Y: ky}.Scale(f.Factor(t)))
}
