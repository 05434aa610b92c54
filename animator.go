package strands

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/tphakala/simd/cpu"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-hair-strands/internal/bezier"
	"github.com/tphakala/go-hair-strands/internal/strand"
	"github.com/tphakala/go-hair-strands/internal/wind"
)

// Animator turns elapsed time into strand frames.
//
// Everything that does not depend on time is computed once in New: the
// Bernstein basis table, the wind falloff factors t_i^e, the per-strand
// modifiers and control polygons. A frame then costs one basis dot product
// per sample and axis plus one scaled add per strand and axis.
//
// An Animator is read-only after construction and safe for concurrent use.
type Animator struct {
	config  Config
	sampler *bezier.Sampler
	field   *wind.Field
	factors []float64 // t_i^e for every sample parameter
	mods    []strand.Modifiers
	polys   []polygon
	workers int
}

// newAnimator builds an animator from a validated config.
func newAnimator(config *Config) (*Animator, error) {
	a := &Animator{config: *config}
	a.config.Template = append([]Point(nil), config.Template...)

	degree := config.degree()
	sampler, err := bezier.NewSampler(degree, config.Samples)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	a.sampler = sampler

	field, err := wind.New(config.Wind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	a.field = field
	a.factors = field.Factors(make([]float64, config.Samples), sampler.Params())

	p := strand.Parameterizer{Strand: config.Strand, Color: config.Color}
	a.mods = p.All(config.Strands)
	a.polys = buildPolygons(newPolygonBuilder(&a.config), a.mods, degree+1)

	a.workers = 1
	if config.EnableParallel {
		a.workers = min(runtime.GOMAXPROCS(0), config.Strands)
	}

	return a, nil
}

// RenderFrame renders all strands at the given elapsed time, in seconds.
// The result is freshly allocated and ordered by strand index.
func (a *Animator) RenderFrame(time float64) []StrandFrame {
	return a.RenderFrameInto(nil, time)
}

// RenderFrameInto is like RenderFrame but reuses dst and its sample buffers
// when they are large enough. It returns the frame, which aliases dst when
// dst had room for every strand.
func (a *Animator) RenderFrameInto(dst []StrandFrame, time float64) []StrandFrame {
	n := len(a.mods)
	if cap(dst) >= n {
		dst = dst[:n]
	} else {
		grown := make([]StrandFrame, n)
		copy(grown, dst)
		dst = grown
	}

	// Sequential rendering (default or when parallel disabled)
	if a.workers <= 1 {
		for j := range dst {
			a.renderStrand(&dst[j], j, time)
		}
		return dst
	}

	// Parallel rendering: contiguous strand ranges per worker.
	// Each strand writes only its own slot, so the result matches the
	// sequential path bit for bit.
	chunk := (n + a.workers - 1) / a.workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for j := lo; j < hi; j++ {
				a.renderStrand(&dst[j], j, time)
			}
		}(lo, hi)
	}
	wg.Wait()

	return dst
}

// renderStrand samples strand j and applies the wind at time + phase.
func (a *Animator) renderStrand(dst *StrandFrame, j int, time float64) {
	m := &a.mods[j]
	poly := a.polys[j]

	buf := dst.Samples.ensure(len(a.factors))
	a.sampler.SampleUnsafe(buf.X, buf.Y, poly.x, poly.y)

	kx, ky := a.field.Sway(time + m.Phase)
	floats.AddScaled(buf.X, kx, a.factors)
	floats.AddScaled(buf.Y, ky, a.factors)

	dst.Index = j
	dst.Color = m.Color
	dst.Samples = buf
}

// Draw renders the frame at time and hands every strand, in index order,
// to r. The sample buffer passed to r is only valid during the call.
//
// The first renderer error aborts the frame; it is returned wrapped in
// ErrRenderer together with the strand index.
func (a *Animator) Draw(r Renderer, time float64) error {
	_, err := a.DrawInto(r, nil, time)
	return err
}

// DrawInto is like Draw but renders into scratch, which callers that draw
// continuously reuse across frames. It returns the rendered frame, to be
// passed back as scratch on the next call.
func (a *Animator) DrawInto(r Renderer, scratch []StrandFrame, time float64) ([]StrandFrame, error) {
	frame := a.RenderFrameInto(scratch, time)

	fr, bracketed := r.(FrameRenderer)
	if bracketed {
		if err := fr.BeginFrame(len(frame)); err != nil {
			return frame, fmt.Errorf("%w: begin frame: %w", ErrRenderer, err)
		}
	}

	for i := range frame {
		s := &frame[i]
		if err := r.DrawStrand(s.Index, s.Color, s.Samples); err != nil {
			return frame, fmt.Errorf("%w: strand %d: %w", ErrRenderer, s.Index, err)
		}
	}

	if bracketed {
		if err := fr.EndFrame(); err != nil {
			return frame, fmt.Errorf("%w: end frame: %w", ErrRenderer, err)
		}
	}

	return frame, nil
}

// DrawClock draws the frame at the clock's current elapsed time. The clock
// is read once per frame so every strand sees the same time.
func (a *Animator) DrawClock(r Renderer, clock Clock) error {
	return a.Draw(r, clock.Elapsed())
}

// Parameters returns the modifiers of strand index.
// It panics if index is outside [0, Strands()).
func (a *Animator) Parameters(index int) Modifiers {
	return a.mods[index]
}

// ControlPolygon returns a copy of strand index's control polygon in NDC,
// before wind. It panics if index is outside [0, Strands()).
func (a *Animator) ControlPolygon(index int) []Point {
	return a.polys[index].points()
}

// SampleParams returns a copy of the sample parameters t_i.
func (a *Animator) SampleParams() []float64 {
	return append([]float64(nil), a.sampler.Params()...)
}

// Strands returns the strand count N.
func (a *Animator) Strands() int { return len(a.mods) }

// Samples returns the per-strand resolution S.
func (a *Animator) Samples() int { return a.sampler.Samples() }

// Degree returns the curve degree of every strand.
func (a *Animator) Degree() int { return a.sampler.Degree() }

// Config returns a copy of the configuration.
func (a *Animator) Config() Config {
	c := a.config
	c.Template = append([]Point(nil), a.config.Template...)
	return c
}

// GetInfo returns information about the animator.
func (a *Animator) GetInfo() Info {
	n, s, width := a.Strands(), a.Samples(), a.Degree()+1

	// basis table + factors + params, then polygons
	memUsage := int64(s*(width+2)) * bytesPerFloat64
	memUsage += int64(n*width*coordsPerVertex) * bytesPerFloat64

	return Info{
		Layout:      a.config.Layout.String(),
		Strands:     n,
		Samples:     s,
		Degree:      a.Degree(),
		Workers:     a.workers,
		VertexBytes: int64(n*s*coordsPerVertex) * bytesPerFloat32,
		MemoryUsage: memUsage,
		Gusts:       a.config.Wind.GustStrength > 0,
		SIMDType:    cpu.Info(),
	}
}
