// Package strands procedurally generates and animates a bundle of curved
// line strands, a stylized windswept hair effect.
//
// Each strand is a Bezier curve sampled at a fixed resolution, perturbed by
// a time-varying wind model and varied per strand (offset, scale, wind
// phase, colour) so that many strands read as one coherent mass rather than
// identical copies. Everything is a pure function of the configuration and
// the elapsed time; window, shader and GPU handling are left to the
// caller's renderer.
//
// # Quick Start
//
// Render one frame of the built-in circle preset:
//
//	a, err := strands.NewFromPreset(strands.PresetCircle)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range a.RenderFrame(clock.Elapsed()) {
//	    upload(s.Samples.Float32(vertices[:0]))
//	    drawLineStrip(s.Color, s.Samples.Len())
//	}
//
// Or hand the frame to a [Renderer]:
//
//	err := a.Draw(myRenderer, clock.Elapsed())
//
// # Layouts
//
// The presets consolidate two ways of building control polygons:
//
//   - [LayoutCircle]: every strand gets its own polygon, anchored on a
//     circle at angle 2π·j/N with the remaining points falling downward.
//   - [LayoutTemplate]: one shared template polygon, scaled about its root
//     and shifted sideways per strand. Templates may be authored in a
//     logical pixel space and are mapped into device space once, at
//     construction.
//
// # Coordinates
//
// Output is in normalized device coordinates with Y up, where [-1, 1] on
// both axes is the visible device. Samples are not clamped: the head
// presets let the lower strands hang past the bottom edge, and renderers
// clip what falls outside. Logical spaces map with x' = x/W·2-1 and y' = y/H·2-1, negated when
// [Space.FlipY] is set; pixel spaces grow downward, so the presets set it.
//
// # Wind
//
// Each sample at curve parameter t moves by t^e times the tip sway
// (ampX·sin(f·τ) + driftX·g, ampY·cos(f·τ) + driftY·g) where τ is the
// elapsed time plus the strand's phase and g is an optional noise gust
// envelope in [1-s, 1]. The root (t = 0) never moves and the tip offset is
// bounded by amplitude plus |drift| on each axis.
//
// # Thread Safety
//
// An [Animator] is immutable after [New]. [Animator.RenderFrame] may be
// called from multiple goroutines. [Animator.RenderFrameInto] is safe as
// long as each goroutine passes its own destination.
//
// With [Config.EnableParallel], strands of one frame are split across
// goroutines. Every strand writes only its own buffer, so the output is
// bit-identical to the sequential path and stays in index order.
package strands
