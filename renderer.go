package strands

import "time"

// Renderer consumes the strands of a frame.
//
// DrawStrand is called once per strand in index order. samples is only
// valid for the duration of the call; renderers that keep the data must
// copy it (SampleBuffer.Clone or SampleBuffer.Float32).
type Renderer interface {
	DrawStrand(index int, color Color, samples SampleBuffer) error
}

// FrameRenderer is an optional extension for renderers that need to set
// up and finish each frame, such as clearing a canvas or swapping buffers.
type FrameRenderer interface {
	Renderer

	// BeginFrame is called before the first strand.
	BeginFrame(strands int) error

	// EndFrame is called after the last strand.
	EndFrame() error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(index int, color Color, samples SampleBuffer) error

// DrawStrand calls f.
func (f RendererFunc) DrawStrand(index int, color Color, samples SampleBuffer) error {
	return f(index, color, samples)
}

// Clock reports elapsed time in seconds.
type Clock interface {
	Elapsed() float64
}

// WallClock measures monotonic time since its creation.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Elapsed returns the seconds since the clock was created.
func (c *WallClock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}

// FixedClock always reports the same time. It is useful for tests and
// offline renders of a single moment.
type FixedClock float64

// Elapsed returns the fixed time.
func (c FixedClock) Elapsed() float64 { return float64(c) }
