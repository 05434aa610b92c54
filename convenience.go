package strands

// NewFromPreset creates an animator from a preset configuration.
func NewFromPreset(preset Preset) (*Animator, error) {
	c := GetPresetConfig(preset)
	return New(&c)
}

// NewHead creates a circle-layout head with the given number of strands
// and the default resolution.
func NewHead(strands int) (*Animator, error) {
	c := GetPresetConfig(PresetCircle)
	c.Strands = strands
	return New(&c)
}

// NewFringe creates a fringe from a template curve authored in a logical
// pixel space of width×height, Y growing downward.
// The first template point is the root.
func NewFringe(template []Point, width, height float64, strands int) (*Animator, error) {
	c := GetPresetConfig(PresetFringe)
	c.Template = template
	c.Space = Space{Width: width, Height: height, FlipY: true}
	c.Strands = strands
	return New(&c)
}

// RenderOnce renders a single frame without keeping the animator.
//
// Example:
//
//	c := strands.GetPresetConfig(strands.PresetCircle)
//	frame, err := strands.RenderOnce(&c, 1.5)
func RenderOnce(config *Config, time float64) ([]StrandFrame, error) {
	a, err := New(config)
	if err != nil {
		return nil, err
	}
	return a.RenderFrame(time), nil
}

// RenderFloat32 renders one frame and packs it into a single interleaved
// float32 vertex buffer (see PackFloat32).
func RenderFloat32(config *Config, time float64) ([]float32, error) {
	frame, err := RenderOnce(config, time)
	if err != nil {
		return nil, err
	}
	return PackFloat32(nil, frame), nil
}
