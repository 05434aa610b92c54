package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	strands "github.com/tphakala/go-hair-strands"
)

type manualClock struct{ now float64 }

func (c *manualClock) Elapsed() float64 { return c.now }

func testConfig() strands.Config {
	c := strands.GetPresetConfig(strands.PresetCircle)
	c.Strands = 8
	c.Samples = 16
	return c
}

func newTestModel(t *testing.T) (*model, *manualClock) {
	t.Helper()
	clock := &manualClock{}
	m, err := newModel(testConfig(), clock, 30)
	require.NoError(t, err)
	return m, clock
}

func TestBrailleCanvas_SetBits(t *testing.T) {
	c := newBrailleCanvas(2, 1)

	c.set(0, 0, strands.Color{R: 1})
	assert.Equal(t, uint8(1<<0), c.patterns[0])

	c.set(1, 3, strands.Color{R: 1})
	assert.Equal(t, uint8(1<<0|1<<7), c.patterns[0])

	c.set(2, 1, strands.Color{G: 1})
	assert.Equal(t, uint8(1<<1), c.patterns[1])
	assert.Equal(t, strands.Color{G: 1}, c.colors[1])
}

func TestBrailleCanvas_OutOfRangeDropped(t *testing.T) {
	c := newBrailleCanvas(2, 1)
	c.set(-1, 0, strands.Color{})
	c.set(4, 0, strands.Color{})
	c.set(0, 4, strands.Color{})
	assert.Equal(t, []uint8{0, 0}, c.patterns)
}

// TestBrailleCanvas_ClipsStrandBelowDevice draws a strand that leaves the
// device through the bottom edge: the visible part is kept up to the last
// row and the rest is dropped.
func TestBrailleCanvas_ClipsStrandBelowDevice(t *testing.T) {
	c := newBrailleCanvas(4, 4)
	samples := strands.SampleBuffer{X: []float64{0, 0}, Y: []float64{0, -1.5}}

	require.NotPanics(t, func() {
		require.NoError(t, c.DrawStrand(0, strands.Color{R: 1}, samples))
	})

	// Dot (4, 15) is the bottom dot of cell (2, 3).
	assert.NotZero(t, c.patterns[3*4+2]&(1<<brailleBits[0][3]))
}

func TestBrailleCanvas_ToDotCorners(t *testing.T) {
	c := newBrailleCanvas(10, 5)

	x, y := c.toDot(-1, 1)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)

	x, y = c.toDot(1, -1)
	assert.InDelta(t, 19, x, 1e-12)
	assert.InDelta(t, 19, y, 1e-12)
}

func TestBrailleCanvas_LineHasNoGaps(t *testing.T) {
	c := newBrailleCanvas(1, 5)
	c.line(0, 0, 0, 19, strands.Color{B: 1})

	// Left column of every cell: bits 0, 1, 2 and 6.
	for row := range 5 {
		assert.Equal(t, uint8(0x47), c.patterns[row], "row %d", row)
	}
}

func TestBrailleCanvas_EmptyString(t *testing.T) {
	c := newBrailleCanvas(2, 2)
	assert.Equal(t, "⠀⠀\n⠀⠀", c.String())
}

func TestBrailleCanvas_DrawsFrame(t *testing.T) {
	anim, err := strands.NewHead(16)
	require.NoError(t, err)

	c := newBrailleCanvas(40, 20)
	require.NoError(t, anim.Draw(c, 0))

	var lit int
	for _, p := range c.patterns {
		if p != 0 {
			lit++
		}
	}
	assert.Positive(t, lit)
	assert.Equal(t, 20, strings.Count(c.String(), "\n")+1)

	// BeginFrame clears the previous frame.
	require.NoError(t, c.BeginFrame(0))
	assert.Equal(t, make([]uint8, 40*20), c.patterns)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#ff8000", hexColor(strands.Color{R: 1, G: 0.5, B: 0}))
}

func TestModel_WindowSizeResizesCanvas(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	assert.Equal(t, 40, m.canvas.cols)
	assert.Equal(t, 12-statusLines, m.canvas.rows)
	assert.Len(t, m.frame, 8)
}

func TestModel_TickAdvancesTime(t *testing.T) {
	m, clock := newTestModel(t)

	clock.now = 0.5
	_, cmd := m.Update(tickMsg{})
	assert.NotNil(t, cmd)
	assert.InDelta(t, 0.5, m.animTime, 1e-12)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.paused)
	assert.Contains(t, m.View(), "paused")

	clock.now = 1.5
	m.Update(tickMsg{})
	assert.InDelta(t, 0.5, m.animTime, 1e-12, "paused time must not advance")

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	clock.now = 1.75
	m.Update(tickMsg{})
	assert.InDelta(t, 0.75, m.animTime, 1e-12)
}

func TestModel_ArrowKeysEaseWind(t *testing.T) {
	m, _ := newTestModel(t)
	base := testConfig().Wind

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, 1+gainStep, m.gain.target, 1e-12)
	assert.InDelta(t, driftStep, m.drift.target, 1e-12)

	// The first tick moves toward the target without reaching it.
	m.Update(tickMsg{})
	assert.Greater(t, m.gain.pos, 1.0)
	assert.Less(t, m.gain.pos, 1+gainStep)

	for range 300 {
		m.Update(tickMsg{})
	}
	require.True(t, m.settled())

	wind := m.anim.Config().Wind
	assert.InDelta(t, base.AmplitudeX*(1+gainStep), wind.AmplitudeX, 1e-12)
	assert.InDelta(t, base.AmplitudeY*(1+gainStep), wind.AmplitudeY, 1e-12)
	assert.InDelta(t, base.DriftX+driftStep, wind.DriftX, 1e-12)
}

func TestModel_KeyLimits(t *testing.T) {
	m, _ := newTestModel(t)

	for range 20 {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	assert.Zero(t, m.gain.target)
	assert.InDelta(t, -maxDrift, m.drift.target, 1e-12)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.InDelta(t, 1, m.gain.target, 0)
	assert.Zero(t, m.drift.target)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestNewModel_InvalidConfig(t *testing.T) {
	c := testConfig()
	c.Samples = 1
	_, err := newModel(c, &manualClock{}, 30)
	assert.ErrorIs(t, err, strands.ErrInvalidConfig)
}
