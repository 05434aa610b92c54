package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	strands "github.com/tphakala/go-hair-strands"
)

const (
	brailleBase  = 0x2800 // Empty braille pattern
	dotsPerCellX = 2
	dotsPerCellY = 4
	ndcSpan      = 2.0
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [dotsPerCellX][dotsPerCellY]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// brailleCanvas rasterizes strands into terminal cells, each a 2x4 braille
// dot grid. A cell takes the colour of the last strand that touched it, so
// strands drawn later (the front of the bundle) win.
type brailleCanvas struct {
	cols, rows int
	patterns   []uint8
	colors     []strands.Color
	styles     map[strands.Color]lipgloss.Style
}

func newBrailleCanvas(cols, rows int) *brailleCanvas {
	c := &brailleCanvas{styles: make(map[strands.Color]lipgloss.Style)}
	c.resize(cols, rows)
	return c
}

func (c *brailleCanvas) resize(cols, rows int) {
	c.cols = max(cols, 1)
	c.rows = max(rows, 1)
	c.patterns = make([]uint8, c.cols*c.rows)
	c.colors = make([]strands.Color, c.cols*c.rows)
}

func (c *brailleCanvas) clear() {
	clear(c.patterns)
}

// toDot maps NDC to dot coordinates. Device Y grows upward, rows grow
// downward.
func (c *brailleCanvas) toDot(x, y float64) (dx, dy float64) {
	w := float64(c.cols * dotsPerCellX)
	h := float64(c.rows * dotsPerCellY)
	return (x + 1) / ndcSpan * (w - 1), (1 - y) / ndcSpan * (h - 1)
}

// set lights one dot. Dots outside the canvas are dropped.
func (c *brailleCanvas) set(dx, dy int, color strands.Color) {
	if dx < 0 || dy < 0 || dx >= c.cols*dotsPerCellX || dy >= c.rows*dotsPerCellY {
		return
	}
	cell := (dy/dotsPerCellY)*c.cols + dx/dotsPerCellX
	c.patterns[cell] |= 1 << brailleBits[dx%dotsPerCellX][dy%dotsPerCellY]
	c.colors[cell] = color
}

// line draws a segment between two dot positions, one dot per step along
// the longer axis so steep segments have no gaps.
func (c *brailleCanvas) line(x0, y0, x1, y1 float64, color strands.Color) {
	steps := int(math.Ceil(max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		c.set(int(math.Round(x0)), int(math.Round(y0)), color)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.set(int(math.Round(x0+(x1-x0)*t)), int(math.Round(y0+(y1-y0)*t)), color)
	}
}

// BeginFrame clears the canvas.
func (c *brailleCanvas) BeginFrame(int) error {
	c.clear()
	return nil
}

// DrawStrand rasterizes one strand as connected segments.
func (c *brailleCanvas) DrawStrand(_ int, color strands.Color, samples strands.SampleBuffer) error {
	n := samples.Len()
	px, py := c.toDot(samples.X[0], samples.Y[0])
	for i := 1; i < n; i++ {
		qx, qy := c.toDot(samples.X[i], samples.Y[i])
		c.line(px, py, qx, qy, color)
		px, py = qx, qy
	}
	return nil
}

// EndFrame is a no-op; the frame is read with String.
func (c *brailleCanvas) EndFrame() error { return nil }

// String renders the canvas, colouring runs of equal colour with one style.
func (c *brailleCanvas) String() string {
	var out, run strings.Builder
	for row := range c.rows {
		var runColor strands.Color
		runLit := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runLit {
				out.WriteString(c.style(runColor).Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
			run.Reset()
		}

		for col := range c.cols {
			cell := row*c.cols + col
			p := c.patterns[cell]
			lit := p != 0
			if lit != runLit || (lit && c.colors[cell] != runColor) {
				flush()
				runLit, runColor = lit, c.colors[cell]
			}
			run.WriteRune(rune(brailleBase + uint(p)))
		}
		flush()
		if row < c.rows-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (c *brailleCanvas) style(color strands.Color) lipgloss.Style {
	if s, ok := c.styles[color]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(color)))
	c.styles[color] = s
	return s
}

// hexColor formats a strand colour as #rrggbb.
func hexColor(color strands.Color) string {
	r, g, b := color.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
