package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	strands "github.com/tphakala/go-hair-strands"
)

const (
	svgDecimals = 2 // Coordinate precision in the document
	ndcSpan     = 2.0
	maxChannel  = 255
)

// canvasSpec describes the output picture.
type canvasSpec struct {
	width       float64
	height      float64
	strokeWidth float64
	background  int
}

// toPixel maps normalized device coordinates to SVG pixels. Device Y grows
// upward, SVG Y grows downward.
func (c canvasSpec) toPixel(x, y float64) (px, py float64) {
	px = (x + 1) / ndcSpan * c.width
	py = (1 - y) / ndcSpan * c.height
	return px, py
}

// errWriter remembers the first write error. svgo does not report errors
// itself.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// svgRenderer writes a frame as an SVG document.
type svgRenderer struct {
	out    *errWriter
	canvas *svg.SVG
	spec   canvasSpec
	title  string

	// pixel coordinate scratch, reused across strands
	xs []float64
	ys []float64
}

func newSVGRenderer(w io.Writer, spec canvasSpec, title string) *svgRenderer {
	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Decimals = svgDecimals
	return &svgRenderer{out: out, canvas: canvas, spec: spec, title: title}
}

// BeginFrame writes the document header and background.
func (r *svgRenderer) BeginFrame(count int) error {
	c := r.spec
	bg := c.background
	r.canvas.Start(c.width, c.height)
	r.canvas.Title(r.title)
	r.canvas.Desc(fmt.Sprintf("%d strands", count))
	r.canvas.Rect(0, 0, c.width, c.height, r.canvas.RGB(bg, bg, bg))
	r.canvas.Gstyle(fmt.Sprintf("fill:none;stroke-width:%.2f;stroke-linecap:round;stroke-linejoin:round", c.strokeWidth))
	return r.out.err
}

// DrawStrand writes one polyline.
func (r *svgRenderer) DrawStrand(index int, color strands.Color, samples strands.SampleBuffer) error {
	n := samples.Len()
	r.xs = resize(r.xs, n)
	r.ys = resize(r.ys, n)
	for i := range n {
		r.xs[i], r.ys[i] = r.spec.toPixel(samples.X[i], samples.Y[i])
	}

	r.canvas.Polyline(r.xs, r.ys, strokeStyle(color), fmt.Sprintf(`id="strand-%d"`, index))
	return r.out.err
}

// EndFrame closes the document.
func (r *svgRenderer) EndFrame() error {
	r.canvas.Gend()
	r.canvas.End()
	return r.out.err
}

// strokeStyle returns the CSS stroke for a strand colour.
func strokeStyle(c strands.Color) string {
	red, green, blue := c.RGB8()
	return fmt.Sprintf("stroke:rgb(%d,%d,%d)", red, green, blue)
}

func resize(s []float64, n int) []float64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]float64, n)
}

// framePath numbers the output file when writing more than one frame:
// anim.svg becomes anim-007.svg.
func framePath(path string, index, total int) string {
	if total <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if ext == "" {
		ext = ".svg"
	}
	return fmt.Sprintf("%s-%03d%s", base, index, ext)
}

// buildConfig resolves a preset and applies the command line overrides.
func buildConfig(preset string, numStrands, samples int, parallel bool) (strands.Config, error) {
	p, err := strands.ParsePreset(strings.ToLower(preset))
	if err != nil {
		return strands.Config{}, err
	}

	config := strands.GetPresetConfig(p)
	if numStrands > 0 {
		config.Strands = numStrands
	}
	if samples > 0 {
		config.Samples = samples
	}
	config.EnableParallel = parallel

	return config, config.Validate()
}
