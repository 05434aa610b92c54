// Command strands-svg renders one frame of a strand animation as an SVG
// document, one polyline per strand.
//
// Usage:
//
//	strands-svg -preset circle -time 1.5 head.svg
//	strands-svg -preset fringe -strands 200 -width 1600 -height 1200 fringe.svg
//	strands-svg -preset gusty -frames 60 -fps 30 gusty.svg   # 60 frames: gusty-000.svg ...
//	strands-svg -preset calm > calm.svg                      # Write to stdout
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	strands "github.com/tphakala/go-hair-strands"
)

const (
	// CLI defaults
	defaultWidth       = 800
	defaultHeight      = 600
	defaultStrokeWidth = 1.0
	defaultFPS         = 30.0
	defaultBackground  = 24 // Grey level of the canvas

	maxOutputArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	preset := flag.String("preset", "circle", "Preset: circle, fringe, calm, gusty")
	at := flag.Float64("time", 0, "Elapsed animation time in seconds")
	frames := flag.Int("frames", 1, "Number of consecutive frames to write")
	fps := flag.Float64("fps", defaultFPS, "Frame rate used to space multiple frames")
	numStrands := flag.Int("strands", 0, "Override the preset strand count")
	samples := flag.Int("samples", 0, "Override the preset samples per strand")
	width := flag.Int("width", defaultWidth, "Canvas width in pixels")
	height := flag.Int("height", defaultHeight, "Canvas height in pixels")
	stroke := flag.Float64("stroke", defaultStrokeWidth, "Stroke width in pixels")
	parallel := flag.Bool("parallel", true, "Render strands concurrently")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	args := flag.Args()
	if len(args) > maxOutputArgs || (*frames > 1 && len(args) == 0) || *frames < 1 || *fps <= 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [output.svg]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -time 1.5 head.svg               # One frame of the head\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -preset fringe > fringe.svg      # Write to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -frames 60 -fps 30 anim.svg      # anim-000.svg ... anim-059.svg\n", os.Args[0])
		return fmt.Errorf("invalid arguments")
	}

	// Start CPU profiling if requested (for PGO)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	config, err := buildConfig(*preset, *numStrands, *samples, *parallel)
	if err != nil {
		return err
	}

	anim, err := strands.New(&config)
	if err != nil {
		return err
	}

	if *verbose {
		info := anim.GetInfo()
		log.Printf("Preset: %s (%s layout)", *preset, info.Layout)
		log.Printf("Strands: %d x %d samples, degree %d", info.Strands, info.Samples, info.Degree)
		log.Printf("Workers: %d, SIMD: %s", info.Workers, info.SIMDType)
		log.Printf("Canvas: %dx%d px", *width, *height)
	}

	canvas := canvasSpec{
		width:       float64(*width),
		height:      float64(*height),
		strokeWidth: *stroke,
		background:  defaultBackground,
	}

	start := time.Now()
	step := 1 / *fps
	var scratch []strands.StrandFrame
	for i := range *frames {
		t := *at + float64(i)*step
		path := ""
		if len(args) > 0 {
			path = framePath(args[0], i, *frames)
		}

		scratch, err = writeFrame(anim, scratch, canvas, path, t)
		if err != nil {
			return err
		}

		if *verbose {
			log.Printf("Frame %d at t=%.3fs -> %s", i, t, displayPath(path))
		}
	}

	if *verbose {
		log.Printf("Wrote %d frame(s) in %v", *frames, time.Since(start))
	}

	return nil
}

// writeFrame renders the frame at time t into path, or stdout when path is
// empty. It returns the frame buffers for reuse.
func writeFrame(anim *strands.Animator, scratch []strands.StrandFrame, canvas canvasSpec, path string, t float64) (frame []strands.StrandFrame, err error) {
	out := os.Stdout
	if path != "" {
		out, err = os.Create(path)
		if err != nil {
			return scratch, fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if closeErr := out.Close(); err == nil {
				err = closeErr
			}
		}()
	}

	r := newSVGRenderer(out, canvas, fmt.Sprintf("Strands at %.3fs", t))
	return anim.DrawInto(r, scratch, t)
}

func displayPath(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
