// Command strands-preview animates a strand preset in the terminal using
// braille dots.
//
// Usage:
//
//	strands-preview
//	strands-preview -preset fringe -fps 60
//	strands-preview -preset gusty -strands 300 -log preview.log -v
//
// Keys: ↑/↓ scale the wind, ←/→ push the drift, space pauses, r resets,
// q quits. Wind changes ease in with a spring.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	strands "github.com/tphakala/go-hair-strands"
)

const (
	// CLI defaults
	defaultFPS = 30
	maxFPS     = 120
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	preset := flag.String("preset", "circle", "Preset: circle, fringe, calm, gusty")
	numStrands := flag.Int("strands", 0, "Override the preset strand count")
	samples := flag.Int("samples", 0, "Override the preset samples per strand")
	fps := flag.Int("fps", defaultFPS, "Frames per second")
	parallel := flag.Bool("parallel", true, "Render strands concurrently")
	logPath := flag.String("log", "", "Write log output to file (the terminal is taken by the preview)")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	if *fps < 1 || *fps > maxFPS {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("fps must be 1-%d", maxFPS)
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "strands-preview")
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
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

	p, err := strands.ParsePreset(strings.ToLower(*preset))
	if err != nil {
		return err
	}

	config := strands.GetPresetConfig(p)
	if *numStrands > 0 {
		config.Strands = *numStrands
	}
	if *samples > 0 {
		config.Samples = *samples
	}
	config.EnableParallel = *parallel

	m, err := newModel(config, strands.NewWallClock(), *fps)
	if err != nil {
		return err
	}

	if *verbose {
		info := m.anim.GetInfo()
		log.Printf("Preset: %s (%s layout)", p, info.Layout)
		log.Printf("Strands: %d x %d samples, %d workers", info.Strands, info.Samples, info.Workers)
		log.Printf("SIMD: %s", info.SIMDType)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	return nil
}
