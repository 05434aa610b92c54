package main

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	strands "github.com/tphakala/go-hair-strands"
)

const (
	statusLines = 2

	gainStep  = 0.25 // Wind amplitude gain per key press
	maxGain   = 4.0
	driftStep = 0.05 // NDC per key press
	maxDrift  = 0.5

	springFrequency = 6.0
	springDamping   = 0.8
	settleEpsilon   = 1e-4 // Below this the eased value is snapped to its target
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))
)

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// easedValue follows a target with a critically-ish damped spring so key
// presses swell the wind instead of jumping.
type easedValue struct {
	pos, vel, target float64
}

func (e *easedValue) step(s *harmonica.Spring) {
	e.pos, e.vel = s.Update(e.pos, e.vel, e.target)
	if math.Abs(e.pos-e.target) < settleEpsilon && math.Abs(e.vel) < settleEpsilon {
		e.pos, e.vel = e.target, 0
	}
}

func (e *easedValue) settled() bool {
	return e.pos == e.target && e.vel == 0
}

// model is the Bubbletea model of the preview.
type model struct {
	base     strands.Config
	anim     *strands.Animator
	frame    []strands.StrandFrame
	canvas   *brailleCanvas
	clock    strands.Clock
	interval time.Duration
	spring   harmonica.Spring

	gain  easedValue // multiplies the base oscillation amplitude
	drift easedValue // added to the base horizontal drift

	animTime  float64
	lastWall  float64
	paused    bool
	applied   [2]float64 // gain and drift the animator was built with
	err       error
	quitting  bool
	frameTime time.Duration
}

func newModel(base strands.Config, clock strands.Clock, fps int) (*model, error) {
	anim, err := strands.New(&base)
	if err != nil {
		return nil, err
	}

	m := &model{
		base:     base,
		anim:     anim,
		canvas:   newBrailleCanvas(1, 1),
		clock:    clock,
		interval: time.Second / time.Duration(fps),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		gain:     easedValue{pos: 1, target: 1},
		applied:  [2]float64{1, 0},
	}
	m.lastWall = clock.Elapsed()
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "up", "k":
			m.gain.target = min(m.gain.target+gainStep, maxGain)
		case "down", "j":
			m.gain.target = max(m.gain.target-gainStep, 0)
		case "left", "h":
			m.drift.target = max(m.drift.target-driftStep, -maxDrift)
		case "right", "l":
			m.drift.target = min(m.drift.target+driftStep, maxDrift)
		case "r":
			m.gain.target, m.drift.target = 1, 0
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.canvas.resize(msg.Width, msg.Height-statusLines)
		m.render()
		return m, nil

	case tickMsg:
		m.advance()
		m.render()
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// advance moves animation time forward by the wall time since the last tick
// and eases the wind controls.
func (m *model) advance() {
	now := m.clock.Elapsed()
	if !m.paused {
		m.animTime += now - m.lastWall
	}
	m.lastWall = now

	m.gain.step(&m.spring)
	m.drift.step(&m.spring)

	if m.gain.pos != m.applied[0] || m.drift.pos != m.applied[1] {
		m.rebuild()
	}
}

// rebuild recreates the animator with the eased wind. Only wind constants
// change, so the strand count and buffers stay valid.
func (m *model) rebuild() {
	c := m.base
	c.Wind.AmplitudeX *= max(m.gain.pos, 0)
	c.Wind.AmplitudeY *= max(m.gain.pos, 0)
	c.Wind.DriftX += m.drift.pos

	anim, err := strands.New(&c)
	if err != nil {
		m.err = err
		return
	}
	m.anim = anim
	m.applied = [2]float64{m.gain.pos, m.drift.pos}
	m.err = nil
}

func (m *model) render() {
	start := time.Now()
	frame, err := m.anim.DrawInto(m.canvas, m.frame, m.animTime)
	m.frame = frame
	if err != nil {
		m.err = err
	}
	m.frameTime = time.Since(start)
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	info := m.anim.GetInfo()
	state := "playing"
	if m.paused {
		state = "paused"
	}
	status := fmt.Sprintf("%s  t=%.2fs  %d strands  wind ×%.2f  drift %+.2f  %v/frame",
		state, m.animTime, info.Strands, m.gain.pos, m.drift.pos, m.frameTime.Round(time.Microsecond))

	line := statusStyle.Render(status)
	if m.err != nil {
		line = errorStyle.Render(m.err.Error())
	}

	return m.canvas.String() + "\n" + line + "\n" +
		helpStyle.Render("↑/↓ wind  ←/→ drift  space pause  r reset  q quit")
}

// settled reports whether both wind controls have reached their targets.
func (m *model) settled() bool {
	return m.gain.settled() && m.drift.settled()
}
