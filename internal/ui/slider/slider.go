// Package slider renders two equal-width panes side by side and shows one
// pane-width window of them, sliding the window between panes with an eased
// animation.
package slider

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FrameInterval is the delay between animation frames.
const FrameInterval = 16 * time.Millisecond

// Pane identifies which half of the strip is in view.
type Pane int

const (
	Left Pane = iota
	Right
)

// FrameMsg advances a running slide. The id ties it to one slide so frames
// from an interrupted slide are dropped.
type FrameMsg struct{ id int }

// Model is the slider state.
type Model struct {
	width   int
	frames  int
	animate bool

	from, to Pane
	frame    int
	id       int
}

// New returns a slider showing the left pane. frames is the number of
// animation steps; animate=false or frames<=1 makes every slide a jump.
func New(frames int, animate bool) Model {
	return Model{frames: frames, animate: animate && frames > 1}
}

// SetWidth sets the width of one pane.
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

// Width returns the pane width.
func (m Model) Width() int { return m.width }

// Pane returns the pane the slider is on or heading to.
func (m Model) Pane() Pane { return m.to }

// Animating reports whether a slide is in progress.
func (m Model) Animating() bool { return m.from != m.to }

// SlideTo starts moving toward p. A slide already in progress is
// redirected from where it currently is.
func (m Model) SlideTo(p Pane) (Model, tea.Cmd) {
	if p == m.to {
		return m, nil
	}
	m.id++
	if !m.animate {
		m.from, m.to, m.frame = p, p, 0
		return m, nil
	}
	if m.Animating() {
		// Reverse in place: remaining distance becomes the covered one.
		m.frame = m.frames - m.frame
	} else {
		m.frame = 0
	}
	m.from, m.to = m.to, p
	return m, m.tick()
}

// Update handles FrameMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	f, ok := msg.(FrameMsg)
	if !ok || f.id != m.id || !m.Animating() {
		return m, nil
	}
	m.frame++
	if m.frame >= m.frames {
		m.from, m.frame = m.to, 0
		return m, nil
	}
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	id := m.id
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{id: id}
	})
}

// Offset returns the left edge of the visible window within the strip.
func (m Model) Offset() int {
	start, end := paneOffset(m.from, m.width), paneOffset(m.to, m.width)
	if start == end {
		return end
	}
	t := easeInOutCubic(float64(m.frame) / float64(m.frames))
	return start + int(math.Round(t*float64(end-start)))
}

func paneOffset(p Pane, width int) int {
	if p == Right {
		return width
	}
	return 0
}

// View lays left and right side by side and cuts out the visible window.
func (m Model) View(left, right string) string {
	l := strings.Split(left, "\n")
	r := strings.Split(right, "\n")
	rows := max(len(l), len(r))

	off := m.Offset()
	var b strings.Builder
	for i := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		strip := pad(line(l, i), m.width) + pad(line(r, i), m.width)
		b.WriteString(ansi.Cut(strip, off, off+m.width))
	}
	return b.String()
}

func line(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
