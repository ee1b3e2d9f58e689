// Command marqueetui previews a marquee in the terminal. Each character
// cell shows two surface pixels using the upper half block, so the
// animation runs at full color without leaving the shell.
//
// Keys: space pauses, r flips direction, u toggles upper-case, q quits.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"
	"github.com/gogpu/marquee"
)

const frameInterval = time.Second / 30

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	engine    *marquee.Engine
	canvas    *marquee.Canvas
	sched     *marquee.ManualScheduler
	container *marquee.Element

	phrase  string
	reverse bool
	upper   bool
	ready   bool
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.sched.Step()
		return m, tick()

	case tea.WindowSizeMsg:
		m.container.ClientWidth = float64(msg.Width)
		if !m.ready {
			m.ready = true
			if err := m.engine.Init(); err != nil {
				return m, tea.Quit
			}
			return m, nil
		}
		if err := m.engine.Resize(); err != nil {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.engine.Destroy()
			return m, tea.Quit
		case " ":
			m.canvas.SetPaused(!m.canvas.Paused())
		case "r":
			m.reverse = !m.reverse
			m.applyPhrase()
		case "u":
			m.upper = !m.upper
			m.applyPhrase()
		}
	}
	return m, nil
}

func (m *model) applyPhrase() {
	attrs := marquee.Attrs{
		"phrase":    m.phrase,
		"reverse":   strconv.FormatBool(m.reverse),
		"uppercase": strconv.FormatBool(m.upper),
	}
	if err := attrs.Apply(m.engine); err != nil {
		marquee.Logger().Warn("marquee: update failed", "error", err)
	}
}

func (m *model) View() string {
	if !m.ready {
		return "starting..."
	}
	var b strings.Builder
	b.WriteString(renderHalfBlocks(m.canvas.Image()))
	state := "running"
	if m.canvas.Paused() {
		state = "paused"
	}
	dir := "forward"
	if m.reverse {
		dir = "reverse"
	}
	s := m.engine.Snapshot()
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"%s | %s | %d copies | space pause, r reverse, u upper, q quit",
		state, dir, len(s.Positions))))
	return b.String()
}

// renderHalfBlocks maps pairs of pixel rows onto "▀" cells, the upper
// pixel as foreground and the lower as background.
func renderHalfBlocks(img image.Image) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	var out strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			upper := termColor(img.At(x, y))
			lower := upper
			if y+1 < b.Max.Y {
				lower = termColor(img.At(x, y+1))
			}
			cell := lipgloss.NewStyle().
				Foreground(upper).
				Background(lower)
			out.WriteString(cell.Render("▀"))
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func termColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

func main() {
	var (
		phrase     = flag.String("phrase", "Hello from marquee", "text to scroll")
		fontSize   = flag.Float64("size", 14, "font size in pixels")
		speed      = flag.Float64("speed", 2, "pixels per frame")
		textColor  = flag.String("color", "gold", "text color")
		background = flag.String("background", "#203040", "background color")
	)
	flag.Parse()

	dc := gg.NewContext(80, 24)
	defer func() { _ = dc.Close() }()

	container := &marquee.Element{Marker: true, ClientWidth: 80}
	cv := marquee.NewCanvas(dc, marquee.WithElement(&marquee.Element{Parent: container}))

	sched := marquee.NewManualScheduler()
	eng := marquee.NewEngine(cv,
		marquee.WithText(marquee.FormatPhrase(*phrase, false, false)),
		marquee.WithFont(fmt.Sprintf("%gpx sans-serif", *fontSize)),
		marquee.WithTextColor(*textColor),
		marquee.WithBackgroundColor(*background),
		marquee.WithPaddingX(24),
		marquee.WithPaddingY(8),
		marquee.WithSpeed(*speed),
	)
	eng.SetScheduler(sched)

	m := &model{
		engine:    eng,
		canvas:    cv,
		sched:     sched,
		container: container,
		phrase:    *phrase,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
