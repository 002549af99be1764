// Package viz replays solved trajectories as a terminal animation.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmehta/orbitlab/internal/solver"
)

const (
	canvasWidth  = 72
	canvasHeight = 24
)

type TickMsg time.Time

// Model replays a solved trajectory sample by sample in the x-y plane.
// The solve has already happened; the view only scrubs through immutable
// data, so pausing or rewinding never perturbs the physics.
type Model struct {
	tr     *solver.Trajectory
	names  []string
	canvas *Canvas

	frame   int
	stride  int
	playing bool
	fps     int

	// Fixed world-to-canvas mapping computed once from the whole run.
	minX, minY, scale float64
}

func NewModel(tr *solver.Trajectory, names []string, fps int) Model {
	m := Model{
		tr:      tr,
		names:   names,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		stride:  imax(1, tr.Samples()/1200),
		playing: true,
		fps:     fps,
	}
	m.fitBounds()
	return m
}

func (m *Model) fitBounds() {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)

	for _, b := range m.tr.Bodies {
		for k := range m.tr.Times {
			minX = math.Min(minX, b.Pos[0][k])
			maxX = math.Max(maxX, b.Pos[0][k])
			minY = math.Min(minY, b.Pos[1][k])
			maxY = math.Max(maxY, b.Pos[1][k])
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	// Leave a margin so markers at the extremes stay on canvas.
	sx := float64(canvasWidth*2-6) / spanX
	sy := float64(canvasHeight*4-6) / spanY
	m.scale = math.Min(sx, sy)
	m.minX = minX
	m.minY = minY
}

func (m Model) project(x, y float64) (int, int) {
	px := int((x-m.minX)*m.scale) + 3
	// Canvas rows grow downward; flip y.
	py := canvasHeight*4 - 3 - int((y-m.minY)*m.scale)
	return px, py
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.frame = 0
		case "+", "=":
			m.stride *= 2
		case "-":
			m.stride = imax(1, m.stride/2)
		}
		return m, nil

	case TickMsg:
		if m.playing && m.frame < m.tr.Samples()-1 {
			m.frame = imin(m.frame+m.stride, m.tr.Samples()-1)
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()

	for _, b := range m.tr.Bodies {
		for k := 0; k <= m.frame; k += m.stride {
			px, py := m.project(b.Pos[0][k], b.Pos[1][k])
			m.canvas.Set(px, py)
		}
		px, py := m.project(b.Pos[0][m.frame], b.Pos[1][m.frame])
		m.canvas.DrawMarker(px, py)
	}

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("orbitlab replay") + "\n")
	stats.WriteString(labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.4g s", m.tr.Times[m.frame])) + "\n")
	stats.WriteString(labelStyle.Render("sample") + valueStyle.Render(fmt.Sprintf("%d / %d", m.frame, m.tr.Samples()-1)) + "\n")

	for i, b := range m.tr.Bodies {
		pos := fmt.Sprintf("(%.3g, %.3g)", b.Pos[0][m.frame], b.Pos[1][m.frame])
		stats.WriteString(labelStyle.Render(m.names[i]) + valueStyle.Render(pos) + "\n")
	}

	if !m.playing {
		stats.WriteString("\n" + pausedStyle.Render("PAUSED"))
	}
	stats.WriteString("\n" + helpStyle.Render("space pause · +/- speed · r restart · q quit"))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)
}

// Run replays a trajectory until the user quits.
func Run(tr *solver.Trajectory, names []string, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	p := tea.NewProgram(NewModel(tr, names, fps))
	_, err := p.Run()
	return err
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
