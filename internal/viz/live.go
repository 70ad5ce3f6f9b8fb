package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/culturesim/culturesim/internal/entropy"
)

const stepsPerFrame = 4

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// Live replays a finished integration sample by sample so the trajectory can
// be watched unfolding. The full result is computed up front; the view only
// moves a cursor, it never re-integrates.
type Live struct {
	res     *entropy.Result
	cursor  int
	running bool
}

func NewLive(res *entropy.Result) Live {
	return Live{res: res, cursor: 1, running: true}
}

func (m Live) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.cursor = 1
			m.running = true
		}
	case tickMsg:
		if m.running {
			m.cursor += stepsPerFrame
			if m.cursor >= m.res.Grid.Len() {
				m.cursor = m.res.Grid.Len() - 1
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Live) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("cultural entropy — live"))
	b.WriteString("\n")

	graph := asciigraph.PlotMany(
		[][]float64{m.res.Entropy[:m.cursor+1], m.res.Recognition[:m.cursor+1]},
		asciigraph.Height(12),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
	)
	b.WriteString(graph)
	b.WriteString("\n\n")

	row := func(label string, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("year", fmt.Sprintf("%.1f", m.res.Years[m.cursor]))
	row("entropy", fmt.Sprintf("%.4f", m.res.Entropy[m.cursor]))
	row("recognition", fmt.Sprintf("%.4f", m.res.Recognition[m.cursor]))
	row("static exp(D)", fmt.Sprintf("%.4f", math.Exp(m.res.Forcing[m.cursor])))

	if !m.running && m.cursor < m.res.Grid.Len()-1 {
		b.WriteString(pausedStyle.Render("paused"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r restart · q quit"))
	b.WriteString("\n")

	return b.String()
}
