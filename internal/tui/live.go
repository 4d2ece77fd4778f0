package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/rvasa/dispersim/internal/dispersion"
	"github.com/rvasa/dispersim/internal/optics"
)

const (
	sweepHalfWidthNm = 150.0
	sweepSteps       = 60
	minWavelengthNm  = 200.0
	maxWavelengthNm  = 2500.0
	minPulseFs       = 1.0
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Model is the interactive dispersion explorer: arrow keys move the
// probe wavelength and input pulse, the totals and the GDD sweep
// update live.
type Model struct {
	stack    optics.Stack
	opts     dispersion.Options
	lambdaNm float64
	pulseFs  float64
	stepNm   float64
	result   optics.Result
	sweep    []dispersion.SweepPoint
	evalErr  error
}

func NewModel(stack optics.Stack, lambdaNm, pulseFs float64, opts dispersion.Options) Model {
	m := Model{
		stack:    stack,
		opts:     opts,
		lambdaNm: lambdaNm,
		pulseFs:  pulseFs,
		stepNm:   5.0,
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.lambdaNm = clamp(m.lambdaNm-m.stepNm, minWavelengthNm, maxWavelengthNm)
			m.recompute()
		case "right", "l":
			m.lambdaNm = clamp(m.lambdaNm+m.stepNm, minWavelengthNm, maxWavelengthNm)
			m.recompute()
		case "up", "k":
			m.pulseFs += 5
			m.recompute()
		case "down", "j":
			m.pulseFs -= 5
			if m.pulseFs < minPulseFs {
				m.pulseFs = minPulseFs
			}
			m.recompute()
		case "f":
			if m.stepNm == 5.0 {
				m.stepNm = 0.5
			} else {
				m.stepNm = 5.0
			}
		case "d":
			m.lambdaNm = optics.DLineNm
			m.recompute()
		}
	}
	return m, nil
}

func (m *Model) recompute() {
	res, err := dispersion.Aggregate(m.stack, m.lambdaNm, m.pulseFs, m.opts)
	if err != nil {
		m.evalErr = err
		return
	}
	m.evalErr = nil
	m.result = res

	from := clamp(m.lambdaNm-sweepHalfWidthNm, minWavelengthNm, maxWavelengthNm)
	to := clamp(m.lambdaNm+sweepHalfWidthNm, minWavelengthNm, maxWavelengthNm)
	points, err := dispersion.Sweep(m.stack, from, to, sweepSteps, m.pulseFs, m.opts)
	if err != nil {
		m.evalErr = err
		return
	}
	m.sweep = points
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("DISPERSION EXPLORER") + "\n")

	if m.evalErr != nil {
		s.WriteString(errStyle.Render(m.evalErr.Error()) + "\n")
		s.WriteString(helpStyle.Render("Q:Quit"))
		return s.String()
	}

	s.WriteString(labelStyle.Render("Wavelength") + valueStyle.Render(fmt.Sprintf("%.1f nm (step %.1f)", m.lambdaNm, m.stepNm)) + "\n")
	s.WriteString(labelStyle.Render("Pulse in") + valueStyle.Render(fmt.Sprintf("%.1f fs", m.pulseFs)) + "\n")
	s.WriteString(labelStyle.Render("Path") + valueStyle.Render(fmt.Sprintf("%.2f mm (%d elements)", m.stack.TotalPathMM(), len(m.stack))) + "\n\n")

	s.WriteString(labelStyle.Render("GDD") + valueStyle.Render(fmt.Sprintf("%.3f fs²", m.result.GDDfs2)) + "\n")
	s.WriteString(labelStyle.Render("TOD") + valueStyle.Render(fmt.Sprintf("%.3f fs³", m.result.TODfs3)) + "\n")
	s.WriteString(labelStyle.Render("Pulse out") + valueStyle.Render(fmt.Sprintf("%.3f fs", m.result.PulseOutFs)) + "\n")

	if len(m.sweep) > 1 {
		data := make([]float64, len(m.sweep))
		for i, p := range m.sweep {
			data[i] = p.GDDfs2
		}
		chart := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("GDD fs² over %.0f–%.0f nm", m.sweep[0].WavelengthNm, m.sweep[len(m.sweep)-1].WavelengthNm)),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("←→:Wavelength ↑↓:Pulse F:Fine-step D:d-line Q:Quit"))
	return s.String()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
