package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridbench/search"
	"github.com/katalvlaran/gridbench/trial"
)

// probabilityStep is the wall probability change per +/- key press.
const probabilityStep = 0.05

// trialMsg carries the result of a background trial.
type trialMsg struct {
	out *trial.Outcome
	err error
}

// ExploreModel is the bubbletea model for an interactive trial session.
type ExploreModel struct {
	ctx  context.Context
	orch *trial.Orchestrator

	Probability float64
	Outcome     *trial.Outcome
	Err         error
	Busy        bool
}

// NewExploreModel creates an explorer over orch starting at wall probability p.
func NewExploreModel(ctx context.Context, orch *trial.Orchestrator, p float64) ExploreModel {
	return ExploreModel{ctx: ctx, orch: orch, Probability: p}
}

// Init runs the first trial.
func (m ExploreModel) Init() tea.Cmd {
	return m.regenerate()
}

func (m ExploreModel) regenerate() tea.Cmd {
	ctx, orch, p := m.ctx, m.orch, m.Probability
	return func() tea.Msg {
		out, err := orch.RunTrial(ctx, p)
		return trialMsg{out: out, err: err}
	}
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trialMsg:
		m.Busy = false
		m.Err = msg.err
		if msg.err == nil {
			m.Outcome = msg.out
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r", " ", "enter":
			if m.Busy {
				return m, nil
			}
			m.Busy = true
			return m, m.regenerate()
		case "b":
			m.Err = m.orch.Select(search.BreadthFirst)
		case "d":
			m.Err = m.orch.Select(search.DepthFirst)
		case "i":
			m.Err = m.orch.Select(search.IterativeDeepening)
		case "+", "=":
			m.Probability = stepProbability(m.Probability, probabilityStep)
		case "-", "_":
			m.Probability = stepProbability(m.Probability, -probabilityStep)
		case "x":
			// Ignored while a trial runs; press again once it lands.
			if !m.Busy {
				m.orch.Reset()
			}
		}
	}
	return m, nil
}

// stepProbability moves p by delta, clamped to [0,1] and rounded to hundredths.
func stepProbability(p, delta float64) float64 {
	p = math.Round((p+delta)*100) / 100
	return math.Max(0, math.Min(1, p))
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("gridbench explorer"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r regenerate  b/d/i select  +/- walls  x reset  q quit"))
	b.WriteString("\n\n")

	if m.Outcome != nil {
		tc := m.orch.Config()
		b.WriteString(renderGrid(m.Outcome.Grid, m.orch.SelectedPath(), tc.Start, tc.Goal))
		b.WriteString("\n")
		b.WriteString(legend())
		b.WriteString("\n\n")
	}

	status := fmt.Sprintf("p=%.2f  selected=%s  runs=%d", m.Probability, m.orch.Selected(), m.orch.Store().Runs())
	if m.Outcome != nil && len(m.orch.SelectedPath()) == 0 {
		status += "  " + StyleWarning.Render("no path")
	}
	if m.Busy {
		status += "  " + StyleDim.Render("running...")
	}
	b.WriteString(StyleValue.Render(status))
	b.WriteString("\n")
	if m.Err != nil {
		b.WriteString(styleIconError.Render(iconError + " " + m.Err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(summaryTable(m.orch.Store()))
	b.WriteString("\n")
	return b.String()
}
