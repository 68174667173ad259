// Package tui provides an interactive explorer for one sample expression:
// nudge a variable, watch the function and its partial derivatives respond.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvask/symgrad/internal/expr"
	"github.com/rvask/symgrad/internal/funcs"
	"github.com/rvask/symgrad/internal/viz"
)

type model struct {
	sample funcs.Sample
	f      *expr.Node
	derivs map[string]*expr.Node

	at     expr.Bindings
	cursor int
	step   float64

	history []float64

	width  int
	height int
}

func newModel(sample funcs.Sample) model {
	f := sample.Build()
	derivs := make(map[string]*expr.Node, len(sample.Vars))
	for _, v := range sample.Vars {
		derivs[v] = expr.Derivative(sample.Build(), v)
	}

	at := make(expr.Bindings, len(sample.At))
	for k, v := range sample.At {
		at[k] = v
	}

	m := model{
		sample:  sample,
		f:       f,
		derivs:  derivs,
		at:      at,
		step:    0.1,
		history: make([]float64, 0, 120),
		width:   80,
		height:  24,
	}
	m.record()
	return m
}

// Run starts the explorer for the given sample and blocks until quit.
func Run(sample funcs.Sample) error {
	p := tea.NewProgram(newModel(sample))
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "down", "j":
			m.cursor = (m.cursor + 1) % len(m.sample.Vars)
		case "up", "k":
			m.cursor = (m.cursor - 1 + len(m.sample.Vars)) % len(m.sample.Vars)
		case "left", "h":
			m.at[m.selected()] -= m.step
			m.record()
		case "right", "l":
			m.at[m.selected()] += m.step
			m.record()
		case "[":
			m.step /= 2
		case "]":
			m.step *= 2
		case "r":
			for k, v := range m.sample.At {
				m.at[k] = v
			}
			m.history = m.history[:0]
			m.record()
		}
	}
	return m, nil
}

func (m model) selected() string { return m.sample.Vars[m.cursor] }

func (m *model) record() {
	if v, err := expr.Evaluate(m.f, m.at); err == nil {
		if len(m.history) == cap(m.history) {
			m.history = m.history[1:]
		}
		m.history = append(m.history, v)
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(viz.Header.Render("symgrad explore — "+m.sample.Name) + "\n\n")
	b.WriteString("  f = " + viz.Formula.Render(m.sample.Formula) + "\n")
	b.WriteString("      " + viz.Dim.Render(m.f.String()) + "\n\n")

	for _, v := range m.sample.Vars {
		b.WriteString(fmt.Sprintf("  ∂f/∂%s = %s\n", v, viz.Dim.Render(m.derivs[v].String())))
	}
	b.WriteString("\n")

	for i, v := range m.sample.Vars {
		marker := "  "
		name := viz.White.Render(v)
		if i == m.cursor {
			marker = viz.Cyan.Render("> ")
			name = viz.Cyan.Render(v)
		}
		b.WriteString(fmt.Sprintf("%s%s = %s\n", marker, name, viz.Value.Render(fmt.Sprintf("%.4f", m.at[v]))))
	}
	b.WriteString("\n")

	if fv, err := expr.Evaluate(m.f, m.at); err == nil {
		b.WriteString("  f       = " + viz.Green.Render(fmt.Sprintf("%.6f", fv)) + "\n")
	} else {
		b.WriteString("  f       = " + viz.Magenta.Render(err.Error()) + "\n")
	}
	for _, v := range m.sample.Vars {
		if dv, err := expr.Evaluate(m.derivs[v], m.at); err == nil {
			b.WriteString(fmt.Sprintf("  ∂f/∂%s   = %s\n", v, viz.Yellow.Render(fmt.Sprintf("%.6f", dv))))
		}
	}

	if len(m.history) > 1 {
		b.WriteString("\n  " + viz.Dim.Render(viz.Sparkline(m.history, 60)) + "\n")
	}

	b.WriteString("\n" + viz.KeyHint.Render(fmt.Sprintf("←/→ nudge %s by %g · tab switch · [/] step · r reset · q quit", m.selected(), m.step)) + "\n")

	return b.String()
}
