// Package tui shows benchmark trials completing one after another.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sinebench/internal/bench"
)

const barWidth = 30

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466")).Padding(1, 2)
)

// ResultMsg carries a finished trial back into the update loop.
type ResultMsg bench.Result

// Model runs one trial per command so each block still executes alone and
// to completion. The suite is run repeat times back to back.
type Model struct {
	harness   *bench.Harness
	trials    []bench.Trial
	history   [][]bench.Result
	results   []bench.Result
	next      int
	runs      int
	repeat    int
	precision int
	quitting  bool
}

func NewModel(h *bench.Harness, repeat, precision int) Model {
	if repeat < 1 {
		repeat = 1
	}
	return Model{
		harness:   h,
		trials:    h.Trials(),
		repeat:    repeat,
		precision: precision,
	}
}

func (m Model) Init() tea.Cmd {
	return m.runNext()
}

func (m Model) runNext() tea.Cmd {
	if m.next >= len(m.trials) {
		return nil
	}
	h, t := m.harness, m.trials[m.next]
	return func() tea.Msg {
		return ResultMsg(h.RunTrial(t))
	}
}

// Done reports whether every trial of every run has finished.
func (m Model) Done() bool { return m.next >= len(m.trials) }

// Results returns the results of the run in progress, or of the last run
// once Done.
func (m Model) Results() []bench.Result {
	return append([]bench.Result(nil), m.results...)
}

// Runs returns every completed run in order.
func (m Model) Runs() [][]bench.Result {
	runs := append([][]bench.Result(nil), m.history...)
	if m.Done() {
		runs = append(runs, m.Results())
	}
	return runs
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if m.Done() {
				m.history = nil
				m.results = nil
				m.next = 0
				m.runs = 0
				return m, m.runNext()
			}
		}
	case ResultMsg:
		m.results = append(m.results, bench.Result(msg))
		m.next++
		if m.Done() && m.runs+1 < m.repeat {
			m.history = append(m.history, m.results)
			m.results = nil
			m.next = 0
			m.runs++
		}
		return m, m.runNext()
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("SINE STRATEGIES  run %d/%d", m.runs+1, m.repeat)) + "\n")

	slowest := 0.0
	for _, r := range m.results {
		if per := perCall(r); per > slowest {
			slowest = per
		}
	}

	for i, t := range m.trials {
		label := labelStyle.Render(t.Strategy.Label())
		switch {
		case i < len(m.results):
			r := m.results[i]
			filled := 0
			if slowest > 0 {
				filled = int(perCall(r) / slowest * barWidth)
			}
			bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
			s.WriteString(label + valueStyle.Render(fmt.Sprintf("%.*fs  ", m.precision, r.Seconds())) +
				barStyle.Render(bar) + valueStyle.Render(fmt.Sprintf("  %.2f ns/call  last %.*f", perCall(r), m.precision, r.Last)) + "\n")
		case i == m.next:
			s.WriteString(label + runningStyle.Render(fmt.Sprintf("running %d x %d", t.Repetitions, bench.Sweep)) + "\n")
		default:
			s.WriteString(label + pendingStyle.Render("pending") + "\n")
		}
	}

	help := "Q:Quit"
	if m.Done() {
		help = "R:Rerun  Q:Quit"
	}
	s.WriteString(helpStyle.Render(help))
	return panelStyle.Render(s.String())
}

func perCall(r bench.Result) float64 {
	if r.Calls == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Calls)
}
