package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/piquad/internal/sweep"
)

const barWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type caseMsg struct {
	done  int
	total int
	rec   sweep.Record
}

type doneMsg struct {
	records []sweep.Record
	err     error
}

// Model drives a sweep in the background and renders its progress. The
// sweep itself runs in a tea.Cmd goroutine; per-case updates arrive over
// the updates channel so the view never blocks on a running case.
type Model struct {
	runner  *sweep.Runner
	cases   []sweep.Case
	exact   float64
	updates chan tea.Msg
	ctx     context.Context
	cancel  context.CancelFunc

	done     int
	last     sweep.Record
	records  []sweep.Record
	finished bool
	err      error
	started  time.Time
}

// NewModel builds a live view for one sweep. exact is the known value
// of the configured integrand's integral, used for the error readout.
func NewModel(runner *sweep.Runner, cases []sweep.Case, exact float64) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		runner:  runner,
		cases:   cases,
		exact:   exact,
		updates: make(chan tea.Msg, len(cases)),
		ctx:     ctx,
		cancel:  cancel,
		started: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.start(), m.wait())
}

func (m Model) start() tea.Cmd {
	return func() tea.Msg {
		m.runner.SetObserver(func(done, total int, rec sweep.Record) {
			m.updates <- caseMsg{done: done, total: total, rec: rec}
		})
		records, err := m.runner.Run(m.ctx, m.cases)
		return doneMsg{records: records, err: err}
	}
}

func (m Model) wait() tea.Cmd {
	return func() tea.Msg {
		return <-m.updates
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}

	case caseMsg:
		m.done = msg.done
		m.last = msg.rec
		return m, m.wait()

	case doneMsg:
		m.finished = true
		m.records = msg.records
		m.err = msg.err
		m.cancel()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("piquad sweep"))
	b.WriteString("\n")
	b.WriteString(m.progressBar())
	b.WriteString("\n\n")

	if m.done > 0 {
		b.WriteString(labelStyle.Render("case"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d steps / %d workers", m.last.Steps, m.last.Workers)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("estimate"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.12f", m.last.Estimate)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("|error|"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.3e", math.Abs(m.last.Estimate-m.exact))))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("case time"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.6f s", m.last.Elapsed.Seconds())))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("elapsed"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f s", time.Since(m.started).Seconds())))
	b.WriteString("\n")

	if m.err != nil && m.err != context.Canceled {
		b.WriteString("\n")
		b.WriteString(failStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	if m.finished && m.err == nil {
		b.WriteString(helpStyle.Render("sweep complete"))
	} else {
		b.WriteString(helpStyle.Render("q: abort"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) progressBar() string {
	total := len(m.cases)
	filled := 0
	if total > 0 {
		filled = barWidth * m.done / total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return barStyle.Render(bar) + valueStyle.Render(fmt.Sprintf(" %d/%d", m.done, total))
}

// Records returns the completed sweep records. Empty until the sweep
// finishes; partial if it was aborted.
func (m Model) Records() []sweep.Record {
	return m.records
}

func (m Model) Err() error {
	return m.err
}
