package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anyburl-go/anyburl/learn"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// progressObserver implements learn.Observer by forwarding each iteration
// snapshot to a running bubbletea program as a tea.Msg.
type progressObserver struct {
	program *tea.Program
}

func (o *progressObserver) OnIteration(stats learn.IterationStats) {
	o.program.Send(iterationMsg(stats))
}

type iterationMsg learn.IterationStats

type progressModel struct {
	latest learn.IterationStats
	done   bool
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case iterationMsg:
		m.latest = learn.IterationStats(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.done = true
			return m, tea.Quit
		}
	case doneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.latest.Iteration == 0 {
		return "starting up...\n"
	}
	return fmt.Sprintf(
		"%s %s  %s %s  %s %s  %s %s  %s %.2f\n",
		labelStyle.Render("iteration"), valueStyle.Render(fmt.Sprint(m.latest.Iteration)),
		labelStyle.Render("n"), valueStyle.Render(fmt.Sprint(m.latest.N)),
		labelStyle.Render("new rules"), valueStyle.Render(fmt.Sprint(m.latest.NewRules)),
		labelStyle.Render("total rules"), valueStyle.Render(fmt.Sprint(m.latest.TotalRules)),
		labelStyle.Render("saturation"), m.latest.Saturation,
	)
}

// doneMsg is sent once the learning run returns, so the program exits even
// if the user never presses q.
type doneMsg struct{}
