package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and transitions the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResultsMsg:
		m.profile = msg.Profile
		m.assessment = msg.Assessment
		m.savings = msg.Savings
		m.seTax = msg.SETax
		m.quarterly = msg.Quarterly
		m.loading = false
		m.err = nil
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "tab", "right", "l":
		m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
		return m, nil

	case "shift+tab", "left", "h":
		m.activeTab = Tab((int(m.activeTab) + len(tabNames) - 1) % len(tabNames))
		return m, nil

	case "1", "2", "3", "4":
		m.activeTab = Tab(int(msg.String()[0] - '1'))
		return m, nil

	case "r":
		m.loading = true
		return m, m.loadResultsCmd()
	}

	return m, nil
}
