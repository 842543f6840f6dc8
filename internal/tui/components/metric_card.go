package components

import (
	"github.com/charmbracelet/lipgloss"
)

// MetricCard displays a single labeled metric in a bordered card.
type MetricCard struct {
	Label       string
	Value       string
	Description string
	Accent      lipgloss.Color
	Width       int
}

// NewMetricCard creates a metric card with the default width and accent.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label:  label,
		Value:  value,
		Accent: lipgloss.Color("39"),
		Width:  28,
	}
}

// WithDescription adds a subtitle line under the value.
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithAccent sets the value color.
func (m *MetricCard) WithAccent(c lipgloss.Color) *MetricCard {
	m.Accent = c
	return m
}

// Render returns the styled card.
func (m *MetricCard) Render() string {
	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render(m.Label)
	value := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Accent).
		Render(m.Value)

	content := label + "\n" + value
	if m.Description != "" {
		content += "\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Render(m.Description)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}
