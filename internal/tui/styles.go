package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerline/taxengine/internal/domain"
)

var (
	ColorPrimary = lipgloss.Color("39")
	ColorMuted   = lipgloss.Color("245")
	ColorBorder  = lipgloss.Color("238")
	ColorLow     = lipgloss.Color("40")
	ColorMedium  = lipgloss.Color("214")
	ColorHigh    = lipgloss.Color("202")
	ColorError   = lipgloss.Color("196")

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true)

	ListItemStyle = lipgloss.NewStyle().PaddingLeft(2)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// RiskColor maps a risk level to its terminal color.
func RiskColor(level domain.RiskLevel) lipgloss.Color {
	switch level {
	case domain.RiskLow:
		return ColorLow
	case domain.RiskMedium:
		return ColorMedium
	default:
		return ColorHigh
	}
}
