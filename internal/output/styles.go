package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerline/taxengine/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	riskLowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("40"))

	riskMediumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	riskHighStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("202"))
)

// RiskLevelStyle maps a risk level to its terminal style, mirroring the
// green / orange / red-orange color scheme of the assessment itself.
func RiskLevelStyle(level domain.RiskLevel) lipgloss.Style {
	switch level {
	case domain.RiskLow:
		return riskLowStyle
	case domain.RiskMedium:
		return riskMediumStyle
	default:
		return riskHighStyle
	}
}
