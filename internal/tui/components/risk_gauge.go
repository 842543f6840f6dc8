package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// RiskGauge renders an audit-risk score as a horizontal bar out of 100.
type RiskGauge struct {
	Score int
	Level string
	Color lipgloss.Color
	Width int
}

// NewRiskGauge creates a gauge for a score and level.
func NewRiskGauge(score int, level string, color lipgloss.Color) *RiskGauge {
	return &RiskGauge{
		Score: score,
		Level: level,
		Color: color,
		Width: 40,
	}
}

// Render returns the styled gauge with its numeric caption.
func (g *RiskGauge) Render() string {
	bar := progress.New(
		progress.WithSolidFill(string(g.Color)),
		progress.WithWidth(g.Width),
		progress.WithoutPercentage(),
	)
	caption := lipgloss.NewStyle().
		Bold(true).
		Foreground(g.Color).
		Render(fmt.Sprintf(" %d/100 %s", g.Score, g.Level))
	return bar.ViewAs(float64(g.Score)/100.0) + caption
}
