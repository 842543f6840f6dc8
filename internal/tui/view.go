package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ledgerline/taxengine/internal/output"
	"github.com/ledgerline/taxengine/internal/tui/components"
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Tax Engine Dashboard"))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s — tax year %d", m.profilePath, m.taxYear)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(StatusBarStyle.Render("r: retry • q: quit"))
		return AppStyle.Render(b.String())
	}
	if m.loading {
		b.WriteString(SubtitleStyle.Render("Calculating..."))
		return AppStyle.Render(b.String())
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.activeTab {
	case TabRisk:
		b.WriteString(m.renderRisk())
	case TabSavings:
		b.WriteString(m.renderSavings())
	case TabQuarterly:
		b.WriteString(m.renderQuarterly())
	default:
		b.WriteString(m.renderOverview())
	}

	b.WriteString("\n\n")
	b.WriteString(StatusBarStyle.Render("tab/←→: switch view • r: reload • q: quit"))
	return AppStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs[i] = ActiveTabStyle.Render(name)
		} else {
			tabs[i] = TabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderOverview() string {
	cards := []string{
		components.NewMetricCard("Audit Risk", fmt.Sprintf("%d/100", m.assessment.Score)).
			WithDescription(string(m.assessment.Level)).
			WithAccent(RiskColor(m.assessment.Level)).
			Render(),
		components.NewMetricCard("Est. Annual Savings", m.savings.AmountDisplay).
			WithDescription(fmt.Sprintf("%d%% of revenue", m.savings.Percentage)).
			Render(),
		components.NewMetricCard("Quarterly Payment", output.FormatCurrency(m.quarterly.QuarterlyAmount)).
			WithDescription("next due "+m.quarterly.DueDates[0]).
			Render(),
		components.NewMetricCard("SE Tax (est.)", output.FormatCurrency(m.seTax.TotalSETax)).
			WithDescription(fmt.Sprintf("wage base %s", output.FormatCurrency(m.seTax.SSWageBase))).
			Render(),
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], " ", cards[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m Model) renderRisk() string {
	var b strings.Builder
	gauge := components.NewRiskGauge(m.assessment.Score, string(m.assessment.Level), RiskColor(m.assessment.Level))
	b.WriteString(gauge.Render())
	b.WriteString("\n\n")
	b.WriteString(TitleStyle.Render("Risk Factors"))
	b.WriteString("\n")
	for _, f := range m.assessment.RiskFactors {
		b.WriteString(ListItemStyle.Render("• " + f))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Recommendations"))
	b.WriteString("\n")
	for _, r := range m.assessment.Recommendations {
		b.WriteString(ListItemStyle.Render("• " + r))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSavings() string {
	var b strings.Builder
	b.WriteString(components.NewMetricCard("Estimated Annual Savings", m.savings.AmountDisplay).
		WithDescription(fmt.Sprintf("%d%% of revenue", m.savings.Percentage)).
		Render())
	b.WriteString("\n\n")
	b.WriteString(TitleStyle.Render("Breakdown"))
	b.WriteString("\n")
	for _, c := range m.savings.Breakdown {
		b.WriteString(ListItemStyle.Render(fmt.Sprintf("%-34s %s", c.Category, output.FormatCurrency(c.Amount))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Entity: " + m.savings.EntityRecommendation))
	return b.String()
}

func (m Model) renderQuarterly() string {
	var b strings.Builder
	b.WriteString(components.NewMetricCard("Quarterly Amount", output.FormatCurrency(m.quarterly.QuarterlyAmount)).
		WithDescription("annual "+output.FormatCurrency(m.quarterly.AnnualTotal)).
		Render())
	b.WriteString("\n\n")
	b.WriteString(TitleStyle.Render("Due Dates"))
	b.WriteString("\n")
	for i, d := range m.quarterly.DueDates {
		b.WriteString(ListItemStyle.Render(fmt.Sprintf("Q%d  %s", i+1, d)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("SE tax %s • income tax %s",
		output.FormatCurrency(m.quarterly.Breakdown.SelfEmploymentTax),
		output.FormatCurrency(m.quarterly.Breakdown.IncomeTax))))
	return b.String()
}
