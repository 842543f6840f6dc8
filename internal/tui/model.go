package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/taxengine/internal/calculation"
	"github.com/ledgerline/taxengine/internal/config"
	"github.com/ledgerline/taxengine/internal/domain"
)

// Model is the dashboard state: one profile, one tax year, and the results
// of all four engine entry points.
type Model struct {
	profilePath string
	taxYear     int
	engine      *calculation.Engine

	activeTab Tab
	width     int
	height    int

	profile    *domain.BusinessProfile
	assessment domain.AuditRiskAssessment
	savings    domain.TaxSavingsEstimate
	seTax      domain.SelfEmploymentTaxResult
	quarterly  domain.QuarterlyPaymentPlan

	loading bool
	err     error
}

// NewModel creates the dashboard model for a profile file and tax year.
func NewModel(profilePath string, engine *calculation.Engine, taxYear int) Model {
	return Model{
		profilePath: profilePath,
		taxYear:     taxYear,
		engine:      engine,
		activeTab:   TabOverview,
		loading:     true,
		width:       80,
		height:      24,
	}
}

// Init starts the first calculation pass.
func (m Model) Init() tea.Cmd {
	return m.loadResultsCmd()
}

// loadResultsCmd parses the profile and runs every calculator off the UI
// goroutine.
func (m Model) loadResultsCmd() tea.Cmd {
	path, year, engine := m.profilePath, m.taxYear, m.engine
	return func() tea.Msg {
		profile, err := config.NewProfileParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		savings, err := engine.EstimateTaxSavings(profile, year)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		quarterly, err := engine.EstimateQuarterlyPayments(profile, year)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		// SE tax on the same assumed profit margin the quarterly planner uses.
		estimatedProfit := profile.AnnualRevenue.Mul(decimal.NewFromFloat(0.30))
		seTax, err := engine.CalculateSelfEmploymentTax(estimatedProfit, year)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return ResultsMsg{
			Profile:    profile,
			Assessment: engine.AssessAuditRisk(profile),
			Savings:    savings,
			SETax:      seTax,
			Quarterly:  quarterly,
		}
	}
}
