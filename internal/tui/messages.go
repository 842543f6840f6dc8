package tui

import (
	"github.com/ledgerline/taxengine/internal/domain"
)

// Tab identifies a dashboard view.
type Tab int

const (
	TabOverview Tab = iota
	TabRisk
	TabSavings
	TabQuarterly
)

var tabNames = []string{"Overview", "Audit Risk", "Savings", "Quarterly"}

// Message types for the Bubble Tea update cycle.

// ResultsMsg carries a freshly computed set of engine results.
type ResultsMsg struct {
	Profile    *domain.BusinessProfile
	Assessment domain.AuditRiskAssessment
	Savings    domain.TaxSavingsEstimate
	SETax      domain.SelfEmploymentTaxResult
	Quarterly  domain.QuarterlyPaymentPlan
}

// ErrorMsg surfaces a load or calculation failure.
type ErrorMsg struct {
	Err error
}
