package calculation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/taxengine/internal/domain"
)

// Audit-risk scoring thresholds.
var (
	highRevenueThreshold     = decimal.NewFromInt(500000)
	elevatedRevenueThreshold = decimal.NewFromInt(100000)
	expenseRatioThreshold    = decimal.NewFromFloat(0.80)
)

const (
	maxRiskScore        = 100
	mediumRiskThreshold = 30
	highRiskThreshold   = 60
	lossYearsThreshold  = 3
)

// AuditRiskScorer scores a business profile against an additive rule set.
// Scoring has no tax-year dependency.
type AuditRiskScorer struct{}

// NewAuditRiskScorer creates a new audit risk scorer.
func NewAuditRiskScorer() *AuditRiskScorer {
	return &AuditRiskScorer{}
}

// Assess evaluates every risk rule independently, sums the triggered
// weights (clamped to 100), and buckets the score into a level. The factor
// list is never empty: a profile triggering nothing gets a placeholder.
func (s *AuditRiskScorer) Assess(profile *domain.BusinessProfile) domain.AuditRiskAssessment {
	score := 0
	var factors []string
	var recommendations []string

	add := func(weight int, factor string, recs ...string) {
		score += weight
		factors = append(factors, factor)
		recommendations = append(recommendations, recs...)
	}

	revenue := profile.AnnualRevenue
	switch {
	case revenue.GreaterThan(highRevenueThreshold):
		add(25, "High revenue businesses face increased audit scrutiny")
	case revenue.GreaterThan(elevatedRevenueThreshold):
		add(15, "Revenue above $100K receives additional IRS attention")
	}

	if profile.HasEmployees {
		add(20, "Payroll tax compliance is a common audit trigger",
			"File quarterly payroll returns (Form 941) accurately and on time",
			"Reconcile W-2s against W-3 totals before filing")
	}

	if profile.MultiState() {
		add(30, "Multi-state operations increase filing complexity and audit exposure",
			"Track revenue apportionment by state",
			"Confirm nexus and registration requirements in each operating state")
	}

	if profile.HasFlag(domain.FlagInventory) {
		add(15, "Inventory accounting methods draw IRS review",
			"Take a physical inventory count at year end and retain the records")
	}

	if profile.ContractorCount > 0 {
		add(10, "Contractor payments require 1099 reporting",
			"Issue 1099-NEC forms to contractors by January 31")
	}

	if profile.HasHomeOffice {
		add(12, "Home office deductions are frequently examined",
			"Measure and photograph the dedicated business space",
			"Use the space exclusively and regularly for business")
	}

	if profile.HasVehicle || profile.VehicleDeduction.IsPositive() {
		add(10, "Vehicle deductions require contemporaneous records",
			"Keep a mileage log with date, destination, and business purpose",
			"Separate personal and business vehicle use")
	}

	if profile.ReportedLosses >= lossYearsThreshold {
		add(20, "Repeated losses invite hobby-loss scrutiny",
			"Document profit motive: business plan, marketing efforts, expertise")
	}

	if profile.HighCashTransactions {
		add(15, "Cash-intensive businesses face heightened income verification",
			"Deposit all receipts and reconcile daily cash logs against deposits")
	}

	if profile.LargeCharitableContributions {
		add(8, "Large charitable deductions relative to income attract review",
			"Retain written acknowledgments for all contributions over $250")
	}

	if revenue.IsPositive() && profile.ExpenseRatio.GreaterThan(expenseRatioThreshold) {
		add(15, "Expense ratio above 80% of revenue is an audit flag",
			"Review expense categorization and retain receipts for every deduction")
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}

	if len(factors) == 0 {
		factors = append(factors, "Standard business operations")
		recommendations = append(recommendations, "Continue maintaining good records")
	}

	assessment := domain.AuditRiskAssessment{
		ID:              uuid.New(),
		GeneratedAt:     time.Now().UTC(),
		Score:           score,
		RiskFactors:     factors,
		Recommendations: recommendations,
	}

	switch {
	case score < mediumRiskThreshold:
		assessment.Level = domain.RiskLow
		assessment.Color = "green"
	case score < highRiskThreshold:
		assessment.Level = domain.RiskMedium
		assessment.Color = "orange"
		assessment.Recommendations = append(assessment.Recommendations,
			"Consider consulting a tax professional to review your risk areas")
	default:
		assessment.Level = domain.RiskHigh
		assessment.Color = "red-orange"
		assessment.Recommendations = append(assessment.Recommendations,
			"Engage a professional tax preparer for your return",
			"Consider audit-protection coverage")
	}

	return assessment
}
