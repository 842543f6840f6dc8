package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskLevel buckets an audit-risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// AuditRiskAssessment is the result of scoring a business profile against
// the audit-risk rule set. Created fresh per call, never persisted here.
type AuditRiskAssessment struct {
	ID              uuid.UUID `json:"id"`
	GeneratedAt     time.Time `json:"generated_at"`
	Level           RiskLevel `json:"level"`
	Score           int       `json:"score"`
	Color           string    `json:"color"`
	RiskFactors     []string  `json:"risk_factors"`
	Recommendations []string  `json:"recommendations"`
}

// SavingsComponent is one line of a savings-estimate breakdown.
type SavingsComponent struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TaxSavingsEstimate summarizes the annual savings opportunity for a
// profile. Amount is the capped total; AmountDisplay is the whole-dollar
// string the application surfaces verbatim.
type TaxSavingsEstimate struct {
	ID                   uuid.UUID          `json:"id"`
	GeneratedAt          time.Time          `json:"generated_at"`
	Amount               decimal.Decimal    `json:"amount"`
	AmountDisplay        string             `json:"amount_display"`
	Percentage           int                `json:"percentage"`
	Breakdown            []SavingsComponent `json:"breakdown"`
	Opportunities        []string           `json:"opportunities"`
	EntityRecommendation string             `json:"entity_recommendation"`
}

// BreakdownAmount returns the amount recorded for a breakdown category,
// or zero when the category is absent.
func (e *TaxSavingsEstimate) BreakdownAmount(category string) decimal.Decimal {
	for _, c := range e.Breakdown {
		if c.Category == category {
			return c.Amount
		}
	}
	return decimal.Zero
}

// SelfEmploymentTaxResult carries the SE tax decomposition plus the wage
// base and year used, for traceability.
type SelfEmploymentTaxResult struct {
	SocialSecurity    decimal.Decimal `json:"social_security"`
	Medicare          decimal.Decimal `json:"medicare"`
	TotalSETax        decimal.Decimal `json:"total_se_tax"`
	DeductiblePortion decimal.Decimal `json:"deductible_portion"`
	SSWageBase        decimal.Decimal `json:"ss_wage_base"`
	TaxYear           int             `json:"tax_year"`
}

// QuarterlyBreakdown splits an estimated annual liability by source.
type QuarterlyBreakdown struct {
	SelfEmploymentTax decimal.Decimal `json:"self_employment_tax"`
	IncomeTax         decimal.Decimal `json:"income_tax"`
}

// QuarterlyPaymentPlan is the four-installment estimated payment schedule
// for one tax year.
type QuarterlyPaymentPlan struct {
	TaxYear         int                `json:"tax_year"`
	QuarterlyAmount decimal.Decimal    `json:"quarterly_amount"`
	AnnualTotal     decimal.Decimal    `json:"annual_total"`
	DueDates        []string           `json:"due_dates"`
	Breakdown       QuarterlyBreakdown `json:"breakdown"`
}
