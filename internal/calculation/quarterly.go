package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/taxengine/internal/domain"
)

// Quarterly-planning approximations: a flat assumed profit margin and a
// flat effective income tax rate. The bracket table is intentionally not
// consulted here.
var (
	assumedProfitMargin = decimal.NewFromFloat(0.30)
	flatIncomeTaxRate   = decimal.NewFromFloat(0.22)
	four                = decimal.NewFromInt(4)
)

// QuarterlyPaymentPlanner composes the SE tax calculator with a flat
// income-tax approximation to produce the four-installment schedule.
type QuarterlyPaymentPlanner struct {
	seTax *SelfEmploymentTaxCalculator
}

// NewQuarterlyPaymentPlanner creates a new quarterly payment planner.
func NewQuarterlyPaymentPlanner() *QuarterlyPaymentPlanner {
	return &QuarterlyPaymentPlanner{seTax: NewSelfEmploymentTaxCalculator()}
}

// Plan estimates the quarterly payments for a profile under a year's rules.
func (p *QuarterlyPaymentPlanner) Plan(profile *domain.BusinessProfile, rules *domain.TaxYearRules) domain.QuarterlyPaymentPlan {
	estimatedProfit := profile.AnnualRevenue.Mul(assumedProfitMargin)
	seTax := p.seTax.Calculate(estimatedProfit, rules)
	incomeTax := estimatedProfit.Mul(flatIncomeTaxRate)
	annualTotal := seTax.TotalSETax.Add(incomeTax)

	return domain.QuarterlyPaymentPlan{
		TaxYear:         rules.Year,
		QuarterlyAmount: annualTotal.Div(four),
		AnnualTotal:     annualTotal,
		DueDates:        PaymentDueDates(rules.Year),
		Breakdown: domain.QuarterlyBreakdown{
			SelfEmploymentTax: seTax.TotalSETax,
			IncomeTax:         incomeTax,
		},
	}
}

// PaymentDueDates returns the four estimated-payment due dates for a tax
// year. The fourth installment falls in January of the following year.
func PaymentDueDates(year int) []string {
	return []string{
		fmt.Sprintf("April 15, %d", year),
		fmt.Sprintf("June 15, %d", year),
		fmt.Sprintf("September 15, %d", year),
		fmt.Sprintf("January 15, %d", year+1),
	}
}
