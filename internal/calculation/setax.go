// Package calculation implements the deterministic tax calculators. Every
// calculator is a pure function of its inputs and an immutable rule
// snapshot; none performs I/O or holds mutable state.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/taxengine/internal/domain"
)

// SE TAX CONSTANTS:
//
// The 92.35% net-earnings factor, the 12.4%/2.9% FICA split, and the 0.9%
// additional Medicare rate are statutory and have not moved in the
// supported year range, so they live here rather than in the rule tables.
// The $200,000 additional-Medicare threshold is applied without regard to
// filing status — a known simplification.
var (
	netEarningsFactor           = decimal.NewFromFloat(0.9235)
	socialSecurityRate          = decimal.NewFromFloat(0.124)
	medicareRate                = decimal.NewFromFloat(0.029)
	additionalMedicareRate      = decimal.NewFromFloat(0.009)
	additionalMedicareThreshold = decimal.NewFromInt(200000)
	deductibleShare             = decimal.NewFromFloat(0.50)
)

// SelfEmploymentTaxCalculator computes SE tax from net profit and a rule
// snapshot.
type SelfEmploymentTaxCalculator struct{}

// NewSelfEmploymentTaxCalculator creates a new SE tax calculator.
func NewSelfEmploymentTaxCalculator() *SelfEmploymentTaxCalculator {
	return &SelfEmploymentTaxCalculator{}
}

// Calculate returns the SE tax decomposition for a year's net profit.
// Zero or negative profit owes no SE tax.
func (c *SelfEmploymentTaxCalculator) Calculate(netProfit decimal.Decimal, rules *domain.TaxYearRules) domain.SelfEmploymentTaxResult {
	result := domain.SelfEmploymentTaxResult{
		SSWageBase: rules.SSWageBase,
		TaxYear:    rules.Year,
	}
	if !netProfit.IsPositive() {
		return result
	}

	seIncome := netProfit.Mul(netEarningsFactor)

	// Social Security applies only up to the wage base.
	result.SocialSecurity = decimal.Min(seIncome, rules.SSWageBase).Mul(socialSecurityRate)

	// Medicare has no ceiling, plus a 0.9% surtax on the excess over the
	// additional-Medicare threshold.
	result.Medicare = seIncome.Mul(medicareRate)
	if seIncome.GreaterThan(additionalMedicareThreshold) {
		excess := seIncome.Sub(additionalMedicareThreshold)
		result.Medicare = result.Medicare.Add(excess.Mul(additionalMedicareRate))
	}

	result.TotalSETax = result.SocialSecurity.Add(result.Medicare)
	result.DeductiblePortion = result.TotalSETax.Mul(deductibleShare)
	return result
}
