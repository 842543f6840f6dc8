package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBracket is one step of a progressive rate table. A nil Limit marks the
// top bracket (unbounded).
type TaxBracket struct {
	Rate  decimal.Decimal  `yaml:"rate" json:"rate"`
	Limit *decimal.Decimal `yaml:"limit,omitempty" json:"limit,omitempty"`
}

// Unbounded reports whether this is the top bracket.
func (b TaxBracket) Unbounded() bool {
	return b.Limit == nil
}

// TaxYearRules is the immutable rule snapshot for one tax year. Snapshots
// are constructed once by the rules repository and must never be mutated
// afterwards; they may be shared across goroutines without synchronization.
type TaxYearRules struct {
	Year                  int                              `yaml:"year" json:"year"`
	StandardDeductions    map[FilingStatus]decimal.Decimal `yaml:"standard_deductions" json:"standard_deductions"`
	TaxBrackets           []TaxBracket                     `yaml:"tax_brackets" json:"tax_brackets"`
	SelfEmploymentTaxRate decimal.Decimal                  `yaml:"self_employment_tax_rate" json:"self_employment_tax_rate"`
	QBIDeductionRate      decimal.Decimal                  `yaml:"qbi_deduction_rate" json:"qbi_deduction_rate"`
	SSWageBase            decimal.Decimal                  `yaml:"ss_wage_base" json:"ss_wage_base"`
}

// Validate checks the structural invariants of a rule snapshot: every
// standard deduction positive, a positive wage base, and a bracket table
// strictly ascending in both rate and limit with an unbounded final entry.
func (r *TaxYearRules) Validate() error {
	if r.Year <= 0 {
		return fmt.Errorf("rules year must be positive, got %d", r.Year)
	}
	if len(r.StandardDeductions) == 0 {
		return fmt.Errorf("rules for %d: standard deductions are required", r.Year)
	}
	for status, amount := range r.StandardDeductions {
		if !amount.IsPositive() {
			return fmt.Errorf("rules for %d: standard deduction for %s must be positive", r.Year, status)
		}
	}
	if !r.SSWageBase.IsPositive() {
		return fmt.Errorf("rules for %d: social security wage base must be positive", r.Year)
	}
	if len(r.TaxBrackets) == 0 {
		return fmt.Errorf("rules for %d: at least one tax bracket is required", r.Year)
	}
	for i, b := range r.TaxBrackets {
		last := i == len(r.TaxBrackets)-1
		if last {
			if !b.Unbounded() {
				return fmt.Errorf("rules for %d: final bracket must be unbounded", r.Year)
			}
		} else if b.Unbounded() {
			return fmt.Errorf("rules for %d: bracket %d must carry a limit", r.Year, i)
		}
		if i == 0 {
			continue
		}
		prev := r.TaxBrackets[i-1]
		if !b.Rate.GreaterThan(prev.Rate) {
			return fmt.Errorf("rules for %d: bracket rates must be strictly ascending (bracket %d)", r.Year, i)
		}
		if !last && !b.Limit.GreaterThan(*prev.Limit) {
			return fmt.Errorf("rules for %d: bracket limits must be strictly ascending (bracket %d)", r.Year, i)
		}
	}
	return nil
}

// MarginalRateFor returns the bracket rate that applies to the last dollar
// of the given taxable income. Display helper for the rules inspection
// surface; no calculator derives income tax from the bracket table.
func (r *TaxYearRules) MarginalRateFor(taxableIncome decimal.Decimal) decimal.Decimal {
	for _, b := range r.TaxBrackets {
		if b.Unbounded() || taxableIncome.LessThanOrEqual(*b.Limit) {
			return b.Rate
		}
	}
	return decimal.Zero
}

// StandardDeductionFor looks up the standard deduction for a filing status.
func (r *TaxYearRules) StandardDeductionFor(status FilingStatus) (decimal.Decimal, bool) {
	d, ok := r.StandardDeductions[status]
	return d, ok
}
