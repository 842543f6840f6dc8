// Package rules holds the per-tax-year rule snapshots every calculator
// reads from. Snapshots are constructed once, validated, and immutable for
// the lifetime of the process.
package rules

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/taxengine/internal/domain"
)

// Repository maps supported tax years to immutable rule snapshots. Construct
// one in main and inject it; it is safe for concurrent readers.
type Repository struct {
	years     map[int]*domain.TaxYearRules
	supported []int
}

// NewRepository builds a repository over the built-in rule tables
// (tax years 2023 through 2026).
func NewRepository() *Repository {
	repo, err := NewRepositoryFromRules(defaultRules())
	if err != nil {
		// Built-in tables are fixed data; a failure here is a programming error.
		panic(fmt.Sprintf("built-in rule tables invalid: %v", err))
	}
	return repo
}

// NewRepositoryFromRules builds a repository from explicit snapshots,
// validating each against the bracket and deduction invariants.
func NewRepositoryFromRules(all []domain.TaxYearRules) (*Repository, error) {
	years := make(map[int]*domain.TaxYearRules, len(all))
	supported := make([]int, 0, len(all))
	for i := range all {
		r := all[i]
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule table rejected: %w", err)
		}
		if _, dup := years[r.Year]; dup {
			return nil, fmt.Errorf("duplicate rule table for year %d", r.Year)
		}
		years[r.Year] = &r
		supported = append(supported, r.Year)
	}
	if len(supported) == 0 {
		return nil, fmt.Errorf("no rule tables supplied")
	}
	sort.Ints(supported)
	return &Repository{years: years, supported: supported}, nil
}

// RulesFor returns the snapshot for a tax year, or an UnsupportedYearError
// naming the supported set.
func (r *Repository) RulesFor(year int) (*domain.TaxYearRules, error) {
	rules, ok := r.years[year]
	if !ok {
		return nil, &domain.UnsupportedYearError{Year: year, Supported: r.SupportedYears()}
	}
	return rules, nil
}

// SupportedYears returns the supported tax years in ascending order.
func (r *Repository) SupportedYears() []int {
	out := make([]int, len(r.supported))
	copy(out, r.supported)
	return out
}

// LatestYear returns the most recent supported tax year.
func (r *Repository) LatestYear() int {
	return r.supported[len(r.supported)-1]
}

// The SE tax rate (12.4% social security + 2.9% medicare) and the QBI
// deduction rate are identical across the supported years; only the wage
// base, deductions, and bracket limits move.
var (
	seTaxRate = decimal.NewFromFloat(0.153)
	qbiRate   = decimal.NewFromFloat(0.20)
)

func limit(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func rate(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func brackets(limits [6]int64) []domain.TaxBracket {
	rates := [7]float64{0.10, 0.12, 0.22, 0.24, 0.32, 0.35, 0.37}
	out := make([]domain.TaxBracket, 0, 7)
	for i, lim := range limits {
		out = append(out, domain.TaxBracket{Rate: rate(rates[i]), Limit: limit(lim)})
	}
	return append(out, domain.TaxBracket{Rate: rate(rates[6])})
}

func deductions(single, joint, separate, head int64) map[domain.FilingStatus]decimal.Decimal {
	return map[domain.FilingStatus]decimal.Decimal{
		domain.Single:            decimal.NewFromInt(single),
		domain.MarriedJointly:    decimal.NewFromInt(joint),
		domain.MarriedSeparately: decimal.NewFromInt(separate),
		domain.HeadOfHousehold:   decimal.NewFromInt(head),
	}
}

func defaultRules() []domain.TaxYearRules {
	return []domain.TaxYearRules{
		{
			Year:                  2023,
			StandardDeductions:    deductions(13850, 27700, 13850, 20800),
			TaxBrackets:           brackets([6]int64{11000, 44725, 95375, 182100, 231250, 578125}),
			SelfEmploymentTaxRate: seTaxRate,
			QBIDeductionRate:      qbiRate,
			SSWageBase:            decimal.NewFromInt(160200),
		},
		{
			Year:                  2024,
			StandardDeductions:    deductions(14600, 29200, 14600, 21900),
			TaxBrackets:           brackets([6]int64{11600, 47150, 100525, 191950, 243725, 609350}),
			SelfEmploymentTaxRate: seTaxRate,
			QBIDeductionRate:      qbiRate,
			SSWageBase:            decimal.NewFromInt(168600),
		},
		{
			Year:                  2025,
			StandardDeductions:    deductions(15000, 30000, 15000, 22500),
			TaxBrackets:           brackets([6]int64{11925, 48475, 103350, 197300, 250525, 626350}),
			SelfEmploymentTaxRate: seTaxRate,
			QBIDeductionRate:      qbiRate,
			SSWageBase:            decimal.NewFromInt(176100),
		},
		{
			Year:                  2026,
			StandardDeductions:    deductions(16100, 32200, 16100, 24150),
			TaxBrackets:           brackets([6]int64{12400, 50400, 107600, 205325, 260550, 651600}),
			SelfEmploymentTaxRate: seTaxRate,
			QBIDeductionRate:      qbiRate,
			SSWageBase:            decimal.NewFromInt(184500),
		},
	}
}
