package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/taxengine/internal/domain"
)

func TestSavings_ZeroRevenueShortCircuits(t *testing.T) {
	estimator := NewTaxSavingsEstimator()
	estimate := estimator.Estimate(&domain.BusinessProfile{
		BusinessType: domain.SoleProprietor,
	}, rulesForYear(t, 2025))

	assert.Equal(t, "$0", estimate.AmountDisplay)
	assert.True(t, estimate.Amount.IsZero())
	assert.Equal(t, 0, estimate.Percentage)
	assert.Empty(t, estimate.Breakdown)
	require.Len(t, estimate.Opportunities, 1)
	assert.Contains(t, estimate.Opportunities[0], "tracking")
	assert.Equal(t, "Sole Proprietor (current)", estimate.EntityRecommendation)
}

func TestSavings_SoleProprietorHitsCeiling(t *testing.T) {
	estimator := NewTaxSavingsEstimator()
	estimate := estimator.Estimate(&domain.BusinessProfile{
		AnnualRevenue: decimal.NewFromInt(100000),
		BusinessType:  domain.SoleProprietor,
	}, rulesForYear(t, 2025))

	// Components: QBI 4,400 + S-Corp 7,650 + retirement 4,800 + home
	// office 1,500 + health insurance 2,000 = 20,350; base 15,000. The
	// 35,350 raw total is capped at 30% of revenue.
	assert.True(t, estimate.Amount.Equal(decimal.NewFromInt(30000)), "got %s", estimate.Amount)
	assert.Equal(t, "$30,000", estimate.AmountDisplay)
	assert.Equal(t, 30, estimate.Percentage)
	assert.Len(t, estimate.Breakdown, 6, "five components plus base optimization")

	assert.True(t, estimate.BreakdownAmount("QBI Pass-Through Deduction").Equal(decimal.NewFromInt(4400)))
	assert.True(t, estimate.BreakdownAmount("S-Corp SE Tax Reduction").Equal(decimal.NewFromInt(7650)))
	assert.True(t, estimate.BreakdownAmount("Retirement Contributions").Equal(decimal.NewFromInt(4800)))
	assert.True(t, estimate.BreakdownAmount("Home Office Deduction").Equal(decimal.NewFromInt(1500)))
	assert.True(t, estimate.BreakdownAmount("Self-Employed Health Insurance").Equal(decimal.NewFromInt(2000)))
	assert.True(t, estimate.BreakdownAmount("Base Deduction Optimization").Equal(decimal.NewFromInt(15000)))
}

func TestSavings_CCorpBelowCeiling(t *testing.T) {
	estimator := NewTaxSavingsEstimator()
	estimate := estimator.Estimate(&domain.BusinessProfile{
		AnnualRevenue: decimal.NewFromInt(100000),
		BusinessType:  domain.CCorp,
		HasHomeOffice: true,
	}, rulesForYear(t, 2025))

	// C-corp skips QBI, S-Corp election, home office, and health
	// insurance; only retirement (4,800) plus the 15,000 base applies.
	assert.True(t, estimate.Amount.Equal(decimal.NewFromInt(19800)), "got %s", estimate.Amount)
	assert.Equal(t, "$19,800", estimate.AmountDisplay)
	assert.Equal(t, 20, estimate.Percentage)
	assert.Len(t, estimate.Breakdown, 2)
}

func TestSavings_CeilingNeverExceeded(t *testing.T) {
	estimator := NewTaxSavingsEstimator()
	r := rulesForYear(t, 2025)

	revenues := []int64{1, 500, 10000, 45000, 61000, 100000, 300000, 2000000}
	for _, rev := range revenues {
		revenue := decimal.NewFromInt(rev)
		estimate := estimator.Estimate(&domain.BusinessProfile{
			AnnualRevenue:         revenue,
			BusinessType:          domain.SoleProprietor,
			HasEmployees:          true,
			ContractorCount:       3,
			HasVehicle:            true,
			HasEquipmentPurchases: true,
		}, r)

		ceiling := revenue.Mul(decimal.NewFromFloat(0.30))
		assert.True(t, estimate.Amount.LessThanOrEqual(ceiling),
			"revenue %d: %s exceeds ceiling %s", rev, estimate.Amount, ceiling)
	}
}

func TestSavings_RetirementContributionCapped(t *testing.T) {
	estimator := NewTaxSavingsEstimator()

	// 20% of 500,000 is 100,000, capped at the 66,000 contribution limit:
	// 66,000 × 0.24 = 15,840.
	estimate := estimator.Estimate(&domain.BusinessProfile{
		AnnualRevenue: decimal.NewFromInt(500000),
		BusinessType:  domain.CCorp,
	}, rulesForYear(t, 2025))

	assert.True(t, estimate.BreakdownAmount("Retirement Contributions").Equal(decimal.NewFromInt(15840)))
}

func TestSavings_RideshareIndustryTriggersVehicle(t *testing.T) {
	estimator := NewTaxSavingsEstimator()
	estimate := estimator.Estimate(&domain.BusinessProfile{
		AnnualRevenue: decimal.NewFromInt(30000),
		BusinessType:  domain.SoleProprietor,
		Industry:      "Rideshare Driver",
	}, rulesForYear(t, 2025))

	assert.True(t, estimate.BreakdownAmount("Vehicle/Mileage Deduction").Equal(decimal.NewFromInt(3500)))
}

func TestSavings_FlagsSubstituteForTypedFields(t *testing.T) {
	estimator := NewTaxSavingsEstimator()
	estimate := estimator.Estimate(&domain.BusinessProfile{
		AnnualRevenue:   decimal.NewFromInt(30000),
		BusinessType:    domain.CCorp,
		ComplexityFlags: []string{domain.FlagEmployees, domain.FlagContractors},
	}, rulesForYear(t, 2025))

	assert.True(t, estimate.BreakdownAmount("Payroll Tax Optimization").Equal(decimal.NewFromInt(5000)))
	assert.True(t, estimate.BreakdownAmount("Contractor Management").Equal(decimal.NewFromInt(2000)))
}

func TestSavings_SCorpSkipsElectionAndHomeOffice(t *testing.T) {
	estimator := NewTaxSavingsEstimator()
	estimate := estimator.Estimate(&domain.BusinessProfile{
		AnnualRevenue: decimal.NewFromInt(150000),
		BusinessType:  domain.SCorp,
	}, rulesForYear(t, 2025))

	assert.True(t, estimate.BreakdownAmount("S-Corp SE Tax Reduction").IsZero(),
		"already an S-Corp, no election savings")
	assert.True(t, estimate.BreakdownAmount("Home Office Deduction").IsZero())
	assert.True(t, estimate.BreakdownAmount("QBI Pass-Through Deduction").Equal(
		decimal.NewFromInt(150000).Mul(decimal.NewFromFloat(0.20)).Mul(decimal.NewFromFloat(0.22))))
}

func TestSavings_OpportunityPerComponent(t *testing.T) {
	estimator := NewTaxSavingsEstimator()
	estimate := estimator.Estimate(&domain.BusinessProfile{
		AnnualRevenue: decimal.NewFromInt(100000),
		BusinessType:  domain.SoleProprietor,
	}, rulesForYear(t, 2025))

	// Base optimization appears in the breakdown but adds no opportunity.
	assert.Equal(t, len(estimate.Breakdown)-1, len(estimate.Opportunities))
}

func TestFormatWholeDollars(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{30000, "$30,000"},
		{1234567.89, "$1,234,568"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatWholeDollars(decimal.NewFromFloat(tt.in)))
	}
}
