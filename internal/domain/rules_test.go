package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func limitOf(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func validRules() TaxYearRules {
	return TaxYearRules{
		Year: 2025,
		StandardDeductions: map[FilingStatus]decimal.Decimal{
			Single:         decimal.NewFromInt(15000),
			MarriedJointly: decimal.NewFromInt(30000),
		},
		TaxBrackets: []TaxBracket{
			{Rate: dec(0.10), Limit: limitOf(11925)},
			{Rate: dec(0.12), Limit: limitOf(48475)},
			{Rate: dec(0.22)},
		},
		SelfEmploymentTaxRate: dec(0.153),
		QBIDeductionRate:      dec(0.20),
		SSWageBase:            decimal.NewFromInt(176100),
	}
}

func TestTaxYearRules_Validate(t *testing.T) {
	r := validRules()
	require.NoError(t, r.Validate())
}

func TestTaxYearRules_Validate_BoundedFinalBracket(t *testing.T) {
	r := validRules()
	r.TaxBrackets[len(r.TaxBrackets)-1].Limit = limitOf(999999)

	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "final bracket must be unbounded")
}

func TestTaxYearRules_Validate_DescendingRate(t *testing.T) {
	r := validRules()
	r.TaxBrackets[1].Rate = dec(0.05)

	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rates must be strictly ascending")
}

func TestTaxYearRules_Validate_DescendingLimit(t *testing.T) {
	r := validRules()
	r.TaxBrackets[1].Limit = limitOf(10000)

	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limits must be strictly ascending")
}

func TestTaxYearRules_Validate_MissingMiddleLimit(t *testing.T) {
	r := validRules()
	r.TaxBrackets[1].Limit = nil

	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must carry a limit")
}

func TestTaxYearRules_Validate_NonPositiveDeduction(t *testing.T) {
	r := validRules()
	r.StandardDeductions[Single] = decimal.Zero

	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestTaxYearRules_MarginalRateFor(t *testing.T) {
	r := validRules()

	assert.True(t, r.MarginalRateFor(decimal.NewFromInt(5000)).Equal(dec(0.10)))
	assert.True(t, r.MarginalRateFor(decimal.NewFromInt(11925)).Equal(dec(0.10)), "limit is inclusive")
	assert.True(t, r.MarginalRateFor(decimal.NewFromInt(11926)).Equal(dec(0.12)))
	assert.True(t, r.MarginalRateFor(decimal.NewFromInt(1000000)).Equal(dec(0.22)), "top bracket is unbounded")
}

func TestTaxYearRules_StandardDeductionFor(t *testing.T) {
	r := validRules()

	d, ok := r.StandardDeductionFor(MarriedJointly)
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(30000)))

	_, ok = r.StandardDeductionFor(HeadOfHousehold)
	assert.False(t, ok)
}
