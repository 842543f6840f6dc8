package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/taxengine/internal/domain"
	"github.com/ledgerline/taxengine/internal/rules"
)

func rulesForYear(t *testing.T, year int) *domain.TaxYearRules {
	t.Helper()
	r, err := rules.NewRepository().RulesFor(year)
	require.NoError(t, err)
	return r
}

func TestSelfEmploymentTax_2025Reference(t *testing.T) {
	calc := NewSelfEmploymentTaxCalculator()
	result := calc.Calculate(decimal.NewFromInt(100000), rulesForYear(t, 2025))

	// netProfit=100,000 → seIncome=92,350; below both the wage base and
	// the additional-Medicare threshold.
	assert.True(t, result.SocialSecurity.Equal(decimal.NewFromFloat(11451.40)), "got %s", result.SocialSecurity)
	assert.True(t, result.Medicare.Equal(decimal.NewFromFloat(2678.15)), "got %s", result.Medicare)
	assert.True(t, result.TotalSETax.Equal(decimal.NewFromFloat(14129.55)), "got %s", result.TotalSETax)
	assert.True(t, result.DeductiblePortion.Equal(decimal.NewFromFloat(7064.775)), "got %s", result.DeductiblePortion)
	assert.True(t, result.SSWageBase.Equal(decimal.NewFromInt(176100)))
	assert.Equal(t, 2025, result.TaxYear)
}

func TestSelfEmploymentTax_WageBaseCap(t *testing.T) {
	calc := NewSelfEmploymentTaxCalculator()
	result := calc.Calculate(decimal.NewFromInt(250000), rulesForYear(t, 2025))

	// seIncome=230,875 exceeds the 176,100 wage base, so Social Security
	// caps there: 176,100 × 0.124 = 21,836.40.
	assert.True(t, result.SocialSecurity.Equal(decimal.NewFromFloat(21836.40)), "got %s", result.SocialSecurity)
}

func TestSelfEmploymentTax_AdditionalMedicareSurtax(t *testing.T) {
	calc := NewSelfEmploymentTaxCalculator()
	result := calc.Calculate(decimal.NewFromInt(250000), rulesForYear(t, 2025))

	// seIncome=230,875: base Medicare 230,875 × 0.029 = 6,695.375 plus
	// 0.9% on the 30,875 over the threshold = 277.875.
	assert.True(t, result.Medicare.Equal(decimal.NewFromFloat(6973.25)), "got %s", result.Medicare)
	assert.True(t, result.TotalSETax.Equal(decimal.NewFromFloat(28809.65)), "got %s", result.TotalSETax)
}

func TestSelfEmploymentTax_NoSurtaxBelowThreshold(t *testing.T) {
	calc := NewSelfEmploymentTaxCalculator()

	// seIncome just under 200,000: netProfit 216,000 × 0.9235 = 199,476.
	result := calc.Calculate(decimal.NewFromInt(216000), rulesForYear(t, 2025))
	expected := decimal.NewFromInt(216000).Mul(decimal.NewFromFloat(0.9235)).Mul(decimal.NewFromFloat(0.029))
	assert.True(t, result.Medicare.Equal(expected), "no surtax below 200,000 of SE income")
}

func TestSelfEmploymentTax_ZeroAndNegativeProfit(t *testing.T) {
	calc := NewSelfEmploymentTaxCalculator()
	r := rulesForYear(t, 2024)

	for _, profit := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5000)} {
		result := calc.Calculate(profit, r)
		assert.True(t, result.TotalSETax.IsZero(), "profit %s owes no SE tax", profit)
		assert.True(t, result.SocialSecurity.IsZero())
		assert.True(t, result.Medicare.IsZero())
		assert.True(t, result.DeductiblePortion.IsZero())
		assert.Equal(t, 2024, result.TaxYear, "traceability fields still set")
		assert.True(t, result.SSWageBase.Equal(decimal.NewFromInt(168600)))
	}
}

func TestSelfEmploymentTax_DeductibleIsHalf(t *testing.T) {
	calc := NewSelfEmploymentTaxCalculator()
	result := calc.Calculate(decimal.NewFromInt(80000), rulesForYear(t, 2023))

	assert.True(t, result.DeductiblePortion.Equal(result.TotalSETax.Div(decimal.NewFromInt(2))))
}
