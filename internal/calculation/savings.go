package calculation

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/taxengine/internal/domain"
)

// Savings-estimate constants. The flat amounts are conservative annual
// figures; percentage components approximate a mid-bracket effective rate.
var (
	qbiEffectiveRate        = decimal.NewFromFloat(0.22)
	sCorpSalaryShare        = decimal.NewFromFloat(0.50)
	sCorpRevenueFloor       = decimal.NewFromInt(60000)
	retirementRevenueFloor  = decimal.NewFromInt(50000)
	retirementContribShare  = decimal.NewFromFloat(0.20)
	retirementContribCap    = decimal.NewFromInt(66000)
	retirementEffectiveRate = decimal.NewFromFloat(0.24)
	payrollOptimization     = decimal.NewFromInt(5000)
	contractorManagement    = decimal.NewFromInt(2000)
	homeOfficeDeduction     = decimal.NewFromInt(1500)
	vehicleDeduction        = decimal.NewFromInt(3500)
	section179Depreciation  = decimal.NewFromInt(2500)
	healthInsurance         = decimal.NewFromInt(2000)
	baseOptimizationRate    = decimal.NewFromFloat(0.15)
	savingsCeilingRate      = decimal.NewFromFloat(0.30)
)

// TaxSavingsEstimator estimates the annual savings opportunity for a
// profile under a year's rules.
type TaxSavingsEstimator struct {
	entity *EntityRecommender
}

// NewTaxSavingsEstimator creates a new savings estimator.
func NewTaxSavingsEstimator() *TaxSavingsEstimator {
	return &TaxSavingsEstimator{entity: NewEntityRecommender()}
}

// Estimate evaluates every savings rule independently, accumulates the
// breakdown, and caps the total at 30% of revenue. Zero revenue short
// circuits to an empty estimate that encourages revenue tracking.
func (e *TaxSavingsEstimator) Estimate(profile *domain.BusinessProfile, rules *domain.TaxYearRules) domain.TaxSavingsEstimate {
	estimate := domain.TaxSavingsEstimate{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
	}

	revenue := profile.AnnualRevenue
	if !revenue.IsPositive() {
		estimate.AmountDisplay = "$0"
		estimate.Opportunities = []string{
			"Start tracking your revenue to unlock personalized savings estimates",
		}
		estimate.EntityRecommendation = "Sole Proprietor (current)"
		return estimate
	}

	var componentTotal decimal.Decimal
	add := func(category string, amount decimal.Decimal, opportunity string) {
		componentTotal = componentTotal.Add(amount)
		estimate.Breakdown = append(estimate.Breakdown, domain.SavingsComponent{Category: category, Amount: amount})
		estimate.Opportunities = append(estimate.Opportunities, opportunity)
	}

	if profile.BusinessType.IsPassThrough() {
		add("QBI Pass-Through Deduction",
			revenue.Mul(rules.QBIDeductionRate).Mul(qbiEffectiveRate),
			"Claim the 20% qualified business income deduction on your pass-through earnings")
	}

	if profile.BusinessType.SelfEmployed() && revenue.GreaterThan(sCorpRevenueFloor) {
		add("S-Corp SE Tax Reduction",
			revenue.Mul(sCorpSalaryShare).Mul(rules.SelfEmploymentTaxRate),
			"An S-Corp election lets you split income between salary and distributions, cutting SE tax")
	}

	if revenue.GreaterThan(retirementRevenueFloor) {
		contribution := decimal.Min(revenue.Mul(retirementContribShare), retirementContribCap)
		add("Retirement Contributions",
			contribution.Mul(retirementEffectiveRate),
			"Fund a SEP-IRA or Solo 401(k) to defer tax on up to 20% of income")
	}

	if profile.HasFlag(domain.FlagEmployees) || profile.HasEmployees {
		add("Payroll Tax Optimization", payrollOptimization,
			"Review payroll structure and available employment tax credits")
	}

	if profile.HasFlag(domain.FlagContractors) || profile.ContractorCount > 0 {
		add("Contractor Management", contractorManagement,
			"Proper contractor classification and 1099 handling avoids penalties and captures deductions")
	}

	if !profile.HasHomeOffice && profile.BusinessType.SelfEmployed() {
		add("Home Office Deduction", homeOfficeDeduction,
			"If you work from home, the home office deduction may apply to you")
	}

	if profile.HasVehicle || profile.IndustryContains("rideshare") {
		add("Vehicle/Mileage Deduction", vehicleDeduction,
			"Track business mileage; the standard mileage rate often beats actual expenses")
	}

	if profile.HasEquipmentPurchases {
		add("Section 179 Depreciation", section179Depreciation,
			"Expense qualifying equipment purchases in full under Section 179")
	}

	if profile.BusinessType.SelfEmployed() {
		add("Self-Employed Health Insurance", healthInsurance,
			"Deduct health insurance premiums paid for yourself and your family")
	}

	// Base optimization applies to every revenue-positive profile.
	baseOptimization := revenue.Mul(baseOptimizationRate)
	estimate.Breakdown = append(estimate.Breakdown, domain.SavingsComponent{
		Category: "Base Deduction Optimization",
		Amount:   baseOptimization,
	})

	ceiling := revenue.Mul(savingsCeilingRate)
	estimate.Amount = decimal.Min(componentTotal.Add(baseOptimization), ceiling)
	estimate.AmountDisplay = formatWholeDollars(estimate.Amount)
	estimate.Percentage = int(estimate.Amount.Div(revenue).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	estimate.EntityRecommendation = e.entity.Recommend(profile.BusinessType, revenue)
	return estimate
}

// formatWholeDollars renders "$1,234" style amounts, rounded to the dollar.
func formatWholeDollars(d decimal.Decimal) string {
	whole := d.Round(0).IntPart()
	negative := whole < 0
	if negative {
		whole = -whole
	}
	s := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
