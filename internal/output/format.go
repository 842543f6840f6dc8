// Package output renders calculator results as console, JSON, or CSV
// reports.
package output

import (
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal amount as currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatRate formats a fractional rate (0.153) as a percentage (15.30%).
func FormatRate(rate decimal.Decimal) string {
	return FormatPercentage(rate.Mul(decimal.NewFromInt(100)))
}
