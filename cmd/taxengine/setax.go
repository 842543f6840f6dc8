package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerline/taxengine/internal/output"
)

func decimalFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

var seTaxCmd = &cobra.Command{
	Use:   "se-tax [net-profit]",
	Short: "Calculate self-employment tax on a year's net profit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		netProfit, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("net profit must be numeric: %w", err)
		}

		engine, err := buildEngine()
		if err != nil {
			return err
		}
		format, err := reportFormat()
		if err != nil {
			return err
		}

		year, _ := cmd.Flags().GetInt("tax-year")
		result, err := engine.CalculateSelfEmploymentTax(netProfit, resolveYear(engine, year))
		if err != nil {
			return err
		}
		return output.NewReportGenerator().WriteSETax(os.Stdout, &result, format)
	},
}

func init() {
	seTaxCmd.Flags().Int("tax-year", 0, "Tax year (default: latest supported)")
}
