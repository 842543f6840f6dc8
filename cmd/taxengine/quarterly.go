package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerline/taxengine/internal/config"
	"github.com/ledgerline/taxengine/internal/output"
)

var quarterlyCmd = &cobra.Command{
	Use:   "quarterly [profile-file]",
	Short: "Estimate quarterly tax payments for a business profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		format, err := reportFormat()
		if err != nil {
			return err
		}

		profile, err := config.NewProfileParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		year, _ := cmd.Flags().GetInt("tax-year")
		plan, err := engine.EstimateQuarterlyPayments(profile, resolveYear(engine, year))
		if err != nil {
			return err
		}
		return output.NewReportGenerator().WriteQuarterly(os.Stdout, &plan, format)
	},
}

func init() {
	quarterlyCmd.Flags().Int("tax-year", 0, "Tax year (default: latest supported)")
}
