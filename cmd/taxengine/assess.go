package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerline/taxengine/internal/config"
	"github.com/ledgerline/taxengine/internal/domain"
	"github.com/ledgerline/taxengine/internal/output"
)

var assessCmd = &cobra.Command{
	Use:   "assess [profile-file...]",
	Short: "Assess audit risk for one or more business profiles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		format, err := reportFormat()
		if err != nil {
			return err
		}

		parser := config.NewProfileParser()
		profiles := make([]*domain.BusinessProfile, 0, len(args))
		for _, path := range args {
			profile, err := parser.LoadFromFile(path)
			if err != nil {
				return err
			}
			profiles = append(profiles, profile)
		}
		slog.Debug("assessing profiles", "count", len(profiles))

		assessments := engine.AssessAuditRiskBatch(profiles)
		gen := output.NewReportGenerator()
		for i := range assessments {
			if len(args) > 1 && format == output.FormatConsole {
				fmt.Fprintf(os.Stdout, "--- %s ---\n", args[i])
			}
			if err := gen.WriteAuditRisk(os.Stdout, &assessments[i], format); err != nil {
				return err
			}
		}
		return nil
	},
}
