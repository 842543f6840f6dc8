package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ledgerline/taxengine/internal/calculation"
	"github.com/ledgerline/taxengine/internal/output"
	"github.com/ledgerline/taxengine/internal/rules"
	"github.com/ledgerline/taxengine/pkg/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagRulesFile string
	flagFormat    string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "taxengine",
	Short: "Small-business tax calculation engine CLI",
	Long:  "Deterministic audit-risk, savings, SE tax, and quarterly payment calculators for small businesses",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logging.SetupWithLevel(slog.LevelDebug)
		} else {
			logging.Setup()
		}
	},
}

// buildEngine constructs the engine over either the built-in rule tables or
// a rule override file.
func buildEngine() (*calculation.Engine, error) {
	if flagRulesFile != "" {
		slog.Debug("loading rule overrides", "path", flagRulesFile)
		repo, err := rules.LoadFile(flagRulesFile)
		if err != nil {
			return nil, err
		}
		return calculation.NewEngine(repo), nil
	}
	return calculation.NewEngine(rules.NewRepository()), nil
}

// resolveYear defaults a zero --tax-year flag to the latest supported year.
func resolveYear(engine *calculation.Engine, year int) int {
	if year == 0 {
		return engine.SupportedYears()[len(engine.SupportedYears())-1]
	}
	return year
}

func reportFormat() (output.Format, error) {
	return output.ParseFormat(flagFormat)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxengine %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Display the rule snapshot for a tax year",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		format, err := reportFormat()
		if err != nil {
			return err
		}

		year, _ := cmd.Flags().GetInt("tax-year")
		r, err := engine.RulesFor(resolveYear(engine, year))
		if err != nil {
			return err
		}

		gen := output.NewReportGenerator()
		if err := gen.WriteRules(os.Stdout, r, format); err != nil {
			return err
		}

		if income, _ := cmd.Flags().GetInt64("marginal-for"); income > 0 && format == output.FormatConsole {
			rate := r.MarginalRateFor(decimalFromInt(income))
			fmt.Fprintf(os.Stdout, "\nMarginal rate at %s taxable income: %s\n",
				output.FormatCurrency(decimalFromInt(income)), output.FormatRate(rate))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRulesFile, "rules-file", "", "YAML rule override file (replaces built-in tables)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "console", "Output format (console, json, csv)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rulesCmd.Flags().Int("tax-year", 0, "Tax year (default: latest supported)")
	rulesCmd.Flags().Int64("marginal-for", 0, "Also show the marginal rate at this taxable income")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(savingsCmd)
	rootCmd.AddCommand(seTaxCmd)
	rootCmd.AddCommand(quarterlyCmd)
	rootCmd.AddCommand(entityCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
