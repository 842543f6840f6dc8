package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerline/taxengine/internal/domain"
)

var entityCmd = &cobra.Command{
	Use:   "entity [business-type] [annual-revenue]",
	Short: "Recommend an entity structure for a business type and revenue",
	Long:  "Business type is one of: sole_proprietor, llc, s_corp, c_corp",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bt, err := domain.ParseBusinessType(args[0])
		if err != nil {
			return err
		}
		revenue, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("annual revenue must be numeric: %w", err)
		}

		engine, err := buildEngine()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, engine.RecommendEntity(bt, revenue))
		return nil
	},
}
