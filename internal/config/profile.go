// Package config parses and validates the YAML inputs the CLI and TUI feed
// to the engine: business profiles.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ledgerline/taxengine/internal/domain"
)

// ProfileParser loads business-profile snapshots from YAML files.
type ProfileParser struct{}

// NewProfileParser creates a new profile parser.
func NewProfileParser() *ProfileParser {
	return &ProfileParser{}
}

// LoadFromFile reads and validates a business profile.
func (pp *ProfileParser) LoadFromFile(filename string) (*domain.BusinessProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", filename, err)
	}

	var profile domain.BusinessProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, err)
	}

	if err := pp.Validate(&profile); err != nil {
		return nil, fmt.Errorf("profile %s: %w", filename, err)
	}
	return &profile, nil
}

// Validate checks the profile invariants: known business type, no negative
// currency or count fields, expense ratio inside [0, 1].
func (pp *ProfileParser) Validate(profile *domain.BusinessProfile) error {
	if profile.BusinessType != "" {
		bt, err := domain.ParseBusinessType(string(profile.BusinessType))
		if err != nil {
			return err
		}
		profile.BusinessType = bt
	} else {
		// Unstructured businesses default to sole proprietorship.
		profile.BusinessType = domain.SoleProprietor
	}

	if profile.AnnualRevenue.IsNegative() {
		return &domain.InvalidInputError{Field: "annual_revenue", Reason: "must not be negative"}
	}
	if profile.VehicleDeduction.IsNegative() {
		return &domain.InvalidInputError{Field: "vehicle_deduction", Reason: "must not be negative"}
	}
	if profile.EmployeeCount < 0 {
		return &domain.InvalidInputError{Field: "employee_count", Reason: "must not be negative"}
	}
	if profile.ContractorCount < 0 {
		return &domain.InvalidInputError{Field: "contractor_count", Reason: "must not be negative"}
	}
	if profile.ReportedLosses < 0 {
		return &domain.InvalidInputError{Field: "reported_losses", Reason: "must not be negative"}
	}
	if profile.ExpenseRatio.IsNegative() || profile.ExpenseRatio.GreaterThan(decimal.NewFromInt(1)) {
		return &domain.InvalidInputError{Field: "expense_ratio", Reason: "must be between 0 and 1"}
	}
	return nil
}
