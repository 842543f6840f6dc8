package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/taxengine/internal/domain"
)

const validProfileYAML = `
business_name: Maple Street Consulting
annual_revenue: 185000
business_type: llc
has_employees: true
employee_count: 2
contractor_count: 3
has_home_office: true
operating_states: [PA, NJ]
industry: consulting
expense_ratio: 0.62
complexity_flags: [employees, contractors]
`

func writeTempProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProfileParser_LoadFromFile(t *testing.T) {
	parser := NewProfileParser()
	profile, err := parser.LoadFromFile(writeTempProfile(t, validProfileYAML))
	require.NoError(t, err)

	assert.Equal(t, "Maple Street Consulting", profile.BusinessName)
	assert.True(t, profile.AnnualRevenue.Equal(decimal.NewFromInt(185000)))
	assert.Equal(t, domain.LLC, profile.BusinessType)
	assert.True(t, profile.HasEmployees)
	assert.Equal(t, 3, profile.ContractorCount)
	assert.True(t, profile.MultiState())
	assert.True(t, profile.HasFlag(domain.FlagEmployees))
}

func TestProfileParser_DefaultsBusinessType(t *testing.T) {
	parser := NewProfileParser()
	profile, err := parser.LoadFromFile(writeTempProfile(t, "annual_revenue: 5000\n"))
	require.NoError(t, err)

	assert.Equal(t, domain.SoleProprietor, profile.BusinessType)
}

func TestProfileParser_RejectsUnknownBusinessType(t *testing.T) {
	parser := NewProfileParser()
	_, err := parser.LoadFromFile(writeTempProfile(t, "business_type: partnership\n"))
	require.Error(t, err)

	var invalid *domain.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

func TestProfileParser_RejectsNegativeFields(t *testing.T) {
	parser := NewProfileParser()

	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"negative revenue", "annual_revenue: -1\n", "annual_revenue"},
		{"negative vehicle deduction", "vehicle_deduction: -500\n", "vehicle_deduction"},
		{"negative employee count", "employee_count: -1\n", "employee_count"},
		{"negative contractor count", "contractor_count: -2\n", "contractor_count"},
		{"negative loss years", "reported_losses: -3\n", "reported_losses"},
		{"expense ratio above one", "expense_ratio: 1.2\n", "expense_ratio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.LoadFromFile(writeTempProfile(t, tt.yaml))
			require.Error(t, err)

			var invalid *domain.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestProfileParser_MissingFile(t *testing.T) {
	parser := NewProfileParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestProfileParser_MalformedYAML(t *testing.T) {
	parser := NewProfileParser()
	_, err := parser.LoadFromFile(writeTempProfile(t, "annual_revenue: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
