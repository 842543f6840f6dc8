package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BusinessType is the closed set of entity structures the engine understands.
type BusinessType string

const (
	SoleProprietor BusinessType = "sole_proprietor"
	LLC            BusinessType = "llc"
	SCorp          BusinessType = "s_corp"
	CCorp          BusinessType = "c_corp"
)

// ParseBusinessType maps a config string to a BusinessType.
func ParseBusinessType(s string) (BusinessType, error) {
	bt := BusinessType(strings.ToLower(strings.TrimSpace(s)))
	switch bt {
	case SoleProprietor, LLC, SCorp, CCorp:
		return bt, nil
	}
	return "", &InvalidInputError{Field: "business_type", Reason: fmt.Sprintf("unknown business type %q", s)}
}

// IsPassThrough reports whether entity income is taxed on the owner's
// personal return (sole proprietorship, LLC, S-corp).
func (bt BusinessType) IsPassThrough() bool {
	return bt == SoleProprietor || bt == LLC || bt == SCorp
}

// IsCorporate reports whether the entity has a corporate election.
func (bt BusinessType) IsCorporate() bool {
	return bt == SCorp || bt == CCorp
}

// SelfEmployed reports whether the owner pays SE tax on the full profit,
// i.e. no corporate payroll split is in place.
func (bt BusinessType) SelfEmployed() bool {
	return bt == SoleProprietor || bt == LLC
}

// Label returns the display name used in recommendations.
func (bt BusinessType) Label() string {
	switch bt {
	case SoleProprietor:
		return "Sole Proprietor"
	case LLC:
		return "LLC"
	case SCorp:
		return "S-Corp"
	case CCorp:
		return "C-Corp"
	}
	return string(bt)
}

// FilingStatus is the federal filing status used for standard deduction lookup.
type FilingStatus string

const (
	Single            FilingStatus = "single"
	MarriedJointly    FilingStatus = "married_jointly"
	MarriedSeparately FilingStatus = "married_separately"
	HeadOfHousehold   FilingStatus = "head_of_household"
)

// Complexity flag tags recognized alongside the typed profile fields.
// The flag set is open; these are the tags the scorers look for.
const (
	FlagMultipleStates = "multiple_states"
	FlagInventory      = "inventory"
	FlagEmployees      = "employees"
	FlagContractors    = "contractors"
)

// BusinessProfile is a read-only snapshot of a business assembled by the
// surrounding application. The engine never mutates or persists it.
type BusinessProfile struct {
	BusinessName                 string          `yaml:"business_name,omitempty" json:"business_name,omitempty"`
	AnnualRevenue                decimal.Decimal `yaml:"annual_revenue" json:"annual_revenue"`
	BusinessType                 BusinessType    `yaml:"business_type" json:"business_type"`
	HasEmployees                 bool            `yaml:"has_employees" json:"has_employees"`
	EmployeeCount                int             `yaml:"employee_count" json:"employee_count"`
	ContractorCount              int             `yaml:"contractor_count" json:"contractor_count"`
	HasHomeOffice                bool            `yaml:"has_home_office" json:"has_home_office"`
	HasVehicle                   bool            `yaml:"has_vehicle" json:"has_vehicle"`
	VehicleDeduction             decimal.Decimal `yaml:"vehicle_deduction" json:"vehicle_deduction"`
	ReportedLosses               int             `yaml:"reported_losses" json:"reported_losses"` // consecutive loss years
	HighCashTransactions         bool            `yaml:"high_cash_transactions" json:"high_cash_transactions"`
	LargeCharitableContributions bool            `yaml:"large_charitable_contributions" json:"large_charitable_contributions"`
	ExpenseRatio                 decimal.Decimal `yaml:"expense_ratio" json:"expense_ratio"` // 0..1, zero when unknown
	OperatingStates              []string        `yaml:"operating_states,omitempty" json:"operating_states,omitempty"`
	Industry                     string          `yaml:"industry,omitempty" json:"industry,omitempty"`
	HasEquipmentPurchases        bool            `yaml:"has_equipment_purchases" json:"has_equipment_purchases"`
	ComplexityFlags              []string        `yaml:"complexity_flags,omitempty" json:"complexity_flags,omitempty"`
}

// HasFlag reports whether the profile carries the given complexity tag.
func (p *BusinessProfile) HasFlag(flag string) bool {
	for _, f := range p.ComplexityFlags {
		if f == flag {
			return true
		}
	}
	return false
}

// MultiState reports whether the business operates in more than one state,
// from either the typed field or the complexity tag.
func (p *BusinessProfile) MultiState() bool {
	return p.HasFlag(FlagMultipleStates) || len(p.OperatingStates) > 1
}

// IndustryContains does a case-insensitive substring match on the free-text
// industry field.
func (p *BusinessProfile) IndustryContains(term string) bool {
	return strings.Contains(strings.ToLower(p.Industry), strings.ToLower(term))
}
