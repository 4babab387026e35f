package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// DefaultContingencyPercent is the rehab form's initial contingency
const DefaultContingencyPercent = "10"

// RentalFormInput carries the raw fields of the rental property form. Blank fields are zero.
type RentalFormInput struct {
	MonthlyRent string
	Mortgage    string
	Taxes       string
	Insurance   string
	Maintenance string
}

// ParseRentalForm converts rental form fields into a validated property
func (ip *InputParser) ParseRentalForm(in RentalFormInput) (domain.RentalProperty, error) {
	var (
		property domain.RentalProperty
		err      error
	)
	fields := []struct {
		name  string
		raw   string
		value *decimal.Decimal
	}{
		{"monthly_rent", in.MonthlyRent, &property.MonthlyRent},
		{"mortgage", in.Mortgage, &property.Mortgage},
		{"taxes", in.Taxes, &property.Taxes},
		{"insurance", in.Insurance, &property.Insurance},
		{"maintenance", in.Maintenance, &property.Maintenance},
	}
	for _, f := range fields {
		if *f.value, err = parseAmount(f.name, orDefault(f.raw, "0")); err != nil {
			return domain.RentalProperty{}, err
		}
	}
	if err := property.Validate(); err != nil {
		return domain.RentalProperty{}, err
	}
	return property, nil
}

// RehabFormInput carries the raw fields of the rehab cost form.
// Materials are "QUANTITY:COST_PER_UNIT" and labor "HOURS:HOURLY_RATE".
type RehabFormInput struct {
	Materials          []string
	Labor              []string
	ContingencyPercent string
	PurchasePrice      string
	ExpectedSalePrice  string
	SquareFootage      string
	AnnualCashFlow     string
}

// ParseRehabForm converts rehab form fields into a validated project
func (ip *InputParser) ParseRehabForm(in RehabFormInput) (domain.RehabProject, error) {
	var project domain.RehabProject
	for i, raw := range in.Materials {
		qty, cost, err := parsePair(fmt.Sprintf("materials[%d]", i), raw)
		if err != nil {
			return domain.RehabProject{}, err
		}
		project.Materials = append(project.Materials, domain.MaterialItem{Quantity: qty, CostPerUnit: cost})
	}
	for i, raw := range in.Labor {
		hours, rate, err := parsePair(fmt.Sprintf("labor[%d]", i), raw)
		if err != nil {
			return domain.RehabProject{}, err
		}
		project.Labor = append(project.Labor, domain.LaborItem{Hours: hours, HourlyRate: rate})
	}

	var err error
	fields := []struct {
		name  string
		raw   string
		value *decimal.Decimal
	}{
		{"contingency_percent", orDefault(in.ContingencyPercent, DefaultContingencyPercent), &project.ContingencyPercent},
		{"purchase_price", orDefault(in.PurchasePrice, "0"), &project.PurchasePrice},
		{"expected_sale_price", orDefault(in.ExpectedSalePrice, "0"), &project.ExpectedSalePrice},
		{"square_footage", orDefault(in.SquareFootage, "0"), &project.SquareFootage},
		{"annual_cash_flow", orDefault(in.AnnualCashFlow, "0"), &project.AnnualCashFlow},
	}
	for _, f := range fields {
		if *f.value, err = parseAmount(f.name, f.raw); err != nil {
			return domain.RehabProject{}, err
		}
	}
	if err := project.Validate(); err != nil {
		return domain.RehabProject{}, err
	}
	return project, nil
}

func parsePair(field, raw string) (decimal.Decimal, decimal.Decimal, error) {
	left, right, ok := strings.Cut(raw, ":")
	if !ok {
		return decimal.Zero, decimal.Zero, &domain.InvalidInputError{Field: field, Reason: fmt.Sprintf("%q must look like AMOUNT:PRICE", raw)}
	}
	a, err := parseAmount(field, left)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	b, err := parseAmount(field, right)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return a, b, nil
}
