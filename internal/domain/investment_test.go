package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalPropertyValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RentalProperty)
		field  string
	}{
		{"all zero is valid", func(*RentalProperty) {}, ""},
		{"negative rent", func(r *RentalProperty) { r.MonthlyRent = decimal.NewFromInt(-1) }, "monthly_rent"},
		{"negative taxes", func(r *RentalProperty) { r.Taxes = decimal.NewFromFloat(-0.01) }, "taxes"},
		{"negative maintenance", func(r *RentalProperty) { r.Maintenance = decimal.NewFromInt(-50) }, "maintenance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r RentalProperty
			tt.mutate(&r)
			err := r.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var inputErr *InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRehabProjectValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RehabProject)
		field  string
	}{
		{"valid", func(*RehabProject) {}, ""},
		{"negative cash flow is valid", func(p *RehabProject) { p.AnnualCashFlow = decimal.NewFromInt(-1000) }, ""},
		{"negative quantity", func(p *RehabProject) { p.Materials[1].Quantity = decimal.NewFromInt(-2) }, "materials[1].quantity"},
		{"negative rate", func(p *RehabProject) { p.Labor[0].HourlyRate = decimal.NewFromInt(-40) }, "labor[0].hourly_rate"},
		{"negative contingency", func(p *RehabProject) { p.ContingencyPercent = decimal.NewFromInt(-5) }, "contingency_percent"},
		{"negative square footage", func(p *RehabProject) { p.SquareFootage = decimal.NewFromInt(-1) }, "square_footage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RehabProject{
				Materials: []MaterialItem{
					{Quantity: decimal.NewFromInt(10), CostPerUnit: decimal.NewFromInt(25)},
					{Quantity: decimal.NewFromInt(3), CostPerUnit: decimal.NewFromInt(120)},
				},
				Labor:              []LaborItem{{Hours: decimal.NewFromInt(40), HourlyRate: decimal.NewFromInt(45)}},
				ContingencyPercent: decimal.NewFromInt(10),
			}
			tt.mutate(&p)
			err := p.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var inputErr *InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}
