package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
)

// RentalProperty holds the monthly income and costs of a rental
type RentalProperty struct {
	MonthlyRent decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	Mortgage    decimal.Decimal `yaml:"mortgage" json:"mortgage"`
	Taxes       decimal.Decimal `yaml:"taxes" json:"taxes"`
	Insurance   decimal.Decimal `yaml:"insurance" json:"insurance"`
	Maintenance decimal.Decimal `yaml:"maintenance" json:"maintenance"`
}

// Validate rejects negative amounts
func (r RentalProperty) Validate() error {
	return firstNegative(
		amount{"monthly_rent", r.MonthlyRent},
		amount{"mortgage", r.Mortgage},
		amount{"taxes", r.Taxes},
		amount{"insurance", r.Insurance},
		amount{"maintenance", r.Maintenance},
	)
}

// RentalCashFlow is the cash position of a rental, rounded to cents
type RentalCashFlow struct {
	Property        RentalProperty  `json:"property"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	MonthlyCashFlow decimal.Decimal `json:"monthly_cash_flow"`
	AnnualCashFlow  decimal.Decimal `json:"annual_cash_flow"`
}

// MaterialItem is one line of purchased material
type MaterialItem struct {
	Quantity    decimal.Decimal `yaml:"quantity" json:"quantity"`
	CostPerUnit decimal.Decimal `yaml:"cost_per_unit" json:"cost_per_unit"`
}

// LaborItem is one line of paid labor
type LaborItem struct {
	Hours      decimal.Decimal `yaml:"hours" json:"hours"`
	HourlyRate decimal.Decimal `yaml:"hourly_rate" json:"hourly_rate"`
}

// RehabProject describes a renovation and the deal it belongs to
type RehabProject struct {
	Materials          []MaterialItem  `yaml:"materials" json:"materials"`
	Labor              []LaborItem     `yaml:"labor" json:"labor"`
	ContingencyPercent decimal.Decimal `yaml:"contingency_percent" json:"contingency_percent"`
	PurchasePrice      decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	ExpectedSalePrice  decimal.Decimal `yaml:"expected_sale_price" json:"expected_sale_price"`
	SquareFootage      decimal.Decimal `yaml:"square_footage" json:"square_footage"`
	// AnnualCashFlow may be negative for a property that loses money.
	AnnualCashFlow decimal.Decimal `yaml:"annual_cash_flow" json:"annual_cash_flow"`
}

// Validate rejects negative quantities, prices and percentages
func (p RehabProject) Validate() error {
	for i, m := range p.Materials {
		if err := firstNegative(
			amount{fmt.Sprintf("materials[%d].quantity", i), m.Quantity},
			amount{fmt.Sprintf("materials[%d].cost_per_unit", i), m.CostPerUnit},
		); err != nil {
			return err
		}
	}
	for i, l := range p.Labor {
		if err := firstNegative(
			amount{fmt.Sprintf("labor[%d].hours", i), l.Hours},
			amount{fmt.Sprintf("labor[%d].hourly_rate", i), l.HourlyRate},
		); err != nil {
			return err
		}
	}
	return firstNegative(
		amount{"contingency_percent", p.ContingencyPercent},
		amount{"purchase_price", p.PurchasePrice},
		amount{"expected_sale_price", p.ExpectedSalePrice},
		amount{"square_footage", p.SquareFootage},
	)
}

// RehabEstimate is the cost breakdown and return of a rehab. Ratios that
// would divide by zero are nil: no square footage, no total cost, or an
// annual cash flow that never pays the rehab back.
type RehabEstimate struct {
	Project           RehabProject     `json:"project"`
	MaterialCost      decimal.Decimal  `json:"material_cost"`
	LaborCost         decimal.Decimal  `json:"labor_cost"`
	ContingencyCost   decimal.Decimal  `json:"contingency_cost"`
	TotalRehabCost    decimal.Decimal  `json:"total_rehab_cost"`
	CostPerSquareFoot *decimal.Decimal `json:"cost_per_square_foot,omitempty"`
	ROIPercent        *decimal.Decimal `json:"roi_percent,omitempty"`
	PaybackYears      *decimal.Decimal `json:"payback_years,omitempty"`
}

type amount struct {
	field string
	value decimal.Decimal
}

func firstNegative(amounts ...amount) error {
	for _, a := range amounts {
		if money.NewMoneyFromDecimal(a.value).LessThan(money.Zero()) {
			return invalid(a.field, "cannot be negative")
		}
	}
	return nil
}
