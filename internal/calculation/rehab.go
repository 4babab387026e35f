package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
)

// EstimateRehabCost totals materials, labor and contingency for a rehab and
// derives cost per square foot, ROI on purchase plus rehab, and the years of
// annual cash flow needed to pay the rehab back.
func EstimateRehabCost(project domain.RehabProject) (*domain.RehabEstimate, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}

	materials := money.Zero()
	for _, m := range project.Materials {
		materials = materials.Add(money.NewMoneyFromDecimal(m.CostPerUnit).Mul(m.Quantity))
	}
	labor := money.Zero()
	for _, l := range project.Labor {
		labor = labor.Add(money.NewMoneyFromDecimal(l.HourlyRate).Mul(l.Hours))
	}
	contingency := materials.Add(labor).Mul(project.ContingencyPercent).Div(decimalHundred)
	total := materials.Add(labor).Add(contingency)

	estimate := &domain.RehabEstimate{
		Project:         project,
		MaterialCost:    materials.Round().Decimal,
		LaborCost:       labor.Round().Decimal,
		ContingencyCost: contingency.Round().Decimal,
		TotalRehabCost:  total.Round().Decimal,
	}

	if project.SquareFootage.IsPositive() {
		estimate.CostPerSquareFoot = ratio(total.Div(project.SquareFootage))
	}
	invested := money.NewMoneyFromDecimal(project.PurchasePrice).Add(total)
	if !invested.Equal(money.Zero()) {
		profit := money.NewMoneyFromDecimal(project.ExpectedSalePrice).Sub(invested)
		roi := profit.ShareOf(invested)
		estimate.ROIPercent = &roi
	}
	cashFlow := money.NewMoneyFromDecimal(project.AnnualCashFlow)
	if cashFlow.GreaterThan(money.Zero()) {
		estimate.PaybackYears = ratio(total.Div(cashFlow.Decimal))
	}
	return estimate, nil
}

func ratio(m money.Money) *decimal.Decimal {
	r := m.Round().Decimal
	return &r
}
