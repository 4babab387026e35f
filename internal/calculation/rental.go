package calculation

import (
	"github.com/rpgo/mortgage-calculator/internal/domain"
	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
)

// CalculateRentalCashFlow sums the monthly costs of a rental and returns the
// monthly and annual cash left after paying them.
func CalculateRentalCashFlow(property domain.RentalProperty) (*domain.RentalCashFlow, error) {
	if err := property.Validate(); err != nil {
		return nil, err
	}
	expenses := money.Zero()
	for _, cost := range []money.Money{
		money.NewMoneyFromDecimal(property.Mortgage),
		money.NewMoneyFromDecimal(property.Taxes),
		money.NewMoneyFromDecimal(property.Insurance),
		money.NewMoneyFromDecimal(property.Maintenance),
	} {
		expenses = expenses.Add(cost)
	}
	monthly := money.NewMoneyFromDecimal(property.MonthlyRent).Sub(expenses)

	return &domain.RentalCashFlow{
		Property:        property,
		MonthlyExpenses: expenses.Round().Decimal,
		MonthlyCashFlow: monthly.Round().Decimal,
		AnnualCashFlow:  monthly.Mul(decimalTwelve).Round().Decimal,
	}, nil
}
