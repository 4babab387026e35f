package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// workingPlaces bounds the scale of intermediate amounts. Interest and the
// payment are carried at this precision through the walk and only rounded to
// cents in summaries.
const workingPlaces = 16

var (
	decimalHundred = decimal.NewFromInt(100)
	decimalTwelve  = decimal.NewFromInt(12)
)

// monthlyRate converts an annual percentage (3.5 for 3.5%) to a monthly fraction
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(decimalHundred).Div(decimalTwelve).Round(workingPlaces)
}

// annuityPayment is the fixed payment retiring principal over n months at
// monthly rate r: P·r·(1+r)^n / ((1+r)^n − 1). A zero rate degenerates to P/n.
func annuityPayment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	months := decimal.NewFromInt(int64(n))
	if rate.IsZero() {
		return principal.Div(months).Round(workingPlaces)
	}
	growth := decimal.NewFromInt(1).Add(rate).Pow(months).Round(2 * workingPlaces)
	return principal.Mul(rate).Mul(growth).
		DivRound(growth.Sub(decimal.NewFromInt(1)), workingPlaces)
}

// ComputeBaselinePayment returns the fixed monthly payment of spec without
// extra payments, at working precision.
func (ae *AmortizationEngine) ComputeBaselinePayment(spec domain.LoanSpec) (decimal.Decimal, error) {
	if err := spec.Validate(); err != nil {
		return decimal.Zero, err
	}
	return annuityPayment(spec.Principal, monthlyRate(spec.AnnualRatePercent), spec.NumberOfPayments()), nil
}
