package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStep is a single month of an amortization walk
type PaymentStep struct {
	MonthIndex         int             `json:"month_index"` // zero-based
	Date               time.Time       `json:"date"`
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	Interest           decimal.Decimal `json:"interest"`
	ScheduledPrincipal decimal.Decimal `json:"scheduled_principal"`
	ExtraPrincipal     decimal.Decimal `json:"extra_principal"`
	ClosingBalance     decimal.Decimal `json:"closing_balance"`
}

// Payment returns the cash paid in this step
func (s PaymentStep) Payment() decimal.Decimal {
	return s.Interest.Add(s.Principal())
}

// Principal returns the total principal retired in this step
func (s PaymentStep) Principal() decimal.Decimal {
	return s.ScheduledPrincipal.Add(s.ExtraPrincipal)
}

// IsPaidOff reports whether this step retired the loan
func (s PaymentStep) IsPaidOff() bool {
	return !s.ClosingBalance.IsPositive()
}

// AmortizationSummary provides the key figures of a simulated payoff, rounded for presentation
type AmortizationSummary struct {
	Principal               decimal.Decimal `json:"principal"`
	MonthlyPayment          decimal.Decimal `json:"monthly_payment"`
	TotalPayment            decimal.Decimal `json:"total_payment"`
	TotalInterest           decimal.Decimal `json:"total_interest"`
	TotalExtraPaid          decimal.Decimal `json:"total_extra_paid"`
	NumberOfPayments        int             `json:"number_of_payments"`
	PayoffDate              time.Time       `json:"payoff_date"`
	PrincipalSharePercent   decimal.Decimal `json:"principal_share_percent"`
	InterestSharePercent    decimal.Decimal `json:"interest_share_percent"`
	BaselinePayoffDate      time.Time       `json:"baseline_payoff_date"`
	BaselineTotalInterest   decimal.Decimal `json:"baseline_total_interest"`
	MonthsSavedVsBaseline   int             `json:"months_saved_vs_baseline"`
	InterestSavedVsBaseline decimal.Decimal `json:"interest_saved_vs_baseline"`
}

// TrajectoryPoint is the loan state at a year boundary, used for charting
type TrajectoryPoint struct {
	YearIndex              int             `json:"year"`
	RemainingBalance       decimal.Decimal `json:"balance"`
	CumulativeInterestPaid decimal.Decimal `json:"cumulative_interest"`
}
