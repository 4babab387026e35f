package output

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildTestComparison() *domain.ScenarioComparison {
	loan := domain.LoanSpec{
		Principal:         dec("200000"),
		AnnualRatePercent: dec("3.5"),
		TermYears:         30,
		StartDate:         date(2026, time.January, 1),
	}
	baseline := domain.ScenarioResult{
		Name: "Scheduled Payments",
		Summary: domain.AmortizationSummary{
			Principal:             dec("200000"),
			MonthlyPayment:        dec("898.09"),
			TotalPayment:          dec("323312.18"),
			TotalInterest:         dec("123312.18"),
			TotalExtraPaid:        decimal.Zero,
			NumberOfPayments:      360,
			PayoffDate:            date(2056, time.January, 1),
			PrincipalSharePercent: dec("61.86"),
			InterestSharePercent:  dec("38.14"),
			BaselinePayoffDate:    date(2056, time.January, 1),
			BaselineTotalInterest: dec("123312.18"),
		},
		Trajectory: []domain.TrajectoryPoint{
			{YearIndex: 0, RemainingBalance: dec("200000"), CumulativeInterestPaid: decimal.Zero},
			{YearIndex: 1, RemainingBalance: dec("196127.50"), CumulativeInterestPaid: dec("6904.57")},
		},
	}
	extra := domain.ScenarioResult{
		Name:         "Extra $200 Monthly",
		ExtraPayment: &domain.ExtraPaymentPolicy{Amount: dec("200"), Frequency: domain.Monthly},
		Summary: domain.AmortizationSummary{
			Principal:               dec("200000"),
			MonthlyPayment:          dec("898.09"),
			TotalPayment:            dec("285655.89"),
			TotalInterest:           dec("85655.89"),
			TotalExtraPaid:          dec("52200"),
			NumberOfPayments:        261,
			PayoffDate:              date(2047, time.October, 1),
			PrincipalSharePercent:   dec("70.01"),
			InterestSharePercent:    dec("29.99"),
			BaselinePayoffDate:      date(2056, time.January, 1),
			BaselineTotalInterest:   dec("123312.18"),
			MonthsSavedVsBaseline:   99,
			InterestSavedVsBaseline: dec("37656.29"),
		},
		Trajectory: []domain.TrajectoryPoint{
			{YearIndex: 0, RemainingBalance: dec("200000"), CumulativeInterestPaid: decimal.Zero},
			{YearIndex: 1, RemainingBalance: dec("193676.38"), CumulativeInterestPaid: dec("6853.95")},
		},
	}
	return &domain.ScenarioComparison{
		Loan:      loan,
		Scenarios: []domain.ScenarioResult{baseline, extra},
	}
}
