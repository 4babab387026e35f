package calculation

import (
	"iter"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// trajectory snapshots the walk at year 0 and after every twelfth payment.
// A loan retired mid-year contributes one last zero-balance point for the
// year in which it was paid off.
func (p plan) trajectory() iter.Seq[domain.TrajectoryPoint] {
	return func(yield func(domain.TrajectoryPoint) bool) {
		if !yield(trajectoryPoint(0, p.principal, decimal.Zero)) {
			return
		}
		cumulative := decimal.Zero
		for step := range p.steps() {
			cumulative = cumulative.Add(step.Interest)
			paid := step.MonthIndex + 1
			if paid%12 != 0 && !step.IsPaidOff() {
				continue
			}
			year := (paid + 11) / 12
			if !yield(trajectoryPoint(year, step.ClosingBalance, cumulative)) {
				return
			}
		}
	}
}

func trajectoryPoint(year int, balance, cumulativeInterest decimal.Decimal) domain.TrajectoryPoint {
	return domain.TrajectoryPoint{
		YearIndex:              year,
		RemainingBalance:       roundCents(balance),
		CumulativeInterestPaid: roundCents(cumulativeInterest),
	}
}
