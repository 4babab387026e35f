package calculation

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/rpgo/mortgage-calculator/pkg/dateutil"
	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
)

// plan is a validated, fully resolved loan ready to be walked month by month.
// It is built fresh per call and never shared.
type plan struct {
	principal decimal.Decimal
	rate      decimal.Decimal
	payment   decimal.Decimal
	months    int
	start     time.Time
	policy    *domain.ExtraPaymentPolicy // nil when no extra payments apply
}

// newPlan validates spec and policy and resolves the start date against the engine clock.
func (ae *AmortizationEngine) newPlan(spec domain.LoanSpec, policy *domain.ExtraPaymentPolicy) (plan, error) {
	if err := spec.Validate(); err != nil {
		return plan{}, err
	}
	if err := policy.Validate(); err != nil {
		return plan{}, err
	}
	if spec.Principal.GreaterThan(precisionLimit) {
		ae.Logger.Warnf("principal %s exceeds %s; rounded results may lose precision", spec.Principal.StringFixed(2), precisionLimit.String())
	}

	rate := monthlyRate(spec.AnnualRatePercent)
	p := plan{
		principal: spec.Principal,
		rate:      rate,
		payment:   annuityPayment(spec.Principal, rate, spec.NumberOfPayments()),
		months:    spec.NumberOfPayments(),
		start:     ae.startDate(spec),
	}
	if policy.IsActive() {
		normalized := *policy
		if !normalized.EffectiveFrom.IsZero() {
			normalized.EffectiveFrom = dateutil.DateOnly(normalized.EffectiveFrom)
		}
		p.policy = &normalized
	}
	return p, nil
}

// baseline returns the same loan without extra payments
func (p plan) baseline() plan {
	p.policy = nil
	return p
}

// steps walks the loan one month at a time. The walk is a two-state machine:
// it accrues while the balance is positive and stops on payoff or when the
// scheduled number of payments is exhausted, whichever comes first.
func (p plan) steps() iter.Seq[domain.PaymentStep] {
	return func(yield func(domain.PaymentStep) bool) {
		balance := p.principal
		for month := 0; month < p.months && balance.IsPositive(); month++ {
			date := dateutil.AddMonths(p.start, month)
			interest := balance.Mul(p.rate).Round(workingPlaces)
			scheduled := p.payment.Sub(interest)
			extra := decimal.Zero
			if p.policy.AppliesOn(month, date) {
				extra = p.policy.Amount
			}

			switch {
			case month == p.months-1:
				// the final scheduled payment settles whatever residue the
				// working precision left behind
				scheduled, extra = balance, decimal.Zero
			case scheduled.GreaterThanOrEqual(balance):
				scheduled, extra = balance, decimal.Zero
			case scheduled.Add(extra).GreaterThan(balance):
				extra = balance.Sub(scheduled)
			}

			closing := balance.Sub(scheduled).Sub(extra)
			step := domain.PaymentStep{
				MonthIndex:         month,
				Date:               date,
				OpeningBalance:     balance,
				Interest:           interest,
				ScheduledPrincipal: scheduled,
				ExtraPrincipal:     extra,
				ClosingBalance:     closing,
			}
			if !yield(step) {
				return
			}
			balance = closing
		}
	}
}

// totals accumulates a complete walk.
type totals struct {
	interest  money.Money
	principal money.Money
	extra     money.Money
	months    int
}

func (p plan) run() totals {
	t := totals{interest: money.Zero(), principal: money.Zero(), extra: money.Zero()}
	for step := range p.steps() {
		t.interest = t.interest.Add(money.NewMoneyFromDecimal(step.Interest))
		t.principal = t.principal.Add(money.NewMoneyFromDecimal(step.Principal()))
		t.extra = t.extra.Add(money.NewMoneyFromDecimal(step.ExtraPrincipal))
		t.months++
	}
	return t
}

func (t totals) payment() money.Money {
	return t.interest.Add(t.principal)
}

// payoffDate is the simulation start advanced by the number of payments made
func (p plan) payoffDate(t totals) time.Time {
	return dateutil.AddMonths(p.start, t.months)
}
