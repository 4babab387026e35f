package calculation

import (
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/rpgo/mortgage-calculator/pkg/dateutil"
	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
)

// precisionLimit is the principal above which the engine warns that cent
// rounding of results is outside its tested range.
var precisionLimit = decimal.New(1, 12)

// AmortizationEngine simulates fixed-rate loan payoff with optional extra payments.
// It holds no per-call state; a single engine may be shared by concurrent callers.
type AmortizationEngine struct {
	Logger Logger
	// Now supplies the start date for loans that do not set one.
	Now func() time.Time
}

// NewAmortizationEngine creates a new amortization engine
func NewAmortizationEngine() *AmortizationEngine {
	return &AmortizationEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (ae *AmortizationEngine) SetLogger(l Logger) {
	if l == nil {
		ae.Logger = NopLogger{}
		return
	}
	ae.Logger = l
}

func (ae *AmortizationEngine) startDate(spec domain.LoanSpec) time.Time {
	if !spec.StartDate.IsZero() {
		return dateutil.DateOnly(spec.StartDate)
	}
	now := time.Now
	if ae.Now != nil {
		now = ae.Now
	}
	return dateutil.DateOnly(now())
}

// Simulate runs the month-by-month payoff of spec under policy (nil for none)
// and compares it with the same loan paid on schedule. It returns the rounded
// summary and the yearly trajectory.
func (ae *AmortizationEngine) Simulate(spec domain.LoanSpec, policy *domain.ExtraPaymentPolicy) (*domain.AmortizationSummary, []domain.TrajectoryPoint, error) {
	p, err := ae.newPlan(spec, policy)
	if err != nil {
		return nil, nil, err
	}

	actual := p.run()
	baseline := actual
	if p.policy != nil {
		baseline = p.baseline().run()
	}
	ae.Logger.Debugf("simulated %s over %d months: %d payments (baseline %d), interest %s (baseline %s)",
		p.principal.StringFixed(2), p.months, actual.months, baseline.months,
		actual.interest.StringFixed(2), baseline.interest.StringFixed(2))

	payoff := p.payoffDate(actual)
	baselinePayoff := p.payoffDate(baseline)
	principal := money.NewMoneyFromDecimal(p.principal).Round()
	interest := actual.interest.Round()

	summary := &domain.AmortizationSummary{
		Principal:               principal.Decimal,
		MonthlyPayment:          roundCents(p.payment),
		TotalPayment:            principal.Add(interest).Decimal,
		TotalInterest:           interest.Decimal,
		TotalExtraPaid:          actual.extra.Round().Decimal,
		NumberOfPayments:        actual.months,
		PayoffDate:              payoff,
		PrincipalSharePercent:   actual.principal.ShareOf(actual.payment()),
		InterestSharePercent:    actual.interest.ShareOf(actual.payment()),
		BaselinePayoffDate:      baselinePayoff,
		BaselineTotalInterest:   baseline.interest.Round().Decimal,
		MonthsSavedVsBaseline:   dateutil.MonthsBetween(baselinePayoff, payoff),
		InterestSavedVsBaseline: baseline.interest.Sub(actual.interest).Round().Decimal,
	}

	return summary, slices.Collect(p.trajectory()), nil
}

// BuildTrajectory validates its inputs and returns the yearly balance and
// cumulative interest sequence of the payoff. The sequence re-runs the walk
// lazily each time it is ranged over.
func (ae *AmortizationEngine) BuildTrajectory(spec domain.LoanSpec, policy *domain.ExtraPaymentPolicy) (iter.Seq[domain.TrajectoryPoint], error) {
	p, err := ae.newPlan(spec, policy)
	if err != nil {
		return nil, err
	}
	return p.trajectory(), nil
}

// Schedule returns every monthly payment of the payoff, rounded to cents
func (ae *AmortizationEngine) Schedule(spec domain.LoanSpec, policy *domain.ExtraPaymentPolicy) ([]domain.PaymentStep, error) {
	p, err := ae.newPlan(spec, policy)
	if err != nil {
		return nil, err
	}
	schedule := make([]domain.PaymentStep, 0, p.months)
	for step := range p.steps() {
		step.OpeningBalance = roundCents(step.OpeningBalance)
		step.Interest = roundCents(step.Interest)
		step.ScheduledPrincipal = roundCents(step.ScheduledPrincipal)
		step.ExtraPrincipal = roundCents(step.ExtraPrincipal)
		step.ClosingBalance = roundCents(step.ClosingBalance)
		schedule = append(schedule, step)
	}
	return schedule, nil
}

func roundCents(d decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(d).Round().Decimal
}
