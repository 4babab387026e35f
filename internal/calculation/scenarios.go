package calculation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// RunScenario simulates a single extra-payment scenario against loan
func (ae *AmortizationEngine) RunScenario(ctx context.Context, loan domain.LoanSpec, scenario domain.Scenario) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	summary, trajectory, err := ae.Simulate(loan, scenario.ExtraPayment)
	if err != nil {
		return nil, err
	}
	return &domain.ScenarioResult{
		Name:         scenario.Name,
		ExtraPayment: scenario.ExtraPayment,
		Summary:      *summary,
		Trajectory:   trajectory,
	}, nil
}

// RunScenarios runs all scenarios of config concurrently and returns them in
// configuration order. Every scenario shares one resolved start date.
func (ae *AmortizationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}
	loan := config.Loan
	loan.StartDate = ae.startDate(loan)

	results := make([]domain.ScenarioResult, len(config.Scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, scenario := range config.Scenarios {
		g.Go(func() error {
			result, err := ae.RunScenario(gctx, loan, scenario)
			if err != nil {
				return fmt.Errorf("scenario %q failed: %w", scenario.Name, err)
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	ae.Logger.Infof("ran %d scenarios for principal %s", len(results), loan.Principal.StringFixed(2))

	return &domain.ScenarioComparison{
		Loan:      loan,
		Scenarios: results,
	}, nil
}
