package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

func testConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Loan: referenceLoan(),
		Scenarios: []domain.Scenario{
			{Name: "Scheduled"},
			{Name: "Extra $200 monthly", ExtraPayment: monthlyExtra(200)},
			{Name: "Extra $2,400 annually", ExtraPayment: &domain.ExtraPaymentPolicy{Amount: decimal.NewFromInt(2400), Frequency: domain.Annually}},
		},
	}
}

func TestRunScenarios(t *testing.T) {
	ae := newTestEngine()
	results, err := ae.RunScenarios(context.Background(), testConfiguration())
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 3)

	assert.Equal(t, testStart, results.Loan.StartDate)
	assert.Equal(t, "Scheduled", results.Scenarios[0].Name)
	assert.Equal(t, "Extra $200 monthly", results.Scenarios[1].Name)
	assert.Equal(t, "Extra $2,400 annually", results.Scenarios[2].Name)

	scheduled := results.Scenarios[0].Summary
	assert.Equal(t, 0, scheduled.MonthsSavedVsBaseline)
	assert.Len(t, results.Scenarios[0].Trajectory, 31)

	for _, sc := range results.Scenarios[1:] {
		assert.Greater(t, sc.Summary.MonthsSavedVsBaseline, 0, sc.Name)
		assert.True(t, sc.Summary.BaselinePayoffDate.Equal(scheduled.PayoffDate), sc.Name)
		assert.True(t, sc.Summary.BaselineTotalInterest.Equal(scheduled.TotalInterest), sc.Name)
	}

	direct, _, err := ae.Simulate(results.Loan, monthlyExtra(200))
	require.NoError(t, err)
	assert.Equal(t, *direct, results.Scenarios[1].Summary)
}

func TestRunScenarios_Errors(t *testing.T) {
	ae := newTestEngine()

	_, err := ae.RunScenarios(context.Background(), &domain.Configuration{Loan: referenceLoan()})
	assert.Error(t, err)

	cfg := testConfiguration()
	cfg.Scenarios[2].ExtraPayment.Amount = decimal.NewFromInt(-1)
	_, err = ae.RunScenarios(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Extra $2,400 annually")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ae.RunScenarios(ctx, testConfiguration())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunScenario(t *testing.T) {
	ae := newTestEngine()
	result, err := ae.RunScenario(context.Background(), referenceLoan(), domain.Scenario{Name: "solo", ExtraPayment: monthlyExtra(100)})
	require.NoError(t, err)
	assert.Equal(t, "solo", result.Name)
	assert.NotNil(t, result.ExtraPayment)
	assert.NotEmpty(t, result.Trajectory)
}
