package output

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName  string
	InterestSaved decimal.Decimal
	MonthsSaved   int
	TotalExtra    decimal.Decimal
	// SavedPerExtraDollar is interest saved per dollar of extra principal paid.
	SavedPerExtraDollar decimal.Decimal
}

// AnalyzeScenarios picks the scenario saving the most interest against the
// scheduled payoff, preferring the one that also saves more months on a tie.
// Scenarios without savings are never recommended.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	ranks := make([]domain.ScenarioResult, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		if sc.Summary.InterestSavedVsBaseline.IsPositive() {
			ranks = append(ranks, sc)
		}
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i].Summary, ranks[j].Summary
		if !a.InterestSavedVsBaseline.Equal(b.InterestSavedVsBaseline) {
			return a.InterestSavedVsBaseline.GreaterThan(b.InterestSavedVsBaseline)
		}
		return a.MonthsSavedVsBaseline > b.MonthsSavedVsBaseline
	})
	best := ranks[0].Summary
	perDollar := decimal.Zero
	if best.TotalExtraPaid.IsPositive() {
		perDollar = best.InterestSavedVsBaseline.Div(best.TotalExtraPaid).Round(2)
	}
	return Recommendation{
		ScenarioName:        ranks[0].Name,
		InterestSaved:       best.InterestSavedVsBaseline,
		MonthsSaved:         best.MonthsSavedVsBaseline,
		TotalExtra:          best.TotalExtraPaid,
		SavedPerExtraDollar: perDollar,
	}
}
