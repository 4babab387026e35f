package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "MonthlyPayment", "TotalPayment", "TotalInterest", "TotalExtraPaid", "NumberOfPayments", "PayoffDate", "PrincipalSharePercent", "InterestSharePercent", "MonthsSaved", "InterestSaved"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		s := sc.Summary
		row := []string{
			sc.Name,
			s.MonthlyPayment.StringFixed(2),
			s.TotalPayment.StringFixed(2),
			s.TotalInterest.StringFixed(2),
			s.TotalExtraPaid.StringFixed(2),
			intToString(s.NumberOfPayments),
			s.PayoffDate.Format(dateLayout),
			s.PrincipalSharePercent.StringFixed(2),
			s.InterestSharePercent.StringFixed(2),
			intToString(s.MonthsSavedVsBaseline),
			s.InterestSavedVsBaseline.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// sortedScenarios returns a name-ordered copy so tabular output is deterministic.
func sortedScenarios(results *domain.ScenarioComparison) []domain.ScenarioResult {
	scenarios := append([]domain.ScenarioResult(nil), results.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios
}
