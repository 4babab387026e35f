package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MORTGAGE SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Loan: %s at %s for %d years\n",
		FormatCurrency(results.Loan.Principal),
		FormatPercentage(results.Loan.AnnualRatePercent),
		results.Loan.TermYears,
	)
	fmt.Fprintln(&buf)
	for _, sc := range sortedScenarios(results) {
		s := sc.Summary
		fmt.Fprintf(&buf, "%s: Payment=%s Interest=%s Payments=%d Payoff=%s\n",
			sc.Name,
			FormatCurrency(s.MonthlyPayment),
			FormatCurrency(s.TotalInterest),
			s.NumberOfPayments,
			s.PayoffDate.Format(dateLayout),
		)
		fmt.Fprintf(&buf, "  Saved=%s Earlier=%s\n", FormatCurrency(s.InterestSavedVsBaseline), FormatMonths(s.MonthsSavedVsBaseline))
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (saves %s, %s earlier)\n", rec.ScenarioName, FormatCurrency(rec.InterestSaved), FormatMonths(rec.MonthsSaved))
	}
	return buf.Bytes(), nil
}
