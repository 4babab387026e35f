package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED MORTGAGE PAYOFF ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(results.Loan) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "LOAN TERMS")
	fmt.Fprintln(&buf, "==========")
	fmt.Fprintf(&buf, "Principal:       %s\n", FormatCurrency(results.Loan.Principal))
	fmt.Fprintf(&buf, "Annual Rate:     %s\n", FormatPercentage(results.Loan.AnnualRatePercent))
	fmt.Fprintf(&buf, "Term:            %d years (%d payments)\n", results.Loan.TermYears, results.Loan.NumberOfPayments())
	fmt.Fprintf(&buf, "First Payment:   %s\n", results.Loan.StartDate.Format(dateLayout))
	fmt.Fprintln(&buf)

	writeComparisonTable(&buf, results)

	for i, scenario := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, scenario.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		s := scenario.Summary
		if p := scenario.ExtraPayment; p != nil && p.IsActive() {
			from := "first payment"
			if !p.EffectiveFrom.IsZero() {
				from = p.EffectiveFrom.Format(dateLayout)
			}
			fmt.Fprintf(&buf, "Extra Payment:        %s %s from %s\n", FormatCurrency(p.Amount), p.Frequency, from)
		} else {
			fmt.Fprintln(&buf, "Extra Payment:        none")
		}
		fmt.Fprintf(&buf, "Monthly Payment:      %s\n", FormatCurrency(s.MonthlyPayment))
		fmt.Fprintf(&buf, "Total Payment:        %s\n", FormatCurrency(s.TotalPayment))
		fmt.Fprintf(&buf, "Total Interest:       %s\n", FormatCurrency(s.TotalInterest))
		fmt.Fprintf(&buf, "Total Extra Paid:     %s\n", FormatCurrency(s.TotalExtraPaid))
		fmt.Fprintf(&buf, "Payments:             %d\n", s.NumberOfPayments)
		fmt.Fprintf(&buf, "Payoff Date:          %s\n", s.PayoffDate.Format(dateLayout))
		fmt.Fprintf(&buf, "Principal / Interest: %s / %s\n", FormatPercentage(s.PrincipalSharePercent), FormatPercentage(s.InterestSharePercent))
		fmt.Fprintf(&buf, "Months Saved:         %d (%s)\n", s.MonthsSavedVsBaseline, FormatMonths(s.MonthsSavedVsBaseline))
		fmt.Fprintf(&buf, "Interest Saved:       %s\n", FormatCurrency(s.InterestSavedVsBaseline))
		fmt.Fprintln(&buf)

		if len(scenario.Trajectory) > 0 {
			fmt.Fprintln(&buf, "YEARLY BALANCE:")
			fmt.Fprintf(&buf, "%-6s %-6s %16s %20s\n", "Year", "Cal.", "Balance", "Cumulative Interest")
			startYear := results.Loan.StartDate.Year()
			for _, pt := range scenario.Trajectory {
				fmt.Fprintf(&buf, "%-6d %-6d %16s %20s\n",
					pt.YearIndex,
					startYear+pt.YearIndex,
					FormatCurrency(pt.RemainingBalance),
					FormatCurrency(pt.CumulativeInterestPaid),
				)
			}
			fmt.Fprintln(&buf)
		}
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, "==============")
		fmt.Fprintf(&buf, "%s saves %s in interest and pays off %s earlier.\n",
			rec.ScenarioName, FormatCurrency(rec.InterestSaved), FormatMonths(rec.MonthsSaved))
		if rec.TotalExtra.IsPositive() {
			fmt.Fprintf(&buf, "Each extra dollar of principal saves %s of interest.\n", FormatCurrency(rec.SavedPerExtraDollar))
		}
	}
	return buf.Bytes(), nil
}

func writeComparisonTable(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	if len(results.Scenarios) < 2 {
		return
	}
	fmt.Fprintln(buf, "SCENARIO COMPARISON")
	fmt.Fprintln(buf, "===================")
	fmt.Fprintf(buf, "%-28s %14s %14s %10s %14s\n", "Scenario", "Total Interest", "Payoff", "Payments", "Saved")
	for _, sc := range results.Scenarios {
		s := sc.Summary
		fmt.Fprintf(buf, "%-28s %14s %14s %10d %14s\n",
			clipName(sc.Name, 28),
			FormatCurrency(s.TotalInterest),
			s.PayoffDate.Format(dateLayout),
			s.NumberOfPayments,
			FormatCurrency(s.InterestSavedVsBaseline),
		)
	}
	fmt.Fprintln(buf)
}

func clipName(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
