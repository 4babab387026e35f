package output

import (
	"fmt"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Fixed rate for the life of the loan, compounded monthly (annual rate / 12)",
	"Payments are made on the same day each month starting on the loan start date",
	"Extra payments go entirely to principal and are counted from the first payment",
	"Amounts are computed in decimal and rounded to cents only for display",
}

// GenerateAssumptions creates the assumptions list from the actual loan terms
func GenerateAssumptions(loan domain.LoanSpec) []string {
	return []string{
		fmt.Sprintf("Fixed rate of %s%% for %d years, compounded monthly", loan.AnnualRatePercent.String(), loan.TermYears),
		fmt.Sprintf("First payment on %s, then monthly for up to %d payments", loan.StartDate.Format(dateLayout), loan.NumberOfPayments()),
		DefaultAssumptions[2],
		DefaultAssumptions[3],
	}
}
