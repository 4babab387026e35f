package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// CSVTrajectoryExporter provides the yearly balance trajectory per scenario/year,
// the series a chart is drawn from.
type CSVTrajectoryExporter struct{}

func (c CSVTrajectoryExporter) Name() string { return "detailed-csv" }

func (c CSVTrajectoryExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "CalendarYear", "RemainingBalance", "CumulativeInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	startYear := results.Loan.StartDate.Year()
	for _, sc := range sortedScenarios(results) {
		for _, pt := range sc.Trajectory {
			row := []string{
				sc.Name,
				intToString(pt.YearIndex),
				intToString(startYear + pt.YearIndex),
				pt.RemainingBalance.StringFixed(2),
				pt.CumulativeInterestPaid.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// FormatScheduleCSV renders a monthly payment schedule, one row per payment.
func FormatScheduleCSV(schedule []domain.PaymentStep) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Payment", "Date", "OpeningBalance", "Interest", "ScheduledPrincipal", "ExtraPrincipal", "TotalPayment", "ClosingBalance", "PaidOff"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, step := range schedule {
		row := []string{
			intToString(step.MonthIndex + 1),
			step.Date.Format(dateLayout),
			step.OpeningBalance.StringFixed(2),
			step.Interest.StringFixed(2),
			step.ScheduledPrincipal.StringFixed(2),
			step.ExtraPrincipal.StringFixed(2),
			step.Payment().StringFixed(2),
			step.ClosingBalance.StringFixed(2),
			boolToString(step.IsPaidOff()),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
