package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

const notAvailable = "n/a"

// FormatRental renders a rental cash flow as console text or JSON.
func FormatRental(result *domain.RentalCashFlow, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "json":
		return json.MarshalIndent(result, "", "  ")
	case "console", "console-lite":
	default:
		return nil, fmt.Errorf("%w: %q. Try one of: console, json", ErrUnsupportedFormat, format)
	}

	p := result.Property
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RENTAL PROPERTY CASH FLOW")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Monthly Rent:      %s\n", FormatCurrency(p.MonthlyRent))
	fmt.Fprintf(&buf, "Mortgage:          %s\n", FormatCurrency(p.Mortgage))
	fmt.Fprintf(&buf, "Taxes:             %s\n", FormatCurrency(p.Taxes))
	fmt.Fprintf(&buf, "Insurance:         %s\n", FormatCurrency(p.Insurance))
	fmt.Fprintf(&buf, "Maintenance:       %s\n", FormatCurrency(p.Maintenance))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Monthly Expenses:  %s\n", FormatCurrency(result.MonthlyExpenses))
	fmt.Fprintf(&buf, "Monthly Cash Flow: %s\n", FormatCurrency(result.MonthlyCashFlow))
	fmt.Fprintf(&buf, "Annual Cash Flow:  %s\n", FormatCurrency(result.AnnualCashFlow))
	return buf.Bytes(), nil
}

// FormatRehab renders a rehab estimate as console text or JSON. Ratios that
// could not be computed print as n/a.
func FormatRehab(result *domain.RehabEstimate, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "json":
		return json.MarshalIndent(result, "", "  ")
	case "console", "console-lite":
	default:
		return nil, fmt.Errorf("%w: %q. Try one of: console, json", ErrUnsupportedFormat, format)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "REHAB COST ESTIMATE")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Materials:         %s (%d items)\n", FormatCurrency(result.MaterialCost), len(result.Project.Materials))
	fmt.Fprintf(&buf, "Labor:             %s (%d items)\n", FormatCurrency(result.LaborCost), len(result.Project.Labor))
	fmt.Fprintf(&buf, "Contingency:       %s (%s)\n", FormatCurrency(result.ContingencyCost), FormatPercentage(result.Project.ContingencyPercent))
	fmt.Fprintf(&buf, "Total Rehab Cost:  %s\n", FormatCurrency(result.TotalRehabCost))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Cost per Sq Ft:    %s\n", orNotAvailable(result.CostPerSquareFoot, FormatCurrency))
	fmt.Fprintf(&buf, "ROI:               %s\n", orNotAvailable(result.ROIPercent, FormatPercentage))
	fmt.Fprintf(&buf, "Payback Period:    %s\n", orNotAvailable(result.PaybackYears, func(y decimal.Decimal) string {
		return y.StringFixed(2) + " years"
	}))
	return buf.Bytes(), nil
}

func orNotAvailable(v *decimal.Decimal, format func(decimal.Decimal) string) string {
	if v == nil {
		return notAvailable
	}
	return format(*v)
}
