package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
)

// dateLayout renders calendar dates in reports
const dateLayout = "2006-01-02"

// FormatCurrency formats a decimal as USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMonths renders a month count as years and months, e.g. "8y 3m".
func FormatMonths(months int) string {
	sign := ""
	if months < 0 {
		sign = "-"
		months = -months
	}
	return sign + strconv.Itoa(months/12) + "y " + strconv.Itoa(months%12) + "m"
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
