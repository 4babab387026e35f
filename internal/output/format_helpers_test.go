package output_test

import (
	"testing"

	stddec "github.com/shopspring/decimal"

	"github.com/rpgo/mortgage-calculator/internal/output"
)

func TestFormatters(t *testing.T) {
	if got := output.FormatCurrency(stddec.NewFromFloat(123.45)); got != "$123.45" {
		t.Fatalf("FormatCurrency = %q", got)
	}
	if got := output.FormatCurrency(stddec.NewFromFloat(-0.005)); got != "-$0.01" {
		t.Fatalf("FormatCurrency negative = %q", got)
	}
	if got := output.FormatPercentage(stddec.NewFromFloat(12.34)); got != "12.34%" {
		t.Fatalf("FormatPercentage = %q", got)
	}
}

func TestFormatMonths(t *testing.T) {
	cases := map[int]string{0: "0y 0m", 11: "0y 11m", 99: "8y 3m", 360: "30y 0m", -14: "-1y 2m"}
	for in, want := range cases {
		if got := output.FormatMonths(in); got != want {
			t.Errorf("FormatMonths(%d) = %q, want %q", in, got, want)
		}
	}
}
