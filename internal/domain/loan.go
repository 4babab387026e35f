package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LoanSpec describes a fixed-rate amortizing loan
type LoanSpec struct {
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"` // 3.5 means 3.5%
	TermYears         int             `yaml:"term_years" json:"term_years"`
	// StartDate is the date of the first scheduled payment. Zero means today.
	StartDate time.Time `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}

// NumberOfPayments returns the scheduled number of monthly payments
func (s LoanSpec) NumberOfPayments() int {
	return s.TermYears * 12
}

// Validate rejects non-positive principal or term and negative rates
func (s LoanSpec) Validate() error {
	if !s.Principal.IsPositive() {
		return invalid("principal", "must be positive")
	}
	if s.TermYears <= 0 {
		return invalid("term_years", "must be positive")
	}
	if s.AnnualRatePercent.IsNegative() {
		return invalid("annual_rate_percent", "cannot be negative")
	}
	return nil
}

// Frequency is the cadence at which an extra payment is applied
type Frequency int

const (
	Monthly Frequency = iota
	Quarterly
	Annually
)

// frequencyRules maps each frequency to its name and the month-index modulus
// that selects the months receiving the extra amount.
var frequencyRules = [...]struct {
	name     string
	interval int
}{
	Monthly:   {"monthly", 1},
	Quarterly: {"quarterly", 3},
	Annually:  {"annually", 12},
}

// Frequencies lists every supported frequency in cadence order
func Frequencies() []Frequency {
	return []Frequency{Monthly, Quarterly, Annually}
}

func (f Frequency) valid() bool {
	return f >= Monthly && int(f) < len(frequencyRules)
}

// Interval returns the number of months between extra payments
func (f Frequency) Interval() int {
	if !f.valid() {
		return 0
	}
	return frequencyRules[f].interval
}

// AppliesTo reports whether the extra amount is due at the given zero-based month index
func (f Frequency) AppliesTo(monthIndex int) bool {
	interval := f.Interval()
	return interval > 0 && monthIndex%interval == 0
}

func (f Frequency) String() string {
	if !f.valid() {
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
	return frequencyRules[f].name
}

// ParseFrequency resolves a frequency name, case-insensitively
func ParseFrequency(s string) (Frequency, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, rule := range frequencyRules {
		if rule.name == name {
			return Frequency(f), nil
		}
	}
	return 0, invalid("frequency", fmt.Sprintf("%q must be monthly, quarterly or annually", s))
}

func (f Frequency) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, invalid("frequency", fmt.Sprintf("unknown value %d", int(f)))
	}
	return []byte(f.String()), nil
}

func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ExtraPaymentPolicy adds principal-only payments on a fixed cadence
type ExtraPaymentPolicy struct {
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency Frequency       `yaml:"frequency" json:"frequency"`
	// EffectiveFrom is the first payment date the extra amount may apply to. Zero means from the start.
	EffectiveFrom time.Time `yaml:"effective_from,omitempty" json:"effective_from,omitempty"`
}

// Validate rejects negative amounts and unknown frequencies. A nil policy is valid.
func (p *ExtraPaymentPolicy) Validate() error {
	if p == nil {
		return nil
	}
	if p.Amount.IsNegative() {
		return invalid("extra_payment.amount", "cannot be negative")
	}
	if !p.Frequency.valid() {
		return invalid("extra_payment.frequency", fmt.Sprintf("unknown value %d", int(p.Frequency)))
	}
	return nil
}

// IsActive reports whether the policy contributes any extra principal
func (p *ExtraPaymentPolicy) IsActive() bool {
	return p != nil && p.Amount.IsPositive()
}

// AppliesOn reports whether the extra amount is added to the payment made on
// date at the given zero-based month index.
func (p *ExtraPaymentPolicy) AppliesOn(monthIndex int, date time.Time) bool {
	if !p.IsActive() {
		return false
	}
	if !p.EffectiveFrom.IsZero() && date.Before(p.EffectiveFrom) {
		return false
	}
	return p.Frequency.AppliesTo(monthIndex)
}
