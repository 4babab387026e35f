package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
)

// MaxTermYears bounds loan terms accepted from configuration files
const MaxTermYears = 50

// Form defaults applied to blank fields, matching the calculator's initial state.
const (
	DefaultPrincipal         = "200000"
	DefaultAnnualRatePercent = "3.5"
	DefaultTermYears         = "30"
	DefaultExtraAmount       = "0"
	DefaultExtraFrequency    = "monthly"
)

// InputParser handles parsing of input configuration files and form fields
type InputParser struct {
	// Now supplies the default extra-payment start date for forms. Nil means time.Now.
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Loan.Validate(); err != nil {
		return fmt.Errorf("loan validation failed: %w", err)
	}
	if config.Loan.TermYears > MaxTermYears {
		return fmt.Errorf("loan term must be between 1 and %d years", MaxTermYears)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}
	if err := scenario.ExtraPayment.Validate(); err != nil {
		return err
	}
	return nil
}

// FormInput carries the raw field values of the calculator form
type FormInput struct {
	Principal         string
	AnnualRatePercent string
	TermYears         string
	ExtraAmount       string
	ExtraFrequency    string
	ExtraStartDate    string // YYYY-MM-DD
}

// ParseForm converts form fields into a loan and an optional extra-payment
// policy. Blank fields take the form defaults; a zero extra amount yields a nil policy.
func (ip *InputParser) ParseForm(in FormInput) (domain.LoanSpec, *domain.ExtraPaymentPolicy, error) {
	principal, err := parseAmount("principal", orDefault(in.Principal, DefaultPrincipal))
	if err != nil {
		return domain.LoanSpec{}, nil, err
	}
	rate, err := parseAmount("annual_rate_percent", orDefault(in.AnnualRatePercent, DefaultAnnualRatePercent))
	if err != nil {
		return domain.LoanSpec{}, nil, err
	}
	term, err := strconv.Atoi(orDefault(in.TermYears, DefaultTermYears))
	if err != nil {
		return domain.LoanSpec{}, nil, &domain.InvalidInputError{Field: "term_years", Reason: fmt.Sprintf("%q is not a whole number of years", in.TermYears)}
	}
	spec := domain.LoanSpec{Principal: principal, AnnualRatePercent: rate, TermYears: term}
	if err := spec.Validate(); err != nil {
		return domain.LoanSpec{}, nil, err
	}

	extra, err := parseAmount("extra_payment.amount", orDefault(in.ExtraAmount, DefaultExtraAmount))
	if err != nil {
		return domain.LoanSpec{}, nil, err
	}
	frequency, err := domain.ParseFrequency(orDefault(in.ExtraFrequency, DefaultExtraFrequency))
	if err != nil {
		return domain.LoanSpec{}, nil, err
	}
	from := ip.today()
	if s := strings.TrimSpace(in.ExtraStartDate); s != "" {
		from, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return domain.LoanSpec{}, nil, &domain.InvalidInputError{Field: "extra_payment.effective_from", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", s)}
		}
	}

	policy := &domain.ExtraPaymentPolicy{Amount: extra, Frequency: frequency, EffectiveFrom: from}
	if err := policy.Validate(); err != nil {
		return domain.LoanSpec{}, nil, err
	}
	if !policy.IsActive() {
		return spec, nil, nil
	}
	return spec, policy, nil
}

func (ip *InputParser) today() time.Time {
	now := time.Now
	if ip.Now != nil {
		now = ip.Now
	}
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", "$", "", "%", "").Replace(strings.TrimSpace(value))
	m, err := money.NewMoneyFromString(cleaned)
	if err != nil {
		return decimal.Zero, &domain.InvalidInputError{Field: field, Reason: fmt.Sprintf("%q is not a number", value)}
	}
	return m.Decimal, nil
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	start, _ := time.Parse(time.DateOnly, "2026-01-01")
	extraFrom, _ := time.Parse(time.DateOnly, "2027-01-01")

	return &domain.Configuration{
		Loan: domain.LoanSpec{
			Principal:         decimal.NewFromInt(200000),
			AnnualRatePercent: decimal.NewFromFloat(3.5),
			TermYears:         30,
			StartDate:         start,
		},
		Scenarios: []domain.Scenario{
			{Name: "Scheduled Payments"},
			{
				Name: "Extra $200 Monthly",
				ExtraPayment: &domain.ExtraPaymentPolicy{
					Amount:    decimal.NewFromInt(200),
					Frequency: domain.Monthly,
				},
			},
			{
				Name: "Extra $600 Quarterly",
				ExtraPayment: &domain.ExtraPaymentPolicy{
					Amount:    decimal.NewFromInt(600),
					Frequency: domain.Quarterly,
				},
			},
			{
				Name: "Annual $2,400 From 2027",
				ExtraPayment: &domain.ExtraPaymentPolicy{
					Amount:        decimal.NewFromInt(2400),
					Frequency:     domain.Annually,
					EffectiveFrom: extraFrom,
				},
			},
		},
	}
}
