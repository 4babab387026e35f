package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validSpec() LoanSpec {
	return LoanSpec{
		Principal:         decimal.NewFromInt(200000),
		AnnualRatePercent: decimal.NewFromFloat(3.5),
		TermYears:         30,
	}
}

func TestLoanSpecValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LoanSpec)
		field  string
	}{
		{"valid", func(*LoanSpec) {}, ""},
		{"zero rate is valid", func(s *LoanSpec) { s.AnnualRatePercent = decimal.Zero }, ""},
		{"zero principal", func(s *LoanSpec) { s.Principal = decimal.Zero }, "principal"},
		{"negative principal", func(s *LoanSpec) { s.Principal = decimal.NewFromInt(-1) }, "principal"},
		{"zero term", func(s *LoanSpec) { s.TermYears = 0 }, "term_years"},
		{"negative term", func(s *LoanSpec) { s.TermYears = -5 }, "term_years"},
		{"negative rate", func(s *LoanSpec) { s.AnnualRatePercent = decimal.NewFromFloat(-0.1) }, "annual_rate_percent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			err := spec.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			var inputErr *InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestNumberOfPayments(t *testing.T) {
	assert.Equal(t, 360, validSpec().NumberOfPayments())
}

func TestFrequencyRules(t *testing.T) {
	assert.Equal(t, 1, Monthly.Interval())
	assert.Equal(t, 3, Quarterly.Interval())
	assert.Equal(t, 12, Annually.Interval())
	assert.Equal(t, 0, Frequency(9).Interval())

	assert.True(t, Quarterly.AppliesTo(0))
	assert.False(t, Quarterly.AppliesTo(1))
	assert.True(t, Quarterly.AppliesTo(6))
	assert.True(t, Annually.AppliesTo(24))
	assert.False(t, Annually.AppliesTo(11))
	assert.False(t, Frequency(-1).AppliesTo(0))
	assert.Equal(t, []Frequency{Monthly, Quarterly, Annually}, Frequencies())
}

func TestParseFrequency(t *testing.T) {
	for _, f := range Frequencies() {
		parsed, err := ParseFrequency(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	parsed, err := ParseFrequency("  Quarterly ")
	require.NoError(t, err)
	assert.Equal(t, Quarterly, parsed)

	_, err = ParseFrequency("weekly")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "weekly")
}

func TestFrequencyTextEncoding(t *testing.T) {
	var policy ExtraPaymentPolicy
	require.NoError(t, yaml.Unmarshal([]byte("amount: 200\nfrequency: annually\neffective_from: 2027-03-01\n"), &policy))
	assert.Equal(t, Annually, policy.Frequency)
	assert.True(t, policy.Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), policy.EffectiveFrom)

	b, err := json.Marshal(policy)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"frequency":"annually"`)

	err = yaml.Unmarshal([]byte("amount: 1\nfrequency: fortnightly\n"), &policy)
	assert.Error(t, err)

	_, err = Frequency(7).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExtraPaymentPolicy(t *testing.T) {
	var nilPolicy *ExtraPaymentPolicy
	assert.NoError(t, nilPolicy.Validate())
	assert.False(t, nilPolicy.IsActive())
	assert.False(t, nilPolicy.AppliesOn(0, time.Now()))

	negative := &ExtraPaymentPolicy{Amount: decimal.NewFromInt(-1)}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidInput)

	unknown := &ExtraPaymentPolicy{Amount: decimal.NewFromInt(1), Frequency: Frequency(5)}
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidInput)

	zero := &ExtraPaymentPolicy{Amount: decimal.Zero}
	assert.NoError(t, zero.Validate())
	assert.False(t, zero.IsActive())

	from := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &ExtraPaymentPolicy{Amount: decimal.NewFromInt(100), Frequency: Quarterly, EffectiveFrom: from}
	assert.False(t, p.AppliesOn(3, from.AddDate(0, -1, 0)), "before effective date")
	assert.True(t, p.AppliesOn(3, from), "on effective date")
	assert.False(t, p.AppliesOn(4, from.AddDate(0, 1, 0)), "off-cycle month")
}

func TestPaymentStep(t *testing.T) {
	step := PaymentStep{
		Interest:           decimal.NewFromInt(500),
		ScheduledPrincipal: decimal.NewFromInt(400),
		ExtraPrincipal:     decimal.NewFromInt(100),
		ClosingBalance:     decimal.Zero,
	}
	assert.True(t, step.Principal().Equal(decimal.NewFromInt(500)))
	assert.True(t, step.Payment().Equal(decimal.NewFromInt(1000)))
	assert.True(t, step.IsPaidOff())
}
