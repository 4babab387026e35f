package domain

// Configuration represents the complete input configuration for a payoff comparison
type Configuration struct {
	Loan      LoanSpec   `yaml:"loan" json:"loan"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario is one extra-payment option evaluated against the configured loan
type Scenario struct {
	Name         string              `yaml:"name" json:"name"`
	ExtraPayment *ExtraPaymentPolicy `yaml:"extra_payment,omitempty" json:"extra_payment,omitempty"`
}

// ScenarioResult holds the outcome of a single scenario
type ScenarioResult struct {
	Name         string              `json:"name"`
	ExtraPayment *ExtraPaymentPolicy `json:"extra_payment,omitempty"`
	Summary      AmortizationSummary `json:"summary"`
	Trajectory   []TrajectoryPoint   `json:"trajectory"`
}

// ScenarioComparison provides a comparison of all scenarios for one loan
type ScenarioComparison struct {
	Loan      LoanSpec         `json:"loan"`
	Scenarios []ScenarioResult `json:"scenarios"`
}
