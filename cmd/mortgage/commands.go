package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/mortgage-calculator/internal/config"
	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/rpgo/mortgage-calculator/internal/output"
)

// loanFlags are the form fields shared by calculate and schedule.
type loanFlags struct {
	form      config.FormInput
	startDate string
}

func (lf *loanFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&lf.form.Principal, "principal", config.DefaultPrincipal, "loan amount")
	f.StringVar(&lf.form.AnnualRatePercent, "rate", config.DefaultAnnualRatePercent, "annual interest rate in percent")
	f.StringVar(&lf.form.TermYears, "term", config.DefaultTermYears, "loan term in years")
	f.StringVar(&lf.form.ExtraAmount, "extra", config.DefaultExtraAmount, "extra principal per applicable payment")
	f.StringVar(&lf.form.ExtraFrequency, "frequency", config.DefaultExtraFrequency, "extra payment frequency (monthly, quarterly, annually)")
	f.StringVar(&lf.form.ExtraStartDate, "extra-start", "", "first date extra payments apply, YYYY-MM-DD (default today)")
	f.StringVar(&lf.startDate, "start-date", "", "first payment date, YYYY-MM-DD (default today)")
}

func (lf *loanFlags) parse(a *app) (domain.LoanSpec, *domain.ExtraPaymentPolicy, error) {
	spec, policy, err := a.parser.ParseForm(lf.form)
	if err != nil {
		return domain.LoanSpec{}, nil, err
	}
	if lf.startDate != "" {
		start, err := time.Parse(time.DateOnly, lf.startDate)
		if err != nil {
			return domain.LoanSpec{}, nil, &domain.InvalidInputError{Field: "start_date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", lf.startDate)}
		}
		spec.StartDate = start
	}
	return spec, policy, nil
}

func newCalculateCommand(a *app) *cobra.Command {
	lf := &loanFlags{}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate payoff for a single loan, with and without extra payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, policy, err := lf.parse(a)
			if err != nil {
				return err
			}
			cfg := &domain.Configuration{
				Loan:      spec,
				Scenarios: []domain.Scenario{{Name: "Scheduled Payments"}},
			}
			if policy != nil {
				cfg.Scenarios = append(cfg.Scenarios, domain.Scenario{
					Name:         fmt.Sprintf("Extra %s %s", output.FormatCurrency(policy.Amount), policy.Frequency),
					ExtraPayment: policy,
				})
			}
			return a.run(cmd, cfg)
		},
	}
	lf.register(cmd)
	return cmd
}

func newCompareCommand(a *app) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the extra-payment scenarios of a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.parser.LoadFromFile(configPath)
			if err != nil {
				return err
			}
			return a.run(cmd, cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "mortgage.yaml", "scenario configuration file")
	return cmd
}

func newScheduleCommand(a *app) *cobra.Command {
	lf := &loanFlags{}
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the monthly payment schedule as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, policy, err := lf.parse(a)
			if err != nil {
				return err
			}
			steps, err := a.engine.Schedule(spec, policy)
			if err != nil {
				return err
			}
			data, err := output.FormatScheduleCSV(steps)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	lf.register(cmd)
	return cmd
}

func newExampleConfigCommand(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example scenario configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := output.SaveConfiguration(a.parser.CreateExampleConfiguration(), out); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "mortgage.yaml", "destination file")
	return cmd
}

// run evaluates cfg and renders the comparison to stdout or, with --output, to a report file.
func (a *app) run(cmd *cobra.Command, cfg *domain.Configuration) error {
	if err := a.parser.ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	results, err := a.engine.RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if a.opts.OutputDir != "" {
		path, err := output.GenerateReport(results, a.opts.Format, a.opts.OutputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}
	f := output.GetFormatterByName(a.opts.Format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, a.opts.Format)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
