package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rpgo/mortgage-calculator/internal/calculation"
	"github.com/rpgo/mortgage-calculator/internal/config"
)

// envPrefix maps settings to MORTGAGE_* environment variables, e.g. MORTGAGE_OUTPUT_DIR.
const envPrefix = "MORTGAGE"

// rootOptions holds global CLI flags.
type rootOptions struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// app carries the initialized dependencies through the command tree.
type app struct {
	opts   *rootOptions
	engine *calculation.AmortizationEngine
	parser *config.InputParser
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return v
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	a := &app{
		opts:   opts,
		engine: calculation.NewAmortizationEngine(),
		parser: config.NewInputParser(),
	}
	v := newViper()

	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Mortgage payoff calculator with extra-payment scenarios",
		Long: "Simulates month-by-month payoff of a fixed-rate loan, reports total interest,\n" +
			"payoff date and the savings of extra principal payments against the schedule.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// explicit flags win over MORTGAGE_* variables, which win over defaults
			opts.Format = v.GetString("format")
			opts.OutputDir = v.GetString("output-dir")
			a.engine.SetLogger(newLogger(cmd.ErrOrStderr(), opts.Verbose))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.Format, "format", "f", "console", "output format (console, console-lite, csv, detailed-csv, json, html)")
	pf.StringVarP(&opts.OutputDir, "output", "o", "", "write a timestamped report into this directory instead of stdout")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging on stderr")
	_ = v.BindPFlag("format", pf.Lookup("format"))
	_ = v.BindPFlag("output-dir", pf.Lookup("output"))

	cmd.AddCommand(
		newCalculateCommand(a),
		newCompareCommand(a),
		newScheduleCommand(a),
		newExampleConfigCommand(a),
		newRentalCommand(a),
		newRehabCommand(a),
	)
	return cmd
}
