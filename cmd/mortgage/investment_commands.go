package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/mortgage-calculator/internal/calculation"
	"github.com/rpgo/mortgage-calculator/internal/config"
	"github.com/rpgo/mortgage-calculator/internal/output"
)

func newRentalCommand(a *app) *cobra.Command {
	var form config.RentalFormInput
	cmd := &cobra.Command{
		Use:   "rental",
		Short: "Monthly and annual cash flow of a rental property",
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := a.parser.ParseRentalForm(form)
			if err != nil {
				return err
			}
			result, err := calculation.CalculateRentalCashFlow(property)
			if err != nil {
				return err
			}
			data, err := output.FormatRental(result, a.opts.Format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.MonthlyRent, "rent", "", "monthly rent")
	f.StringVar(&form.Mortgage, "mortgage", "", "monthly mortgage payment")
	f.StringVar(&form.Taxes, "taxes", "", "monthly property taxes")
	f.StringVar(&form.Insurance, "insurance", "", "monthly insurance")
	f.StringVar(&form.Maintenance, "maintenance", "", "monthly maintenance")
	return cmd
}

func newRehabCommand(a *app) *cobra.Command {
	var form config.RehabFormInput
	cmd := &cobra.Command{
		Use:   "rehab",
		Short: "Estimate rehab cost, cost per square foot, ROI and payback period",
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.parser.ParseRehabForm(form)
			if err != nil {
				return err
			}
			result, err := calculation.EstimateRehabCost(project)
			if err != nil {
				return err
			}
			data, err := output.FormatRehab(result, a.opts.Format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	f := cmd.Flags()
	f.StringArrayVar(&form.Materials, "material", nil, "material line as QUANTITY:COST_PER_UNIT (repeatable)")
	f.StringArrayVar(&form.Labor, "labor", nil, "labor line as HOURS:HOURLY_RATE (repeatable)")
	f.StringVar(&form.ContingencyPercent, "contingency", config.DefaultContingencyPercent, "contingency in percent of materials and labor")
	f.StringVar(&form.PurchasePrice, "purchase", "", "purchase price")
	f.StringVar(&form.ExpectedSalePrice, "sale", "", "expected sale price")
	f.StringVar(&form.SquareFootage, "sqft", "", "square footage")
	f.StringVar(&form.AnnualCashFlow, "annual-cash-flow", "", "annual cash flow while held, may be negative")
	return cmd
}
