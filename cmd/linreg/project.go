package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/linreg/regression"
)

func newProjectCmd(a *app) *cobra.Command {
	var (
		slope, intercept float64
		start, count     int
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Evaluate a known line at consecutive positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Forecast.Periods
			}

			p := a.printer(cmd.OutOrStdout())
			for i, v := range regression.Project(start, count, slope, intercept) {
				p.printf("x = %d: y = %s\n", start+i, p.num(v))
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&slope, "slope", 0, "line slope")
	cmd.Flags().Float64Var(&intercept, "intercept", 0, "line intercept")
	cmd.Flags().IntVar(&start, "start", 0, "first x position")
	cmd.Flags().IntVar(&count, "count", 0, "number of positions (default forecast.periods)")
	_ = cmd.MarkFlagRequired("slope")
	_ = cmd.MarkFlagRequired("intercept")

	return cmd
}
