package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/linreg/stats"
)

func newDescribeCmd(a *app) *cobra.Command {
	var values string

	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Print descriptive statistics of a series",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := a.loadSeries(args, values)
			if err != nil {
				return err
			}

			summary, err := stats.Describe(y)
			if err != nil {
				return err
			}

			p := a.printer(cmd.OutOrStdout())
			p.printf("Count: %d\n", len(y))
			p.printf("Mean: %s\nMedian: %s\nStd Dev: %s\nVariance: %s\nMin: %s\nMax: %s\nRange: %s\n",
				p.num(summary.Mean), p.num(summary.Median), p.num(summary.StdDev), p.num(summary.Variance),
				p.num(summary.Min), p.num(summary.Max), p.num(summary.Range))

			return nil
		},
	}

	cmd.Flags().StringVar(&values, "values", "", "comma separated series values")

	return cmd
}
