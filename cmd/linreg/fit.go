package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/arloliu/linreg/dataset"
	"github.com/arloliu/linreg/regression"
)

func newFitCmd(a *app) *cobra.Command {
	var pairs, xFlag, yFlag string

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a line to explicit (x, y) pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x, y, err := loadPairs(pairs, xFlag, yFlag)
			if err != nil {
				return err
			}
			a.log.Debug("pairs loaded", "count", len(x))

			result, err := regression.AnalyzeXY(x, y)
			if err != nil {
				return err
			}

			p := a.printer(cmd.OutOrStdout())
			p.printf("Equation: %s\n", p.equation(result.Slope, result.Intercept))
			p.printf("R²: %s (%s fit)\n", p.num(result.RSquared), result.Quality())
			p.printf("RMSE: %s\n", p.num(result.RMSE))
			p.printf("Correlation: %s\n", result.Correlation())

			return nil
		},
	}

	cmd.Flags().StringVar(&pairs, "pairs", "", "text file with one x,y pair per line")
	cmd.Flags().StringVar(&xFlag, "x", "", "comma separated x values")
	cmd.Flags().StringVar(&yFlag, "y", "", "comma separated y values")
	cmd.MarkFlagsMutuallyExclusive("pairs", "x")
	cmd.MarkFlagsMutuallyExclusive("pairs", "y")
	cmd.MarkFlagsRequiredTogether("x", "y")

	return cmd
}

func loadPairs(path, xs, ys string) (x, y []float64, err error) {
	if path != "" {
		return dataset.LoadPairs(path)
	}

	if xs == "" || ys == "" {
		return nil, nil, errors.New("either --pairs or both --x and --y are required")
	}

	if x, err = dataset.ParseValues(xs); err != nil {
		return nil, nil, err
	}
	if y, err = dataset.ParseValues(ys); err != nil {
		return nil, nil, err
	}

	return x, y, nil
}
