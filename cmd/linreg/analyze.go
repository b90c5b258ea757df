package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/linreg/dataset"
	"github.com/arloliu/linreg/regression"
	"github.com/arloliu/linreg/stats"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		values    string
		at        string
		periods   int
		threshold float64
		expect    string
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Describe a series, fit a line and forecast the next periods",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := a.loadSeries(args, values)
			if err != nil {
				return err
			}

			want := regression.Trend(-1)
			if expect != "" {
				if want = regression.TrendFromString(expect); want < 0 {
					return fmt.Errorf("unknown trend %q, want stable, increasing or decreasing", expect)
				}
			}

			if !cmd.Flags().Changed("periods") {
				periods = a.cfg.Forecast.Periods
			}

			var xs []float64
			if at != "" {
				if xs, err = dataset.ParseValues(at); err != nil {
					return err
				}
			}

			summary, err := stats.Describe(y)
			if err != nil {
				return err
			}

			result, err := regression.Analyze(y,
				regression.WithHorizon(periods),
				regression.WithTrendThreshold(threshold),
			)
			if err != nil {
				return err
			}

			a.log.Info("series analyzed", "count", len(y), "r2", result.RSquared)

			p := a.printer(cmd.OutOrStdout())
			p.printf("=== Linear Regression Analysis ===\n")
			p.printf("Data: %s\n", p.list(y))

			p.section("Descriptive Statistics")
			p.printf("Mean: %s\nMedian: %s\nStd Dev: %s\nVariance: %s\nMin: %s\nMax: %s\nRange: %s\n",
				p.num(summary.Mean), p.num(summary.Median), p.num(summary.StdDev), p.num(summary.Variance),
				p.num(summary.Min), p.num(summary.Max), p.num(summary.Range))

			p.section("Regression")
			p.printf("Equation: %s\n", p.equation(result.Slope, result.Intercept))
			p.printf("R²: %s (%s fit)\n", p.num(result.RSquared), result.Quality())
			p.printf("MSE: %s\nRMSE: %s\nMAE: %s\n", p.num(result.MSE), p.num(result.RMSE), p.num(result.MAE))
			p.printf("Trend: %s\n", result.Trend())

			p.section("Actual vs Predicted")
			for i, actual := range y {
				predicted := result.Predicted[i]
				p.printf("Period %d: actual = %s, predicted = %s, error = %s\n",
					i, p.num(actual), p.num(predicted), p.num(actual-predicted))
			}

			if len(result.Forecast) > 0 {
				p.section("Forecast")
				for i, v := range result.Forecast {
					p.printf("Period %d: %s\n", len(y)+i, p.num(v))
				}
			}

			if len(xs) > 0 {
				p.section("Predictions")
				for i, v := range result.PredictAt(xs) {
					p.printf("x = %s: y = %s\n", p.num(xs[i]), p.num(v))
				}
			}

			if want >= 0 && result.Trend() != want {
				return fmt.Errorf("trend is %s, expected %s", result.Trend(), want)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&values, "values", "", "comma separated series values")
	cmd.Flags().StringVar(&at, "at", "", "comma separated x values to predict at")
	cmd.Flags().IntVar(&periods, "periods", 0, "number of periods to forecast (default forecast.periods)")
	cmd.Flags().Float64Var(&threshold, "trend-threshold", regression.DefaultTrendThreshold, "slope magnitude below which the trend is stable")
	cmd.Flags().StringVar(&expect, "expect-trend", "", "fail unless the trend is stable, increasing or decreasing")

	return cmd
}
