// Package linreg provides ordinary least-squares linear regression, goodness-of-fit
// metrics, forecasting and descriptive statistics for float64 samples.
//
// Linreg fits the line y = a·x + b either to a one-dimensional series, where the
// zero-based position of each value is used as x, or to explicit (x, y) pairs. It is a
// pure in-memory library: no I/O, no logging, no global state.
//
// # Core Features
//
//   - Closed-form OLS fitting with explicit degenerate-input detection
//   - R², MSE, RMSE and MAE over observed and predicted values
//   - Forward projection of a fitted line
//   - Population mean, median, variance, standard deviation, min, max and range
//   - A closed error taxonomy (package errs) matched with errors.Is
//
// # Basic Usage
//
// Analyzing a series:
//
//	import "github.com/arloliu/linreg"
//
//	result, err := linreg.Analyze([]float64{10, 12, 14, 16, 18, 20, 22, 25})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result)
//
//	// Forecast the next 5 periods
//	next := result.ProjectNext(8, 5)
//
// Fitting explicit pairs:
//
//	coeffs, err := linreg.Fit([]float64{1, 2, 3, 4, 5}, []float64{2.1, 3.9, 6.1, 7.8, 10.2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(coeffs) // y = 2.010000x - 0.010000
//
// Describing a sample:
//
//	summary, err := linreg.Describe(temperatures)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the regression and stats
// packages. For options and interpretation helpers (Quality, Trend, Correlation) use
// the regression package directly.
package linreg

import (
	"github.com/arloliu/linreg/errs"
	"github.com/arloliu/linreg/regression"
	"github.com/arloliu/linreg/stats"
)

// Coefficients is the fitted line y = Slope*x + Intercept.
type Coefficients = regression.Coefficients

// Result is the outcome of Analyze.
type Result = regression.Result

// Summary holds descriptive statistics.
type Summary = stats.Summary

// Sentinel errors returned by every linreg operation.
var (
	ErrEmptyData        = errs.ErrEmptyData
	ErrInsufficientData = errs.ErrInsufficientData
	ErrZeroVariance     = errs.ErrZeroVariance
	ErrLengthMismatch   = errs.ErrLengthMismatch
)

// Fit fits a line to paired samples by ordinary least squares.
//
// Parameters:
//   - x: Independent variable values
//   - y: Dependent variable values, same length as x
//
// Returns:
//   - Coefficients: Fitted slope and intercept
//   - error: ErrEmptyData, ErrLengthMismatch, ErrInsufficientData or ErrZeroVariance
func Fit(x, y []float64) (Coefficients, error) {
	return regression.Fit(x, y)
}

// FitSeries fits a line to a series using the sample index as x.
//
// Returns ErrEmptyData for an empty series and ErrInsufficientData for a single value.
func FitSeries(y []float64) (Coefficients, error) {
	return regression.FitSeries(y)
}

// Analyze fits a series and computes R², MSE, RMSE, MAE and the fitted values.
//
// Parameters:
//   - y: Series values (at least 2)
//   - opts: Optional regression.WithHorizon / regression.WithTrendThreshold settings
//
// Returns:
//   - *Result: Complete analysis, nil on error
//   - error: Any error of FitSeries or RSquared
func Analyze(y []float64, opts ...regression.AnalyzeOption) (*Result, error) {
	return regression.Analyze(y, opts...)
}

// AnalyzeXY fits paired samples and computes the same metrics as Analyze.
func AnalyzeXY(x, y []float64, opts ...regression.AnalyzeOption) (*Result, error) {
	return regression.AnalyzeXY(x, y, opts...)
}

// RSquared computes the coefficient of determination.
func RSquared(observed, predicted []float64) (float64, error) {
	return regression.RSquared(observed, predicted)
}

// MSE computes the mean squared error.
func MSE(observed, predicted []float64) (float64, error) {
	return regression.MSE(observed, predicted)
}

// RMSE returns the square root of a mean squared error.
func RMSE(mse float64) float64 {
	return regression.RMSE(mse)
}

// MAE computes the mean absolute error.
func MAE(observed, predicted []float64) (float64, error) {
	return regression.MAE(observed, predicted)
}

// Project evaluates slope*x + intercept at count consecutive positions starting at start.
//
// A count of zero or less yields an empty slice.
func Project(start, count int, slope, intercept float64) []float64 {
	return regression.Project(start, count, slope, intercept)
}

// Describe computes mean, median, population variance and standard deviation, min,
// max and range.
//
// Returns ErrEmptyData for an empty sample.
func Describe(data []float64) (Summary, error) {
	return stats.Describe(data)
}
