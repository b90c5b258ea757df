// Package regression fits straight lines to numeric samples by ordinary least squares
// and evaluates how well they fit.
//
// The package works on plain []float64 inputs and is stateless: every function is
// pure, never mutates its arguments and can be called concurrently without
// coordination.
//
// # Key Features
//
//   - **Series fitting**: FitSeries treats the zero-based sample position as x
//   - **Paired fitting**: Fit accepts explicit, positionally aligned x and y
//   - **Goodness of fit**: RSquared, MSE, RMSE and MAE over observed vs. predicted values
//   - **Forecasting**: Project and Result.ProjectNext extend the fitted line forward
//   - **One-call analysis**: Analyze and AnalyzeXY bundle fit, metrics and predictions
//
// # Usage Patterns
//
// ## Basic Fit
//
//	coeffs, err := regression.FitSeries([]float64{2, 4, 6, 8, 10})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(coeffs) // y = 2.000000x + 2.000000
//
// ## Full Analysis
//
//	result, err := regression.Analyze(sales, regression.WithHorizon(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("R²=%.4f RMSE=%.4f\n", result.RSquared, result.RMSE)
//	fmt.Println(result.Forecast) // next 3 periods
//
// ## Paired Samples
//
//	result, err := regression.AnalyzeXY(hoursStudied, grades)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Correlation()) // strong positive correlation
//
// # Error Handling
//
// Failures are reported with the sentinels of package errs (ErrEmptyData,
// ErrInsufficientData, ErrZeroVariance, ErrLengthMismatch), possibly wrapped with
// context. Use errors.Is or errs.KindOf to match them. Degenerate inputs are always
// rejected before a division can produce Inf or NaN.
//
// # Numerical Notes
//
// Fit uses the centered-sums form of OLS: it first computes the means of x and y,
// then accumulates Sxy = Σ(xi-x̄)(yi-ȳ) and Sxx = Σ(xi-x̄)² in one pass. Zero spread
// is detected with an absolute tolerance equal to the float64 machine epsilon
// (MachineEpsilon), not a relative one.
//
// # Performance Characteristics
//
//   - **Fit / FitSeries**: O(n) time, two passes over the data
//   - **Analyze**: O(n) time, allocates only the predicted values
//   - **Input size**: bounded by available memory only
package regression
