package regression

import (
	"fmt"
	"strings"
)

// Coefficients holds the parameters of a fitted line y = Slope*x + Intercept.
//
// Coefficients is a plain value: it is safe to copy and to share between goroutines.
// Every prediction in this package goes through Predict, so fitted values, forecasts
// and predictions at arbitrary x always agree.
type Coefficients struct {
	// Slope is the change in y per unit of x.
	Slope float64
	// Intercept is the value of y at x = 0.
	Intercept float64
}

// Predict evaluates the line at x.
func (c Coefficients) Predict(x float64) float64 {
	return c.Slope*x + c.Intercept
}

// PredictAll evaluates the line at every x and returns the results in input order.
//
// An empty or nil input yields an empty, non-nil slice.
func (c Coefficients) PredictAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = c.Predict(x)
	}

	return out
}

// String returns the line formula, e.g. "y = 2.000000x + 1.000000".
func (c Coefficients) String() string {
	sign := "+"
	intercept := c.Intercept
	if intercept < 0 {
		sign = "-"
		intercept = -intercept
	}

	return fmt.Sprintf("y = %.6fx %s %.6f", c.Slope, sign, intercept)
}

// Result is the complete outcome of a regression analysis.
//
// A Result bundles the fitted coefficients with goodness-of-fit metrics and the
// model's predictions at the input positions. It is produced by Analyze and AnalyzeXY
// and is immutable by convention: none of its methods modify it.
//
// Fields:
//   - Slope, Intercept: The fitted line
//   - RSquared: Coefficient of determination (1 is a perfect fit, may be negative)
//   - MSE: Mean squared error of the predictions
//   - RMSE: Square root of MSE, in the units of y
//   - MAE: Mean absolute error of the predictions
//   - Predicted: Fitted values, one per input sample, in input order
//   - Forecast: Projected values after the series (only when WithHorizon is used)
//   - TrendThreshold: Slope magnitude above which Trend reports a direction
type Result struct {
	// Slope is the fitted slope.
	Slope float64
	// Intercept is the fitted intercept.
	Intercept float64
	// RSquared is the coefficient of determination.
	RSquared float64
	// MSE is the mean squared error.
	MSE float64
	// RMSE is the root mean squared error.
	RMSE float64
	// MAE is the mean absolute error.
	MAE float64
	// Predicted holds the fitted values for the input samples.
	Predicted []float64
	// Forecast holds the values projected past the end of a series.
	// It is nil unless a positive horizon was requested.
	Forecast []float64
	// TrendThreshold is the slope magnitude used by Trend.
	TrendThreshold float64
}

// Coefficients returns the fitted line of the result.
func (r *Result) Coefficients() Coefficients {
	return Coefficients{Slope: r.Slope, Intercept: r.Intercept}
}

// ProjectNext forecasts count values following a series of length currentLength.
//
// The forecast continues the index sequence: it evaluates the line at
// currentLength, currentLength+1, ..., currentLength+count-1.
//
// Parameters:
//   - currentLength: Length of the fitted series (the first index to forecast)
//   - count: Number of values to forecast; zero or negative yields an empty slice
//
// Returns:
//   - []float64: Forecasted values
//
// Example:
//
//	result, _ := regression.Analyze([]float64{10, 12, 14})
//	next := result.ProjectNext(3, 2) // [16, 18]
func (r *Result) ProjectNext(currentLength, count int) []float64 {
	return r.Coefficients().Project(currentLength, count)
}

// PredictAt evaluates the fitted line at each of the given x values.
func (r *Result) PredictAt(xs []float64) []float64 {
	return r.Coefficients().PredictAll(xs)
}

// Quality classifies the fit by its R² value.
func (r *Result) Quality() Quality {
	return QualityOf(r.RSquared)
}

// Trend classifies the slope against the result's TrendThreshold.
func (r *Result) Trend() Trend {
	return TrendOf(r.Slope, r.TrendThreshold)
}

// Correlation describes the strength and direction of the linear relationship.
func (r *Result) Correlation() Correlation {
	return CorrelationOf(r.Slope, r.RSquared)
}

// String returns a multi-line, human-readable report of the result.
//
// The report lists the equation, every metric with six decimals and the predicted
// values with four decimals.
//
// Returns:
//   - string: Formatted result report
func (r *Result) String() string {
	var sb strings.Builder

	sb.WriteString("=== Linear Regression Result ===\n")
	fmt.Fprintf(&sb, "Equation: %s\n", r.Coefficients())
	fmt.Fprintf(&sb, "Slope (a): %.6f\n", r.Slope)
	fmt.Fprintf(&sb, "Intercept (b): %.6f\n", r.Intercept)
	fmt.Fprintf(&sb, "R²: %.6f\n", r.RSquared)
	fmt.Fprintf(&sb, "MSE: %.6f\n", r.MSE)
	fmt.Fprintf(&sb, "RMSE: %.6f\n", r.RMSE)
	fmt.Fprintf(&sb, "MAE: %.6f\n", r.MAE)
	sb.WriteString("Predicted: [")
	for i, v := range r.Predicted {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%.4f", v)
	}
	sb.WriteString("]")

	return sb.String()
}
