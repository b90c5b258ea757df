package regression

import (
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/linreg/internal/options"
)

// Analyze fits a line to a series and evaluates the fit in one call.
//
// The series is fitted with FitSeries, the fitted values are computed at indices
// 0..n-1 and compared with the series to obtain R², MSE, RMSE and MAE. Analysis is
// all-or-nothing: on failure no partial Result is returned.
//
// Parameters:
//   - y: Series values in order (at least 2)
//   - opts: Optional settings (WithHorizon, WithTrendThreshold)
//
// Returns:
//   - *Result: Coefficients, metrics, fitted values and optional forecast
//   - error: Any error of FitSeries, or errs.ErrZeroVariance when the series is
//     constant (R² is undefined)
//
// Example:
//
//	result, err := regression.Analyze([]float64{100, 120, 140, 160, 180, 200},
//	    regression.WithHorizon(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Forecast) // [220 240 260]
func Analyze(y []float64, opts ...AnalyzeOption) (*Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	coeffs, err := FitSeries(y)
	if err != nil {
		return nil, err
	}

	predicted := coeffs.Project(0, len(y))

	result, err := evaluate(coeffs, y, predicted, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Horizon > 0 {
		result.Forecast = coeffs.Project(len(y), cfg.Horizon)
	}

	return result, nil
}

// AnalyzeXY fits a line to paired samples and evaluates the fit in one call.
//
// It behaves like Analyze but uses explicit x values: fitted values are computed at
// each x, and a requested forecast continues from max(x)+1 in unit steps.
//
// Parameters:
//   - x: Independent variable values
//   - y: Dependent variable values, same length as x
//   - opts: Optional settings (WithHorizon, WithTrendThreshold)
//
// Returns:
//   - *Result: Coefficients, metrics, fitted values and optional forecast
//   - error: Any error of Fit, or errs.ErrZeroVariance when y is constant
func AnalyzeXY(x, y []float64, opts ...AnalyzeOption) (*Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	coeffs, err := Fit(x, y)
	if err != nil {
		return nil, err
	}

	predicted := coeffs.PredictAll(x)

	result, err := evaluate(coeffs, y, predicted, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Horizon > 0 {
		last := floats.Max(x)
		result.Forecast = make([]float64, cfg.Horizon)
		for i := range cfg.Horizon {
			result.Forecast[i] = coeffs.Predict(last + float64(i+1))
		}
	}

	return result, nil
}

// evaluate computes the goodness-of-fit metrics and assembles a Result.
func evaluate(coeffs Coefficients, observed, predicted []float64, cfg AnalyzeConfig) (*Result, error) {
	r2, err := RSquared(observed, predicted)
	if err != nil {
		return nil, err
	}

	mse, err := MSE(observed, predicted)
	if err != nil {
		return nil, err
	}

	mae, err := MAE(observed, predicted)
	if err != nil {
		return nil, err
	}

	return &Result{
		Slope:          coeffs.Slope,
		Intercept:      coeffs.Intercept,
		RSquared:       r2,
		MSE:            mse,
		RMSE:           RMSE(mse),
		MAE:            mae,
		Predicted:      predicted,
		TrendThreshold: cfg.TrendThreshold,
	}, nil
}
