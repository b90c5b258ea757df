package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/linreg/errs"
)

// RSquared computes the coefficient of determination of predicted against observed.
//
// R² = 1 - SS_res/SS_tot, where SS_res is the sum of squared residuals and SS_tot the
// sum of squared deviations of observed from its mean. R² is 1 for a perfect fit and
// can be negative when the predictions are worse than the mean.
//
// Parameters:
//   - observed: Actual values
//   - predicted: Model predictions, same length as observed
//
// Returns:
//   - float64: The R² value
//   - error: errs.ErrEmptyData, errs.ErrLengthMismatch, or errs.ErrZeroVariance
//     when every observed value equals the mean
func RSquared(observed, predicted []float64) (float64, error) {
	if err := checkPaired(observed, predicted); err != nil {
		return 0, err
	}

	mean := stat.Mean(observed, nil)

	var ssTot, ssRes float64
	for i, y := range observed {
		dev := y - mean
		ssTot += dev * dev
		res := y - predicted[i]
		ssRes += res * res
	}

	if isZeroSpread(ssTot) {
		return 0, fmt.Errorf("%w: observed values are constant", errs.ErrZeroVariance)
	}

	return 1 - ssRes/ssTot, nil
}

// MSE computes the mean squared error between observed and predicted values.
//
// Returns errs.ErrEmptyData for empty input and errs.ErrLengthMismatch when the
// lengths differ.
func MSE(observed, predicted []float64) (float64, error) {
	if err := checkPaired(observed, predicted); err != nil {
		return 0, err
	}

	var sum float64
	for i, y := range observed {
		res := y - predicted[i]
		sum += res * res
	}

	return sum / float64(len(observed)), nil
}

// RMSE returns the root mean squared error for a given mean squared error.
func RMSE(mse float64) float64 {
	return math.Sqrt(mse)
}

// MAE computes the mean absolute error between observed and predicted values.
//
// Returns errs.ErrEmptyData for empty input and errs.ErrLengthMismatch when the
// lengths differ.
func MAE(observed, predicted []float64) (float64, error) {
	if err := checkPaired(observed, predicted); err != nil {
		return 0, err
	}

	var sum float64
	for i, y := range observed {
		sum += math.Abs(y - predicted[i])
	}

	return sum / float64(len(observed)), nil
}

// checkPaired validates an observed/predicted pair.
func checkPaired(observed, predicted []float64) error {
	if len(observed) == 0 || len(predicted) == 0 {
		return errs.ErrEmptyData
	}

	if len(observed) != len(predicted) {
		return fmt.Errorf("%w: %d observed vs %d predicted", errs.ErrLengthMismatch, len(observed), len(predicted))
	}

	return nil
}
