package regression

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/linreg/errs"
	"github.com/arloliu/linreg/internal/pool"
)

// MachineEpsilon is the float64 machine epsilon (2^-52).
//
// Sums of squared deviations at or below this absolute value are treated as zero
// spread.
const MachineEpsilon = 0x1p-52

// minSamples is the smallest number of samples a line can be fitted to.
const minSamples = 2

// Fit fits y = slope*x + intercept to paired samples by ordinary least squares.
//
// The samples are positionally aligned: x[i] and y[i] form one observation.
//
// Parameters:
//   - x: Independent variable values
//   - y: Dependent variable values, same length as x
//
// Returns:
//   - Coefficients: The fitted slope and intercept
//   - error: errs.ErrEmptyData if either input is empty,
//     errs.ErrLengthMismatch if the lengths differ,
//     errs.ErrInsufficientData if there are fewer than 2 samples,
//     errs.ErrZeroVariance if all x values are effectively identical
//
// Example:
//
//	coeffs, err := regression.Fit([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(coeffs.Slope, coeffs.Intercept) // 2 0
func Fit(x, y []float64) (Coefficients, error) {
	if len(x) == 0 || len(y) == 0 {
		return Coefficients{}, errs.ErrEmptyData
	}

	if len(x) != len(y) {
		return Coefficients{}, fmt.Errorf("%w: x has %d values, y has %d", errs.ErrLengthMismatch, len(x), len(y))
	}

	if len(x) < minSamples {
		return Coefficients{}, fmt.Errorf("%w: need at least %d samples, got %d", errs.ErrInsufficientData, minSamples, len(x))
	}

	meanX := stat.Mean(x, nil)
	meanY := stat.Mean(y, nil)

	var sxy, sxx float64
	for i := range x {
		dx := x[i] - meanX
		sxy += dx * (y[i] - meanY)
		sxx += dx * dx
	}

	if isZeroSpread(sxx) {
		return Coefficients{}, fmt.Errorf("%w: all x values are identical", errs.ErrZeroVariance)
	}

	slope := sxy / sxx

	return Coefficients{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}

// FitSeries fits a line to a series whose independent variable is the sample index.
//
// The i-th value of y is paired with x = i (0, 1, ..., n-1) and the fit is delegated
// to Fit.
//
// Parameters:
//   - y: Series values in order
//
// Returns:
//   - Coefficients: The fitted slope (change per period) and intercept (value at index 0)
//   - error: errs.ErrEmptyData for an empty series,
//     errs.ErrInsufficientData for a single-value series
//
// Example:
//
//	coeffs, err := regression.FitSeries([]float64{100, 120, 140, 160})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("growth per period: %.1f\n", coeffs.Slope) // 20.0
func FitSeries(y []float64) (Coefficients, error) {
	if len(y) == 0 {
		return Coefficients{}, errs.ErrEmptyData
	}

	if len(y) < minSamples {
		return Coefficients{}, fmt.Errorf("%w: need at least %d samples, got %d", errs.ErrInsufficientData, minSamples, len(y))
	}

	x, release := pool.GetFloat64Slice(len(y))
	defer release()
	fillIndex(x)

	return Fit(x, y)
}

// fillIndex writes 0, 1, ..., len(x)-1 into x.
func fillIndex(x []float64) {
	for i := range x {
		x[i] = float64(i)
	}
}

// isZeroSpread reports whether a sum of squared deviations is effectively zero.
func isZeroSpread(sumSq float64) bool {
	return scalar.EqualWithinAbs(sumSq, 0, MachineEpsilon)
}
