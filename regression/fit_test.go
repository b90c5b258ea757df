package regression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linreg/errs"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name          string
		x, y          []float64
		wantSlope     float64
		wantIntercept float64
	}{
		{
			name:          "exact line through origin",
			x:             []float64{1, 2, 3, 4},
			y:             []float64{2, 4, 6, 8},
			wantSlope:     2,
			wantIntercept: 0,
		},
		{
			name:          "negative slope",
			x:             []float64{0, 1, 2},
			y:             []float64{5, 3, 1},
			wantSlope:     -2,
			wantIntercept: 5,
		},
		{
			name:          "unsorted x",
			x:             []float64{3, 1, 2},
			y:             []float64{7, 3, 5},
			wantSlope:     2,
			wantIntercept: 1,
		},
		{
			name:          "two points",
			x:             []float64{-1, 1},
			y:             []float64{0, 4},
			wantSlope:     2,
			wantIntercept: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coeffs, err := Fit(tt.x, tt.y)
			require.NoError(t, err)
			require.InDelta(t, tt.wantSlope, coeffs.Slope, 1e-10)
			require.InDelta(t, tt.wantIntercept, coeffs.Intercept, 1e-10)
		})
	}
}

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{name: "both empty", x: nil, y: nil, want: errs.ErrEmptyData},
		{name: "x empty", x: []float64{}, y: []float64{1, 2}, want: errs.ErrEmptyData},
		{name: "y empty", x: []float64{1, 2}, y: nil, want: errs.ErrEmptyData},
		{name: "length mismatch", x: []float64{1, 2, 3}, y: []float64{1, 2}, want: errs.ErrLengthMismatch},
		{name: "mismatch before insufficient", x: []float64{1}, y: []float64{1, 2}, want: errs.ErrLengthMismatch},
		{name: "single sample", x: []float64{1}, y: []float64{1}, want: errs.ErrInsufficientData},
		{name: "constant x", x: []float64{3, 3, 3}, y: []float64{1, 2, 3}, want: errs.ErrZeroVariance},
		{name: "constant inexact x", x: []float64{0.1, 0.1, 0.1}, y: []float64{1, 2, 3}, want: errs.ErrZeroVariance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.x, tt.y)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIsZeroSpread(t *testing.T) {
	require.True(t, isZeroSpread(0))
	require.True(t, isZeroSpread(MachineEpsilon))
	require.True(t, isZeroSpread(1e-30))
	require.False(t, isZeroSpread(3*MachineEpsilon))
	require.False(t, isZeroSpread(0.5))
}

func TestFitDoesNotMutateInput(t *testing.T) {
	x := []float64{3, 1, 2}
	y := []float64{7, 3, 5}

	_, err := Fit(x, y)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 2}, x)
	require.Equal(t, []float64{7, 3, 5}, y)
}

func TestFitSeries(t *testing.T) {
	t.Run("linear series", func(t *testing.T) {
		coeffs, err := FitSeries([]float64{2, 4, 6, 8, 10})
		require.NoError(t, err)
		require.InDelta(t, 2.0, coeffs.Slope, 1e-10)
		require.InDelta(t, 2.0, coeffs.Intercept, 1e-10)
	})

	t.Run("matches Fit with index x", func(t *testing.T) {
		y := []float64{10, 12, 14, 16, 18, 20, 22, 25}
		x := []float64{0, 1, 2, 3, 4, 5, 6, 7}

		series, err := FitSeries(y)
		require.NoError(t, err)
		paired, err := Fit(x, y)
		require.NoError(t, err)
		require.Equal(t, paired, series)
	})

	t.Run("tiny magnitudes", func(t *testing.T) {
		coeffs, err := FitSeries([]float64{1e-10, 2e-10, 3e-10, 4e-10, 5e-10})
		require.NoError(t, err)
		require.InEpsilon(t, 1e-10, coeffs.Slope, 1e-6)
		require.InEpsilon(t, 1e-10, coeffs.Intercept, 1e-6)
	})

	t.Run("huge magnitudes", func(t *testing.T) {
		coeffs, err := FitSeries([]float64{1e10, 2e10, 3e10, 4e10, 5e10})
		require.NoError(t, err)
		require.InEpsilon(t, 1e10, coeffs.Slope, 1e-9)
		require.InEpsilon(t, 1e10, coeffs.Intercept, 1e-9)
	})

	t.Run("constant series fits a flat line", func(t *testing.T) {
		coeffs, err := FitSeries([]float64{4, 4, 4, 4})
		require.NoError(t, err)
		require.InDelta(t, 0.0, coeffs.Slope, 1e-12)
		require.InDelta(t, 4.0, coeffs.Intercept, 1e-12)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := FitSeries(nil)
		require.ErrorIs(t, err, errs.ErrEmptyData)
		require.Equal(t, errs.KindEmptyData, errs.KindOf(err))
	})

	t.Run("single value", func(t *testing.T) {
		_, err := FitSeries([]float64{42})
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestCoefficients(t *testing.T) {
	c := Coefficients{Slope: 2, Intercept: 1}

	require.Equal(t, 7.0, c.Predict(3))
	require.Equal(t, []float64{1, 3, 5}, c.PredictAll([]float64{0, 1, 2}))
	require.NotNil(t, c.PredictAll(nil))
	require.Empty(t, c.PredictAll(nil))

	require.Equal(t, "y = 2.000000x + 1.000000", c.String())
	require.Equal(t, "y = -0.500000x - 3.250000", Coefficients{Slope: -0.5, Intercept: -3.25}.String())
}
