package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linreg/errs"
)

func TestDescribe(t *testing.T) {
	t.Run("odd length", func(t *testing.T) {
		s, err := Describe([]float64{5, 1, 4, 2, 3})
		require.NoError(t, err)

		require.InDelta(t, 3.0, s.Mean, 1e-12)
		require.Equal(t, 3.0, s.Median)
		require.InDelta(t, 2.0, s.Variance, 1e-12)
		require.InDelta(t, math.Sqrt2, s.StdDev, 1e-12)
		require.Equal(t, 1.0, s.Min)
		require.Equal(t, 5.0, s.Max)
		require.Equal(t, 4.0, s.Range)
	})

	t.Run("even length", func(t *testing.T) {
		s, err := Describe([]float64{1, 2, 3, 4})
		require.NoError(t, err)
		require.Equal(t, 2.5, s.Median)
		require.InDelta(t, 1.25, s.Variance, 1e-12)
	})

	t.Run("single value", func(t *testing.T) {
		s, err := Describe([]float64{7})
		require.NoError(t, err)
		require.Equal(t, Summary{Mean: 7, Median: 7, Min: 7, Max: 7}, s)
	})

	t.Run("negative values", func(t *testing.T) {
		s, err := Describe([]float64{-3, -1, -2})
		require.NoError(t, err)
		require.Equal(t, -2.0, s.Median)
		require.Equal(t, -3.0, s.Min)
		require.Equal(t, 2.0, s.Range)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Describe(nil)
		require.ErrorIs(t, err, errs.ErrEmptyData)
	})
}

func TestDescribeMedianParity(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{name: "odd", data: []float64{9, 3, 7}, want: 7},
		{name: "even", data: []float64{9, 3, 7, 1}, want: 5},
		{name: "even with duplicates", data: []float64{2, 2, 4, 4}, want: 3},
		{name: "two values", data: []float64{10, -10}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Describe(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.want, s.Median)
		})
	}
}

func TestDescribeDoesNotReorderInput(t *testing.T) {
	data := []float64{9, 1, 5}
	_, err := Describe(data)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 1, 5}, data)
}

func TestDescribeInvariants(t *testing.T) {
	data := []float64{15, 18.2, 22.5, 26.8, 30.1, 32.5, 29.8, 25.2}
	s, err := Describe(data)
	require.NoError(t, err)

	require.LessOrEqual(t, s.Min, s.Median)
	require.LessOrEqual(t, s.Median, s.Max)
	require.LessOrEqual(t, s.Min, s.Mean)
	require.LessOrEqual(t, s.Mean, s.Max)
	require.GreaterOrEqual(t, s.Variance, 0.0)
	require.InDelta(t, s.StdDev*s.StdDev, s.Variance, 1e-9)
	require.Equal(t, s.Max-s.Min, s.Range)
}

func TestSummaryString(t *testing.T) {
	s, err := Describe([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	out := s.String()
	require.Contains(t, out, "=== Descriptive Statistics ===")
	require.Contains(t, out, "Mean: 2.500000")
	require.Contains(t, out, "Median: 2.500000")
	require.Contains(t, out, "Range: 3.000000")
}

func BenchmarkDescribe(b *testing.B) {
	data := make([]float64, 10000)
	for i := range data {
		data[i] = math.Sin(float64(i)) * 100
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Describe(data)
	}
}
