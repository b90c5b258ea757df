// Package stats computes descriptive statistics over float64 samples.
//
// Variance and standard deviation are population statistics (divided by n).
// The median is taken from a sorted pooled copy, so the caller's slice is never
// reordered.
package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/linreg/errs"
	"github.com/arloliu/linreg/internal/pool"
)

// Summary holds the descriptive statistics of a sample.
type Summary struct {
	Mean     float64
	Median   float64
	StdDev   float64
	Variance float64
	Min      float64
	Max      float64
	Range    float64
}

// Describe computes the summary statistics of data.
//
// Parameters:
//   - data: Sample values (not modified)
//
// Returns:
//   - Summary: Mean, median, population variance and standard deviation, min, max and range
//   - error: errs.ErrEmptyData if data is empty
//
// NaN values sort before every other value when locating the median, min and max.
func Describe(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, errs.ErrEmptyData
	}

	mean := stat.Mean(data, nil)

	var sumSq float64
	for _, v := range data {
		d := v - mean
		sumSq += d * d
	}
	variance := sumSq / float64(len(data))

	sorted, release := pool.CloneFloat64s(data)
	defer release()
	slices.Sort(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]

	return Summary{
		Mean:     mean,
		Median:   medianOfSorted(sorted),
		StdDev:   math.Sqrt(variance),
		Variance: variance,
		Min:      lo,
		Max:      hi,
		Range:    hi - lo,
	}, nil
}

// medianOfSorted returns the middle value, or the mean of the two middle values
// for an even count.
func medianOfSorted(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}

	return sorted[mid]
}

// String returns a multi-line report of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("=== Descriptive Statistics ===\n"+
		"Mean: %.6f\nMedian: %.6f\nStd Dev: %.6f\nVariance: %.6f\nMin: %.6f\nMax: %.6f\nRange: %.6f",
		s.Mean, s.Median, s.StdDev, s.Variance, s.Min, s.Max, s.Range)
}
