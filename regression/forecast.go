package regression

// Project evaluates the line slope*x + intercept at x = start, start+1, ...,
// start+count-1.
//
// Project needs no fitted data. A count of zero or less yields an empty slice.
//
// Parameters:
//   - start: First x position
//   - count: Number of consecutive positions to evaluate
//   - slope: Line slope
//   - intercept: Line intercept
//
// Returns:
//   - []float64: count projected values in order
//
// Example:
//
//	values := regression.Project(0, 3, -2, 5) // [5, 3, 1]
func Project(start, count int, slope, intercept float64) []float64 {
	return Coefficients{Slope: slope, Intercept: intercept}.Project(start, count)
}

// Project evaluates the line at count consecutive integer positions beginning at start.
func (c Coefficients) Project(start, count int) []float64 {
	if count <= 0 {
		return []float64{}
	}

	out := make([]float64, count)
	for i := range count {
		out[i] = c.Predict(float64(start + i))
	}

	return out
}
