package regression

import (
	"github.com/arloliu/linreg/internal/options"
)

// DefaultTrendThreshold is the slope magnitude below which a series is considered stable.
const DefaultTrendThreshold = 0.1

// AnalyzeConfig holds configuration for Analyze and AnalyzeXY.
type AnalyzeConfig struct {
	// Horizon is the number of values to forecast past the end of a series.
	Horizon int
	// TrendThreshold is copied into Result.TrendThreshold.
	TrendThreshold float64
}

// defaultAnalyzeConfig returns default config (no forecast, 0.1 trend threshold).
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Horizon:        0,
		TrendThreshold: DefaultTrendThreshold,
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithHorizon requests a forecast of n values after the analyzed series.
//
// The forecast is stored in Result.Forecast. Analyze continues the index sequence;
// AnalyzeXY continues from one past the largest x in steps of 1. Zero or negative n
// disables forecasting.
func WithHorizon(n int) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.Horizon = n
	})
}

// WithTrendThreshold sets the slope magnitude that separates a stable series from an
// increasing or decreasing one.
func WithTrendThreshold(threshold float64) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.TrendThreshold = threshold
	})
}
