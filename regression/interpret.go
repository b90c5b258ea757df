package regression

import (
	"fmt"
	"strings"
)

// Quality grades a fit by its R² value.
type Quality int

const (
	// QualityVeryWeak means R² < 0.5.
	QualityVeryWeak Quality = iota
	// QualityWeak means 0.5 <= R² < 0.7.
	QualityWeak
	// QualityModerate means 0.7 <= R² < 0.8.
	QualityModerate
	// QualityGood means 0.8 <= R² < 0.9.
	QualityGood
	// QualityExcellent means R² >= 0.9.
	QualityExcellent
)

// qualityNames maps Quality to their string representations.
var qualityNames = map[Quality]string{
	QualityVeryWeak:  "very weak",
	QualityWeak:      "weak",
	QualityModerate:  "moderate",
	QualityGood:      "good",
	QualityExcellent: "excellent",
}

// String returns the string representation of the quality grade.
func (q Quality) String() string {
	if name, exists := qualityNames[q]; exists {
		return name
	}

	return "unknown"
}

// QualityOf grades an R² value.
//
// A NaN R² is graded QualityVeryWeak.
func QualityOf(r2 float64) Quality {
	switch {
	case r2 >= 0.9:
		return QualityExcellent
	case r2 >= 0.8:
		return QualityGood
	case r2 >= 0.7:
		return QualityModerate
	case r2 >= 0.5:
		return QualityWeak
	default:
		return QualityVeryWeak
	}
}

// Trend is the direction of a fitted line.
type Trend int

const (
	// TrendStable means |slope| <= threshold.
	TrendStable Trend = iota
	// TrendIncreasing means slope > threshold.
	TrendIncreasing
	// TrendDecreasing means slope < -threshold.
	TrendDecreasing
)

// trendNames maps Trend to their string representations.
var trendNames = map[Trend]string{
	TrendStable:     "stable",
	TrendIncreasing: "increasing",
	TrendDecreasing: "decreasing",
}

// String returns the string representation of the trend.
func (t Trend) String() string {
	if name, exists := trendNames[t]; exists {
		return name
	}

	return "unknown"
}

// trendFromString maps string names to Trend.
var trendFromString = map[string]Trend{
	"stable":     TrendStable,
	"increasing": TrendIncreasing,
	"decreasing": TrendDecreasing,
}

// TrendFromString returns the Trend for a given name, case-insensitively.
// Returns Trend(-1) for unknown names.
func TrendFromString(name string) Trend {
	if trend, exists := trendFromString[strings.ToLower(name)]; exists {
		return trend
	}

	return Trend(-1)
}

// TrendOf classifies a slope against a threshold.
func TrendOf(slope, threshold float64) Trend {
	switch {
	case slope > threshold:
		return TrendIncreasing
	case slope < -threshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// Strength grades the strength of a linear correlation.
type Strength int

const (
	// StrengthWeak means R² < 0.5.
	StrengthWeak Strength = iota
	// StrengthModerate means 0.5 <= R² < 0.8.
	StrengthModerate
	// StrengthStrong means R² >= 0.8.
	StrengthStrong
)

// strengthNames maps Strength to their string representations.
var strengthNames = map[Strength]string{
	StrengthWeak:     "weak",
	StrengthModerate: "moderate",
	StrengthStrong:   "strong",
}

// String returns the string representation of the strength.
func (s Strength) String() string {
	if name, exists := strengthNames[s]; exists {
		return name
	}

	return "unknown"
}

// Correlation describes a linear relationship by strength and direction.
type Correlation struct {
	// Strength is derived from R².
	Strength Strength
	// Positive is true when the slope is greater than zero.
	Positive bool
}

// CorrelationOf describes the relationship implied by a slope and its R².
//
// A zero slope is reported as negative.
func CorrelationOf(slope, r2 float64) Correlation {
	var strength Strength
	switch {
	case r2 >= 0.8:
		strength = StrengthStrong
	case r2 >= 0.5:
		strength = StrengthModerate
	default:
		strength = StrengthWeak
	}

	return Correlation{Strength: strength, Positive: slope > 0}
}

// String returns e.g. "strong positive correlation".
func (c Correlation) String() string {
	direction := "negative"
	if c.Positive {
		direction = "positive"
	}

	return fmt.Sprintf("%s %s correlation", c.Strength, direction)
}
