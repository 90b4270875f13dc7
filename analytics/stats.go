package analytics

import "math"

// average returns the arithmetic mean, 0 for an empty slice.
func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// popStdDev returns the population standard deviation around mean.
func popStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return math.Sqrt(variance / float64(len(values)))
}

// coefficientOfVariation is stddev/mean, the scale-free volatility
// measure used across the dashboard. 0 when the series is too short or
// the mean is 0.
func coefficientOfVariation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := average(values)
	if mean == 0 {
		return 0
	}
	return popStdDev(values, mean) / mean
}
