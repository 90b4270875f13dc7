package analytics

import (
	"sort"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// DefaultVolatilityWindow is the trailing window, in days, used when the
// caller does not specify one.
const DefaultVolatilityWindow = 30

// RollingStats annotates every record with the mean, standard deviation,
// coefficient of variation and z-score of unit price over the trailing
// same-category window. The window for a record is date-bounded, not
// count-bounded: every record of the same category dated within
// [date-windowDays, date], inclusive on both ends and including the record
// itself, so window size varies with invoice frequency.
//
// The input is not mutated; the returned slice is sorted by date
// ascending.
func RollingStats(data []models.InvoiceLine, windowDays int) []models.InvoiceLine {
	if windowDays <= 0 {
		windowDays = DefaultVolatilityWindow
	}

	sorted := make([]models.InvoiceLine, len(data))
	copy(sorted, data)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InvoiceDate.Before(sorted[j].InvoiceDate)
	})

	// Index record positions by category so each window scan only walks
	// records that can possibly qualify. The windowing semantics are
	// unchanged from the per-record scan.
	byCategory := make(map[string][]int)
	for i, item := range sorted {
		byCategory[item.Category] = append(byCategory[item.Category], i)
	}

	out := make([]models.InvoiceLine, len(sorted))
	for i, item := range sorted {
		windowStart := item.InvoiceDate.AddDate(0, 0, -windowDays)

		var prices []float64
		for _, j := range byCategory[item.Category] {
			d := sorted[j].InvoiceDate
			if d.Before(windowStart) || d.After(item.InvoiceDate) {
				continue
			}
			prices = append(prices, sorted[j].UnitPrice)
		}

		out[i] = item
		if len(prices) == 0 {
			out[i].Volatility = nil
			continue
		}

		mean := average(prices)
		stdDev := popStdDev(prices, mean)

		cov := 0.0
		if mean > 0 {
			cov = stdDev / mean
		}

		zScore := 0.0
		if mean > 0 && stdDev > 0 {
			zScore = (item.UnitPrice - mean) / stdDev
		}

		out[i].RollingMean = mean
		out[i].RollingStdDev = stdDev
		out[i].Volatility = &cov
		out[i].ZScore = zScore
	}

	return out
}
