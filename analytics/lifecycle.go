package analytics

import (
	"sort"
	"time"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// Lifecycle thresholds: how recently a product must have appeared to be
// "new", and the frequency swing (percent) separating growing and
// declining from mature.
const (
	lifecycleNewMaxDays   = 30
	lifecycleRiskMinDays  = 30
	frequencySwingPercent = 20
	ordersPerPeriodDays   = 30
)

// AnalyzeProductLifecycle buckets every product by its order-frequency
// trend relative to now: recently introduced, at risk of discontinuation,
// or growing/mature/declining based on how the second half of its order
// history compares to the first.
func AnalyzeProductLifecycle(productMetrics map[string]*models.ProductMetric, now time.Time) models.LifecycleAnalysis {
	keys := make([]string, 0, len(productMetrics))
	for key := range productMetrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var lifecycle models.LifecycleAnalysis
	for _, key := range keys {
		metric := productMetrics[key]

		daysSinceFirst := now.Sub(metric.FirstSeen).Hours() / 24
		daysSinceLast := now.Sub(metric.LastSeen).Hours() / 24

		switch {
		case daysSinceFirst <= lifecycleNewMaxDays:
			lifecycle.NewProducts = append(lifecycle.NewProducts, models.LifecycleEntry{
				Product:               key,
				Metric:                metric,
				DaysSinceIntroduction: int(daysSinceFirst),
			})

		case daysSinceLast > lifecycleRiskMinDays:
			lifecycle.DiscontinuedRisk = append(lifecycle.DiscontinuedRisk, models.LifecycleEntry{
				Product:            key,
				Metric:             metric,
				DaysSinceLastOrder: int(daysSinceLast),
			})

		default:
			orders := append([]models.ProductInvoice(nil), metric.Invoices...)
			sort.SliceStable(orders, func(i, j int) bool {
				return orders[i].Date.Before(orders[j].Date)
			})
			mid := len(orders) / 2
			firstFreq := orderFrequency(orders[:mid])
			secondFreq := orderFrequency(orders[mid:])

			freqChange := 0.0
			if firstFreq > 0 {
				freqChange = (secondFreq - firstFreq) / firstFreq * 100
			}

			entry := models.LifecycleEntry{
				Product:         key,
				Metric:          metric,
				FrequencyChange: freqChange,
			}
			switch {
			case freqChange > frequencySwingPercent:
				lifecycle.GrowingProducts = append(lifecycle.GrowingProducts, entry)
			case freqChange < -frequencySwingPercent:
				lifecycle.DecliningProducts = append(lifecycle.DecliningProducts, entry)
			default:
				lifecycle.MatureProducts = append(lifecycle.MatureProducts, entry)
			}
		}
	}
	return lifecycle
}

// orderFrequency is orders per 30-day period over the span of the given
// purchase events. Fewer than two events has no measurable cadence.
func orderFrequency(orders []models.ProductInvoice) float64 {
	if len(orders) < 2 {
		return 0
	}
	daySpan := orders[len(orders)-1].Date.Sub(orders[0].Date).Hours() / 24
	if daySpan == 0 {
		daySpan = 1
	}
	return float64(len(orders)) / daySpan * ordersPerPeriodDays
}
