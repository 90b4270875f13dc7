package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// CheckAlerts evaluates a finished analytics run against the configured
// thresholds and returns every breach: price spikes beyond the z
// threshold, categories past their budget variance limit, and top-5
// vendor concentration above the exposure ceiling.
func CheckAlerts(result *models.AnalyticsResult, cfg models.AlertConfig) []models.Alert {
	alerts := make([]models.Alert, 0)

	spikeCount := 0
	for _, item := range result.Data {
		if math.Abs(item.ZScore) > cfg.SpikeZThreshold {
			spikeCount++
		}
	}
	if spikeCount > 0 {
		alerts = append(alerts, models.Alert{
			Type:     "spike",
			Severity: "warning",
			Message:  fmt.Sprintf("%d price spikes detected", spikeCount),
			Count:    spikeCount,
		})
	}

	for _, cat := range sortedKeys(result.BudgetVariance) {
		variance := result.BudgetVariance[cat]
		if math.Abs(variance.VariancePercent) <= cfg.BudgetVarianceThreshold {
			continue
		}
		severity := "info"
		if variance.VariancePercent > 0 {
			severity = "warning"
		}
		alerts = append(alerts, models.Alert{
			Type:     "budget",
			Severity: severity,
			Message:  fmt.Sprintf("%s: %.1f%% budget variance", cat, variance.VariancePercent),
			Category: cat,
		})
	}

	if result.SupplyConcentration.Top5Share > cfg.ConcentrationThreshold {
		alerts = append(alerts, models.Alert{
			Type:     "concentration",
			Severity: "warning",
			Message: fmt.Sprintf("High vendor concentration: Top 5 vendors = %.1f%%",
				result.SupplyConcentration.Top5Share),
		})
	}

	return alerts
}

func sortedKeys(m map[string]models.BudgetVariance) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
