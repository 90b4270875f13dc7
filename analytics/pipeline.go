package analytics

import (
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// RunFullAnalytics is the master pipeline: filter, rolling statistics,
// spike detection, then budget variance, supply concentration and the
// forecast series computed independently over the same annotated set,
// assembled with the scalar summary block.
//
// The input slice is never mutated. Product/brand aggregators are not
// bundled here; the dashboard invokes them separately once the base
// result exists.
func RunFullAnalytics(data []models.InvoiceLine, opts models.AnalyticsOptions) (*models.AnalyticsResult, error) {
	if opts.VolatilityWindow <= 0 {
		opts.VolatilityWindow = DefaultVolatilityWindow
	}
	if opts.SpikeThreshold <= 0 {
		opts.SpikeThreshold = DefaultSpikeThreshold
	}

	filtered := ApplyFilters(data, opts.Filters)
	if len(filtered) == 0 {
		return nil, ErrEmptyDataset
	}

	filtered = RollingStats(filtered, opts.VolatilityWindow)
	filtered = DetectSpikes(filtered, opts.SpikeThreshold)

	return &models.AnalyticsResult{
		Data:                filtered,
		BudgetVariance:      CalculateBudgetVariance(filtered),
		SupplyConcentration: AnalyzeSupplyConcentration(filtered),
		ForecastData:        PrepareForecastData(filtered),
		Summary:             summarize(filtered),
	}, nil
}

// RunFullAnalyticsRaw normalizes raw column-keyed rows first, then runs
// the pipeline. Normalization is a distinct stage: already-normalized
// records go through RunFullAnalytics directly and are never re-derived.
func RunFullAnalyticsRaw(rows []models.RawInvoiceRow, opts models.AnalyticsOptions) (*models.AnalyticsResult, error) {
	return RunFullAnalytics(NormalizeAll(rows), opts)
}

func summarize(data []models.InvoiceLine) models.AnalyticsSummary {
	summary := models.AnalyticsSummary{
		TotalRecords: len(data),
		DateStart:    data[0].InvoiceDate,
		DateEnd:      data[0].InvoiceDate,
	}

	categories := make(map[string]struct{})
	vendors := make(map[string]struct{})
	for _, item := range data {
		if item.InvoiceDate.Before(summary.DateStart) {
			summary.DateStart = item.InvoiceDate
		}
		if item.InvoiceDate.After(summary.DateEnd) {
			summary.DateEnd = item.InvoiceDate
		}
		summary.TotalSpend += item.ExtPrice
		categories[item.Category] = struct{}{}
		vendors[item.Vendor] = struct{}{}
		if item.IsSpike {
			summary.SpikeCount++
		}
	}
	summary.UniqueCategories = len(categories)
	summary.UniqueVendors = len(vendors)
	return summary
}
