package models

import "time"

// AnalyticsOptions configures one full analytics run.
type AnalyticsOptions struct {
	VolatilityWindow int              `json:"volatility_window"` // trailing window in days, default 30
	SpikeThreshold   float64          `json:"spike_threshold"`   // z-score magnitude, default 2
	Filters          AnalyticsFilters `json:"filters"`
}

// AnalyticsFilters narrows the record set before any statistic is computed.
// Nil pointer fields mean "not filtered"; a category or vendor of "" or
// "all" matches everything.
type AnalyticsFilters struct {
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Category   string     `json:"category,omitempty"`
	Vendor     string     `json:"vendor,omitempty"`
	MinPrice   *float64   `json:"min_price,omitempty"`
	MaxPrice   *float64   `json:"max_price,omitempty"`
	SpikesOnly bool       `json:"spikes_only,omitempty"`
}

// BudgetVariance compares a category's actual spend to a projected
// baseline (trailing 3-month run rate extrapolated over the observed span).
type BudgetVariance struct {
	Actual          float64 `json:"actual"`
	Projected       float64 `json:"projected"`
	Variance        float64 `json:"variance"`
	VariancePercent float64 `json:"variance_percent"`
}

// VendorShare is one vendor's slice of total spend.
type VendorShare struct {
	Vendor       string  `json:"vendor"`
	Spend        float64 `json:"spend"`
	OrderCount   int     `json:"order_count"` // distinct invoice numbers
	SharePercent float64 `json:"share_percent"`
}

// SupplyConcentration summarizes how concentrated spend is across vendors.
type SupplyConcentration struct {
	Vendors           []VendorShare `json:"vendors"` // sorted by spend desc
	TotalVendors      int           `json:"total_vendors"`
	HHI               float64       `json:"hhi"` // sum of squared share percents, 0-10000
	Top5Share         float64       `json:"top5_share"`
	Top10Share        float64       `json:"top10_share"`
	ConcentrationRisk string        `json:"concentration_risk"` // High / Moderate / Low
}

// CategoryMonthSpend is the per-category slice of one forecast month.
type CategoryMonthSpend struct {
	Category string  `json:"category"`
	Spend    float64 `json:"spend"`
	AvgPrice float64 `json:"avg_price"`
}

// ForecastPoint is one month of the spend time series. Points produced by
// the regression extrapolation have Forecast set.
type ForecastPoint struct {
	Month        string               `json:"month"` // YYYY-MM
	TotalSpend   float64              `json:"total_spend"`
	AvgUnitPrice float64              `json:"avg_unit_price,omitempty"`
	Categories   []CategoryMonthSpend `json:"categories,omitempty"`
	Forecast     bool                 `json:"forecast,omitempty"`
}

// AnalyticsSummary is the scalar block attached to every analytics result.
type AnalyticsSummary struct {
	TotalRecords     int       `json:"total_records"`
	DateStart        time.Time `json:"date_start"`
	DateEnd          time.Time `json:"date_end"`
	TotalSpend       float64   `json:"total_spend"`
	UniqueCategories int       `json:"unique_categories"`
	UniqueVendors    int       `json:"unique_vendors"`
	SpikeCount       int       `json:"spike_count"`
}

// AnalyticsResult is the aggregate output of one pipeline run. It is a
// derived view over the filtered record set and is rebuilt from scratch on
// every run; nothing in it is mutated afterwards.
type AnalyticsResult struct {
	Data                []InvoiceLine             `json:"data"`
	BudgetVariance      map[string]BudgetVariance `json:"budget_variance"`
	SupplyConcentration SupplyConcentration       `json:"supply_concentration"`
	ForecastData        []ForecastPoint           `json:"forecast_data"`
	Summary             AnalyticsSummary          `json:"summary"`
}
