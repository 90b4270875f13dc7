package models

import "time"

// ProductInvoice is one purchase event inside a product's history.
type ProductInvoice struct {
	Date     time.Time `json:"date"`
	Price    float64   `json:"price"`
	Qty      float64   `json:"qty"`
	ExtPrice float64   `json:"ext_price"`
	Category string    `json:"category"`
}

// PricePoint is one observation in a product's chronological price history.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// PriceChange records a unit-price move larger than a cent.
type PriceChange struct {
	Date          time.Time `json:"date"`
	OldPrice      float64   `json:"old_price"`
	NewPrice      float64   `json:"new_price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
}

// ProductMetric accumulates the lifetime view of one product description.
type ProductMetric struct {
	ProductCode string `json:"product_code,omitempty"`
	Description string `json:"description"`
	Brand       string `json:"brand,omitempty"`
	PackSize    string `json:"pack_size,omitempty"`
	Vendor      string `json:"vendor,omitempty"`

	Invoices     []ProductInvoice `json:"invoices"`
	TotalSpend   float64          `json:"total_spend"`
	TotalQty     float64          `json:"total_qty"`
	AvgPrice     float64          `json:"avg_price"`
	PriceHistory []PricePoint     `json:"price_history"` // chronological
	PriceChanges []PriceChange    `json:"price_changes"`

	FirstSeen  time.Time   `json:"first_seen"`
	LastSeen   time.Time   `json:"last_seen"`
	OrderDates *OrderedSet `json:"order_dates"` // distinct YYYY-MM-DD

	PriceVolatility      float64 `json:"price_volatility"` // CoV of price history
	AvgDaysBetweenOrders float64 `json:"avg_days_between_orders"`
	OrderCount           int     `json:"order_count"`
	ProductAgeDays       int     `json:"product_age_days"`
	Status               string  `json:"status"` // Active / Slow Moving / Inactive

	// ABC classification, populated by the Pareto walk.
	ABCCategory       string  `json:"abc_category,omitempty"`
	SpendPercent      float64 `json:"spend_percent,omitempty"`
	CumulativePercent float64 `json:"cumulative_percent,omitempty"`
}

// ABCSummary counts products per Pareto tier.
type ABCSummary struct {
	AItems     int `json:"a_items"`
	BItems     int `json:"b_items"`
	CItems     int `json:"c_items"`
	TotalItems int `json:"total_items"`
}

// ABCAnalysis is the spend-ranked product list with A/B/C tiers assigned.
type ABCAnalysis struct {
	Products []*ProductMetric `json:"products"` // sorted by total spend desc
	Summary  ABCSummary       `json:"summary"`
}

// PackSizeMetric groups spend by (category, pack size) to surface cheaper
// pack formats.
type PackSizeMetric struct {
	Category       string      `json:"category"`
	PackSize       string      `json:"pack_size"`
	Products       *OrderedSet `json:"products"`
	ProductCount   int         `json:"product_count"`
	TotalSpend     float64     `json:"total_spend"`
	TotalQty       float64     `json:"total_qty"`
	PackQty        int         `json:"pack_qty"` // leading multiplier parsed from "6/1 GA", 0 if absent
	AvgUnitPrice   float64     `json:"avg_unit_price"`
	AvgCostPerUnit float64     `json:"avg_cost_per_unit"`
	Efficiency     float64     `json:"efficiency"` // 1 / avg cost per unit, higher is better
}

// Substitution suggests replacing a product with a cheaper near-identical
// one from the same category.
type Substitution struct {
	CurrentProduct   string  `json:"current_product"`
	CurrentBrand     string  `json:"current_brand"`
	CurrentPrice     float64 `json:"current_price"`
	SuggestedProduct string  `json:"suggested_product"`
	SuggestedBrand   string  `json:"suggested_brand"`
	SuggestedPrice   float64 `json:"suggested_price"`
	PotentialSavings float64 `json:"potential_savings"` // per unit
	SavingsPercent   float64 `json:"savings_percent"`
	AnnualSavings    float64 `json:"annual_savings"`
}

// MonthBucket is one calendar month's activity for a product.
type MonthBucket struct {
	Qty    float64 `json:"qty"`
	Orders int     `json:"orders"`
	Spend  float64 `json:"spend"`
}

// ProductSeasonality holds a product's activity bucketed by calendar month
// (index 0 = January).
type ProductSeasonality struct {
	Product          string         `json:"product"`
	MonthlyData      [12]MonthBucket `json:"monthly_data"`
	SeasonalityScore float64        `json:"seasonality_score"`
	PeakMonths       []int          `json:"peak_months"` // top 3 months by qty
}

// LifecycleEntry is one product placed into a lifecycle bucket.
type LifecycleEntry struct {
	Product string         `json:"product"`
	Metric  *ProductMetric `json:"metric"`

	DaysSinceIntroduction int     `json:"days_since_introduction,omitempty"`
	DaysSinceLastOrder    int     `json:"days_since_last_order,omitempty"`
	FrequencyChange       float64 `json:"frequency_change,omitempty"`
}

// LifecycleAnalysis buckets every product by its order-frequency trend.
type LifecycleAnalysis struct {
	NewProducts       []LifecycleEntry `json:"new_products"`       // first seen within 30 days
	GrowingProducts   []LifecycleEntry `json:"growing_products"`   // frequency up more than 20%
	MatureProducts    []LifecycleEntry `json:"mature_products"`    // stable ordering
	DecliningProducts []LifecycleEntry `json:"declining_products"` // frequency down more than 20%
	DiscontinuedRisk  []LifecycleEntry `json:"discontinued_risk"`  // not ordered in 30+ days
}
