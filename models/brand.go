package models

// PriceRange is the min/max unit price observed for a brand.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SwitchPattern counts chronological switches away from a brand on the
// same product.
type SwitchPattern struct {
	FromBrand  string  `json:"from_brand"`
	ToBrand    string  `json:"to_brand"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// BrandMetric is the lifetime rollup for one brand. Records without a
// brand are rolled up under "Generic".
type BrandMetric struct {
	Brand string `json:"brand"`

	Products   *OrderedSet `json:"products"`
	Categories *OrderedSet `json:"categories"`
	Vendors    *OrderedSet `json:"vendors"`

	ProductCount  int     `json:"product_count"`
	CategoryCount int     `json:"category_count"`
	VendorCount   int     `json:"vendor_count"`
	TotalSpend    float64 `json:"total_spend"`
	TotalQty      float64 `json:"total_qty"`
	InvoiceCount  int     `json:"invoice_count"`
	AvgPrice      float64 `json:"avg_price"`

	PriceRange  PriceRange `json:"price_range"`
	PriceSpread float64    `json:"price_spread"`
	MarketShare float64    `json:"market_share"` // percent of total spend

	// Loyalty is duplicate-purchase-day detection: this data has no
	// customer dimension, so a "repeat" is a second purchase on a day the
	// brand was already bought.
	RepeatPurchases int     `json:"repeat_purchases"`
	LoyaltyRate     float64 `json:"loyalty_rate"`

	// 100 = priced at the category market average; lower is cheaper.
	CompetitivenessIndex float64 `json:"competitiveness_index"`

	SwitchingPatterns []SwitchPattern `json:"switching_patterns"`
	SwitchingRate     float64         `json:"switching_rate"`

	// Second-half vs first-half purchase-count delta, percent.
	GrowthTrend float64 `json:"growth_trend"`
}
