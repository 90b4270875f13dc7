package models

import "time"

// RawInvoiceRow is one row of a PFG invoice export, keyed by the source
// column names ("Invoice Date", "Qty Shipped", "Ext. Price", ...). Values
// arrive as strings; all numeric coercion happens in the normalizer.
type RawInvoiceRow map[string]string

// InvoiceLine is the canonical normalized invoice record. The analytics
// pipeline only ever sees this shape; raw rows are converted exactly once.
type InvoiceLine struct {
	InvoiceDate        time.Time `json:"invoice_date"`
	InvoiceNumber      string    `json:"invoice_number"`
	Category           string    `json:"category"`
	ProductCode        string    `json:"product_code"`
	ProductDescription string    `json:"product_description"`
	Brand              string    `json:"brand"`
	Vendor             string    `json:"vendor"`
	UnitPrice          float64   `json:"unit_price"`
	ExtPrice           float64   `json:"ext_price"`
	Qty                float64   `json:"qty"`
	QtyOrdered         float64   `json:"qty_ordered"`
	Weight             string    `json:"weight,omitempty"`
	PackSize           string    `json:"pack_size"`
	CustomerName       string    `json:"customer_name,omitempty"`

	// Derived fields attached by the rolling statistics engine and the
	// spike detector. Volatility is nil until a rolling window exists.
	RollingMean    float64  `json:"rolling_mean"`
	RollingStdDev  float64  `json:"rolling_std_dev"`
	Volatility     *float64 `json:"volatility"`
	ZScore         float64  `json:"z_score"`
	IsSpike        bool     `json:"is_spike"`
	SpikeDirection string   `json:"spike_direction,omitempty"` // "up" or "down"
}
