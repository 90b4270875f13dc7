package analytics_test

import (
	"time"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// day builds a UTC date for test fixtures.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// line builds a minimal invoice line; ext price derives from price*qty.
func line(date time.Time, category, vendor string, price, qty float64) models.InvoiceLine {
	return models.InvoiceLine{
		InvoiceDate: date,
		Category:    category,
		Vendor:      vendor,
		UnitPrice:   price,
		Qty:         qty,
		ExtPrice:    price * qty,
	}
}

// productLine builds an invoice line for product-level fixtures.
func productLine(date time.Time, product, brand, category string, price, qty float64) models.InvoiceLine {
	l := line(date, category, "PFG", price, qty)
	l.ProductDescription = product
	l.Brand = brand
	return l
}
