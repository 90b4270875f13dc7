package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func TestNormalizeUnitPriceInvariant(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice string
		extPrice  string
		qty       string
		want      float64
	}{
		{"source price kept when positive", "2.50", "100", "10", 2.50},
		{"derived from ext/qty when missing", "", "100", "10", 10},
		{"derived from ext/qty when zero", "0", "50", "5", 10},
		{"derived from ext/qty when negative", "-1", "50", "5", 10},
		{"zero when qty is zero", "", "50", "0", 0},
		{"zero when everything missing", "", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.Normalize(models.RawInvoiceRow{
				"Unit Price":  tt.unitPrice,
				"Ext. Price":  tt.extPrice,
				"Qty Shipped": tt.qty,
			})
			assert.Equal(t, tt.want, got.UnitPrice)
		})
	}
}

func TestNormalizeMalformedRowDegradesToZero(t *testing.T) {
	got := analytics.Normalize(models.RawInvoiceRow{
		"Invoice Date": "not a date",
		"Qty Shipped":  "banana",
		"Ext. Price":   "n/a",
		"Unit Price":   "??",
	})
	assert.Zero(t, got.Qty)
	assert.Zero(t, got.ExtPrice)
	assert.Zero(t, got.UnitPrice)
	assert.True(t, got.InvoiceDate.IsZero())
}

func TestNormalizeCategoryFallbackAndTrim(t *testing.T) {
	got := analytics.Normalize(models.RawInvoiceRow{
		"Product Class Description": "  CHEESE  ",
	})
	assert.Equal(t, "CHEESE", got.Category)

	got = analytics.Normalize(models.RawInvoiceRow{
		"Category/Class": "DAIRY",
	})
	assert.Equal(t, "DAIRY", got.Category)

	got = analytics.Normalize(models.RawInvoiceRow{})
	assert.Equal(t, "", got.Category)
}

func TestNormalizeParsesCurrencyAndDates(t *testing.T) {
	got := analytics.Normalize(models.RawInvoiceRow{
		"Invoice Date": "7/15/2024",
		"Ext. Price":   "$1,234.56",
		"Qty Shipped":  "2",
	})
	require.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), got.InvoiceDate)
	assert.InDelta(t, 1234.56, got.ExtPrice, 1e-9)
	assert.InDelta(t, 617.28, got.UnitPrice, 1e-9)
}
