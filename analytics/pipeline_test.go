package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func TestRunFullAnalyticsEmptyAfterFilteringFailsLoudly(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.January, 1), "Dairy", "PFG", 10, 1),
	}

	out, err := analytics.RunFullAnalytics(data, models.AnalyticsOptions{
		Filters: models.AnalyticsFilters{Category: "Produce"},
	})
	require.ErrorIs(t, err, analytics.ErrEmptyDataset)
	assert.Nil(t, out)

	_, err = analytics.RunFullAnalytics(nil, models.AnalyticsOptions{})
	require.ErrorIs(t, err, analytics.ErrEmptyDataset)
}

func TestRunFullAnalyticsAssemblesAllSections(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.January, 5), "Dairy", "PFG", 10, 2),
		line(day(2024, time.January, 20), "Dairy", "PFG", 12, 1),
		line(day(2024, time.February, 5), "Meat", "Sysco", 30, 1),
	}

	out, err := analytics.RunFullAnalytics(data, models.AnalyticsOptions{})
	require.NoError(t, err)

	assert.Len(t, out.Data, 3)
	assert.Contains(t, out.BudgetVariance, "Dairy")
	assert.Contains(t, out.BudgetVariance, "Meat")
	assert.Equal(t, 2, out.SupplyConcentration.TotalVendors)
	assert.Len(t, out.ForecastData, 2)

	s := out.Summary
	assert.Equal(t, 3, s.TotalRecords)
	assert.InDelta(t, 62, s.TotalSpend, 1e-9)
	assert.Equal(t, day(2024, time.January, 5), s.DateStart)
	assert.Equal(t, day(2024, time.February, 5), s.DateEnd)
	assert.Equal(t, 2, s.UniqueCategories)
	assert.Equal(t, 2, s.UniqueVendors)

	// Every returned record carries rolling annotations.
	for _, item := range out.Data {
		assert.NotNil(t, item.Volatility)
	}
}

func TestRunFullAnalyticsDoesNotMutateInput(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.January, 5), "Dairy", "PFG", 10, 1),
		line(day(2024, time.January, 6), "Dairy", "PFG", 50, 1),
	}

	_, err := analytics.RunFullAnalytics(data, models.AnalyticsOptions{})
	require.NoError(t, err)

	for _, item := range data {
		assert.Nil(t, item.Volatility)
		assert.Zero(t, item.RollingMean)
		assert.False(t, item.IsSpike)
	}
}

func TestRunFullAnalyticsRawNormalizesFirst(t *testing.T) {
	rows := []models.RawInvoiceRow{
		{
			"Invoice Date":              "2024-01-05",
			"Invoice Number":            "INV-1",
			"Product Class Description": "Dairy",
			"Manufacturer Name":         "Grande",
			"Product Description":       "Mozzarella",
			"Qty Shipped":               "2",
			"Unit Price":                "10",
			"Ext. Price":                "20",
		},
		{
			"Invoice Date":              "2024-01-20",
			"Invoice Number":            "INV-2",
			"Product Class Description": "Dairy",
			"Qty Shipped":               "1",
			"Unit Price":                "12",
			"Ext. Price":                "12",
		},
	}

	out, err := analytics.RunFullAnalyticsRaw(rows, models.AnalyticsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Summary.TotalRecords)
	assert.InDelta(t, 32, out.Summary.TotalSpend, 1e-9)
	assert.Equal(t, "Dairy", out.Data[0].Category)
}
