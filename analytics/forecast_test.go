package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func TestPrepareForecastDataMonthlyAggregation(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.January, 5), "Cheese", "PFG", 10, 2),  // ext 20
		line(day(2024, time.January, 20), "Flour", "PFG", 30, 1),  // ext 30
		line(day(2024, time.February, 3), "Cheese", "PFG", 40, 1), // ext 40
	}

	series := analytics.PrepareForecastData(data)
	require.Len(t, series, 2)

	jan := series[0]
	assert.Equal(t, "2024-01", jan.Month)
	assert.InDelta(t, 50, jan.TotalSpend, 1e-9)
	assert.InDelta(t, 20, jan.AvgUnitPrice, 1e-9) // (10+30)/2
	require.Len(t, jan.Categories, 2)
	assert.Equal(t, "Cheese", jan.Categories[0].Category)
	assert.InDelta(t, 20, jan.Categories[0].Spend, 1e-9)

	feb := series[1]
	assert.Equal(t, "2024-02", feb.Month)
	assert.InDelta(t, 40, feb.TotalSpend, 1e-9)
	assert.False(t, feb.Forecast)
}

// A perfectly linear history must extrapolate along the same line.
func TestForecastSeriesLinearExtrapolation(t *testing.T) {
	historical := []models.ForecastPoint{
		{Month: "2024-01", TotalSpend: 100},
		{Month: "2024-02", TotalSpend: 200},
		{Month: "2024-03", TotalSpend: 300},
	}

	out := analytics.ForecastSeries(historical, 2)
	require.Len(t, out, 5)

	assert.Equal(t, "2024-04", out[3].Month)
	assert.InDelta(t, 400, out[3].TotalSpend, 1e-9)
	assert.True(t, out[3].Forecast)

	assert.Equal(t, "2024-05", out[4].Month)
	assert.InDelta(t, 500, out[4].TotalSpend, 1e-9)
	assert.True(t, out[4].Forecast)

	// Historical points pass through untouched.
	assert.False(t, out[0].Forecast)
	assert.InDelta(t, 100, out[0].TotalSpend, 1e-9)
}

func TestForecastSeriesYearRollover(t *testing.T) {
	historical := []models.ForecastPoint{
		{Month: "2024-11", TotalSpend: 100},
		{Month: "2024-12", TotalSpend: 110},
	}

	out := analytics.ForecastSeries(historical, 2)
	require.Len(t, out, 4)
	assert.Equal(t, "2025-01", out[2].Month)
	assert.Equal(t, "2025-02", out[3].Month)
}

func TestForecastSeriesTooShortReturnsInputUnchanged(t *testing.T) {
	historical := []models.ForecastPoint{{Month: "2024-01", TotalSpend: 100}}

	out := analytics.ForecastSeries(historical, 3)
	assert.Equal(t, historical, out)
}
