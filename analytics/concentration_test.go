package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// Vendors with spend [600, 300, 100] hold shares [60, 30, 10], giving an
// HHI of 3600 + 900 + 100 = 4600, which is High risk.
func TestSupplyConcentrationHHIScenario(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.April, 1), "A", "Alpha", 600, 1),
		line(day(2024, time.April, 2), "A", "Bravo", 300, 1),
		line(day(2024, time.April, 3), "A", "Charlie", 100, 1),
	}

	out := analytics.AnalyzeSupplyConcentration(data)
	require.Len(t, out.Vendors, 3)

	assert.Equal(t, "Alpha", out.Vendors[0].Vendor)
	assert.InDelta(t, 60, out.Vendors[0].SharePercent, 1e-9)
	assert.InDelta(t, 4600, out.HHI, 1e-9)
	assert.Equal(t, "High", out.ConcentrationRisk)
	assert.InDelta(t, 100, out.Top5Share, 1e-9)
}

func TestSupplyConcentrationSingleVendorIsMaximal(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.April, 1), "A", "Solo", 250, 1),
		line(day(2024, time.April, 8), "B", "Solo", 750, 1),
	}

	out := analytics.AnalyzeSupplyConcentration(data)
	require.Len(t, out.Vendors, 1)
	assert.InDelta(t, 10000, out.HHI, 1e-9)
	assert.Equal(t, "High", out.ConcentrationRisk)
}

func TestSupplyConcentrationRiskTiers(t *testing.T) {
	// Five equal vendors: shares of 20 each, HHI = 5 * 400 = 2000.
	data := make([]models.InvoiceLine, 0, 5)
	for i, v := range []string{"A", "B", "C", "D", "E"} {
		data = append(data, line(day(2024, time.April, 1+i), "Cat", v, 200, 1))
	}

	out := analytics.AnalyzeSupplyConcentration(data)
	assert.InDelta(t, 2000, out.HHI, 1e-9)
	assert.Equal(t, "Moderate", out.ConcentrationRisk)

	// Ten equal vendors: HHI = 10 * 100 = 1000, Low.
	data = data[:0]
	for i := 0; i < 10; i++ {
		data = append(data, line(day(2024, time.April, 1+i), "Cat", string(rune('A'+i)), 100, 1))
	}
	out = analytics.AnalyzeSupplyConcentration(data)
	assert.InDelta(t, 1000, out.HHI, 1e-9)
	assert.Equal(t, "Low", out.ConcentrationRisk)
	assert.InDelta(t, 50, out.Top5Share, 1e-9)
	assert.InDelta(t, 100, out.Top10Share, 1e-9)
}

func TestSupplyConcentrationMissingVendorBucketsAsUnknown(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.April, 1), "A", "", 100, 1),
	}

	out := analytics.AnalyzeSupplyConcentration(data)
	require.Len(t, out.Vendors, 1)
	assert.Equal(t, "Unknown", out.Vendors[0].Vendor)
}
