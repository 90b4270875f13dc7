package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func TestApplyFiltersDateBoundsAreInclusive(t *testing.T) {
	start := day(2024, time.February, 1)
	end := day(2024, time.February, 29)
	data := []models.InvoiceLine{
		line(day(2024, time.January, 31), "A", "V", 10, 1),
		line(start, "A", "V", 10, 1),
		line(end, "A", "V", 10, 1),
		line(day(2024, time.March, 1), "A", "V", 10, 1),
	}

	out := analytics.ApplyFilters(data, models.AnalyticsFilters{StartDate: &start, EndDate: &end})
	assert.Len(t, out, 2)
	assert.Equal(t, start, out[0].InvoiceDate)
	assert.Equal(t, end, out[1].InvoiceDate)
}

func TestApplyFiltersAllSentinelMatchesEverything(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.March, 1), "Dairy", "PFG", 10, 1),
		line(day(2024, time.March, 2), "Meat", "Sysco", 10, 1),
	}

	assert.Len(t, analytics.ApplyFilters(data, models.AnalyticsFilters{Category: "all", Vendor: "all"}), 2)
	assert.Len(t, analytics.ApplyFilters(data, models.AnalyticsFilters{}), 2)
	assert.Len(t, analytics.ApplyFilters(data, models.AnalyticsFilters{Category: "Dairy"}), 1)
	assert.Len(t, analytics.ApplyFilters(data, models.AnalyticsFilters{Vendor: "Sysco"}), 1)
}

func TestApplyFiltersPriceBandAndSpikes(t *testing.T) {
	spiked := line(day(2024, time.March, 3), "A", "V", 50, 1)
	spiked.IsSpike = true
	data := []models.InvoiceLine{
		line(day(2024, time.March, 1), "A", "V", 5, 1),
		line(day(2024, time.March, 2), "A", "V", 20, 1),
		spiked,
	}

	min, max := 10.0, 30.0
	banded := analytics.ApplyFilters(data, models.AnalyticsFilters{MinPrice: &min, MaxPrice: &max})
	assert.Len(t, banded, 1)
	assert.InDelta(t, 20, banded[0].UnitPrice, 1e-9)

	spikes := analytics.ApplyFilters(data, models.AnalyticsFilters{SpikesOnly: true})
	assert.Len(t, spikes, 1)
	assert.True(t, spikes[0].IsSpike)
}
