package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func lifecycleMetrics(t *testing.T, now time.Time, data []models.InvoiceLine) map[string]*models.ProductMetric {
	t.Helper()
	return analytics.AnalyzeProductPerformance(data, now)
}

func TestLifecycleNewProduct(t *testing.T) {
	now := day(2024, time.June, 15)
	metrics := lifecycleMetrics(t, now, []models.InvoiceLine{
		productLine(day(2024, time.June, 1), "New Dough Ball", "", "Dough", 10, 1),
	})

	out := analytics.AnalyzeProductLifecycle(metrics, now)
	require.Len(t, out.NewProducts, 1)
	assert.Equal(t, "New Dough Ball", out.NewProducts[0].Product)
	assert.Equal(t, 14, out.NewProducts[0].DaysSinceIntroduction)
}

func TestLifecycleDiscontinuedRisk(t *testing.T) {
	now := day(2024, time.June, 15)
	metrics := lifecycleMetrics(t, now, []models.InvoiceLine{
		productLine(day(2024, time.January, 1), "Anchovies Tin", "", "Canned", 10, 1),
		productLine(day(2024, time.April, 1), "Anchovies Tin", "", "Canned", 10, 1),
	})

	out := analytics.AnalyzeProductLifecycle(metrics, now)
	require.Len(t, out.DiscontinuedRisk, 1)
	assert.Equal(t, 75, out.DiscontinuedRisk[0].DaysSinceLastOrder)
	assert.Empty(t, out.NewProducts)
}

func TestLifecycleGrowingAndDeclining(t *testing.T) {
	now := day(2024, time.June, 15)
	base := day(2024, time.January, 1)

	// Growing: gaps shrink from 30 days to 10 days between orders.
	growing := []models.InvoiceLine{
		productLine(base, "Hot Honey", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 30), "Hot Honey", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 60), "Hot Honey", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 146), "Hot Honey", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 156), "Hot Honey", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 166), "Hot Honey", "", "Sauce", 10, 1),
	}
	// Declining: gaps stretch from 10 days to 60 days.
	declining := []models.InvoiceLine{
		productLine(base, "Ranch Cup", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 10), "Ranch Cup", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 20), "Ranch Cup", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 46), "Ranch Cup", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 106), "Ranch Cup", "", "Sauce", 10, 1),
		productLine(base.AddDate(0, 0, 166), "Ranch Cup", "", "Sauce", 10, 1),
	}

	metrics := lifecycleMetrics(t, now, append(growing, declining...))
	out := analytics.AnalyzeProductLifecycle(metrics, now)

	require.Len(t, out.GrowingProducts, 1)
	assert.Equal(t, "Hot Honey", out.GrowingProducts[0].Product)
	assert.Greater(t, out.GrowingProducts[0].FrequencyChange, 20.0)

	require.Len(t, out.DecliningProducts, 1)
	assert.Equal(t, "Ranch Cup", out.DecliningProducts[0].Product)
	assert.Less(t, out.DecliningProducts[0].FrequencyChange, -20.0)
}

func TestLifecycleMatureProduct(t *testing.T) {
	now := day(2024, time.June, 15)
	base := day(2024, time.January, 1)

	// Steady 30-day cadence throughout.
	data := make([]models.InvoiceLine, 0, 6)
	for i := 0; i < 6; i++ {
		data = append(data, productLine(base.AddDate(0, 0, 30*i), "Flour Sack", "", "Dry Goods", 10, 1))
	}

	metrics := lifecycleMetrics(t, now, data)
	out := analytics.AnalyzeProductLifecycle(metrics, now)

	require.Len(t, out.MatureProducts, 1)
	assert.Equal(t, "Flour Sack", out.MatureProducts[0].Product)
	assert.InDelta(t, 0, out.MatureProducts[0].FrequencyChange, 20)
}
