package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func TestNormalizeProductDescription(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"MOZZARELLA SHRD 4/5 LB", "mozzarella shrd"},
		{"FLOUR HI-GLUTEN 50 LB BAG", "flour higluten bag"},
		{"PEPPERONI SLICED 25LB", "pepperoni sliced"},
		{"A B C", ""}, // every word too short
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, analytics.NormalizeProductDescription(tc.in), "input %q", tc.in)
	}
}

func substitutionFixture(t *testing.T) map[string]*models.ProductMetric {
	t.Helper()
	// Two interchangeable mozzarellas in Dairy, one unrelated product.
	data := []models.InvoiceLine{
		productLine(day(2024, time.January, 1), "MOZZARELLA SHRD 4/5 LB", "Grande", "Dairy", 80, 6),
		productLine(day(2024, time.January, 8), "MOZZARELLA SHRD 6/5#", "Lakeview", "Dairy", 60, 3),
		productLine(day(2024, time.January, 9), "PEPPERONI SLICED", "Hormel", "Meat", 90, 2),
	}
	return analytics.AnalyzeProductPerformance(data, day(2024, time.February, 1))
}

func TestSubstitutionSuggestsCheaperEquivalent(t *testing.T) {
	subs := analytics.FindSubstitutionOpportunities(substitutionFixture(t))
	require.Len(t, subs, 1)

	s := subs[0]
	assert.Equal(t, "MOZZARELLA SHRD 4/5 LB", s.CurrentProduct)
	assert.Equal(t, "MOZZARELLA SHRD 6/5#", s.SuggestedProduct)
	assert.InDelta(t, 80, s.CurrentPrice, 1e-9)
	assert.InDelta(t, 60, s.SuggestedPrice, 1e-9)
	assert.InDelta(t, 20, s.PotentialSavings, 1e-9)
	assert.InDelta(t, 25, s.SavingsPercent, 1e-9)
	// Per-unit savings times lifetime quantity.
	assert.InDelta(t, 120, s.AnnualSavings, 1e-9)
}

func TestSubstitutionIgnoresSmallSavings(t *testing.T) {
	data := []models.InvoiceLine{
		productLine(day(2024, time.January, 1), "MOZZARELLA SHRD 4/5 LB", "Grande", "Dairy", 100, 1),
		productLine(day(2024, time.January, 8), "MOZZARELLA SHRD 6/5#", "Lakeview", "Dairy", 96, 1),
	}
	metrics := analytics.AnalyzeProductPerformance(data, day(2024, time.February, 1))

	// 4% savings sits under the 5% floor.
	assert.Empty(t, analytics.FindSubstitutionOpportunities(metrics))
}

func TestSubstitutionNeverCrossesCategories(t *testing.T) {
	data := []models.InvoiceLine{
		productLine(day(2024, time.January, 1), "MOZZARELLA SHRD 4/5 LB", "Grande", "Dairy", 100, 1),
		productLine(day(2024, time.January, 8), "MOZZARELLA SHRD 6/5#", "Lakeview", "Frozen", 50, 1),
	}
	metrics := analytics.AnalyzeProductPerformance(data, day(2024, time.February, 1))

	assert.Empty(t, analytics.FindSubstitutionOpportunities(metrics))
}
