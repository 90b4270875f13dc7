package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// Four months of spend [100, 100, 100, 400]: the projection takes the
// last three months (100+100+400)/3 * 4 = 800, against an actual of 700,
// a variance of -12.5%.
func TestBudgetVarianceProjectionScenario(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.January, 10), "Cheese", "PFG", 100, 1),
		line(day(2024, time.February, 10), "Cheese", "PFG", 100, 1),
		line(day(2024, time.March, 10), "Cheese", "PFG", 100, 1),
		line(day(2024, time.April, 10), "Cheese", "PFG", 400, 1),
	}

	out := analytics.CalculateBudgetVariance(data)
	require.Contains(t, out, "Cheese")

	v := out["Cheese"]
	assert.InDelta(t, 700, v.Actual, 1e-9)
	assert.InDelta(t, 800, v.Projected, 1e-9)
	assert.InDelta(t, -100, v.Variance, 1e-9)
	assert.InDelta(t, -12.5, v.VariancePercent, 1e-9)
}

// With fewer than three months of history the divisor stays at three, so
// a single month of 300 projects 100 per month.
func TestBudgetVarianceShortHistoryDividesByThree(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.June, 5), "Flour", "PFG", 300, 1),
	}

	out := analytics.CalculateBudgetVariance(data)
	v := out["Flour"]
	assert.InDelta(t, 300, v.Actual, 1e-9)
	assert.InDelta(t, 100, v.Projected, 1e-9)
	assert.InDelta(t, 200, v.Variance, 1e-9)
	assert.InDelta(t, 200, v.VariancePercent, 1e-9)
}

func TestBudgetVarianceZeroProjectionFallsBackToActual(t *testing.T) {
	data := []models.InvoiceLine{
		line(day(2024, time.June, 5), "Comp", "PFG", 0, 1),
	}

	out := analytics.CalculateBudgetVariance(data)
	v := out["Comp"]
	assert.Zero(t, v.Projected)
	assert.Zero(t, v.Variance)
	assert.Zero(t, v.VariancePercent)
}
