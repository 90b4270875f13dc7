package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func TestCheckAlertsQuietResult(t *testing.T) {
	result := &models.AnalyticsResult{
		Data: []models.InvoiceLine{{ZScore: 0.5}, {ZScore: -1.2}},
		BudgetVariance: map[string]models.BudgetVariance{
			"Dairy": {VariancePercent: 4},
		},
		SupplyConcentration: models.SupplyConcentration{Top5Share: 35},
	}

	assert.Empty(t, analytics.CheckAlerts(result, models.DefaultAlertConfig()))
}

func TestCheckAlertsAllThreeTypes(t *testing.T) {
	result := &models.AnalyticsResult{
		Data: []models.InvoiceLine{{ZScore: 2.5}, {ZScore: -3.1}, {ZScore: 0.2}},
		BudgetVariance: map[string]models.BudgetVariance{
			"Dairy": {VariancePercent: 25},  // overspend, warning
			"Meat":  {VariancePercent: -18}, // underspend, info
			"Bread": {VariancePercent: 3},   // inside threshold
		},
		SupplyConcentration: models.SupplyConcentration{Top5Share: 82},
	}

	alerts := analytics.CheckAlerts(result, models.DefaultAlertConfig())
	require.Len(t, alerts, 4)

	assert.Equal(t, "spike", alerts[0].Type)
	assert.Equal(t, 2, alerts[0].Count)
	assert.Equal(t, "warning", alerts[0].Severity)

	// Budget alerts come out in category order.
	assert.Equal(t, "budget", alerts[1].Type)
	assert.Equal(t, "Dairy", alerts[1].Category)
	assert.Equal(t, "warning", alerts[1].Severity)
	assert.Equal(t, "Meat", alerts[2].Category)
	assert.Equal(t, "info", alerts[2].Severity)

	assert.Equal(t, "concentration", alerts[3].Type)
	assert.Contains(t, alerts[3].Message, "82.0")
}

func TestCheckAlertsHonorsCustomThresholds(t *testing.T) {
	result := &models.AnalyticsResult{
		Data:                []models.InvoiceLine{{ZScore: 2.5}},
		BudgetVariance:      map[string]models.BudgetVariance{"Dairy": {VariancePercent: 25}},
		SupplyConcentration: models.SupplyConcentration{Top5Share: 82},
	}

	relaxed := models.AlertConfig{
		SpikeZThreshold:         3,
		BudgetVarianceThreshold: 30,
		ConcentrationThreshold:  90,
	}
	assert.Empty(t, analytics.CheckAlerts(result, relaxed))
}
