package analytics_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func TestExportCSVBaseColumns(t *testing.T) {
	item := line(day(2024, time.March, 5), "Dairy", "PFG", 12.5, 2)
	item.InvoiceNumber = "INV-77"
	item.ProductDescription = "Mozzarella"
	item.PackSize = "4/5 LB"

	out, err := analytics.ExportCSV([]models.InvoiceLine{item}, false)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Invoice Date", rows[0][0])
	assert.NotContains(t, rows[0], "Z-Score")

	assert.Equal(t, "2024-03-05", rows[1][0])
	assert.Equal(t, "INV-77", rows[1][1])
	assert.Equal(t, "Mozzarella", rows[1][3])
	assert.Equal(t, "12.5", rows[1][9])
	assert.Equal(t, "25", rows[1][10])
}

func TestExportCSVAnalyticsColumns(t *testing.T) {
	vol := 0.4
	item := line(day(2024, time.March, 5), "Dairy", "PFG", 12.5, 2)
	item.RollingMean = 10
	item.RollingStdDev = 2
	item.Volatility = &vol
	item.ZScore = 1.25
	item.IsSpike = true
	item.SpikeDirection = "up"

	out, err := analytics.ExportCSV([]models.InvoiceLine{item}, true)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Contains(t, rows[0], "Z-Score")
	n := len(rows[1])
	assert.Equal(t, "up", rows[1][n-1])
	assert.Equal(t, "true", rows[1][n-2])
	assert.Equal(t, "1.25", rows[1][n-3])
	assert.Equal(t, "0.4", rows[1][n-4])
}

func TestExportCSVMissingVolatilityStaysBlank(t *testing.T) {
	item := line(day(2024, time.March, 5), "Dairy", "PFG", 12.5, 2)

	out, err := analytics.ExportCSV([]models.InvoiceLine{item}, true)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	n := len(rows[1])
	assert.Equal(t, "", rows[1][n-4]) // volatility column
}
