package analytics_cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func TestResultCacheRoundTrip(t *testing.T) {
	t.Cleanup(Invalidate)

	_, ok := GetResult("user-a|all|w30")
	assert.False(t, ok)

	result := &models.AnalyticsResult{
		Summary: models.AnalyticsSummary{TotalRecords: 12},
	}
	SetResult("user-a|all|w30", result)

	got, ok := GetResult("user-a|all|w30")
	require.True(t, ok)
	assert.Equal(t, 12, got.Summary.TotalRecords)

	// Different key misses.
	_, ok = GetResult("user-a|280|w30")
	assert.False(t, ok)
}

func TestRecordCacheRoundTrip(t *testing.T) {
	t.Cleanup(Invalidate)

	lines := []models.InvoiceLine{
		{InvoiceNumber: "INV-1", Category: "Dairy"},
		{InvoiceNumber: "INV-2", Category: "Meat"},
	}
	SetRecords("user-a|all", lines)

	got, ok := GetRecords("user-a|all")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "INV-1", got[0].InvoiceNumber)
}

func TestExpiredEntryMisses(t *testing.T) {
	t.Cleanup(Invalidate)

	resultMu.Lock()
	resultCache["stale"] = &resultEntry{
		result:    &models.AnalyticsResult{},
		fetchedAt: time.Now().Add(-TTL - time.Second),
	}
	resultMu.Unlock()

	_, ok := GetResult("stale")
	assert.False(t, ok)
}

func TestInvalidateClearsBothCaches(t *testing.T) {
	SetResult("r", &models.AnalyticsResult{})
	SetRecords("d", []models.InvoiceLine{{}})

	Invalidate()

	_, ok := GetResult("r")
	assert.False(t, ok)
	_, ok = GetRecords("d")
	assert.False(t, ok)
}
