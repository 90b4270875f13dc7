package analytics_cache

import (
	"sync"
	"time"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

const TTL = 5 * time.Minute

// ── Full pipeline result cache ───────────────────────────────────────────────
// Keyed by user + store + serialized options. Every analytics endpoint
// reads the same base result, so one upload-heavy store doesn't recompute
// rolling stats per request.

type resultEntry struct {
	result    *models.AnalyticsResult
	fetchedAt time.Time
}

var (
	resultMu    sync.RWMutex
	resultCache = make(map[string]*resultEntry)
)

func GetResult(key string) (*models.AnalyticsResult, bool) {
	resultMu.RLock()
	defer resultMu.RUnlock()
	if e, ok := resultCache[key]; ok && time.Since(e.fetchedAt) < TTL {
		return e.result, true
	}
	return nil, false
}

func SetResult(key string, result *models.AnalyticsResult) {
	resultMu.Lock()
	defer resultMu.Unlock()
	resultCache[key] = &resultEntry{result: result, fetchedAt: time.Now()}
}

// ── Normalized record cache ──────────────────────────────────────────────────
// The raw-to-InvoiceLine mapping of a user/store's records. Product and
// brand endpoints run their own aggregation over this shared base.

type recordEntry struct {
	data      []models.InvoiceLine
	fetchedAt time.Time
}

var (
	recordMu    sync.RWMutex
	recordCache = make(map[string]*recordEntry)
)

func GetRecords(key string) ([]models.InvoiceLine, bool) {
	recordMu.RLock()
	defer recordMu.RUnlock()
	if e, ok := recordCache[key]; ok && time.Since(e.fetchedAt) < TTL {
		return e.data, true
	}
	return nil, false
}

func SetRecords(key string, data []models.InvoiceLine) {
	recordMu.Lock()
	defer recordMu.Unlock()
	recordCache[key] = &recordEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any upload or record delete) ──────────────

func Invalidate() {
	resultMu.Lock()
	resultCache = make(map[string]*resultEntry)
	resultMu.Unlock()

	recordMu.Lock()
	recordCache = make(map[string]*recordEntry)
	recordMu.Unlock()
}
