// Package analytics is the aggregation pipeline behind the PFG invoice
// dashboard. Every function here is a pure, synchronous transformation
// over in-memory record slices: no database, no HTTP, no shared state.
// Controllers feed it normalized invoice lines and render whatever comes
// back.
//
// Division is guarded everywhere; a NaN or Inf anywhere downstream is a
// defect. The only loud failure is ErrEmptyDataset from the orchestrator.
package analytics

import "errors"

// ErrEmptyDataset is returned by RunFullAnalytics when filtering leaves no
// records. Date-range summaries are undefined over nothing, so the
// pipeline refuses to run instead of fabricating a result.
var ErrEmptyDataset = errors.New("analytics: no records after filtering")
