package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/analytics"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func TestDetectSpikesDirectionSymmetry(t *testing.T) {
	// Two categories, each with a stable baseline and one outlier. The
	// window is per-category and includes every earlier record, so an up
	// outlier sharing a category with the down outlier would inflate the
	// stddev in its window and mask it. Both outliers land at z = ±2.83
	// against their eight-record baselines.
	data := []models.InvoiceLine{
		line(day(2024, time.July, 1), "A", "V", 10, 1),
		line(day(2024, time.July, 2), "A", "V", 10, 1),
		line(day(2024, time.July, 3), "A", "V", 10, 1),
		line(day(2024, time.July, 4), "A", "V", 10, 1),
		line(day(2024, time.July, 5), "A", "V", 10, 1),
		line(day(2024, time.July, 6), "A", "V", 10, 1),
		line(day(2024, time.July, 7), "A", "V", 10, 1),
		line(day(2024, time.July, 8), "A", "V", 10, 1),
		line(day(2024, time.July, 9), "A", "V", 30, 1),
		line(day(2024, time.July, 1), "B", "V", 10, 1),
		line(day(2024, time.July, 2), "B", "V", 10, 1),
		line(day(2024, time.July, 3), "B", "V", 10, 1),
		line(day(2024, time.July, 4), "B", "V", 10, 1),
		line(day(2024, time.July, 5), "B", "V", 10, 1),
		line(day(2024, time.July, 6), "B", "V", 10, 1),
		line(day(2024, time.July, 7), "B", "V", 10, 1),
		line(day(2024, time.July, 8), "B", "V", 10, 1),
		line(day(2024, time.July, 9), "B", "V", 1, 1),
	}

	out := analytics.DetectSpikes(analytics.RollingStats(data, 30), 2.0)

	var up, down int
	for _, item := range out {
		if !item.IsSpike {
			assert.Empty(t, item.SpikeDirection)
			continue
		}
		switch item.SpikeDirection {
		case "up":
			up++
			assert.Greater(t, item.ZScore, 2.0)
		case "down":
			down++
			assert.Less(t, item.ZScore, -2.0)
		default:
			t.Fatalf("spike with direction %q", item.SpikeDirection)
		}
	}
	assert.Equal(t, 1, up)
	assert.Equal(t, 1, down)
}

func TestDetectSpikesThresholdIsExclusive(t *testing.T) {
	data := []models.InvoiceLine{
		{InvoiceDate: day(2024, time.July, 1), Category: "A", ZScore: 2.0},
		{InvoiceDate: day(2024, time.July, 2), Category: "A", ZScore: 2.01},
		{InvoiceDate: day(2024, time.July, 3), Category: "A", ZScore: -2.0},
	}

	out := analytics.DetectSpikes(data, 2.0)
	assert.False(t, out[0].IsSpike)
	assert.True(t, out[1].IsSpike)
	assert.False(t, out[2].IsSpike)
}
