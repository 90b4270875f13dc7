package analytics

import (
	"math"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// DefaultSpikeThreshold is the z-score magnitude above which a record is
// flagged as a price spike.
const DefaultSpikeThreshold = 2.0

// DetectSpikes flags records whose z-score magnitude exceeds zThreshold
// and records the direction. Records with no rolling window keep a
// z-score of 0 and are never flagged. The input is not mutated.
func DetectSpikes(data []models.InvoiceLine, zThreshold float64) []models.InvoiceLine {
	if zThreshold <= 0 {
		zThreshold = DefaultSpikeThreshold
	}

	out := make([]models.InvoiceLine, len(data))
	for i, item := range data {
		out[i] = item
		out[i].IsSpike = math.Abs(item.ZScore) > zThreshold
		switch {
		case item.ZScore > zThreshold:
			out[i].SpikeDirection = "up"
		case item.ZScore < -zThreshold:
			out[i].SpikeDirection = "down"
		default:
			out[i].SpikeDirection = ""
		}
	}
	return out
}
