package analytics

import (
	"regexp"
	"strconv"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

var packQtyPattern = regexp.MustCompile(`(\d+)/`)

// ExtractPackQuantity pulls the leading multiplier out of a PFG pack size
// like "6/1 GA" or "24/12 OZ". Returns 0 when no multiplier is encoded.
func ExtractPackQuantity(packSize string) int {
	m := packQtyPattern.FindStringSubmatch(packSize)
	if m == nil {
		return 0
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return qty
}

// AnalyzePackSizes groups spend by (category, pack size) and derives a
// cost-per-unit where the pack size encodes a multiplier, surfacing which
// pack formats buy cheapest.
func AnalyzePackSizes(data []models.InvoiceLine) map[string]*models.PackSizeMetric {
	type packAccum struct {
		metric      *models.PackSizeMetric
		unitPrices  []float64
		costPerUnit []float64
	}
	accums := make(map[string]*packAccum)
	order := make([]string, 0)

	for _, item := range data {
		packSize := item.PackSize
		if packSize == "" {
			packSize = "Unknown"
		}
		key := item.Category + "|" + packSize

		acc := accums[key]
		if acc == nil {
			acc = &packAccum{
				metric: &models.PackSizeMetric{
					Category: item.Category,
					PackSize: packSize,
					Products: models.NewOrderedSet(),
					PackQty:  ExtractPackQuantity(packSize),
				},
			}
			accums[key] = acc
			order = append(order, key)
		}

		acc.metric.Products.Add(item.ProductDescription)
		acc.metric.TotalSpend += item.ExtPrice
		acc.metric.TotalQty += item.Qty
		acc.unitPrices = append(acc.unitPrices, item.UnitPrice)
		if acc.metric.PackQty > 0 {
			acc.costPerUnit = append(acc.costPerUnit, item.UnitPrice/float64(acc.metric.PackQty))
		}
	}

	metrics := make(map[string]*models.PackSizeMetric, len(accums))
	for _, key := range order {
		acc := accums[key]
		m := acc.metric
		m.ProductCount = m.Products.Len()
		m.AvgUnitPrice = average(acc.unitPrices)
		m.AvgCostPerUnit = average(acc.costPerUnit)
		if m.AvgCostPerUnit > 0 {
			m.Efficiency = 1 / m.AvgCostPerUnit
		}
		metrics[key] = m
	}
	return metrics
}
