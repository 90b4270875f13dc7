package analytics

import (
	"math"
	"sort"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// DetectSeasonalPatterns buckets each product's quantity, order count and
// spend by calendar month and scores how uneven the quantity profile is
// (stddev over mean). PeakMonths are the three busiest months, 0 =
// January.
func DetectSeasonalPatterns(data []models.InvoiceLine) map[string]*models.ProductSeasonality {
	patterns := make(map[string]*models.ProductSeasonality)
	order := make([]string, 0)

	for _, item := range data {
		product := item.ProductDescription
		p := patterns[product]
		if p == nil {
			p = &models.ProductSeasonality{Product: product}
			patterns[product] = p
			order = append(order, product)
		}
		month := int(item.InvoiceDate.UTC().Month()) - 1
		p.MonthlyData[month].Qty += item.Qty
		p.MonthlyData[month].Orders++
		p.MonthlyData[month].Spend += item.ExtPrice
	}

	for _, product := range order {
		p := patterns[product]

		total := 0.0
		for _, m := range p.MonthlyData {
			total += m.Qty
		}
		avg := total / 12

		variance := 0.0
		for _, m := range p.MonthlyData {
			variance += (m.Qty - avg) * (m.Qty - avg)
		}
		variance /= 12

		denom := avg
		if denom == 0 {
			denom = 1
		}
		p.SeasonalityScore = math.Sqrt(variance) / denom

		p.PeakMonths = peakMonths(p.MonthlyData)
	}
	return patterns
}

func peakMonths(monthly [12]models.MonthBucket) []int {
	idx := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	sort.SliceStable(idx, func(i, j int) bool {
		return monthly[idx[i]].Qty > monthly[idx[j]].Qty
	})
	return idx[:3]
}
