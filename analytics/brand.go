package analytics

import (
	"sort"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// brandAccum carries the raw per-brand working state that the final
// BrandMetric does not expose (purchase-day lists, per-category prices).
type brandAccum struct {
	metric         *models.BrandMetric
	purchaseDates  []string
	categoryPrices map[string][]float64
	categoryOrder  []string
}

type brandedPurchase struct {
	brand string
	date  string
}

// AnalyzeBrands rolls every record up by brand: spend, quantity, product
// and vendor coverage, price range, market share, loyalty, price
// competitiveness against the category market, switching patterns, and a
// first-half/second-half growth trend. Records without a brand roll up
// under "Generic".
//
// Loyalty is duplicate-day detection: this data has no customer
// dimension, so a repeat purchase is a second buy on a day the brand was
// already bought, not a returning customer.
func AnalyzeBrands(data []models.InvoiceLine) map[string]*models.BrandMetric {
	totalSpend := 0.0
	for _, item := range data {
		totalSpend += item.ExtPrice
	}

	accums := make(map[string]*brandAccum)
	brandOrder := make([]string, 0)

	// Per-product chronological purchase sequences for switching analysis.
	productPurchases := make(map[string][]brandedPurchase)
	productOrder := make([]string, 0)

	// Category market averages for the competitiveness index.
	categoryPriceSum := make(map[string]float64)
	categoryPriceCount := make(map[string]int)

	for _, item := range data {
		brand := item.Brand
		if brand == "" {
			brand = "Generic"
		}
		day := dayKey(item.InvoiceDate)

		acc := accums[brand]
		if acc == nil {
			acc = &brandAccum{
				metric: &models.BrandMetric{
					Brand:      brand,
					Products:   models.NewOrderedSet(),
					Categories: models.NewOrderedSet(),
					Vendors:    models.NewOrderedSet(),
					PriceRange: models.PriceRange{Min: item.UnitPrice, Max: item.UnitPrice},
				},
				categoryPrices: make(map[string][]float64),
			}
			accums[brand] = acc
			brandOrder = append(brandOrder, brand)
		}

		m := acc.metric
		m.Products.Add(item.ProductDescription)
		m.Categories.Add(item.Category)
		m.Vendors.Add(item.Vendor)
		m.TotalSpend += item.ExtPrice
		m.TotalQty += item.Qty
		m.InvoiceCount++

		if item.UnitPrice < m.PriceRange.Min {
			m.PriceRange.Min = item.UnitPrice
		}
		if item.UnitPrice > m.PriceRange.Max {
			m.PriceRange.Max = item.UnitPrice
		}

		acc.purchaseDates = append(acc.purchaseDates, day)
		if _, ok := acc.categoryPrices[item.Category]; !ok {
			acc.categoryOrder = append(acc.categoryOrder, item.Category)
		}
		acc.categoryPrices[item.Category] = append(acc.categoryPrices[item.Category], item.UnitPrice)

		if _, ok := productPurchases[item.ProductDescription]; !ok {
			productOrder = append(productOrder, item.ProductDescription)
		}
		productPurchases[item.ProductDescription] = append(productPurchases[item.ProductDescription],
			brandedPurchase{brand: brand, date: day})

		categoryPriceSum[item.Category] += item.UnitPrice
		categoryPriceCount[item.Category]++
	}

	// Count adjacent brand changes within each product's chronological
	// purchase sequence.
	switching := make(map[string]map[string]int) // from -> to -> count
	for _, product := range productOrder {
		purchases := productPurchases[product]
		sort.SliceStable(purchases, func(i, j int) bool {
			return purchases[i].date < purchases[j].date
		})
		for i := 1; i < len(purchases); i++ {
			from, to := purchases[i-1].brand, purchases[i].brand
			if from == to {
				continue
			}
			if switching[from] == nil {
				switching[from] = make(map[string]int)
			}
			switching[from][to]++
		}
	}

	metrics := make(map[string]*models.BrandMetric, len(accums))
	for _, brand := range brandOrder {
		acc := accums[brand]
		m := acc.metric

		m.ProductCount = m.Products.Len()
		m.CategoryCount = m.Categories.Len()
		m.VendorCount = m.Vendors.Len()
		m.PriceSpread = m.PriceRange.Max - m.PriceRange.Min
		if m.TotalQty > 0 {
			m.AvgPrice = m.TotalSpend / m.TotalQty
		}
		if totalSpend > 0 {
			m.MarketShare = m.TotalSpend / totalSpend * 100
		}

		uniqueDays := make(map[string]struct{}, len(acc.purchaseDates))
		for _, d := range acc.purchaseDates {
			uniqueDays[d] = struct{}{}
		}
		m.RepeatPurchases = len(acc.purchaseDates) - len(uniqueDays)
		if len(acc.purchaseDates) > 0 {
			m.LoyaltyRate = float64(m.RepeatPurchases) / float64(len(acc.purchaseDates)) * 100
		}

		m.CompetitivenessIndex = competitivenessIndex(acc, categoryPriceSum, categoryPriceCount)
		m.SwitchingPatterns, m.SwitchingRate = switchingFor(brand, switching[brand], m.InvoiceCount)
		m.GrowthTrend = growthTrend(acc.purchaseDates)

		metrics[brand] = m
	}
	return metrics
}

// competitivenessIndex averages, across the brand's categories, the
// brand's average price as a percentage of the category market average.
// 100 means priced at market; below 100 is cheaper.
func competitivenessIndex(acc *brandAccum, catSum map[string]float64, catCount map[string]int) float64 {
	totalScore := 0.0
	scored := 0
	for _, category := range acc.categoryOrder {
		if catCount[category] == 0 {
			continue
		}
		marketAvg := catSum[category] / float64(catCount[category])
		if marketAvg <= 0 {
			continue
		}
		brandAvg := average(acc.categoryPrices[category])
		totalScore += brandAvg / marketAvg * 100
		scored++
	}
	if scored == 0 {
		return 100
	}
	return totalScore / float64(scored)
}

func switchingFor(brand string, outbound map[string]int, invoiceCount int) ([]models.SwitchPattern, float64) {
	patterns := make([]models.SwitchPattern, 0, len(outbound))
	totalSwitches := 0
	for to, count := range outbound {
		patterns = append(patterns, models.SwitchPattern{
			FromBrand: brand,
			ToBrand:   to,
			Count:     count,
		})
		totalSwitches += count
	}
	for i := range patterns {
		if totalSwitches > 0 {
			patterns[i].Percentage = float64(patterns[i].Count) / float64(totalSwitches) * 100
		}
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		return patterns[i].ToBrand < patterns[j].ToBrand
	})

	rate := 0.0
	if invoiceCount > 0 {
		rate = float64(totalSwitches) / float64(invoiceCount) * 100
	}
	return patterns, rate
}

// growthTrend compares purchase counts in the second half of the sorted
// purchase-date list against the first half. Needs more than 3 purchases
// to say anything.
func growthTrend(purchaseDates []string) float64 {
	if len(purchaseDates) <= 3 {
		return 0
	}
	mid := len(purchaseDates) / 2
	firstHalf := mid
	secondHalf := len(purchaseDates) - mid
	if firstHalf == 0 {
		return 0
	}
	return float64(secondHalf-firstHalf) / float64(firstHalf) * 100
}
