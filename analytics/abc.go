package analytics

import (
	"sort"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// PerformABCAnalysis ranks products by total spend and walks cumulative
// share, assigning the Pareto tier: A while cumulative share stays within
// 80%, B within 95%, C for the tail. The classification is written onto
// the metrics in place; the returned list is the spend-descending order.
func PerformABCAnalysis(productMetrics map[string]*models.ProductMetric) models.ABCAnalysis {
	products := make([]*models.ProductMetric, 0, len(productMetrics))
	totalSpend := 0.0
	for _, metric := range productMetrics {
		products = append(products, metric)
		totalSpend += metric.TotalSpend
	}
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].TotalSpend != products[j].TotalSpend {
			return products[i].TotalSpend > products[j].TotalSpend
		}
		return products[i].Description < products[j].Description
	})

	summary := models.ABCSummary{TotalItems: len(products)}
	cumulative := 0.0
	for _, product := range products {
		cumulative += product.TotalSpend
		cumulativePercent := 0.0
		if totalSpend > 0 {
			cumulativePercent = cumulative / totalSpend * 100
			product.SpendPercent = product.TotalSpend / totalSpend * 100
		}
		product.CumulativePercent = cumulativePercent

		switch {
		case cumulativePercent <= 80:
			product.ABCCategory = "A"
			summary.AItems++
		case cumulativePercent <= 95:
			product.ABCCategory = "B"
			summary.BItems++
		default:
			product.ABCCategory = "C"
			summary.CItems++
		}
	}

	return models.ABCAnalysis{Products: products, Summary: summary}
}
