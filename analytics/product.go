package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// Activity status thresholds, days since last order.
const (
	activeMaxDays     = 30
	slowMovingMaxDays = 60
)

// AnalyzeProductPerformance rolls every record up by product description:
// full invoice history, spend and quantity totals, chronological price
// history with detected price-change events, order cadence, and an
// activity status relative to now. Records without a description group
// under "Unknown".
func AnalyzeProductPerformance(data []models.InvoiceLine, now time.Time) map[string]*models.ProductMetric {
	metrics := make(map[string]*models.ProductMetric)
	order := make([]string, 0)

	for _, item := range data {
		key := item.ProductDescription
		if key == "" {
			key = "Unknown"
		}

		metric := metrics[key]
		if metric == nil {
			metric = &models.ProductMetric{
				ProductCode: item.ProductCode,
				Description: key,
				Brand:       item.Brand,
				PackSize:    item.PackSize,
				Vendor:      item.Vendor,
				FirstSeen:   item.InvoiceDate,
				LastSeen:    item.InvoiceDate,
				OrderDates:  models.NewOrderedSet(),
			}
			metrics[key] = metric
			order = append(order, key)
		}

		metric.Invoices = append(metric.Invoices, models.ProductInvoice{
			Date:     item.InvoiceDate,
			Price:    item.UnitPrice,
			Qty:      item.Qty,
			ExtPrice: item.ExtPrice,
			Category: item.Category,
		})
		metric.TotalSpend += item.ExtPrice
		metric.TotalQty += item.Qty
		metric.PriceHistory = append(metric.PriceHistory, models.PricePoint{
			Date:  item.InvoiceDate,
			Price: item.UnitPrice,
		})
		metric.OrderDates.Add(dayKey(item.InvoiceDate))

		if item.InvoiceDate.Before(metric.FirstSeen) {
			metric.FirstSeen = item.InvoiceDate
		}
		if item.InvoiceDate.After(metric.LastSeen) {
			metric.LastSeen = item.InvoiceDate
		}
	}

	for _, key := range order {
		finishProductMetric(metrics[key], now)
	}
	return metrics
}

func finishProductMetric(metric *models.ProductMetric, now time.Time) {
	if metric.TotalQty > 0 {
		metric.AvgPrice = metric.TotalSpend / metric.TotalQty
	}

	prices := make([]float64, len(metric.PriceHistory))
	for i, p := range metric.PriceHistory {
		prices[i] = p.Price
	}
	metric.PriceVolatility = coefficientOfVariation(prices)

	sort.SliceStable(metric.PriceHistory, func(i, j int) bool {
		return metric.PriceHistory[i].Date.Before(metric.PriceHistory[j].Date)
	})
	for i := 1; i < len(metric.PriceHistory); i++ {
		prev := metric.PriceHistory[i-1].Price
		curr := metric.PriceHistory[i].Price
		if math.Abs(curr-prev) <= 0.01 {
			continue
		}
		change := models.PriceChange{
			Date:     metric.PriceHistory[i].Date,
			OldPrice: prev,
			NewPrice: curr,
			Change:   curr - prev,
		}
		if prev > 0 {
			change.ChangePercent = (curr - prev) / prev * 100
		}
		metric.PriceChanges = append(metric.PriceChanges, change)
	}

	orderDays := append([]string(nil), metric.OrderDates.Values()...)
	sort.Strings(orderDays)
	metric.AvgDaysBetweenOrders = avgDaysBetween(orderDays)
	metric.OrderCount = len(orderDays)

	metric.ProductAgeDays = int(metric.LastSeen.Sub(metric.FirstSeen).Hours() / 24)

	daysSinceLastOrder := int(now.Sub(metric.LastSeen).Hours() / 24)
	switch {
	case daysSinceLastOrder > slowMovingMaxDays:
		metric.Status = "Inactive"
	case daysSinceLastOrder > activeMaxDays:
		metric.Status = "Slow Moving"
	default:
		metric.Status = "Active"
	}
}

// avgDaysBetween is the mean gap between consecutive distinct order days.
func avgDaysBetween(days []string) float64 {
	if len(days) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(days); i++ {
		prev, err1 := time.Parse("2006-01-02", days[i-1])
		curr, err2 := time.Parse("2006-01-02", days[i])
		if err1 != nil || err2 != nil {
			continue
		}
		total += curr.Sub(prev).Hours() / 24
	}
	return total / float64(len(days)-1)
}

// dayKey formats a date as its YYYY-MM-DD bucket in UTC.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
