package analytics

import (
	"sort"
	"time"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// PrepareForecastData aggregates spend into an ordered monthly time
// series with average unit price and a per-category breakdown. The
// regression extrapolation itself is a presentation concern; see
// ForecastSeries for the chart-facing projection.
func PrepareForecastData(data []models.InvoiceLine) []models.ForecastPoint {
	type catAccum struct {
		spend      float64
		priceSum   float64
		priceCount int
	}
	type monthAccum struct {
		totalSpend float64
		priceSum   float64
		priceCount int
		categories map[string]*catAccum
		catOrder   []string
	}
	monthly := make(map[string]*monthAccum)

	for _, item := range data {
		month := monthKey(item.InvoiceDate)
		acc := monthly[month]
		if acc == nil {
			acc = &monthAccum{categories: make(map[string]*catAccum)}
			monthly[month] = acc
		}
		acc.totalSpend += item.ExtPrice
		acc.priceSum += item.UnitPrice
		acc.priceCount++

		cat := acc.categories[item.Category]
		if cat == nil {
			cat = &catAccum{}
			acc.categories[item.Category] = cat
			acc.catOrder = append(acc.catOrder, item.Category)
		}
		cat.spend += item.ExtPrice
		cat.priceSum += item.UnitPrice
		cat.priceCount++
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)

	series := make([]models.ForecastPoint, 0, len(months))
	for _, m := range months {
		acc := monthly[m]
		point := models.ForecastPoint{
			Month:      m,
			TotalSpend: acc.totalSpend,
		}
		if acc.priceCount > 0 {
			point.AvgUnitPrice = acc.priceSum / float64(acc.priceCount)
		}
		for _, cat := range acc.catOrder {
			c := acc.categories[cat]
			cms := models.CategoryMonthSpend{Category: cat, Spend: c.spend}
			if c.priceCount > 0 {
				cms.AvgPrice = c.priceSum / float64(c.priceCount)
			}
			point.Categories = append(point.Categories, cms)
		}
		series = append(series, point)
	}

	return series
}

// ForecastSeries extends a monthly series with futureMonths projected
// points from an ordinary-least-squares fit of index vs spend. With
// fewer than two historical points there is no line to fit and the
// series is returned unchanged.
func ForecastSeries(historical []models.ForecastPoint, futureMonths int) []models.ForecastPoint {
	n := len(historical)
	if n < 2 || futureMonths <= 0 {
		return historical
	}

	var xSum, ySum, xySum, xxSum float64
	for i, p := range historical {
		x := float64(i)
		xSum += x
		ySum += p.TotalSpend
		xySum += x * p.TotalSpend
		xxSum += x * x
	}

	fn := float64(n)
	denom := fn*xxSum - xSum*xSum
	if denom == 0 {
		return historical
	}
	slope := (fn*xySum - xSum*ySum) / denom
	intercept := (ySum - slope*xSum) / fn

	out := make([]models.ForecastPoint, n, n+futureMonths)
	copy(out, historical)

	last, err := time.Parse("2006-01", historical[n-1].Month)
	if err != nil {
		return historical
	}
	for k := 1; k <= futureMonths; k++ {
		out = append(out, models.ForecastPoint{
			Month:      last.AddDate(0, k, 0).Format("2006-01"),
			TotalSpend: intercept + slope*(fn-1+float64(k)),
			Forecast:   true,
		})
	}
	return out
}
