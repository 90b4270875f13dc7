package analytics

import (
	"sort"
	"time"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// CalculateBudgetVariance compares each category's actual spend to a
// projected baseline: the average of the last 3 observed months' spend,
// extrapolated over every month present in the data.
//
// The average always divides by 3, even when fewer months exist; months
// where a category had no spend contribute 0. That under-counts young
// categories, but it is the dashboard's established behavior and budget
// owners compare against it, so it stays.
func CalculateBudgetVariance(data []models.InvoiceLine) map[string]models.BudgetVariance {
	actualByCategory := make(map[string]float64)
	monthlyActual := make(map[string]map[string]float64) // month -> category -> spend

	for _, item := range data {
		month := monthKey(item.InvoiceDate)
		cat := item.Category

		actualByCategory[cat] += item.ExtPrice

		if monthlyActual[month] == nil {
			monthlyActual[month] = make(map[string]float64)
		}
		monthlyActual[month][cat] += item.ExtPrice
	}

	months := make([]string, 0, len(monthlyActual))
	for m := range monthlyActual {
		months = append(months, m)
	}
	sort.Strings(months)

	last3 := months
	if len(months) > 3 {
		last3 = months[len(months)-3:]
	}

	variance := make(map[string]models.BudgetVariance, len(actualByCategory))
	for cat, actual := range actualByCategory {
		sum := 0.0
		for _, m := range last3 {
			sum += monthlyActual[m][cat]
		}
		projected := sum / 3 * float64(len(months))

		// A category with no recent spend projects to 0; fall back to
		// actual so the variance reads flat instead of dividing by zero.
		if projected == 0 {
			projected = actual
		}

		v := models.BudgetVariance{
			Actual:    actual,
			Projected: projected,
			Variance:  actual - projected,
		}
		if projected > 0 {
			v.VariancePercent = (actual - projected) / projected * 100
		}
		variance[cat] = v
	}

	return variance
}

// monthKey formats a date as its YYYY-MM bucket in UTC.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
