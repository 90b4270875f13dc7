package analytics

import "github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"

// ApplyFilters returns the records passing every set filter. Date bounds
// are inclusive; category/vendor values of "" or "all" match everything.
func ApplyFilters(data []models.InvoiceLine, f models.AnalyticsFilters) []models.InvoiceLine {
	out := make([]models.InvoiceLine, 0, len(data))
	for _, item := range data {
		if f.StartDate != nil && item.InvoiceDate.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && item.InvoiceDate.After(*f.EndDate) {
			continue
		}
		if f.Category != "" && f.Category != "all" && item.Category != f.Category {
			continue
		}
		if f.Vendor != "" && f.Vendor != "all" && item.Vendor != f.Vendor {
			continue
		}
		if f.MinPrice != nil && item.UnitPrice < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && item.UnitPrice > *f.MaxPrice {
			continue
		}
		if f.SpikesOnly && !item.IsSpike {
			continue
		}
		out = append(out, item)
	}
	return out
}
