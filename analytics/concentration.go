package analytics

import (
	"sort"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// AnalyzeSupplyConcentration computes per-vendor spend shares and the
// Herfindahl-Hirschman Index over all vendors. Order counts are distinct
// invoice numbers, not line counts. Records without a vendor roll up
// under "Unknown".
func AnalyzeSupplyConcentration(data []models.InvoiceLine) models.SupplyConcentration {
	vendorSpend := make(map[string]float64)
	vendorInvoices := make(map[string]map[string]struct{})

	for _, item := range data {
		vendor := item.Vendor
		if vendor == "" {
			vendor = "Unknown"
		}
		vendorSpend[vendor] += item.ExtPrice
		if vendorInvoices[vendor] == nil {
			vendorInvoices[vendor] = make(map[string]struct{})
		}
		vendorInvoices[vendor][item.InvoiceNumber] = struct{}{}
	}

	totalSpend := 0.0
	for _, spend := range vendorSpend {
		totalSpend += spend
	}

	vendors := make([]models.VendorShare, 0, len(vendorSpend))
	for vendor, spend := range vendorSpend {
		share := 0.0
		if totalSpend > 0 {
			share = spend / totalSpend * 100
		}
		vendors = append(vendors, models.VendorShare{
			Vendor:       vendor,
			Spend:        spend,
			OrderCount:   len(vendorInvoices[vendor]),
			SharePercent: share,
		})
	}
	sort.SliceStable(vendors, func(i, j int) bool {
		return vendors[i].Spend > vendors[j].Spend
	})

	// HHI runs over every vendor, not just the top N.
	hhi := 0.0
	for _, v := range vendors {
		hhi += v.SharePercent * v.SharePercent
	}

	risk := "Low"
	switch {
	case hhi > 2500:
		risk = "High"
	case hhi > 1500:
		risk = "Moderate"
	}

	return models.SupplyConcentration{
		Vendors:           vendors,
		TotalVendors:      len(vendors),
		HHI:               hhi,
		Top5Share:         topShare(vendors, 5),
		Top10Share:        topShare(vendors, 10),
		ConcentrationRisk: risk,
	}
}

func topShare(vendors []models.VendorShare, n int) float64 {
	if n > len(vendors) {
		n = len(vendors)
	}
	sum := 0.0
	for _, v := range vendors[:n] {
		sum += v.SharePercent
	}
	return sum
}
