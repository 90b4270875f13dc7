package analytics

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// substitutionSavingsFloor is the minimum savings percent before a swap
// is worth suggesting.
const substitutionSavingsFloor = 5.0

// FindSubstitutionOpportunities looks for cheaper near-identical products:
// products are grouped by (category, normalized description) and every
// member of a multi-product group is compared against the group's
// cheapest by average price. Savings above 5% produce a suggestion.
//
// AnnualSavings keeps the dashboard's literal formula, which reduces to
// per-unit savings times lifetime quantity. It is not a true annual
// projection when the data spans more or less than a year; finance is
// aware and wants the number unchanged.
func FindSubstitutionOpportunities(productMetrics map[string]*models.ProductMetric) []models.Substitution {
	groups := make(map[string][]*models.ProductMetric)
	groupOrder := make([]string, 0)

	keys := make([]string, 0, len(productMetrics))
	for key := range productMetrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		metric := productMetrics[key]
		category := "Unknown"
		if len(metric.Invoices) > 0 {
			category = metric.Invoices[0].Category
		}
		groupKey := category + "|" + NormalizeProductDescription(metric.Description)
		if _, ok := groups[groupKey]; !ok {
			groupOrder = append(groupOrder, groupKey)
		}
		groups[groupKey] = append(groups[groupKey], metric)
	}

	substitutions := make([]models.Substitution, 0)
	for _, groupKey := range groupOrder {
		group := groups[groupKey]
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].AvgPrice < group[j].AvgPrice
		})

		cheapest := group[0]
		for _, current := range group[1:] {
			savings := current.AvgPrice - cheapest.AvgPrice
			savingsPercent := 0.0
			if current.AvgPrice > 0 {
				savingsPercent = savings / current.AvgPrice * 100
			}
			if savingsPercent <= substitutionSavingsFloor {
				continue
			}
			substitutions = append(substitutions, models.Substitution{
				CurrentProduct:   current.Description,
				CurrentBrand:     current.Brand,
				CurrentPrice:     current.AvgPrice,
				SuggestedProduct: cheapest.Description,
				SuggestedBrand:   cheapest.Brand,
				SuggestedPrice:   cheapest.AvgPrice,
				PotentialSavings: savings,
				SavingsPercent:   savingsPercent,
				AnnualSavings:    savings * (current.TotalQty / 12) * 12,
			})
		}
	}

	sort.SliceStable(substitutions, func(i, j int) bool {
		return substitutions[i].AnnualSavings > substitutions[j].AnnualSavings
	})
	return substitutions
}

// NormalizeProductDescription reduces a description to its first three
// significant words, lowercased with digits and punctuation stripped, so
// "MOZZARELLA SHRD 4/5 LB" and "MOZZARELLA SHRD 6/5#" land in the same
// comparison group.
func NormalizeProductDescription(desc string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(desc) {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '_' {
			b.WriteRune(r)
		}
	}

	words := make([]string, 0, 3)
	for _, word := range strings.Fields(b.String()) {
		if len(word) <= 2 {
			continue
		}
		words = append(words, word)
		if len(words) == 3 {
			break
		}
	}
	return strings.Join(words, " ")
}
