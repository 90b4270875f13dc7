package ingest

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// StoreMatcher routes invoice rows to store locations by ship-to address.
// Stores are checked in the order given; the 280 store's bare "280"
// pattern matches aggressively, so it must stay first the way the
// dashboard always ordered it.
type StoreMatcher struct {
	stores   []models.Store
	patterns map[string][]string // store id -> uppercase patterns
}

func NewStoreMatcher(stores []models.Store) *StoreMatcher {
	m := &StoreMatcher{
		stores:   stores,
		patterns: make(map[string][]string, len(stores)),
	}
	for _, store := range stores {
		var patterns []string
		if len(store.AddressPatterns) > 0 {
			_ = json.Unmarshal(store.AddressPatterns, &patterns)
		}
		for i, p := range patterns {
			patterns[i] = strings.ToUpper(p)
		}
		m.patterns[store.ID] = patterns
	}
	return m
}

// Identify returns the store id for a raw invoice row, or "" when no
// pattern matches. Address and city are concatenated so patterns can hit
// either field; unmatched rows fall back to city-name matching.
func (m *StoreMatcher) Identify(row models.RawInvoiceRow) string {
	address := strings.ToUpper(row["Address"])
	city := strings.ToUpper(row["City"])
	fullAddress := address + " " + city

	for _, store := range m.stores {
		for _, pattern := range m.patterns[store.ID] {
			if pattern != "" && strings.Contains(fullAddress, pattern) {
				return store.ID
			}
		}
	}

	// Alternative matching on location names
	switch {
	case strings.Contains(city, "CHELSEA"):
		return "chelsea"
	case strings.Contains(city, "HOMEWOOD"):
		return "homewood"
	case strings.Contains(city, "TRUSSVILLE"):
		return "trussville"
	case strings.Contains(address, "VALLEYDALE"):
		return "valleydale"
	}

	return ""
}

// DefaultStores is the canonical Sanpeggio's location list the seeder
// installs. Order matters: Identify checks stores front to back.
func DefaultStores() []models.Store {
	mk := func(id, name, location string, patterns ...string) models.Store {
		raw, _ := json.Marshal(patterns)
		return models.Store{
			ID:              id,
			Name:            name,
			Location:        location,
			AddressPatterns: datatypes.JSON(raw),
		}
	}
	return []models.Store{
		mk("280", "280 Store", "Highway 280 Corridor", "280", "HIGHWAY 280", "HWY 280"),
		mk("chelsea", "Chelsea Store", "Chelsea", "CHELSEA", "50 CHELSEA RD"),
		mk("valleydale", "Valleydale Store", "Valleydale", "VALLEYDALE"),
		mk("homewood", "Homewood Store", "Homewood", "HOMEWOOD"),
		mk("trussville", "Trussville Store", "Trussville", "TRUSSVILLE"),
		mk("5points", "5 Points Store", "Five Points South", "5 POINTS", "FIVE POINTS", "5POINTS"),
	}
}
