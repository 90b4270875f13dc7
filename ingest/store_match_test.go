package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/ingest"
	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

func defaultMatcher() *ingest.StoreMatcher {
	return ingest.NewStoreMatcher(ingest.DefaultStores())
}

func TestIdentifyStoreByAddressPattern(t *testing.T) {
	m := defaultMatcher()

	cases := []struct {
		address, city, want string
	}{
		{"50 CHELSEA RD", "CHELSEA", "chelsea"},
		{"1919 OXMOOR RD", "HOMEWOOD", "homewood"},
		{"7270 GADSDEN HWY", "TRUSSVILLE", "trussville"},
		{"2013 VALLEYDALE RD", "BIRMINGHAM", "valleydale"},
		{"1016 20TH ST S, 5 POINTS", "BIRMINGHAM", "5points"},
		{"5511 HIGHWAY 280", "BIRMINGHAM", "280"},
		{"123 NOWHERE LN", "ATLANTA", ""},
	}
	for _, tc := range cases {
		row := models.RawInvoiceRow{"Address": tc.address, "City": tc.city}
		assert.Equal(t, tc.want, m.Identify(row), "address %q city %q", tc.address, tc.city)
	}
}

func TestIdentifyStoreIsCaseInsensitive(t *testing.T) {
	m := defaultMatcher()
	row := models.RawInvoiceRow{"Address": "50 chelsea rd", "City": "chelsea"}
	assert.Equal(t, "chelsea", m.Identify(row))
}

// The 280 store's bare "280" pattern wins over later stores whenever the
// digits appear anywhere in the address. Long-standing routing behavior;
// store order encodes it.
func TestIdentifyStore280PatternMatchesFirst(t *testing.T) {
	m := defaultMatcher()
	row := models.RawInvoiceRow{"Address": "280 CHELSEA CORNERS WAY", "City": "CHELSEA"}
	assert.Equal(t, "280", m.Identify(row))
}

func TestIdentifyStoreCityFallback(t *testing.T) {
	// No configured pattern hits, but the city names the location.
	stores := []models.Store{{ID: "other", Name: "Other"}}
	m := ingest.NewStoreMatcher(stores)

	row := models.RawInvoiceRow{"Address": "UNIT 4", "City": "TRUSSVILLE AL"}
	assert.Equal(t, "trussville", m.Identify(row))
}
