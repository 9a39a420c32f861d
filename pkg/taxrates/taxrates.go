// Package taxrates maps location keys to annual property tax rates.
package taxrates

import (
	"strings"

	"github.com/homeready/homeready/pkg/constants"
)

// Source resolves a location key to an annual property tax rate expressed as
// a percentage of assessed value. Unknown keys fall back to a documented
// default rather than failing.
type Source struct {
	rates       map[string]float64
	defaultRate float64
}

// NewSource returns a Source seeded with effective rates for a handful of
// common metro areas. Rates are approximate and meant as estimates only.
func NewSource() *Source {
	return NewSourceWithRates(map[string]float64{
		"austin-tx":        1.81,
		"houston-tx":       1.77,
		"seattle-wa":       0.92,
		"portland-or":      1.04,
		"denver-co":        0.55,
		"phoenix-az":       0.62,
		"chicago-il":       2.10,
		"new-york-ny":      1.38,
		"boston-ma":        1.04,
		"san-francisco-ca": 0.74,
		"los-angeles-ca":   0.72,
		"atlanta-ga":       0.92,
		"raleigh-nc":       0.78,
		"nashville-tn":     0.67,
		"columbus-oh":      1.62,
	}, constants.DefaultPropertyTaxRatePct)
}

// NewSourceWithRates returns a Source backed by the supplied table and
// default rate.
func NewSourceWithRates(rates map[string]float64, defaultRate float64) *Source {
	normalized := make(map[string]float64, len(rates))
	for key, rate := range rates {
		normalized[normalizeKey(key)] = rate
	}
	return &Source{rates: normalized, defaultRate: defaultRate}
}

// Rate returns the annual property tax rate for the given location key, or
// the default rate when the key is unknown or empty.
func (s *Source) Rate(location string) float64 {
	if rate, ok := s.rates[normalizeKey(location)]; ok {
		return rate
	}
	return s.defaultRate
}

// DefaultRate returns the fallback rate used for unknown locations.
func (s *Source) DefaultRate() float64 {
	return s.defaultRate
}

func normalizeKey(location string) string {
	key := strings.ToLower(strings.TrimSpace(location))
	key = strings.ReplaceAll(key, " ", "-")
	key = strings.ReplaceAll(key, ",", "")
	return key
}
