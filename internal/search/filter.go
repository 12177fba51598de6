// Package search implements the destination search dropdown as a headless
// component: local filtering, overlay visibility, overlay placement and
// result selection. Rendering is left to whoever consumes View.
package search

import (
	"sort"
	"strings"

	"github.com/sais189/travelex/internal/models"
)

// AllCountries is the selector value meaning "no country restriction".
const AllCountries = "all"

// Filter returns the destinations whose name or country contains query
// (case-insensitive), restricted to country unless it is AllCountries or
// empty. The input slice is never modified.
func Filter(destinations []models.Destination, query, country string) []models.Destination {
	result := make([]models.Destination, 0, len(destinations))
	q := strings.ToLower(query)
	restrict := country != "" && country != AllCountries

	for _, d := range destinations {
		if restrict && d.Country != country {
			continue
		}
		if strings.Contains(strings.ToLower(d.Name), q) || strings.Contains(strings.ToLower(d.Country), q) {
			result = append(result, d)
		}
	}
	return result
}

// Countries lists the distinct countries present, sorted.
func Countries(destinations []models.Destination) []string {
	seen := make(map[string]struct{}, len(destinations))
	countries := make([]string, 0)
	for _, d := range destinations {
		if _, ok := seen[d.Country]; ok {
			continue
		}
		seen[d.Country] = struct{}{}
		countries = append(countries, d.Country)
	}
	sort.Strings(countries)
	return countries
}
