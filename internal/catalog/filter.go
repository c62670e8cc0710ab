package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds s for diacritic-insensitive comparison: accented
// characters are decomposed, the combining marks dropped, and the result
// lower-cased. "São Paulo" becomes "sao paulo".
func Normalize(s string) string {
	// transform.Chain keeps state, so build a fresh one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		// Only reachable on invalid UTF-8; fall back to plain lower-casing
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// MatchesName reports whether name contains query, ignoring case and
// diacritics. An empty query matches everything.
func MatchesName(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(Normalize(name), Normalize(query))
}

// FilterCities returns the cities whose name matches query, in their
// original order. The query is used verbatim (no trimming). With an empty
// query the input is returned as-is.
func FilterCities(cities []City, query string) []City {
	if query == "" {
		return cities
	}

	needle := Normalize(query)
	matched := make([]City, 0, len(cities))
	for _, city := range cities {
		if strings.Contains(Normalize(city.Name), needle) {
			matched = append(matched, city)
		}
	}
	return matched
}
