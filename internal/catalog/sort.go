package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used for ordering when no locale is configured.
var DefaultLocale = language.BrazilianPortuguese

// newCollator returns a collator for tag. Collators are not safe for
// concurrent use, so every sort builds its own.
func newCollator(tag language.Tag) *collate.Collator {
	if tag == language.Und {
		tag = DefaultLocale
	}
	return collate.New(tag)
}

// CompareNames compares two names with locale-aware collation.
// It returns -1, 0 or 1 like strings.Compare.
func CompareNames(a, b string, tag language.Tag) int {
	return newCollator(tag).CompareString(a, b)
}

// SortStates returns a copy of states ordered by name.
func SortStates(states []State, tag language.Tag) []State {
	sorted := make([]State, len(states))
	copy(sorted, states)

	c := newCollator(tag)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}

// SortCities returns a copy of cities ordered by name.
func SortCities(cities []City, tag language.Tag) []City {
	sorted := make([]City, len(cities))
	copy(sorted, cities)

	c := newCollator(tag)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}
