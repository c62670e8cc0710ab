// Package catalog holds the geographic reference data shown by cidades:
// Brazilian states, their cities, and the session cache of city lists.
//
// # Ordering
//
// Names are ordered with locale-aware collation (golang.org/x/text/collate)
// so accented names sort next to their unaccented forms:
//
//	catalog.SortCities(cities, language.BrazilianPortuguese)
//	// Cuiabá, Curitiba, ... Várzea Grande
//
// # Filtering
//
// FilterCities performs a case-insensitive, diacritic-insensitive substring
// match on city names. Both sides are normalized with Normalize, so "sao"
// and "SÃO" both match "São Paulo". The input slice is never modified and
// the relative order of matches is preserved.
//
// # Cache
//
// CityCache stores sorted city lists keyed by state code. Entries are
// append-only for the lifetime of the cache: once a code is present it is
// never replaced or invalidated. The reference data changes rarely enough
// that a session never needs fresher values.
package catalog
