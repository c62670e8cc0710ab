// Package urls provides centralized constants for the documentation URLs
// shown to users, so they can be updated in a single location.
//
// Usage:
//
//	import "github.com/muurk/cidades/internal/urls"
//
//	fmt.Printf("API documentation: %s\n", urls.LocalitiesAPIDocs)
package urls
