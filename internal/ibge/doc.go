// Package ibge implements a read-only client for the IBGE localities API,
// the public service that publishes Brazilian states and their districts.
//
// Only two endpoints are used:
//
//	GET {base}/estados?orderBy=nome        -> states
//	GET {base}/estados/{UF}/distritos      -> districts with municipality and micro-region
//
// # Basic Usage
//
//	client := ibge.NewClient(ibge.DefaultBaseURL, 30*time.Second)
//
//	states, err := client.FetchStates(ctx)
//	if err != nil {
//	    log.Fatal(ibge.GetShortErrorMessage(err))
//	}
//
//	cities, err := client.FetchCities(ctx, "MT")
//
// # Validation
//
// Responses are validated before conversion. A state without acronym or name,
// or a district whose municipality or micro-region is missing, makes the
// whole response fail with a parse error instead of producing partial data.
//
// # Error Handling
//
// Every error returned by the client is a *ServiceError carrying an
// ErrorType (network, timeout, HTTP, parse, validation, canceled). Use the
// Is* helpers to branch on the category and GetShortErrorMessage for a
// one-line description suitable for the user.
//
// The client never retries. Callers decide whether to ask again.
package ibge
