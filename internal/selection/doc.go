// Package selection implements the state/city selection flow: a Controller
// that owns the application state and its transitions, and a pure renderer
// that derives what to display from it.
//
// # Selection Cycle
//
//	Idle ──SelectState──▶ Selected ──ConfirmSelection──▶ Ready      (cache hit)
//	                                                 └─▶ Loading ──▶ Ready | Failed
//
// Calling SelectState again re-enters Selected and discards whatever the
// previous selection was showing or waiting for.
//
// # Requests and Tokens
//
// The controller performs no I/O. Initialize and ConfirmSelection return a
// Request with a token; the caller fetches the data and reports back with
// StatesLoaded/StatesFailed or CitiesLoaded/CitiesFailed. Each selection
// change or confirmation issues a new token, and results carrying an older
// one are not shown. Late city lists are still cached under their own state
// code.
//
//	ctrl := selection.NewController(nil, language.BrazilianPortuguese)
//	ctrl.SelectState("MT")
//	if req, ok := ctrl.ConfirmSelection(); ok {
//	    cities, err := client.FetchCities(ctx, req.StateCode)
//	    if err != nil {
//	        ctrl.CitiesFailed(req.Token, req.StateCode, err)
//	    } else {
//	        ctrl.CitiesLoaded(req.Token, req.StateCode, cities)
//	    }
//	}
//	view := selection.Render(ctrl.Snapshot())
//
// # Errors
//
// Failed requests are recovered here: they are logged, turned into a
// FetchError and exposed as a blocking Alert, and the controller returns to
// a non-loading state. Nothing is retried automatically.
package selection
