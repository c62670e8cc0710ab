package selection

import "fmt"

// FetchKind identifies which request failed
type FetchKind int

const (
	// FetchStates is the request for the list of states
	FetchStates FetchKind = iota
	// FetchCities is the request for the cities of one state
	FetchCities
)

// String returns the kind as used in logs
func (k FetchKind) String() string {
	switch k {
	case FetchStates:
		return "states"
	case FetchCities:
		return "cities"
	default:
		return fmt.Sprintf("FetchKind(%d)", k)
	}
}

// FetchError is raised when a request to the geography service fails.
// It is recovered by the controller and never propagates further.
type FetchError struct {
	Kind      FetchKind
	StateCode string // set for FetchCities
	Err       error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Kind == FetchCities {
		return fmt.Sprintf("fetch %s for %s: %v", e.Kind, e.StateCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Alert is a blocking notification shown to the user.
type Alert struct {
	Title  string
	Detail string
	Err    *FetchError
}

// Alert titles
const (
	StatesAlertTitle = "Falha ao carregar a lista de estados!"
	CitiesAlertTitle = "Erro ao buscar a lista de cidades!"
)
