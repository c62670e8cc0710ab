package selection

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/muurk/cidades/internal/catalog"
	"github.com/muurk/cidades/internal/ibge"
	"github.com/muurk/cidades/internal/logging"
)

// PlaceholderCode is the value of the empty dropdown option.
const PlaceholderCode = ""

// Phase is the position of the controller in the selection cycle.
type Phase int

const (
	// PhaseIdle means no state is selected
	PhaseIdle Phase = iota
	// PhaseSelected means a state is selected but not confirmed
	PhaseSelected
	// PhaseLoading means cities for the selection are being fetched
	PhaseLoading
	// PhaseReady means the cities of the selection are displayed
	PhaseReady
	// PhaseFailed means the last cities fetch for the selection failed
	PhaseFailed
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelected:
		return "selected"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request describes a fetch the caller must perform. The result is handed
// back with the same Token so late responses can be recognized.
type Request struct {
	Kind      FetchKind
	StateCode string
	Token     uint64
}

// Controller owns the selection state and its transition rules. It performs
// no I/O: operations that need data return a Request, and the caller
// reports the outcome through the *Loaded / *Failed methods.
//
// A Controller is not safe for concurrent use; the UI drives it from a
// single goroutine.
type Controller struct {
	locale language.Tag
	cache  *catalog.CityCache

	states       []catalog.State // nil until loaded
	selected     string
	loading      bool
	failed       bool
	filterText   string
	active       []catalog.City
	activeSet    bool
	alert        *Alert
	generation   uint64
	statesToken  uint64
	statesFailed bool
}

// NewController creates a controller. A nil cache gets a fresh one.
func NewController(cache *catalog.CityCache, locale language.Tag) *Controller {
	if cache == nil {
		cache = catalog.NewCityCache()
	}
	return &Controller{
		locale: locale,
		cache:  cache,
	}
}

// Cache returns the city cache backing the controller.
func (c *Controller) Cache() *catalog.CityCache {
	return c.cache
}

func (c *Controller) nextToken() uint64 {
	c.generation++
	return c.generation
}

// Initialize returns the request for the list of states.
func (c *Controller) Initialize() Request {
	c.statesToken = c.nextToken()
	logging.LogFetchStarted(FetchStates.String(), "", c.statesToken)
	return Request{Kind: FetchStates, Token: c.statesToken}
}

// StatesLoaded stores the list of states. Any order is accepted.
func (c *Controller) StatesLoaded(token uint64, states []catalog.State) {
	if token != c.statesToken {
		logging.LogStaleResponse(FetchStates.String(), "", token, c.statesToken)
		return
	}
	if states == nil {
		states = []catalog.State{}
	}
	c.states = states
	c.statesFailed = false
	logging.LogFetchFinished(FetchStates.String(), "", token, len(states))
}

// StatesFailed records the failure and raises an alert. The states stay
// unset; there is no retry.
func (c *Controller) StatesFailed(token uint64, err error) {
	if token != c.statesToken {
		logging.LogStaleResponse(FetchStates.String(), "", token, c.statesToken)
		return
	}
	fetchErr := &FetchError{Kind: FetchStates, Err: err}
	logging.LogFetchFailed(FetchStates.String(), "", token, err)
	c.statesFailed = true
	c.alert = &Alert{Title: StatesAlertTitle, Detail: detailFor(err), Err: fetchErr}
}

// StatesReady reports whether the list of states has been loaded.
func (c *Controller) StatesReady() bool {
	return c.states != nil
}

// StatesFailedToLoad reports whether the states request failed.
func (c *Controller) StatesFailedToLoad() bool {
	return c.statesFailed
}

// SortedStates returns the states ordered by name. It is recomputed on
// every call and returns nil before the states are loaded.
func (c *Controller) SortedStates() []catalog.State {
	if c.states == nil {
		return nil
	}
	return catalog.SortStates(c.states, c.locale)
}

// SelectState changes the selection. An empty code clears it. The active
// result is discarded and any in-flight request becomes stale; the filter
// text is kept.
func (c *Controller) SelectState(code string) {
	c.selected = code
	c.active = nil
	c.activeSet = false
	c.loading = false
	c.failed = false
	c.nextToken()
}

// SelectedState returns the selected state code, empty when none.
func (c *Controller) SelectedState() string {
	return c.selected
}

// ConfirmSelection shows the cities of the selected state. On a cache hit
// they are exposed at once and false is returned. On a miss the controller
// enters the loading phase and returns the request to perform. Without a
// selection nothing happens.
func (c *Controller) ConfirmSelection() (Request, bool) {
	if c.selected == PlaceholderCode {
		return Request{}, false
	}

	if cities, ok := c.cache.Get(c.selected); ok {
		logging.LogCacheHit(c.selected, len(cities))
		c.active = cities
		c.activeSet = true
		c.loading = false
		c.failed = false
		c.nextToken()
		return Request{}, false
	}

	c.loading = true
	c.failed = false
	token := c.nextToken()
	logging.LogFetchStarted(FetchCities.String(), c.selected, token)
	return Request{Kind: FetchCities, StateCode: c.selected, Token: token}, true
}

// CitiesLoaded sorts and caches the cities of code. They become the active
// result only if token belongs to the latest request.
func (c *Controller) CitiesLoaded(token uint64, code string, cities []catalog.City) {
	if cities == nil {
		cities = []catalog.City{}
	}
	stored := c.cache.Store(code, catalog.SortCities(cities, c.locale))

	if token != c.generation {
		logging.LogStaleResponse(FetchCities.String(), code, token, c.generation)
		return
	}

	logging.LogFetchFinished(FetchCities.String(), code, token, len(stored))
	c.active = stored
	c.activeSet = true
	c.loading = false
}

// CitiesFailed records a failed cities request. Failures of stale requests,
// including ones canceled because they were superseded, are ignored.
func (c *Controller) CitiesFailed(token uint64, code string, err error) {
	if token != c.generation {
		logging.LogStaleResponse(FetchCities.String(), code, token, c.generation)
		return
	}

	c.loading = false
	c.failed = true
	logging.LogFetchFailed(FetchCities.String(), code, token, err)
	fetchErr := &FetchError{Kind: FetchCities, StateCode: code, Err: err}
	c.alert = &Alert{Title: CitiesAlertTitle, Detail: detailFor(err), Err: fetchErr}
}

// SetFilterText stores the filter text verbatim.
func (c *Controller) SetFilterText(text string) {
	c.filterText = text
}

// FilterText returns the current filter text.
func (c *Controller) FilterText() string {
	return c.filterText
}

// Loading reports whether a cities request for the selection is in flight.
func (c *Controller) Loading() bool {
	return c.loading
}

// ActiveCities returns the displayed city list, nil when there is none.
func (c *Controller) ActiveCities() []catalog.City {
	if !c.activeSet {
		return nil
	}
	return c.active
}

// CitiesForSelection returns the cached entry for the selected state.
func (c *Controller) CitiesForSelection() ([]catalog.City, bool) {
	if c.selected == PlaceholderCode {
		return nil, false
	}
	return c.cache.Get(c.selected)
}

// Phase returns the position in the selection cycle.
func (c *Controller) Phase() Phase {
	switch {
	case c.selected == PlaceholderCode:
		return PhaseIdle
	case c.loading:
		return PhaseLoading
	case c.activeSet:
		return PhaseReady
	case c.failed:
		return PhaseFailed
	default:
		return PhaseSelected
	}
}

// Alert returns the pending notification, nil when there is none.
func (c *Controller) Alert() *Alert {
	return c.alert
}

// DismissAlert clears the pending notification.
func (c *Controller) DismissAlert() {
	c.alert = nil
}

// Snapshot returns the inputs of the renderer.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Loading:           c.loading,
		SelectedStateCode: c.selected,
		ActiveCities:      c.ActiveCities(),
		FilterText:        c.filterText,
	}
}

// detailFor returns the user-facing explanation of err.
func detailFor(err error) string {
	var svcErr *ibge.ServiceError
	if errors.As(err, &svcErr) {
		return ibge.GetShortErrorMessage(svcErr)
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
