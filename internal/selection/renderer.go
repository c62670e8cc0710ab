package selection

import (
	"fmt"

	"github.com/muurk/cidades/internal/catalog"
)

// Snapshot holds everything the renderer needs.
type Snapshot struct {
	Loading           bool
	SelectedStateCode string
	ActiveCities      []catalog.City
	FilterText        string
}

// ViewKind selects which of the three views is shown.
type ViewKind int

const (
	// ViewEmpty prompts the user to select a state and confirm
	ViewEmpty ViewKind = iota
	// ViewLoading shows that cities for a state are being fetched
	ViewLoading
	// ViewTable shows the city table
	ViewTable
)

// UI text
const (
	PlaceholderLabel   = "Selecione um estado"
	EmptyPrompt        = "Selecione um estado e clique em OK"
	StatesPlaceholder  = "Carregando estados..."
	FilterPlaceholder  = "Filtrar por..."
	NameHeader         = "Nome"
	MicroregionHeader  = "Microrregião"
	loadingMessageForm = "Carregando: %s"
)

// View is the derived presentation of a Snapshot.
type View struct {
	Kind    ViewKind
	Message string         // loading or empty-state text
	Headers []string       // table headers, ViewTable only
	Rows    []catalog.City // filtered rows, ViewTable only
	Total   int            // rows before filtering, ViewTable only
}

// Render derives the view from a snapshot. It is a pure function.
func Render(s Snapshot) View {
	if s.Loading {
		return View{Kind: ViewLoading, Message: fmt.Sprintf(loadingMessageForm, s.SelectedStateCode)}
	}

	if len(s.ActiveCities) == 0 {
		return View{Kind: ViewEmpty, Message: EmptyPrompt}
	}

	return View{
		Kind:    ViewTable,
		Headers: []string{NameHeader, MicroregionHeader},
		Rows:    catalog.FilterCities(s.ActiveCities, s.FilterText),
		Total:   len(s.ActiveCities),
	}
}

// ShowFilter reports whether the filter input is visible: only once a
// non-empty result is active for the current selection.
func ShowFilter(s Snapshot) bool {
	return s.SelectedStateCode != PlaceholderCode && !s.Loading && len(s.ActiveCities) > 0
}

// CanConfirm reports whether the confirm action is enabled.
func CanConfirm(s Snapshot) bool {
	return s.SelectedStateCode != PlaceholderCode
}

// Option is one entry of the state dropdown.
type Option struct {
	Code  string
	Label string
}

// StateOptions builds the dropdown entries: the placeholder followed by
// one "{UF} - {Name}" option per state, in the given order.
func StateOptions(states []catalog.State) []Option {
	options := make([]Option, 0, len(states)+1)
	options = append(options, Option{Code: PlaceholderCode, Label: PlaceholderLabel})
	for _, s := range states {
		options = append(options, Option{Code: s.Code, Label: s.Label()})
	}
	return options
}
