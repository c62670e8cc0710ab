package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/muurk/cidades/internal/catalog"
	"github.com/muurk/cidades/internal/selection"
)

// fakeService serves canned data and counts city requests
type fakeService struct {
	mu          sync.Mutex
	states      []catalog.State
	statesErr   error
	cities      map[string][]catalog.City
	citiesErr   error
	citiesCalls map[string]int
}

func newFakeService() *fakeService {
	return &fakeService{
		states: []catalog.State{
			{Code: "SP", Name: "São Paulo"},
			{Code: "AC", Name: "Acre"},
			{Code: "PR", Name: "Paraná"},
			{Code: "PA", Name: "Pará"},
			{Code: "PB", Name: "Paraíba"},
		},
		cities: map[string][]catalog.City{
			"AC": {
				{Name: "Rio Branco", MicroregionName: "Rio Branco"},
				{Name: "Acrelândia", MicroregionName: "Rio Branco"},
			},
			"PA": {
				{Name: "Santarém", MicroregionName: "Santarém"},
				{Name: "Belém", MicroregionName: "Belém"},
				{Name: "São Félix do Xingu", MicroregionName: "São Félix do Xingu"},
			},
		},
		citiesCalls: make(map[string]int),
	}
}

func (f *fakeService) FetchStates(ctx context.Context) ([]catalog.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.states, f.statesErr
}

func (f *fakeService) FetchCities(ctx context.Context, code string) ([]catalog.City, error) {
	f.mu.Lock()
	f.citiesCalls[code]++
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.citiesErr != nil {
		return nil, f.citiesErr
	}
	return f.cities[code], nil
}

func (f *fakeService) calls(code string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.citiesCalls[code]
}

// collect runs cmd and flattens batches into the produced messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// deliver feeds the fetch results produced by cmd back into the model
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case statesLoadedMsg, citiesLoadedMsg:
			m, _ = update(t, m, msg)
		}
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func newTestModel(t *testing.T, svc *fakeService) Model {
	t.Helper()
	ctrl := selection.NewController(nil, language.BrazilianPortuguese)
	m := NewModel(context.Background(), svc, ctrl)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func newLoadedModel(t *testing.T, svc *fakeService) Model {
	t.Helper()
	m := newTestModel(t, svc)
	m = deliver(t, m, m.Init())
	require.True(t, m.Controller().StatesReady())
	return m
}

func optionCodes(m Model) []string {
	codes := make([]string, len(m.options))
	for i, o := range m.options {
		codes[i] = o.Code
	}
	return codes
}

func TestModel_PlaceholderUntilStatesLoad(t *testing.T) {
	m := newTestModel(t, newFakeService())

	assert.Contains(t, m.View(), selection.StatesPlaceholder)

	// Keys other than quit do nothing yet
	m, cmd := update(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.False(t, m.Controller().StatesReady())

	m = deliver(t, m, m.Init())
	assert.NotContains(t, m.View(), selection.StatesPlaceholder)
	assert.Contains(t, m.View(), selection.PlaceholderLabel)
}

func TestModel_StateOptionsSortedByName(t *testing.T) {
	m := newLoadedModel(t, newFakeService())

	assert.Equal(t, []string{"", "AC", "PA", "PB", "PR", "SP"}, optionCodes(m))
	assert.Equal(t, "SP - São Paulo", m.options[5].Label)
}

func TestModel_StatesFailureRaisesBlockingAlert(t *testing.T) {
	svc := newFakeService()
	svc.statesErr = errors.New("connection refused")
	m := newTestModel(t, svc)
	m = deliver(t, m, m.Init())

	require.NotNil(t, m.Controller().Alert())
	assert.Contains(t, m.View(), selection.StatesAlertTitle)

	// Input is blocked until the alert is dismissed
	m, cmd := update(t, m, keyRight)
	assert.Nil(t, cmd)
	require.NotNil(t, m.Controller().Alert())

	m, _ = update(t, m, keyEnter)
	assert.Nil(t, m.Controller().Alert())

	// The placeholder stays; there is no retry
	assert.False(t, m.Controller().StatesReady())
	assert.Contains(t, m.View(), selection.StatesPlaceholder)
}

func TestModel_ConfirmWithoutSelectionIsIgnored(t *testing.T) {
	m := newLoadedModel(t, newFakeService())

	m, cmd := update(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, selection.PhaseIdle, m.Controller().Phase())
	assert.Contains(t, m.View(), selection.EmptyPrompt)
}

func TestModel_ConfirmFetchesThenServesFromCache(t *testing.T) {
	svc := newFakeService()
	m := newLoadedModel(t, svc)

	m, _ = update(t, m, keyRight) // AC
	require.Equal(t, "AC", m.Controller().SelectedState())

	m, cmd := update(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, selection.PhaseLoading, m.Controller().Phase())
	assert.Contains(t, m.View(), "Carregando: AC")

	m = deliver(t, m, cmd)
	assert.Equal(t, selection.PhaseReady, m.Controller().Phase())
	assert.Equal(t, 1, svc.calls("AC"))

	rows := m.Table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Acrelândia", rows[0][0])
	assert.Equal(t, "Rio Branco", rows[1][0])
	assert.Contains(t, m.View(), "2 de 2 cidades")

	// Switch away and back: the second confirm is a cache hit
	m, _ = update(t, m, keyRight)
	m, _ = update(t, m, keyLeft)
	require.Equal(t, "AC", m.Controller().SelectedState())
	assert.Empty(t, m.Table.Rows())

	m, cmd = update(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, selection.PhaseReady, m.Controller().Phase())
	assert.Len(t, m.Table.Rows(), 2)
	assert.Equal(t, 1, svc.calls("AC"))
}

func TestModel_SupersededRequestIsCanceledAndIgnored(t *testing.T) {
	svc := newFakeService()
	m := newLoadedModel(t, svc)

	m, _ = update(t, m, keyRight) // AC
	m, first := update(t, m, keyEnter)
	require.NotNil(t, first)

	m, _ = update(t, m, keyRight) // PA
	m, second := update(t, m, keyEnter)
	require.NotNil(t, second)

	// The AC response arrives late, after its context was canceled
	m = deliver(t, m, first)
	assert.Nil(t, m.Controller().Alert())
	assert.True(t, m.Controller().Loading())
	assert.Equal(t, "PA", m.Controller().SelectedState())
	assert.False(t, m.Controller().Cache().Has("AC"))

	m = deliver(t, m, second)
	assert.Equal(t, selection.PhaseReady, m.Controller().Phase())
	rows := m.Table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Belém", rows[0][0])
}

func TestModel_CitiesFailureRaisesBlockingAlert(t *testing.T) {
	svc := newFakeService()
	svc.citiesErr = errors.New("boom")
	m := newLoadedModel(t, svc)

	m, _ = update(t, m, keyRight)
	m, cmd := update(t, m, keyEnter)
	m = deliver(t, m, cmd)

	alert := m.Controller().Alert()
	require.NotNil(t, alert)
	assert.Equal(t, selection.CitiesAlertTitle, alert.Title)
	assert.False(t, m.Controller().Loading())
	assert.Nil(t, m.Controller().ActiveCities())
	assert.Contains(t, m.View(), selection.CitiesAlertTitle)

	// Selector keys are swallowed while the alert is up
	m, _ = update(t, m, keyRight)
	assert.Equal(t, "AC", m.Controller().SelectedState())

	m, _ = update(t, m, keyEsc)
	assert.Nil(t, m.Controller().Alert())
	assert.Equal(t, selection.PhaseFailed, m.Controller().Phase())
}

func TestModel_FilterNarrowsTable(t *testing.T) {
	m := newLoadedModel(t, newFakeService())

	// The filter cannot be focused before a result is shown
	m, _ = update(t, m, keyRunes("/"))
	assert.Equal(t, focusSelector, m.focus)

	m, _ = update(t, m, keyRight)
	m, _ = update(t, m, keyRight) // PA
	m, cmd := update(t, m, keyEnter)
	m = deliver(t, m, cmd)
	require.Len(t, m.Table.Rows(), 3)

	m, _ = update(t, m, keyRunes("/"))
	require.Equal(t, focusFilter, m.focus)
	assert.Empty(t, m.Filter.Value())

	m, _ = update(t, m, keyRunes("SAO"))
	assert.Equal(t, "SAO", m.Controller().FilterText())
	rows := m.Table.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "São Félix do Xingu", rows[0][0])
	assert.Contains(t, m.View(), "1 de 3 cidades")

	m, _ = update(t, m, keyEsc)
	assert.Equal(t, focusSelector, m.focus)
	assert.Equal(t, "SAO", m.Controller().FilterText())

	// Switching state hides the filter but keeps its text
	m, _ = update(t, m, keyLeft)
	assert.False(t, selection.ShowFilter(m.Controller().Snapshot()))
	assert.Equal(t, "SAO", m.Controller().FilterText())
}

func TestModel_TableFocus(t *testing.T) {
	m := newLoadedModel(t, newFakeService())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusSelector, m.focus, "no table to focus yet")

	m, _ = update(t, m, keyRight)
	m, cmd := update(t, m, keyEnter)
	m = deliver(t, m, cmd)

	// The first row is highlighted as soon as the table fills
	assert.Equal(t, 0, m.Table.Cursor())
	require.Len(t, m.Table.SelectedRow(), 2)
	assert.Equal(t, "Acrelândia", m.Table.SelectedRow()[0])

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusTable, m.focus)

	m, _ = update(t, m, keyDown)
	assert.Equal(t, 1, m.Table.Cursor())
	assert.Equal(t, "AC", m.Controller().SelectedState(), "arrows scroll the table, not the selector")

	m, _ = update(t, m, keyEsc)
	assert.Equal(t, focusSelector, m.focus)
}

func TestModel_PickerSelectsState(t *testing.T) {
	m := newLoadedModel(t, newFakeService())

	m, _ = update(t, m, keySpace)
	require.True(t, m.pickerOpen)
	assert.Contains(t, m.View(), "AC - Acre")

	m, _ = update(t, m, keyDown)
	m, _ = update(t, m, keyDown)
	m, _ = update(t, m, keyEnter)

	assert.False(t, m.pickerOpen)
	assert.Equal(t, "PA", m.Controller().SelectedState())
	assert.Equal(t, 2, m.optionIndex)

	m, _ = update(t, m, keySpace)
	m, _ = update(t, m, keyEsc)
	assert.False(t, m.pickerOpen)
	assert.Equal(t, "PA", m.Controller().SelectedState())
}

func TestModel_CursorResetsAfterStateSwitch(t *testing.T) {
	m := newLoadedModel(t, newFakeService())

	m, _ = update(t, m, keyRight) // AC
	m, cmd := update(t, m, keyEnter)
	m = deliver(t, m, cmd)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, keyDown)
	require.Equal(t, 1, m.Table.Cursor())
	m, _ = update(t, m, keyEsc)

	m, _ = update(t, m, keyRight) // PA
	m, cmd = update(t, m, keyEnter)
	m = deliver(t, m, cmd)

	require.Len(t, m.Table.Rows(), 3)
	assert.GreaterOrEqual(t, m.Table.Cursor(), 0)
	assert.Less(t, m.Table.Cursor(), 3)
	assert.NotEmpty(t, m.Table.SelectedRow())
}

func TestModel_PickerKeepsResultWhenChoosingCurrentState(t *testing.T) {
	svc := newFakeService()
	m := newLoadedModel(t, svc)

	m, _ = update(t, m, keyRight) // AC
	m, cmd := update(t, m, keyEnter)
	m = deliver(t, m, cmd)
	require.Len(t, m.Table.Rows(), 2)

	m, _ = update(t, m, keySpace)
	require.True(t, m.pickerOpen)
	m, cmd = update(t, m, keyEnter)
	assert.Nil(t, cmd)

	assert.False(t, m.pickerOpen)
	assert.Equal(t, "AC", m.Controller().SelectedState())
	assert.Equal(t, selection.PhaseReady, m.Controller().Phase())
	assert.Len(t, m.Table.Rows(), 2)
	assert.Equal(t, 1, svc.calls("AC"))
}

func TestModel_QuitCancelsInFlightRequest(t *testing.T) {
	svc := newFakeService()
	m := newLoadedModel(t, svc)

	m, _ = update(t, m, keyRight)
	m, fetch := update(t, m, keyEnter)
	require.NotNil(t, fetch)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	var got citiesLoadedMsg
	for _, msg := range collect(fetch) {
		if loaded, ok := msg.(citiesLoadedMsg); ok {
			got = loaded
		}
	}
	assert.ErrorIs(t, got.err, context.Canceled)
}

func TestNormalizedFilter(t *testing.T) {
	targets := []string{"SP - São Paulo", "AC - Acre", "PA - Pará", "PB - Paraíba"}

	tests := []struct {
		term string
		want []int
	}{
		{"sao", []int{0}},
		{"PARA", []int{2, 3}},
		{"acre", []int{1}},
		{"xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			var got []int
			for _, r := range normalizedFilter(tt.term, targets) {
				got = append(got, r.Index)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableColumns(t *testing.T) {
	cols := tableColumns(100)
	require.Len(t, cols, 2)
	assert.Equal(t, selection.NameHeader, cols[0].Title)
	assert.Equal(t, selection.MicroregionHeader, cols[1].Title)
	assert.Equal(t, 90, cols[0].Width+cols[1].Width)

	narrow := tableColumns(10)
	assert.Equal(t, MinTableWidth, narrow[0].Width+narrow[1].Width)
}
