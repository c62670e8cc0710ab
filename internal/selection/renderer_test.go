package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/muurk/cidades/internal/catalog"
)

func TestRender_Loading(t *testing.T) {
	view := Render(Snapshot{Loading: true, SelectedStateCode: "SP", ActiveCities: spCities})

	assert.Equal(t, ViewLoading, view.Kind)
	assert.Equal(t, "Carregando: SP", view.Message)
	assert.Empty(t, view.Rows)
}

func TestRender_Empty(t *testing.T) {
	for _, s := range []Snapshot{
		{},
		{SelectedStateCode: "SP"},
		{SelectedStateCode: "SP", ActiveCities: []catalog.City{}},
	} {
		view := Render(s)
		assert.Equal(t, ViewEmpty, view.Kind)
		assert.Equal(t, EmptyPrompt, view.Message)
	}
}

func TestRender_TableFiltersWithoutResorting(t *testing.T) {
	sorted := catalog.SortCities([]catalog.City{
		{Name: "São Paulo", MicroregionName: "São Paulo"},
		{Name: "Santos", MicroregionName: "Santos"},
		{Name: "Campinas", MicroregionName: "Campinas"},
		{Name: "São Carlos", MicroregionName: "São Carlos"},
	}, language.BrazilianPortuguese)

	view := Render(Snapshot{SelectedStateCode: "SP", ActiveCities: sorted})
	assert.Equal(t, ViewTable, view.Kind)
	assert.Equal(t, []string{"Nome", "Microrregião"}, view.Headers)
	assert.Equal(t, []string{"Campinas", "Santos", "São Carlos", "São Paulo"}, names(view.Rows))
	assert.Equal(t, 4, view.Total)

	view = Render(Snapshot{SelectedStateCode: "SP", ActiveCities: sorted, FilterText: "sao"})
	assert.Equal(t, []string{"São Carlos", "São Paulo"}, names(view.Rows))
	assert.Equal(t, 4, view.Total)
}

func TestRender_AccentedAndPlainQueriesMatch(t *testing.T) {
	cities := []catalog.City{{Name: "São Paulo", MicroregionName: "São Paulo"}}

	for _, q := range []string{"sao", "são"} {
		view := Render(Snapshot{SelectedStateCode: "SP", ActiveCities: cities, FilterText: q})
		assert.Equal(t, []string{"São Paulo"}, names(view.Rows), "query %q", q)
	}
}

func TestRender_VarzeaScenario(t *testing.T) {
	c := newTestController(t)
	c.SelectState("MT")
	req, _ := c.ConfirmSelection()
	c.CitiesLoaded(req.Token, "MT", mtCities)
	c.SetFilterText("varzea")

	view := Render(c.Snapshot())
	assert.Equal(t, ViewTable, view.Kind)
	assert.Equal(t, []catalog.City{{Name: "Várzea Grande", MicroregionName: "Cuiabá"}}, view.Rows)
}

func TestRender_FilterWithNoMatchStillTable(t *testing.T) {
	view := Render(Snapshot{SelectedStateCode: "MT", ActiveCities: mtCities, FilterText: "zzz"})
	assert.Equal(t, ViewTable, view.Kind)
	assert.Empty(t, view.Rows)
}

func TestRender_DoesNotMutateCache(t *testing.T) {
	c := newTestController(t)
	c.SelectState("MT")
	req, _ := c.ConfirmSelection()
	c.CitiesLoaded(req.Token, "MT", mtCities)
	c.SetFilterText("varzea")

	Render(c.Snapshot())

	cached, _ := c.Cache().Get("MT")
	assert.Len(t, cached, 2)
}

func TestShowFilter(t *testing.T) {
	assert.False(t, ShowFilter(Snapshot{}))
	assert.False(t, ShowFilter(Snapshot{SelectedStateCode: "MT"}))
	assert.False(t, ShowFilter(Snapshot{SelectedStateCode: "MT", Loading: true, ActiveCities: mtCities}))
	assert.True(t, ShowFilter(Snapshot{SelectedStateCode: "MT", ActiveCities: mtCities}))
}

func TestCanConfirm(t *testing.T) {
	assert.False(t, CanConfirm(Snapshot{}))
	assert.True(t, CanConfirm(Snapshot{SelectedStateCode: "MT"}))
}

func TestStateOptions(t *testing.T) {
	states := catalog.SortStates([]catalog.State{{Code: "PR", Name: "Paraná"}, {Code: "AC", Name: "Acre"}}, language.BrazilianPortuguese)

	options := StateOptions(states)

	assert.Equal(t, []Option{
		{Code: "", Label: "Selecione um estado"},
		{Code: "AC", Label: "AC - Acre"},
		{Code: "PR", Label: "PR - Paraná"},
	}, options)
}
