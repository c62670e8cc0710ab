package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/cidades/internal/catalog"
)

// Table headers
const (
	CodeHeader        = "UF"
	StateNameHeader   = "Estado"
	CityNameHeader    = "Nome"
	MicroregionHeader = "Microrregião"
)

// newTable returns a lipgloss table with the shared output styling
func newTable(width int, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		Width(width).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
}

// RenderStatesTable renders states as a two-column table
func RenderStatesTable(states []catalog.State, width int) string {
	t := newTable(clampWidth(width), CodeHeader, StateNameHeader)
	for _, s := range states {
		t.Row(s.Code, s.Name)
	}
	footer := TableFooterStyle.Render(fmt.Sprintf("%d estados", len(states)))
	return t.Render() + "\n" + footer
}

// RenderCitiesTable renders the shown cities and a "shown of total" count
func RenderCitiesTable(cities []catalog.City, total int, width int) string {
	t := newTable(clampWidth(width), CityNameHeader, MicroregionHeader)
	for _, c := range cities {
		t.Row(c.Name, c.MicroregionName)
	}
	footer := TableFooterStyle.Render(fmt.Sprintf("%d de %d cidades", len(cities), total))
	return t.Render() + "\n" + footer
}
