package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cidades/internal/catalog"
	"github.com/muurk/cidades/internal/selection"
)

// Service is the geography service the UI reads from.
type Service interface {
	FetchStates(ctx context.Context) ([]catalog.State, error)
	FetchCities(ctx context.Context, code string) ([]catalog.City, error)
}

// Messages for async operations
type statesLoadedMsg struct {
	req    selection.Request
	states []catalog.State
	err    error
}

type citiesLoadedMsg struct {
	req    selection.Request
	cities []catalog.City
	err    error
}

// focusArea is the widget receiving key presses
type focusArea int

const (
	focusSelector focusArea = iota
	focusFilter
	focusTable
)

// optionItem wraps a dropdown option for use with bubbles/list
type optionItem struct {
	option selection.Option
}

func (i optionItem) Title() string       { return i.option.Label }
func (i optionItem) Description() string { return "" }
func (i optionItem) FilterValue() string { return i.option.Label }

// Model is the root Bubble Tea model. It owns the selection controller for
// the lifetime of the program.
type Model struct {
	ctx     context.Context
	service Service
	ctrl    *selection.Controller

	statesReq    selection.Request
	pending      selection.Request // latest cities request, zero when none
	cancelCities context.CancelFunc

	options     []selection.Option
	optionIndex int
	pickerOpen  bool
	focus       focusArea

	// Widgets
	Picker  list.Model
	Filter  textinput.Model
	Table   table.Model
	Spinner spinner.Model
	Help    help.Model
	keys    keyMap

	// UI state
	Width  int
	Height int
}

// NewModel creates the root model. The controller is initialized here so
// the states request is known before the program starts.
func NewModel(ctx context.Context, service Service, ctrl *selection.Controller) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	filter := textinput.New()
	filter.Placeholder = selection.FilterPlaceholder
	filter.Prompt = "🔍 "
	filter.CharLimit = 64
	filter.Width = 24
	filter.SetValue(ctrl.FilterText())

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	picker := list.New([]list.Item{}, delegate, 0, 0)
	picker.Title = selection.PlaceholderLabel
	picker.SetShowStatusBar(false)
	picker.SetShowHelp(false)
	picker.SetFilteringEnabled(true)
	picker.Filter = normalizedFilter
	picker.Styles.Title = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)

	t := table.New(
		table.WithColumns(tableColumns(DefaultWidth)),
		table.WithHeight(tableHeight(DefaultHeight)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(SubtleColor).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(TextColor).
		Background(PrimaryColor)
	t.SetStyles(styles)

	m := Model{
		ctx:       ctx,
		service:   service,
		ctrl:      ctrl,
		statesReq: ctrl.Initialize(),
		options:   selection.StateOptions(nil),
		Picker:    picker,
		Filter:    filter,
		Table:     t,
		Spinner:   s,
		Help:      help.New(),
		keys:      newKeyMap(),
	}
	return m
}

// Controller returns the selection controller driven by the model.
func (m Model) Controller() *selection.Controller {
	return m.ctrl
}

// Init starts the states request
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchStatesCmd(m.ctx, m.service, m.statesReq),
		m.Spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case statesLoadedMsg:
		if msg.err != nil {
			m.ctrl.StatesFailed(msg.req.Token, msg.err)
			return m, nil
		}
		m.ctrl.StatesLoaded(msg.req.Token, msg.states)
		m.setOptions(selection.StateOptions(m.ctrl.SortedStates()))
		return m, nil

	case citiesLoadedMsg:
		if msg.err != nil {
			m.ctrl.CitiesFailed(msg.req.Token, msg.req.StateCode, msg.err)
		} else {
			m.ctrl.CitiesLoaded(msg.req.Token, msg.req.StateCode, msg.cities)
		}
		if msg.req == m.pending {
			m.pending = selection.Request{}
			m.cancelCities = nil
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.cancelInFlight()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses to the active layer: alert, picker, then
// the focused widget
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Alert() != nil {
		if key.Matches(msg, m.keys.Alert.Choose, m.keys.Alert.Dismiss) {
			m.ctrl.DismissAlert()
		}
		return m, nil
	}

	if !m.ctrl.StatesReady() {
		if key.Matches(msg, m.keys.Selector.Quit) {
			m.cancelInFlight()
			return m, tea.Quit
		}
		return m, nil
	}

	if m.pickerOpen {
		return m.updatePicker(msg)
	}

	switch m.focus {
	case focusFilter:
		return m.updateFilter(msg)
	case focusTable:
		return m.updateTable(msg)
	default:
		return m.updateSelector(msg)
	}
}

// updateSelector handles keys while the dropdown has focus
func (m Model) updateSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.Selector
	switch {
	case key.Matches(msg, k.Quit):
		m.cancelInFlight()
		return m, tea.Quit

	case key.Matches(msg, k.Prev):
		if m.optionIndex > 0 {
			m.selectOption(m.optionIndex - 1)
		}

	case key.Matches(msg, k.Next):
		if m.optionIndex < len(m.options)-1 {
			m.selectOption(m.optionIndex + 1)
		}

	case key.Matches(msg, k.Open):
		m.pickerOpen = true
		m.Picker.ResetFilter()
		m.Picker.Select(m.optionIndex)

	case key.Matches(msg, k.Confirm):
		return m.confirm()

	case key.Matches(msg, k.Filter):
		if selection.ShowFilter(m.ctrl.Snapshot()) {
			m.focus = focusFilter
			return m, m.Filter.Focus()
		}

	case key.Matches(msg, k.Table):
		if selection.Render(m.ctrl.Snapshot()).Kind == selection.ViewTable {
			m.focus = focusTable
			m.Table.Focus()
		}
	}
	return m, nil
}

// updatePicker handles keys while the state list is open
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the user types a list filter, every key belongs to the list
	if m.Picker.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Picker.Dismiss):
			if m.Picker.FilterState() == list.FilterApplied {
				m.Picker.ResetFilter()
				return m, nil
			}
			m.pickerOpen = false
			return m, nil

		case key.Matches(msg, m.keys.Picker.Choose):
			if item, ok := m.Picker.SelectedItem().(optionItem); ok {
				// Choosing the current state is not a change
				if i := m.indexOf(item.option.Code); i != m.optionIndex {
					m.selectOption(i)
				}
			}
			m.pickerOpen = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Picker, cmd = m.Picker.Update(msg)
	return m, cmd
}

// updateFilter handles keys while typing in the filter input
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Input.Done, m.keys.Input.Back) {
		m.Filter.Blur()
		m.focus = focusSelector
		return m, nil
	}

	var cmd tea.Cmd
	m.Filter, cmd = m.Filter.Update(msg)
	m.ctrl.SetFilterText(m.Filter.Value())
	m.refresh()
	return m, cmd
}

// updateTable handles keys while the table has focus
func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Table.Back):
		m.Table.Blur()
		m.focus = focusSelector
		return m, nil

	case key.Matches(msg, m.keys.Table.Filter):
		m.Table.Blur()
		m.focus = focusFilter
		return m, m.Filter.Focus()
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// selectOption makes options[i] the current selection
func (m *Model) selectOption(i int) {
	if i < 0 || i >= len(m.options) {
		return
	}
	m.optionIndex = i
	m.cancelInFlight()
	m.ctrl.SelectState(m.options[i].Code)
	m.refresh()
}

// confirm runs the OK action for the current selection
func (m Model) confirm() (tea.Model, tea.Cmd) {
	if !selection.CanConfirm(m.ctrl.Snapshot()) {
		return m, nil
	}

	req, ok := m.ctrl.ConfirmSelection()
	if !ok {
		// Served from cache
		m.cancelInFlight()
		m.refresh()
		return m, nil
	}

	m.cancelInFlight()
	ctx, cancel := context.WithCancel(m.ctx)
	m.pending = req
	m.cancelCities = cancel
	m.refresh()

	return m, tea.Batch(
		fetchCitiesCmd(ctx, m.service, req),
		m.Spinner.Tick,
	)
}

// cancelInFlight cancels the outstanding cities request, if any. Its
// response then arrives as a stale failure and is discarded.
func (m *Model) cancelInFlight() {
	if m.cancelCities != nil {
		m.cancelCities()
		m.cancelCities = nil
	}
	m.pending = selection.Request{}
}

// refresh syncs widgets with the controller state
func (m *Model) refresh() {
	snapshot := m.ctrl.Snapshot()
	view := selection.Render(snapshot)

	rows := make([]table.Row, 0, len(view.Rows))
	for _, city := range view.Rows {
		rows = append(rows, table.Row{city.Name, city.MicroregionName})
	}
	m.Table.SetRows(rows)
	if len(rows) > 0 && (m.Table.Cursor() < 0 || m.Table.Cursor() >= len(rows)) {
		m.Table.SetCursor(0)
	}

	if !selection.ShowFilter(snapshot) && m.focus == focusFilter {
		m.Filter.Blur()
		m.focus = focusSelector
	}
	if view.Kind != selection.ViewTable && m.focus == focusTable {
		m.Table.Blur()
		m.focus = focusSelector
	}
}

// setOptions replaces the dropdown entries
func (m *Model) setOptions(options []selection.Option) {
	m.options = options
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = optionItem{option: o}
	}
	m.Picker.SetItems(items)
	m.optionIndex = m.indexOf(m.ctrl.SelectedState())
}

func (m Model) indexOf(code string) int {
	for i, o := range m.options {
		if o.Code == code {
			return i
		}
	}
	return 0
}

// resize adapts widget sizes to the terminal
func (m *Model) resize() {
	m.Table.SetColumns(tableColumns(m.Width))
	m.Table.SetHeight(tableHeight(m.Height))
	m.Picker.SetSize(SafeModalWidth(48, m.Width)-4, m.Height-8)
	m.Help.Width = m.Width
}

func tableColumns(width int) []table.Column {
	usable := width - 10
	if usable < MinTableWidth {
		usable = MinTableWidth
	}
	nameWidth := usable * 55 / 100
	return []table.Column{
		{Title: selection.NameHeader, Width: nameWidth},
		{Title: selection.MicroregionHeader, Width: usable - nameWidth},
	}
}

func tableHeight(height int) int {
	h := height - chromeHeight
	if h < 5 {
		h = 5
	}
	return h
}

// normalizedFilter matches picker entries the same way the city filter
// does: substring, ignoring case and accents
func normalizedFilter(term string, targets []string) []list.Rank {
	ranks := make([]list.Rank, 0, len(targets))
	for i, target := range targets {
		if catalog.MatchesName(target, term) {
			ranks = append(ranks, list.Rank{Index: i})
		}
	}
	return ranks
}

// View renders the current screen
func (m Model) View() string {
	if alert := m.ctrl.Alert(); alert != nil {
		return RenderModal(m.renderAlert(alert), m.Width, m.Height)
	}

	if m.pickerOpen {
		content := m.Picker.View() + "\n" + m.Help.View(m.keys.Picker)
		return RenderModal(PickerStyle.Render(content), m.Width, m.Height)
	}

	return RenderApplicationContainer(m.buildContent(), m.helpView(), m.Width, m.Height)
}

// buildContent builds the main screen content
func (m Model) buildContent() string {
	if !m.ctrl.StatesReady() {
		text := selection.StatesPlaceholder
		if !m.ctrl.StatesFailedToLoad() {
			text = m.Spinner.View() + " " + text
		}
		return "\n" + PlaceholderStyle.Render(text) + "\n"
	}

	snapshot := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString(m.renderToolbar(snapshot))
	b.WriteString("\n\n")

	view := selection.Render(snapshot)
	switch view.Kind {
	case selection.ViewLoading:
		b.WriteString(SpinnerStyle.Render(m.Spinner.View() + " " + view.Message))
	case selection.ViewEmpty:
		b.WriteString(SubtitleStyle.Render(view.Message))
	case selection.ViewTable:
		b.WriteString(m.Table.View())
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d de %d cidades", len(view.Rows), view.Total)))
	}
	b.WriteString("\n")

	return b.String()
}

// renderToolbar renders the dropdown, the OK button and the filter input
func (m Model) renderToolbar(snapshot selection.Snapshot) string {
	label := selection.PlaceholderLabel
	if m.optionIndex < len(m.options) {
		label = m.options[m.optionIndex].Label
	}

	dropdownStyle := DropdownStyle
	if m.focus == focusSelector {
		dropdownStyle = FocusedDropdownStyle
	}
	parts := []string{dropdownStyle.Render("◀ " + label + " ▶")}

	if selection.CanConfirm(snapshot) {
		parts = append(parts, ButtonStyle.Render("OK"))
	} else {
		parts = append(parts, DisabledButtonStyle.Render("OK"))
	}

	if selection.ShowFilter(snapshot) {
		filterStyle := FilterStyle
		if m.focus == focusFilter {
			filterStyle = FocusedFilterStyle
		}
		parts = append(parts, filterStyle.Render(m.Filter.View()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// renderAlert renders the blocking notification
func (m Model) renderAlert(alert *selection.Alert) string {
	var b strings.Builder
	b.WriteString("✗ " + alert.Title)
	if alert.Detail != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(TextColor).Bold(false).Render(alert.Detail))
	}
	b.WriteString("\n\n")
	b.WriteString(m.Help.View(m.keys.Alert))

	return AlertStyle.Width(SafeModalWidth(60, m.Width)).Render(b.String())
}

// helpView returns the context-sensitive help line
func (m Model) helpView() string {
	if !m.ctrl.StatesReady() {
		return "q sair"
	}
	switch m.focus {
	case focusFilter:
		return m.Help.View(m.keys.Input)
	case focusTable:
		return m.Help.View(m.keys.Table)
	default:
		return m.Help.View(m.keys.Selector)
	}
}

// fetchStatesCmd performs the states request
func fetchStatesCmd(ctx context.Context, service Service, req selection.Request) tea.Cmd {
	return func() tea.Msg {
		states, err := service.FetchStates(ctx)
		return statesLoadedMsg{req: req, states: states, err: err}
	}
}

// fetchCitiesCmd performs a cities request
func fetchCitiesCmd(ctx context.Context, service Service, req selection.Request) tea.Cmd {
	return func() tea.Msg {
		cities, err := service.FetchCities(ctx, req.StateCode)
		return citiesLoadedMsg{req: req, cities: cities, err: err}
	}
}
