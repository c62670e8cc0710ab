package tui

import "github.com/charmbracelet/bubbles/key"

// selectorKeyMap defines key bindings while the state selector has focus
type selectorKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Open    key.Binding
	Confirm key.Binding
	Filter  key.Binding
	Table   key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k selectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Open, k.Confirm, k.Filter, k.Table, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k selectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Open},
		{k.Confirm, k.Filter, k.Table, k.Quit},
	}
}

// tableKeyMap defines key bindings while the city table has focus
type tableKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Back   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k tableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k tableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Filter, k.Back}}
}

// inputKeyMap defines key bindings while typing in the filter
type inputKeyMap struct {
	Done key.Binding
	Back key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Done, k.Back}}
}

// modalKeyMap defines key bindings for the picker and the alert
type modalKeyMap struct {
	Choose  key.Binding
	Dismiss key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Dismiss}
}

// FullHelp returns keybindings for the expanded help view
func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Choose, k.Dismiss}}
}

type keyMap struct {
	Selector  selectorKeyMap
	Table     tableKeyMap
	Input     inputKeyMap
	Picker    modalKeyMap
	Alert     modalKeyMap
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Selector: selectorKeyMap{
			Prev: key.NewBinding(
				key.WithKeys("left", "h", "up", "k"),
				key.WithHelp("←/h", "estado anterior"),
			),
			Next: key.NewBinding(
				key.WithKeys("right", "l", "down", "j"),
				key.WithHelp("→/l", "próximo estado"),
			),
			Open: key.NewBinding(
				key.WithKeys(" ", "space"),
				key.WithHelp("espaço", "lista de estados"),
			),
			Confirm: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "OK"),
			),
			Filter: key.NewBinding(
				key.WithKeys("/"),
				key.WithHelp("/", "filtrar"),
			),
			Table: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", "tabela"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("q", "sair"),
			),
		},
		Table: tableKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "subir"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "descer"),
			),
			Filter: key.NewBinding(
				key.WithKeys("/"),
				key.WithHelp("/", "filtrar"),
			),
			Back: key.NewBinding(
				key.WithKeys("tab", "esc"),
				key.WithHelp("tab/esc", "voltar"),
			),
		},
		Input: inputKeyMap{
			Done: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "aplicar"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc", "tab"),
				key.WithHelp("esc", "voltar"),
			),
		},
		Picker: modalKeyMap{
			Choose: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "selecionar"),
			),
			Dismiss: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "fechar"),
			),
		},
		Alert: modalKeyMap{
			Choose: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "ok"),
			),
			Dismiss: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "fechar"),
			),
		},
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
