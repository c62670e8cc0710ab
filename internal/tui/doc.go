// Package tui implements the full-screen terminal interface for browsing
// Brazilian states and their cities.
//
// The interface is a single Bubble Tea model that owns a
// selection.Controller. Every controller transition happens inside Update;
// network requests run as tea.Cmd goroutines and report back through
// statesLoadedMsg and citiesLoadedMsg, tagged with the request token the
// controller issued.
//
// # Layout
//
// The screen uses a unified container (RenderApplicationContainer) with a
// header, a toolbar row and a context-sensitive help footer:
//   - Toolbar: state dropdown, OK button and, once cities are shown, the
//     filter input
//   - Body: loading spinner, the selection prompt, or the city table
//   - Modals: the state picker and blocking error alerts (RenderModal)
//
// # Framework Components
//
//   - bubbles/list: state picker with accent-insensitive filtering
//   - bubbles/table: city table
//   - bubbles/textinput: city filter
//   - bubbles/spinner: loading indicators
//   - bubbles/help and bubbles/key: key bindings and help line
//   - lipgloss: styling and layout
//
// # Usage Example
//
//	ctrl := selection.NewController(nil, language.BrazilianPortuguese)
//	model := tui.NewModel(ctx, ibge.NewClient(baseURL, timeout), ctrl)
//	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
//	if _, err := p.Run(); err != nil {
//		return err
//	}
package tui
