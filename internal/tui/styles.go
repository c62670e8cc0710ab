package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cidades/internal/version"
)

// Application branding constants
const (
	AppName   = "CIDADES DO BRASIL"
	SourceURL = "servicodados.ibge.gov.br"
)

// Layout constants
const (
	DefaultWidth  = 80 // Used until the first tea.WindowSizeMsg arrives
	DefaultHeight = 24
	MinTableWidth = 40
	chromeHeight  = 12 // header, selector row, footer and borders
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	ErrorColor     = lipgloss.Color("#FF5555") // Red
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green
)

var (
	// SubtitleStyle is used for prompts and counters
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// SpinnerStyle colors the loading spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// DropdownStyle frames the state selector
	DropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	// FocusedDropdownStyle frames the selector while it has focus
	FocusedDropdownStyle = DropdownStyle.
				BorderForeground(HighlightColor)

	// ButtonStyle is the enabled confirm button
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2).
			MarginLeft(1)

	// DisabledButtonStyle is the confirm button without a selection
	DisabledButtonStyle = ButtonStyle.
				Foreground(SubtleColor).
				Background(lipgloss.Color("236")).
				Bold(false)

	// FilterStyle frames the filter input
	FilterStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1).
			MarginLeft(1)

	// FocusedFilterStyle frames the filter input while typing
	FocusedFilterStyle = FilterStyle.
				BorderForeground(HighlightColor)

	// PlaceholderStyle is the full-screen text shown before states load
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Bold(true)

	// AlertStyle is the blocking error notification
	AlertStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(1, 2)

	// PickerStyle frames the state picker overlay
	PickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// BuildHeaderContent creates header content with app name and data source
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(SourceURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps screen content with the application
// header and a footer holding the help line, filling the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Foreground(SubtleColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(footerText),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// RenderModal centers modal content over a dimmed background. Used for
// the blocking alert and the state picker.
func RenderModal(modalContent string, terminalWidth int, terminalHeight int) string {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// SafeModalWidth returns requestedWidth bounded by the terminal width
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 30 {
		maxWidth = 30
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}
