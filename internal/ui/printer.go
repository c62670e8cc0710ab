package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/cidades/internal/catalog"
)

// Printer writes UI components to an output stream. Commands use it for
// everything they print so tests can capture the output.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used. The width follows the terminal when w
// is one, and falls back to MinTerminalWidth otherwise.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	width := MinTerminalWidth
	if f, ok := w.(*os.File); ok && IsTerminal(f) {
		width = clampWidth(terminalWidth(f))
	}
	return &Printer{
		out:   w,
		width: width,
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = clampWidth(width)
	return p
}

// Writer returns the underlying output stream
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(NewFailureResult(title, err, troubleshooting).SetWidth(p.width).Render())
}

// PrintStates prints the states table
func (p *Printer) PrintStates(states []catalog.State) {
	p.Println(RenderStatesTable(states, p.width))
}

// PrintCities prints the cities table
func (p *Printer) PrintCities(cities []catalog.City, total int) {
	p.Println(RenderCitiesTable(cities, total, p.width))
}
