// Package ui renders the styled output of the non-interactive cidades
// commands.
//
// Unlike the full-screen interface in internal/tui, these components
// follow a "print once and exit" pattern. Everything is plain lipgloss
// rendering written through a Printer, so output can be captured in tests
// or piped.
//
// # Components
//
//   - Header: command banner showing what was queried
//   - Result: success or failure boxes, the latter with troubleshooting tips
//   - Tables: states and cities rendered with lipgloss/table
//
// Widths follow the terminal (golang.org/x/term) and are clamped to
// [MinTerminalWidth, MaxContentWidth]; non-terminal writers use
// MinTerminalWidth.
//
// # Logging Integration
//
// Logging is controlled by CIDADES_LOG_LEVEL. When unset, zap logging is
// silent so the curated output is displayed cleanly.
package ui
