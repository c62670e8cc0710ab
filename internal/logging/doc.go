// Package logging provides structured diagnostic logging for cidades.
//
// This package wraps a zap logger with convenience functions for the few
// events worth recording: requests to the geography service, their
// outcome, cache hits and discarded stale responses.
//
// # Log Levels
//
//   - Debug: HTTP status and timing, cache hits, stale responses
//   - Info: fetch start and completion
//   - Error: failed fetches (the user also sees an alert)
//
// # Configuration
//
// Logging is silent unless a level is given:
//
//	if err := logging.Initialize("debug", "/tmp/cidades.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Empty arguments fall back to CIDADES_LOG_LEVEL and CIDADES_LOG_FILE.
// The interactive UI takes over the terminal, so a log file should be used
// there; files are written as JSON, stderr output uses the console encoder.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once initialized.
package logging
