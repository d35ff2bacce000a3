// Package logging provides structured logging utilities shared by the
// relctl commands.
//
// It wraps the standard library slog package with tool-specific defaults:
// JSON output to stderr, automatic module and version context on every
// record, and source location tracking when debug level is enabled.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("relctl", version)
//
//	    slog.Info("resolving latest tag", "remote", "origin")
//	    slog.Error("push failed", "error", err)
//	}
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is passed:
//
//	LOG_LEVEL=debug relctl minor
//
// Supported levels (case-insensitive): debug, info, warn/warning, error.
// If LOG_LEVEL is not set, defaults to info.
package logging
