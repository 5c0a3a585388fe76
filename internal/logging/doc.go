// Package logging assembles structured slog loggers and formatting helpers used
// across namekey.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes context-aware helpers so store and import code can tag log lines
// with a correlation ID. A no-op logger is provided for tests and wiring code
// that cannot fail.
package logging
