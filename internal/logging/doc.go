// Package logging assembles structured slog loggers and formatting helpers.
//
// It owns the console handler used for human-readable diagnostics, wires the
// JSON alternative, and exposes context-aware helpers so pipeline code can
// automatically tag log lines with the batch run ID. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Diagnostics always go to stderr; the per-file status lines users read are
// written by the reporter on stdout and never pass through here.
package logging
