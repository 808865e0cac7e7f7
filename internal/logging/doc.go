// Package logging assembles the structured slog loggers used by the galerija
// CLI and its internal packages.
//
// It owns the console and JSON handlers, routes output to the terminal and to
// a size-rotated log file, tags every record of one CLI invocation with a
// session_id, and defines the standard attribute keys (component, event_type,
// error_hint, impact) so warnings read the same everywhere. NewNop supplies a
// discard logger for tests and optional wiring.
package logging
