// Package telemetry provides observability for sqlscribe.
//
// The metrics subpackage exposes Prometheus collectors for the export
// pipeline (items processed, durations, bytes written, batch size) and an
// HTTP handler for the /metrics endpoint served in watch mode. Structured
// logging uses log/slog directly; each component derives its logger with
// slog.Default().With("component", ...).
package telemetry
