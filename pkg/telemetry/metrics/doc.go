// Package metrics provides Prometheus metrics for the export pipeline.
//
// Metrics are optional: the pipeline records them only when a collector is
// attached, and the CLI serves them over HTTP only in watch mode.
//
// # Usage
//
//	m := metrics.NewExportMetrics("sqlscribe", nil)
//	runner.Metrics = m
//
//	http.Handle("/metrics", m.Handler())
package metrics
