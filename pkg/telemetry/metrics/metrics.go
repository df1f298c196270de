package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ExportMetrics tracks per-item export outcomes.
//
// Metrics:
//   - sqlscribe_exports_total: items processed, by object kind and status
//   - sqlscribe_export_duration_seconds: per-item duration histogram
//   - sqlscribe_export_bytes_total: encoded bytes written to files
//   - sqlscribe_batch_size: size of the most recent batch
type ExportMetrics struct {
	registry *prometheus.Registry

	exportsTotal   *prometheus.CounterVec
	exportDuration *prometheus.HistogramVec
	bytesTotal     prometheus.Counter
	batchSize      prometheus.Gauge
}

// NewExportMetrics creates and registers export metrics with the provided
// registry. If registry is nil, a new registry is created.
func NewExportMetrics(namespace string, registry *prometheus.Registry) *ExportMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if namespace == "" {
		namespace = "sqlscribe"
	}

	m := &ExportMetrics{
		registry: registry,

		exportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "Total number of objects processed by the export pipeline",
			},
			[]string{"kind", "status"},
		),

		exportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "export_duration_seconds",
				Help:      "Duration of per-object export processing in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"kind"},
		),

		bytesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "export_bytes_total",
				Help:      "Total encoded bytes written to script files",
			},
		),

		batchSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "batch_size",
				Help:      "Number of objects in the most recent export batch",
			},
		),
	}

	registry.MustRegister(m.exportsTotal, m.exportDuration, m.bytesTotal, m.batchSize)

	return m
}

// RecordItem records the outcome of one processed object.
func (m *ExportMetrics) RecordItem(kind, status string, duration time.Duration, bytes int64) {
	m.exportsTotal.WithLabelValues(kind, status).Inc()
	m.exportDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if bytes > 0 {
		m.bytesTotal.Add(float64(bytes))
	}
}

// RecordBatch records the size of a starting batch.
func (m *ExportMetrics) RecordBatch(size int) {
	m.batchSize.Set(float64(size))
}

// Registry returns the Prometheus registry holding these collectors.
func (m *ExportMetrics) Registry() *prometheus.Registry {
	return m.registry
}
