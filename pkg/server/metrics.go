package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "htmlc").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for compile duration.
	// Default: prometheus.DefBuckets
	Buckets []float64
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "htmlc",
		Buckets:   prometheus.DefBuckets,
	}
}

// metrics holds the server's Prometheus collectors.
type metrics struct {
	compilesTotal   *prometheus.CounterVec
	compileDuration prometheus.Histogram
	compileErrors   *prometheus.CounterVec
	outputBytes     prometheus.Histogram
	wsConnections   prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, config MetricsConfig) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		compilesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "compiles_total",
			Help:        "Total number of documents compiled",
			ConstLabels: config.ConstLabels,
		}, []string{"source", "status"}),

		compileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "compile_duration_seconds",
			Help:        "Time spent decoding and compiling a document",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		compileErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "compile_errors_total",
			Help:        "Rejected documents by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		outputBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "output_bytes",
			Help:        "Size of compiled markup in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(64, 4, 8), // 64B to 1MB
		}),

		wsConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "ws_connections",
			Help:        "Open websocket connections",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// newRegistry returns a registry with the Go and process collectors.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (m *metrics) observe(source string, seconds float64, size int, code string) {
	m.compileDuration.Observe(seconds)
	if code != "" {
		m.compilesTotal.WithLabelValues(source, "error").Inc()
		m.compileErrors.WithLabelValues(code).Inc()
		return
	}
	m.compilesTotal.WithLabelValues(source, "ok").Inc()
	m.outputBytes.Observe(float64(size))
}
