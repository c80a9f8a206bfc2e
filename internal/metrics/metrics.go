// Package metrics provides Prometheus metrics for docstore
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for docstore
type Metrics struct {
	// gRPC request metrics
	GrpcRequestsTotal    *prometheus.CounterVec
	GrpcRequestDuration  *prometheus.HistogramVec
	GrpcRequestsInFlight prometheus.Gauge

	// Store metrics
	StoreOperationsTotal   *prometheus.CounterVec
	StoreOperationDuration *prometheus.HistogramVec
	DocumentsTotal         prometheus.Gauge
	BundlesTotal           prometheus.Gauge
	JournalsTotal          prometheus.Gauge

	// Engine metrics
	VersionAppendsTotal      prometheus.Counter
	AssetVersionAppendsTotal prometheus.Counter
	VersionQueriesTotal      prometheus.Counter
	TemporalLookupsTotal     prometheus.Counter
	RendersTotal             prometheus.Counter

	// Fetch metrics
	FetchesTotal *prometheus.CounterVec

	// Server metrics
	ServerUptimeSeconds prometheus.Gauge
	ServerStartTime     time.Time
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	// gRPC request metrics
	m.GrpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstore_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "status"},
	)

	m.GrpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docstore_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	m.GrpcRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docstore_grpc_requests_in_flight",
			Help: "Number of gRPC requests currently being processed",
		},
	)

	// Store metrics
	m.StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstore_store_operations_total",
			Help: "Total number of store operations",
		},
		[]string{"operation", "status"},
	)

	m.StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docstore_store_operation_duration_seconds",
			Help:    "Duration of store operations in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	m.DocumentsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docstore_documents_total",
			Help: "Total number of stored document manifests",
		},
	)

	m.BundlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docstore_bundles_total",
			Help: "Total number of stored bundle manifests",
		},
	)

	m.JournalsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docstore_journals_total",
			Help: "Total number of stored journal manifests",
		},
	)

	// Engine metrics
	m.VersionAppendsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docstore_version_appends_total",
			Help: "Total number of document versions appended",
		},
	)

	m.AssetVersionAppendsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docstore_asset_version_appends_total",
			Help: "Total number of asset versions appended",
		},
	)

	m.VersionQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docstore_version_queries_total",
			Help: "Total number of version queries",
		},
	)

	m.TemporalLookupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docstore_temporal_lookups_total",
			Help: "Total number of temporal (point-in-time) queries",
		},
	)

	m.RendersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docstore_renders_total",
			Help: "Total number of document render requests",
		},
	)

	// Fetch metrics
	m.FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstore_fetches_total",
			Help: "Total number of remote content fetches",
		},
		[]string{"outcome"},
	)

	// Server metrics
	m.ServerUptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "docstore_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
	)

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime periodically updates the server uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.ServerUptimeSeconds.Set(time.Since(m.ServerStartTime).Seconds())
	}
}

// RecordGrpcRequest records a gRPC request with its status
func (m *Metrics) RecordGrpcRequest(method string, status string, duration time.Duration) {
	m.GrpcRequestsTotal.WithLabelValues(method, status).Inc()
	m.GrpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordStoreOperation records a store operation
func (m *Metrics) RecordStoreOperation(operation string, status string, duration time.Duration) {
	m.StoreOperationsTotal.WithLabelValues(operation, status).Inc()
	m.StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordFetch records a remote fetch outcome (ok, retryable, non_retryable)
func (m *Metrics) RecordFetch(outcome string) {
	m.FetchesTotal.WithLabelValues(outcome).Inc()
}

// UpdateStoreStats updates stored manifest counts
func (m *Metrics) UpdateStoreStats(documents, bundles, journals int) {
	m.DocumentsTotal.Set(float64(documents))
	m.BundlesTotal.Set(float64(bundles))
	m.JournalsTotal.Set(float64(journals))
}
