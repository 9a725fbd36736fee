package providers

import (
	"laleme/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(view string)
	IncCacheMisses(view string)
	ObservePersistenceDuration(key string, duration time.Duration)
	IncPersistenceFailures(key string)
	SetRecordsTotal(count int)
	IncBackupsTotal(success bool)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	persistenceDuration *prometheus.HistogramVec
	persistenceFailures *prometheus.CounterVec
	recordsTotal        prometheus.Gauge
	backupsTotal        *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(view string) {
	m.cacheHits.WithLabelValues(view).Inc()
}

func (m *MetricsProvider) IncCacheMisses(view string) {
	m.cacheMisses.WithLabelValues(view).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(key string, duration time.Duration) {
	m.persistenceDuration.WithLabelValues(key).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPersistenceFailures(key string) {
	m.persistenceFailures.WithLabelValues(key).Inc()
}

func (m *MetricsProvider) SetRecordsTotal(count int) {
	m.recordsTotal.Set(float64(count))
}

func (m *MetricsProvider) IncBackupsTotal(success bool) {
	result := "ok"
	if !success {
		result = "failed"
	}
	m.backupsTotal.WithLabelValues(result).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "laleme_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "laleme_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "laleme_cache_hits_total",
			Help: "Total number of cache hits by view",
		}, []string{"view"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "laleme_cache_misses_total",
			Help: "Total number of cache misses by view",
		}, []string{"view"}),

		persistenceDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "laleme_persistence_duration_seconds",
			Help:    "Duration of key-value writes in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"key"}),

		persistenceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "laleme_persistence_failures_total",
			Help: "Number of swallowed key-value write failures",
		}, []string{"key"}),

		recordsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "laleme_records_total",
			Help: "Number of journal records",
		}),

		backupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "laleme_backups_total",
			Help: "Number of backup snapshots by result",
		}, []string{"result"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                     {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)     {}
func (n *noopMetrics) IncCacheHits(_ string)                                {}
func (n *noopMetrics) IncCacheMisses(_ string)                              {}
func (n *noopMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncPersistenceFailures(_ string)                      {}
func (n *noopMetrics) SetRecordsTotal(_ int)                                {}
func (n *noopMetrics) IncBackupsTotal(_ bool)                               {}
