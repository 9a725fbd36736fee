package providers

import (
	"laleme/internal/structures"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useFreshRegistry(t *testing.T) {
	t.Helper()
	reg := prometheus.NewRegistry()
	prevRegisterer, prevGatherer := prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prevRegisterer
		prometheus.DefaultGatherer = prevGatherer
	})
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	m.IncRequestsTotal("GET /records", 200)
	m.ObserveRequestDuration("GET /records", time.Millisecond)
	m.IncCacheHits("heatmap")
	m.IncCacheMisses("heatmap")
	m.ObservePersistenceDuration("laleme-records", time.Millisecond)
	m.IncPersistenceFailures("laleme-records")
	m.SetRecordsTotal(10)
	m.IncBackupsTotal(true)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	useFreshRegistry(t)

	m := NewMetricsProvider(&structures.Config{Metrics: structures.MetricsConfig{Enabled: true}})
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_Counters(t *testing.T) {
	useFreshRegistry(t)

	m := NewMetricsProvider(&structures.Config{Metrics: structures.MetricsConfig{Enabled: true}})
	mp, ok := m.(*MetricsProvider)
	require.True(t, ok)

	m.IncRequestsTotal("GET /records", 200)
	m.IncRequestsTotal("GET /records", 201)
	m.IncRequestsTotal("GET /records", 404)
	m.ObserveRequestDuration("GET /records", 5*time.Millisecond)
	m.IncCacheHits("heatmap")
	m.IncCacheMisses("ranking")
	m.ObservePersistenceDuration("laleme-records", 100*time.Millisecond)
	m.IncPersistenceFailures("laleme-profile")
	m.SetRecordsTotal(42)
	m.IncBackupsTotal(true)
	m.IncBackupsTotal(false)

	assert.Equal(t, 2.0, promtest.ToFloat64(mp.requestsTotal.WithLabelValues("GET /records", "2xx")))
	assert.Equal(t, 1.0, promtest.ToFloat64(mp.requestsTotal.WithLabelValues("GET /records", "4xx")))
	assert.Equal(t, 1.0, promtest.ToFloat64(mp.cacheHits.WithLabelValues("heatmap")))
	assert.Equal(t, 1.0, promtest.ToFloat64(mp.cacheMisses.WithLabelValues("ranking")))
	assert.Equal(t, 1.0, promtest.ToFloat64(mp.persistenceFailures.WithLabelValues("laleme-profile")))
	assert.Equal(t, 42.0, promtest.ToFloat64(mp.recordsTotal))
	assert.Equal(t, 1.0, promtest.ToFloat64(mp.backupsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, promtest.ToFloat64(mp.backupsTotal.WithLabelValues("failed")))
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
