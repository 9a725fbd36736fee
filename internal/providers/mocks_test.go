package providers

import (
	"sync"
	"time"
)

// local mocks; testutil imports this package

type testLogger struct {
	mu    sync.Mutex
	infos int
	warns int
}

func (m *testLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Warnf(_ TypeEnum, _ string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns++
}
func (m *testLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Infof(_ TypeEnum, _ string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos++
}
func (m *testLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *testLogger) Close()                                        {}

type testMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            map[string]int
	misses          map[string]int
}

func newTestMetrics() *testMetrics {
	return &testMetrics{hits: map[string]int{}, misses: map[string]int{}}
}

func (m *testMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *testMetrics) ObserveRequestDuration(_ string, _ time.Duration)     { m.durationCalls++ }
func (m *testMetrics) IncCacheHits(view string)                             { m.hits[view]++ }
func (m *testMetrics) IncCacheMisses(view string)                           { m.misses[view]++ }
func (m *testMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (m *testMetrics) IncPersistenceFailures(_ string)                      {}
func (m *testMetrics) SetRecordsTotal(_ int)                                {}
func (m *testMetrics) IncBackupsTotal(_ bool)                               {}
