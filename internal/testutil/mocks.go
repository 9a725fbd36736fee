package testutil

import (
	"context"
	"errors"
	"laleme/internal/calendar"
	"laleme/internal/models"
	"laleme/internal/providers"
	"laleme/internal/summary"
	"strconv"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockJournalService implements services.JournalServiceInterface in memory.
type MockJournalService struct {
	mu            sync.Mutex
	RecordList    []models.Record
	ProfileData   models.Profile
	SettingsData  models.Settings
	Rev           uint64
	LoadCalls     int
	FlushCalls    int
	FlushErr      error
	AddRecordErr  error
	Now           time.Time
	UpdateProfErr error
}

func (m *MockJournalService) Load() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls++
}

func (m *MockJournalService) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FlushCalls++
	return m.FlushErr
}

func (m *MockJournalService) AddRecord(in *models.RecordInput) (models.Record, error) {
	if err := in.Validate(); err != nil {
		return models.Record{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddRecordErr != nil {
		return models.Record{}, m.AddRecordErr
	}
	ts := m.Now
	if ts.IsZero() {
		ts = time.Now()
	}
	r := in.Build("rec-"+strconv.Itoa(len(m.RecordList)), ts.UnixMilli())
	m.RecordList = append(m.RecordList, r)
	m.Rev++
	return r, nil
}

func (m *MockJournalService) Records() []models.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Record, len(m.RecordList))
	copy(out, m.RecordList)
	return out
}

func (m *MockJournalService) RecordCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RecordList)
}

func (m *MockJournalService) Profile() models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ProfileData.Clone()
}

func (m *MockJournalService) UpdateProfile(u *models.ProfileUpdate) (models.Profile, error) {
	if err := u.Validate(); err != nil {
		return models.Profile{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateProfErr != nil {
		return models.Profile{}, m.UpdateProfErr
	}
	m.ProfileData = u.Apply(m.ProfileData.Clone())
	m.Rev++
	return m.ProfileData.Clone(), nil
}

func (m *MockJournalService) AddFriend(code string) (models.Profile, error) {
	if code == "" {
		return models.Profile{}, errors.New("friend code is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ProfileData.HasFriend(code) {
		m.ProfileData.FriendList = append(m.ProfileData.FriendList, code)
		m.Rev++
	}
	return m.ProfileData.Clone(), nil
}

func (m *MockJournalService) Settings() models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SettingsData
}

func (m *MockJournalService) UpdateSettings(u *models.SettingsUpdate) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := u.Apply(m.SettingsData)
	if err := next.Validate(); err != nil {
		return m.SettingsData, err
	}
	m.SettingsData = next
	m.Rev++
	return next, nil
}

func (m *MockJournalService) Revision() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Rev
}

// MockSummaryService implements services.SummaryServiceInterface with canned
// results and call counters.
type MockSummaryService struct {
	mu            sync.Mutex
	HealthData    summary.HealthSummary
	StatsData     summary.Statistics
	HeatmapData   []summary.HeatDay
	CalendarData  summary.CalendarView
	RankingData   []summary.RankItem
	TodayDay      calendar.Day
	HeatmapCalls  int
	CalendarCalls int
	RankingCalls  int
	LastScope     summary.Scope
	LastPeriod    summary.Period
	LastView      summary.View
	LastAnchor    calendar.Day
	LastToday     calendar.Day
}

func (m *MockSummaryService) Health() summary.HealthSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.HealthData
}

func (m *MockSummaryService) Statistics() summary.Statistics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.StatsData
}

func (m *MockSummaryService) Heatmap(today calendar.Day) []summary.HeatDay {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HeatmapCalls++
	m.LastToday = today
	return m.HeatmapData
}

func (m *MockSummaryService) Calendar(view summary.View, anchor, today calendar.Day) summary.CalendarView {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CalendarCalls++
	m.LastToday = today
	m.LastView = view
	m.LastAnchor = anchor
	return m.CalendarData
}

func (m *MockSummaryService) Ranking(ctx context.Context, scope summary.Scope, period summary.Period) []summary.RankItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RankingCalls++
	m.LastScope = scope
	m.LastPeriod = period
	return m.RankingData
}

func (m *MockSummaryService) Today() calendar.Day {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.TodayDay
}

// MockPeerSource implements services.PeerSourceInterface.
type MockPeerSource struct {
	PeerList []summary.Peer
	Err      error
}

func (m *MockPeerSource) Peers(ctx context.Context) ([]summary.Peer, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.PeerList, nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                  sync.Mutex
	Requests            map[string]int
	CacheHits           map[string]int
	CacheMisses         map[string]int
	PersistenceFailures map[string]int
	RecordsTotal        int
	Backups             map[bool]int
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Requests == nil {
		m.Requests = make(map[string]int)
	}
	m.Requests[endpoint]++
}

func (m *MockMetrics) ObserveRequestDuration(endpoint string, d time.Duration) {}

func (m *MockMetrics) IncCacheHits(view string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CacheHits == nil {
		m.CacheHits = make(map[string]int)
	}
	m.CacheHits[view]++
}

func (m *MockMetrics) IncCacheMisses(view string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CacheMisses == nil {
		m.CacheMisses = make(map[string]int)
	}
	m.CacheMisses[view]++
}

func (m *MockMetrics) ObservePersistenceDuration(key string, d time.Duration) {}

func (m *MockMetrics) IncPersistenceFailures(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PersistenceFailures == nil {
		m.PersistenceFailures = make(map[string]int)
	}
	m.PersistenceFailures[key]++
}

func (m *MockMetrics) SetRecordsTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordsTotal = count
}

func (m *MockMetrics) IncBackupsTotal(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Backups == nil {
		m.Backups = make(map[bool]int)
	}
	m.Backups[success]++
}
