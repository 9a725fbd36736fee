package internal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"laleme/internal/backup"
	"laleme/internal/controllers"
	"laleme/internal/providers"
	"laleme/internal/services"
	"laleme/internal/storage"
	"laleme/internal/structures"
	"laleme/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stack struct {
	handler http.Handler
	journal services.JournalServiceInterface
	store   *storage.MemoryStore
	metrics *testutil.MockMetrics
}

func newStack(t *testing.T) stack {
	t.Helper()
	conf := &structures.Config{
		AppName: "LalemeJournal",
		Journal: structures.JournalConfig{Timezone: "UTC", DefaultLanguage: "en"},
		Peers: []structures.PeerConfig{
			{Nickname: "顺畅小王子", Count: 42, FriendCode: "FE3490"},
			{Nickname: "每日一拉", Count: 38, FriendCode: "AN2211"},
		},
	}
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	store := storage.NewMemoryStore()

	journal := services.NewJournalService(conf, store, logger, metrics, clock)
	journal.Load()
	summaries, err := services.NewSummaryService(conf, journal, services.NewPeerSource(conf), logger, clock)
	require.NoError(t, err)

	ac := controllers.NewApiController(logger, journal, summaries, testutil.NewMockCache())
	handler := NewHandler(controllers.NewHealthController(journal), conf, InitRoutes(ac), metrics)
	return stack{handler: handler, journal: journal, store: store, metrics: metrics}
}

func (s stack) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func TestInitRoutes_RegistersEveryEndpoint(t *testing.T) {
	ac := controllers.NewApiController(&testutil.MockLogger{}, &testutil.MockJournalService{}, &testutil.MockSummaryService{}, testutil.NewMockCache())

	router := InitRoutes(ac)

	patterns := make([]string, 0)
	for _, r := range router.GetRoutes() {
		patterns = append(patterns, providers.Pattern(r))
	}
	assert.ElementsMatch(t, []string{
		"GET /records", "POST /records",
		"GET /summary/health", "GET /summary/statistics", "GET /summary/heatmap",
		"GET /calendar", "GET /ranking",
		"GET /profile", "POST /profile", "POST /profile/friends", "GET /profile/qr",
		"GET /settings", "POST /settings",
	}, patterns)
}

func TestHandler_RecordFlow(t *testing.T) {
	s := newStack(t)

	for _, cat := range []string{"4", "4", "3"} {
		rr := s.do(http.MethodPost, "/records", `{"bristolType":`+cat+`}`)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}

	rr := s.do(http.MethodGet, "/summary/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "excellent", health["status"])
	assert.Equal(t, float64(3), health["countThisWeek"])

	rr = s.do(http.MethodGet, "/summary/statistics", "")
	var stats map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, float64(4), stats["dominantCategory"])

	rr = s.do(http.MethodGet, "/summary/heatmap", "")
	var heat []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &heat))
	require.Len(t, heat, 365)
	assert.Equal(t, "2024-06-12", heat[364]["date"])
	assert.Equal(t, "high", heat[364]["level"])

	_, err := s.store.Get(storage.KeyRecords)
	assert.NoError(t, err)
	assert.Equal(t, 3, s.metrics.Requests["POST /records"])
}

func TestHandler_RankingScopes(t *testing.T) {
	s := newStack(t)

	var items []map[string]any
	rr := s.do(http.MethodGet, "/ranking?scope=friends", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, true, items[0]["isMe"])

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/profile/friends", `{"code":" an2211 "}`).Code)

	rr = s.do(http.MethodGet, "/ranking?scope=friends", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "AN2211", items[0]["friendCode"])

	rr = s.do(http.MethodGet, "/ranking?scope=global", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	assert.Len(t, items, 3)
}

func TestHandler_MethodMismatchAndUnknownPath(t *testing.T) {
	s := newStack(t)

	assert.Equal(t, http.StatusMethodNotAllowed, s.do(http.MethodDelete, "/records", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/nope", "").Code)
}

func TestHandler_HealthEndpoint(t *testing.T) {
	s := newStack(t)

	rr := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
	assert.Empty(t, s.metrics.Requests["/health"])
}

func TestHandler_MetricsEndpointOnlyWhenEnabled(t *testing.T) {
	s := newStack(t)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/metrics", "").Code)

	conf := &structures.Config{Metrics: structures.MetricsConfig{Enabled: true}}
	handler := NewHandler(controllers.NewHealthController(s.journal), conf, providers.NewRouterProvider(), &testutil.MockMetrics{})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewApp_RestoresJournal(t *testing.T) {
	conf := &structures.Config{
		AppName:   "LalemeJournal",
		WebServer: structures.Server{Host: "127.0.0.1", Port: 18090},
	}
	store := storage.NewMemoryStore()
	journal := &testutil.MockJournalService{}
	logger := &testutil.MockLogger{}
	bm := backup.NewBackupManager(store, &testutil.MockCompressor{}, logger)
	scheduler := backup.NewScheduler(conf, logger, journal, bm, &testutil.MockMetrics{})

	app, err := NewApp(http.NotFoundHandler(), scheduler, store, conf, logger)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:18090", app.WebServer.Addr)
	assert.Equal(t, 1, journal.LoadCalls)
}
