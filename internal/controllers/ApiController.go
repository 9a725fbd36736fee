package controllers

import (
	"errors"
	"fmt"
	"laleme/internal/calendar"
	"laleme/internal/friendcode"
	"laleme/internal/models"
	"laleme/internal/providers"
	"laleme/internal/services"
	"laleme/internal/summary"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// Photos travel inline as data URIs, so record bodies get a larger limit.
const (
	maxRequestBodySize = 1 << 20 // 1 MB
	maxRecordBodySize  = 8 << 20 // 8 MB
	maxQRSize          = 1024
)

type ApiController struct {
	logger  providers.Logger
	journal services.JournalServiceInterface
	summary services.SummaryServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, journal services.JournalServiceInterface, summaryService services.SummaryServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		journal: journal,
		summary: summaryService,
		cache:   cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (ac *ApiController) decode(w http.ResponseWriter, r *http.Request, limit int64, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Bad payload on %s: %s", r.URL.Path, err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

// serveFromCacheOrCompute serves derived views whose value is fully
// determined by cacheKey.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) ListRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.journal.Records())
}

func (ac *ApiController) AddRecord(w http.ResponseWriter, r *http.Request) {
	var payload models.RecordInput
	if !ac.decode(w, r, maxRecordBodySize, &payload) {
		return
	}
	record, err := ac.journal.AddRecord(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ac.logger.Infof(providers.TypePost, "Record %s added", record.ID)
	writeJSON(w, http.StatusCreated, record)
}

func (ac *ApiController) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.summary.Health())
}

func (ac *ApiController) GetStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.summary.Statistics())
}

func (ac *ApiController) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	today := ac.summary.Today()
	key := fmt.Sprintf("heatmap:%d:%s", ac.journal.Revision(), today)
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.summary.Heatmap(today), nil
	})
}

func (ac *ApiController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	view := summary.View(r.URL.Query().Get("view"))
	if view == "" {
		view = summary.ViewWeek
	}
	if !view.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown view %q", view))
		return
	}

	today := ac.summary.Today()
	anchor := today
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := calendar.ParseDay(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		anchor = parsed
	}

	key := fmt.Sprintf("calendar:%d:%s:%s:%s", ac.journal.Revision(), today, view, anchor)
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.summary.Calendar(view, anchor, today), nil
	})
}

func (ac *ApiController) GetRanking(w http.ResponseWriter, r *http.Request) {
	scope := summary.Scope(r.URL.Query().Get("scope"))
	if scope == "" {
		scope = summary.ScopeFriends
	}
	if !scope.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown scope %q", scope))
		return
	}
	period := summary.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = summary.PeriodAll
	}
	if !period.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown period %q", period))
		return
	}

	compute := func() (any, error) {
		return ac.summary.Ranking(r.Context(), scope, period), nil
	}
	// Trailing windows move with the clock; only the all-time board is stable.
	if period != summary.PeriodAll {
		result, _ := compute()
		writeJSON(w, http.StatusOK, result)
		return
	}
	ac.serveFromCacheOrCompute(w, fmt.Sprintf("ranking:%d:%s", ac.journal.Revision(), scope), compute)
}

func (ac *ApiController) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.journal.Profile())
}

func (ac *ApiController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var payload models.ProfileUpdate
	if !ac.decode(w, r, maxRequestBodySize, &payload) {
		return
	}
	profile, err := ac.journal.UpdateProfile(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type addFriendRequest struct {
	Code string `json:"code"`
}

func (ac *ApiController) AddFriend(w http.ResponseWriter, r *http.Request) {
	var payload addFriendRequest
	if !ac.decode(w, r, maxRequestBodySize, &payload) {
		return
	}
	profile, err := ac.journal.AddFriend(payload.Code)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (ac *ApiController) GetFriendCodeQR(w http.ResponseWriter, r *http.Request) {
	size := friendcode.QRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		size = cast.ToInt(raw)
		if size <= 0 || size > maxQRSize {
			writeError(w, http.StatusBadRequest, fmt.Errorf("size must be in 1..%d", maxQRSize))
			return
		}
	}

	png, err := friendcode.QR(ac.journal.Profile().FriendCode, size)
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "QR rendering failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (ac *ApiController) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.journal.Settings())
}

func (ac *ApiController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload models.SettingsUpdate
	if !ac.decode(w, r, maxRequestBodySize, &payload) {
		return
	}
	settings, err := ac.journal.UpdateSettings(&payload)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrInvalidSettings) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
