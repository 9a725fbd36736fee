package services

import (
	"errors"
	"fmt"
	"laleme/internal/friendcode"
	"laleme/internal/models"
	"laleme/internal/providers"
	"laleme/internal/storage"
	"laleme/internal/structures"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	DefaultNickname = "肠道旅行者"
	DefaultAvatar   = "https://api.dicebear.com/7.x/avataaars/svg?seed=Traveler"
)

var ErrEmptyFriendCode = friendcode.ErrEmpty

type JournalServiceInterface interface {
	Load()
	Flush() error
	AddRecord(in *models.RecordInput) (models.Record, error)
	Records() []models.Record
	RecordCount() int
	Profile() models.Profile
	UpdateProfile(u *models.ProfileUpdate) (models.Profile, error)
	AddFriend(code string) (models.Profile, error)
	Settings() models.Settings
	UpdateSettings(u *models.SettingsUpdate) (models.Settings, error)
	Revision() uint64
}

// JournalService owns the records, profile and settings. It is the only
// writer of the key-value store; every change is persisted synchronously and
// a failed write is logged but never surfaces, so the in-memory state stays
// authoritative for the session.
type JournalService struct {
	conf    *structures.Config
	store   storage.KeyValueStore
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	clock   Clock

	mu       sync.RWMutex
	records  *models.RecordStore
	profile  models.Profile
	settings models.Settings
	revision atomic.Uint64

	// keys whose stored value could not be read; left untouched until the
	// next change to that entry.
	unreadable map[string]bool
}

var errCorrupt = errors.New("corrupt entry")

func NewJournalService(conf *structures.Config, store storage.KeyValueStore, logger providers.Logger, metrics providers.MetricsProviderInterface, clock Clock) JournalServiceInterface {
	return &JournalService{
		conf:     conf,
		store:    store,
		logger:   logger,
		metrics:  metrics,
		clock:    clock,
		records:    models.NewRecordStore(),
		profile:    newProfile(conf),
		settings:   models.DefaultSettings(),
		unreadable: make(map[string]bool),
	}
}

func newProfile(conf *structures.Config) models.Profile {
	p := models.Profile{
		DisplayName: DefaultNickname,
		AvatarRef:   DefaultAvatar,
		FriendCode:  friendcode.Generate(),
		FriendList:  []string{},
		Language:    models.LanguageZh,
	}
	if conf.Journal.DefaultNickname != "" {
		p.DisplayName = conf.Journal.DefaultNickname
	}
	if conf.Journal.DefaultAvatar != "" {
		p.AvatarRef = conf.Journal.DefaultAvatar
	}
	if lang := models.Language(conf.Journal.DefaultLanguage); lang.Valid() {
		p.Language = lang
	}
	return p
}

// Load reads all three entries. Missing or corrupt entries fall back to an
// empty journal, a freshly generated profile and default settings. An entry
// the store failed to return also falls back, but its stored value is not
// overwritten until the entry changes.
func (js *JournalService) Load() {
	js.mu.Lock()
	defer js.mu.Unlock()

	clear(js.unreadable)

	var records []models.Record
	if err := js.read(storage.KeyRecords, &records); err == nil {
		js.records.PutData(records)
	} else {
		js.records.PutData(nil)
	}

	var profile models.Profile
	err := js.read(storage.KeyProfile, &profile)
	switch {
	case err == nil && profile.FriendCode != "":
		js.profile = js.normalizeProfile(profile)
	case js.unreadable[storage.KeyProfile]:
		js.profile = newProfile(js.conf)
		js.logger.Warnf(providers.TypeStore, "Using temporary profile %s, stored profile kept", js.profile.FriendCode)
	default:
		js.profile = newProfile(js.conf)
		js.logger.Infof(providers.TypeStore, "Generated profile with friend code %s", js.profile.FriendCode)
		js.persist(storage.KeyProfile, js.profile)
	}

	var settings models.Settings
	if err := js.read(storage.KeySettings, &settings); err == nil && settings.Validate() == nil {
		js.settings = settings
	} else {
		js.settings = models.DefaultSettings()
	}

	js.metrics.SetRecordsTotal(js.records.Len())
	js.revision.Add(1)
	js.logger.Infof(providers.TypeStore, "Journal loaded: %d records", js.records.Len())
}

func (js *JournalService) normalizeProfile(p models.Profile) models.Profile {
	p = p.Clone()
	if !p.Language.Valid() {
		p.Language = newProfile(js.conf).Language
	}
	return p
}

// read decodes key into v. A store failure other than ErrNotFound marks the
// key unreadable.
func (js *JournalService) read(key string, v any) error {
	data, err := js.store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if err != nil {
		js.logger.Warnf(providers.TypeStore, "Unable to read %s, using defaults: %s", key, err)
		js.unreadable[key] = true
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		js.logger.Warnf(providers.TypeStore, "Corrupt %s, using defaults: %s", key, err)
		return fmt.Errorf("%w %s: %v", errCorrupt, key, err)
	}
	return nil
}

func (js *JournalService) persist(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		js.logger.Errorf(providers.TypeStore, "Unable to encode %s: %s", key, err)
		js.metrics.IncPersistenceFailures(key)
		return
	}
	start := time.Now()
	err = js.store.Set(key, data)
	js.metrics.ObservePersistenceDuration(key, time.Since(start))
	if err != nil {
		js.logger.Warnf(providers.TypeStore, "Unable to persist %s: %s", key, err)
		js.metrics.IncPersistenceFailures(key)
		return
	}
	delete(js.unreadable, key)
}

// Flush writes every entry, returning the first failure. Entries that could
// not be read and have not changed since are skipped.
func (js *JournalService) Flush() error {
	js.mu.RLock()
	defer js.mu.RUnlock()

	entries := map[string]any{
		storage.KeyRecords:  js.records.All(),
		storage.KeyProfile:  js.profile,
		storage.KeySettings: js.settings,
	}
	for _, key := range storage.Keys {
		if js.unreadable[key] {
			js.logger.Warnf(providers.TypeStore, "Skipping flush of unreadable %s", key)
			continue
		}
		data, err := json.Marshal(entries[key])
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		if err := js.store.Set(key, data); err != nil {
			return fmt.Errorf("persist %s: %w", key, err)
		}
	}
	return nil
}

func (js *JournalService) AddRecord(in *models.RecordInput) (models.Record, error) {
	if err := in.Validate(); err != nil {
		return models.Record{}, err
	}

	js.mu.Lock()
	defer js.mu.Unlock()

	id := uuid.NewString()
	for js.records.Has(id) {
		id = uuid.NewString()
	}
	record := in.Build(id, js.clock().UnixMilli())
	js.records.Append(record)
	js.revision.Add(1)

	js.persist(storage.KeyRecords, js.records.All())
	js.metrics.SetRecordsTotal(js.records.Len())
	return record, nil
}

func (js *JournalService) Records() []models.Record {
	return js.records.All()
}

func (js *JournalService) RecordCount() int {
	return js.records.Len()
}

func (js *JournalService) Profile() models.Profile {
	js.mu.RLock()
	defer js.mu.RUnlock()
	return js.profile.Clone()
}

func (js *JournalService) UpdateProfile(u *models.ProfileUpdate) (models.Profile, error) {
	if err := u.Validate(); err != nil {
		return models.Profile{}, err
	}

	js.mu.Lock()
	defer js.mu.Unlock()

	js.profile = u.Apply(js.profile.Clone())
	js.revision.Add(1)
	js.persist(storage.KeyProfile, js.profile)
	return js.profile.Clone(), nil
}

// AddFriend adds a code to the friend list. Codes are trimmed and
// upper-cased; the own code and codes already present are ignored.
func (js *JournalService) AddFriend(code string) (models.Profile, error) {
	normalized, err := friendcode.Normalize(code)
	if err != nil {
		return models.Profile{}, err
	}

	js.mu.Lock()
	defer js.mu.Unlock()

	if normalized == js.profile.FriendCode || js.profile.HasFriend(normalized) {
		return js.profile.Clone(), nil
	}
	js.profile = js.profile.Clone()
	js.profile.FriendList = append(js.profile.FriendList, normalized)
	js.revision.Add(1)
	js.persist(storage.KeyProfile, js.profile)
	return js.profile.Clone(), nil
}

func (js *JournalService) Settings() models.Settings {
	js.mu.RLock()
	defer js.mu.RUnlock()
	return js.settings
}

func (js *JournalService) UpdateSettings(u *models.SettingsUpdate) (models.Settings, error) {
	js.mu.Lock()
	defer js.mu.Unlock()

	next := u.Apply(js.settings)
	if err := next.Validate(); err != nil {
		return js.settings, err
	}
	js.settings = next
	js.revision.Add(1)
	js.persist(storage.KeySettings, js.settings)
	return js.settings, nil
}

// Revision changes whenever anything a derived view depends on changes.
func (js *JournalService) Revision() uint64 {
	return js.revision.Load()
}
