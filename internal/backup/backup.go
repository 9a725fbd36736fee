package backup

import (
	"errors"
	"fmt"
	"laleme/internal/providers"
	"laleme/internal/storage"
	"laleme/internal/storage/interfaces"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

const snapshotVersion = 1

// Snapshot bundles every persisted entry into one compressed file.
type Snapshot struct {
	Version   int                        `json:"version"`
	CreatedAt time.Time                  `json:"created_at"`
	Entries   map[string]json.RawMessage `json:"entries"`
}

type BackupManager struct {
	store      storage.KeyValueStore
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewBackupManager(store storage.KeyValueStore, compressor interfaces.CompressorInterface, logger providers.Logger) *BackupManager {
	return &BackupManager{
		store:      store,
		compressor: compressor,
		logger:     logger,
	}
}

func (b *BackupManager) SaveToFile(fileName string) error {
	snapshot := Snapshot{
		Version:   snapshotVersion,
		CreatedAt: time.Now().UTC(),
		Entries:   make(map[string]json.RawMessage, len(storage.Keys)),
	}
	for _, key := range storage.Keys {
		val, err := b.store.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		if !json.Valid(val) {
			b.logger.Warnf(providers.TypeStore, "Skipping corrupt entry %s in backup", key)
			continue
		}
		snapshot.Entries[key] = val
	}

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := b.compressor.Compress(jsonData)
	if err != nil {
		return err
	}
	return storage.WriteFileAtomic(fileName, data)
}

// LoadFromFile copies snapshot entries into the store, but only for keys the
// store does not already hold. A missing snapshot file is not an error.
func (b *BackupManager) LoadFromFile(fileName string) (int, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	decompressed, err := b.compressor.Decompress(data)
	if err != nil {
		return 0, err
	}

	var snapshot Snapshot
	if err := json.Unmarshal(decompressed, &snapshot); err != nil {
		return 0, fmt.Errorf("decode snapshot: %w", err)
	}
	if snapshot.Version > snapshotVersion {
		return 0, fmt.Errorf("snapshot version %d is newer than supported %d", snapshot.Version, snapshotVersion)
	}

	restored := 0
	for _, key := range storage.Keys {
		val, ok := snapshot.Entries[key]
		if !ok {
			continue
		}
		if _, err := b.store.Get(key); err == nil {
			continue
		} else if !errors.Is(err, storage.ErrNotFound) {
			return restored, fmt.Errorf("read %s: %w", key, err)
		}
		if err := b.store.Set(key, val); err != nil {
			return restored, fmt.Errorf("restore %s: %w", key, err)
		}
		restored++
	}
	return restored, nil
}

func (b *BackupManager) Close() {
	b.compressor.Close()
}
