package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"laleme/internal/storage/interfaces"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore keeps every entry as a row of a single kv table.
type SQLiteStore struct {
	db         *sql.DB
	compressor interfaces.CompressorInterface
}

func NewSQLiteStore(path string, compressor interfaces.CompressorInterface) (*SQLiteStore, error) {
	if path == "" {
		path = "laleme.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer; sqlite serialises anyway and this avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteStore{db: db, compressor: compressor}, nil
}

func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM kv WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return s.compressor.Decompress(payload)
}

func (s *SQLiteStore) Set(key string, value []byte) error {
	payload, err := s.compressor.Compress(value)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`INSERT INTO kv(key,payload) VALUES(?,?) ON CONFLICT(key) DO UPDATE SET payload=excluded.payload`, key, payload); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
