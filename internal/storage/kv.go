// Package storage is the single persistence boundary of the journal: a small
// key-value store holding the records, profile and settings entries.
package storage

import (
	"errors"
	"fmt"
	"laleme/internal/providers"
	"laleme/internal/storage/interfaces"
	"laleme/internal/structures"
)

const (
	KeyRecords  = "laleme-records"
	KeyProfile  = "laleme-profile"
	KeySettings = "laleme-settings"
)

// Keys lists every persisted entry.
var Keys = []string{KeyRecords, KeyProfile, KeySettings}

var ErrNotFound = errors.New("storage: key not found")

type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// NewKeyValueStore opens the driver named in configuration.
func NewKeyValueStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (KeyValueStore, error) {
	var codec interfaces.CompressorInterface = identityCompression{}
	if conf.Storage.Compress {
		codec = compressor
	}

	switch conf.Storage.Driver {
	case "memory":
		logger.Infof(providers.TypeStore, "Using in-memory storage, nothing will survive a restart")
		return NewMemoryStore(), nil
	case "sqlite":
		logger.Infof(providers.TypeStore, "Using sqlite storage at %s", conf.Storage.Path)
		return NewSQLiteStore(conf.Storage.Path, codec)
	case "file", "":
		logger.Infof(providers.TypeStore, "Using file storage in %s", conf.Storage.Path)
		return NewFileStore(conf.Storage.Path, codec)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
