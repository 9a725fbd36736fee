package storage

import (
	"errors"
	"fmt"
	"laleme/internal/storage/interfaces"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps one file per key under a directory. Writes go through a
// temporary file and a rename so a crash never leaves a torn entry.
type FileStore struct {
	mu         sync.Mutex
	dir        string
	compressor interfaces.CompressorInterface
}

func NewFileStore(dir string, compressor interfaces.CompressorInterface) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{dir: dir, compressor: compressor}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".dat")
}

func (f *FileStore) Get(key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f.compressor.Decompress(data)
}

func (f *FileStore) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.compressor.Compress(value)
	if err != nil {
		return err
	}
	return WriteFileAtomic(f.path(key), data)
}

func (f *FileStore) Close() error {
	return nil
}

// WriteFileAtomic writes through a synced temporary file and a rename.
func WriteFileAtomic(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
