// Package file provides the flat-file storage backend: the in-memory
// dataset persisted to a single JSON document after every mutation.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"vendorledger/internal/infrastructure/storage"
	"vendorledger/internal/infrastructure/storage/memory"
)

// Store is a memory store whose dataset is mirrored to a JSON file.
type Store struct {
	path string
	mem  *memory.Store
}

// Open loads the dataset from path, creating an empty one when the file
// does not exist yet. The parent directory is created as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	data, err := loadDataset(path)
	if err != nil {
		return nil, err
	}

	s := &Store{path: path}
	s.mem = memory.NewFromDataset(data, s.write)
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Stores returns the repository bundle backed by this store.
func (s *Store) Stores() storage.Stores {
	return s.mem.Stores()
}

func loadDataset(path string) (*memory.Dataset, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return memory.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file %s: %w", path, err)
	}

	d := memory.NewDataset()
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}
	return d, nil
}

// write serializes the dataset atomically: a temp file in the same
// directory followed by a rename, so a crash mid-write never leaves a
// truncated document behind.
func (s *Store) write(d *memory.Dataset) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".vendorledger-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
