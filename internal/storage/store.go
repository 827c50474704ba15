package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Storer is a read-only view of a set of validated asset specs.
type Storer[T ValidatingSpec] interface {
	Get(string) T
	GetAll() map[Identifier]T
	Keys() []Identifier
}

// FileStore loads every *.json asset below a directory once at startup.
// World definitions are never written back.
type FileStore[T ValidatingSpec] struct {
	path    string
	records map[Identifier]T

	mu sync.RWMutex
}

func NewFileStore[T ValidatingSpec](path string) (*FileStore[T], error) {
	s := &FileStore[T]{
		path:    path,
		records: map[Identifier]T{},
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = map[Identifier]T{}

	return filepath.Walk(s.path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		asset, err := loadAsset[T](path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", filepath.Base(path), err)
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", filepath.Base(path), err)
		}

		if _, ok := s.records[asset.Id()]; ok {
			return fmt.Errorf("duplicate key detected: %s", asset.Id())
		}

		s.records[asset.Id()] = asset.Spec
		return nil
	})
}

func (s *FileStore[T]) Get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records[Identifier(id)]
}

func (s *FileStore[T]) GetAll() map[Identifier]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := make(map[Identifier]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}

// Keys returns the asset identifiers in sorted order so that anything built
// from the store (spawn order, global ids) is deterministic.
func (s *FileStore[T]) Keys() []Identifier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKeys(s.records)
}

// MemoryStore is a Storer over specs that were built in code.
type MemoryStore[T ValidatingSpec] struct {
	records map[Identifier]T
}

// NewMemoryStore wraps records without validating them.
func NewMemoryStore[T ValidatingSpec](records map[Identifier]T) *MemoryStore[T] {
	if records == nil {
		records = map[Identifier]T{}
	}
	return &MemoryStore[T]{records: records}
}

func (s *MemoryStore[T]) Get(id string) T {
	return s.records[Identifier(id)]
}

func (s *MemoryStore[T]) GetAll() map[Identifier]T {
	vals := make(map[Identifier]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}

func (s *MemoryStore[T]) Keys() []Identifier {
	return sortedKeys(s.records)
}

func sortedKeys[T any](records map[Identifier]T) []Identifier {
	keys := make([]Identifier, 0, len(records))
	for id := range records {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

func loadAsset[T ValidatingSpec](path string) (*Asset[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	jsonData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(jsonData, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}
