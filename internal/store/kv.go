// Package store holds the raw source documents (Tokens, Theme, UIKit), the
// palette sub-state, and the token override map, and persists them to a
// durable key-value store versioned by a content hash of the bundled
// defaults.
package store

import (
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// KV is the durable key-value store backing the four persisted slots.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileKV stores each key as a file in a directory, written atomically via a
// temp file and rename.
type FileKV struct {
	dir string
}

// NewFileKV creates the backing directory and returns the store.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.NewStorageError("", err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key)
}

// Get reads the value for a key.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewStorageError(key, err)
	}
	return data, true, nil
}

// Set writes the value for a key atomically.
func (f *FileKV) Set(key string, value []byte) error {
	tmpPath := f.path(key) + ".tmp"
	if err := os.WriteFile(tmpPath, value, 0o644); err != nil {
		return apperrors.NewStorageError(key, err)
	}
	if err := os.Rename(tmpPath, f.path(key)); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError(key, err)
	}
	return nil
}

// Delete removes a key.
func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return apperrors.NewStorageError(key, err)
	}
	return nil
}

// Probe checks that the directory actually accepts writes. Sandboxed
// environments can have a directory that exists but rejects file creation.
func (f *FileKV) Probe() bool {
	probePath := f.path(".probe")
	if err := os.WriteFile(probePath, []byte("ok"), 0o644); err != nil {
		return false
	}
	_ = os.Remove(probePath)
	return true
}

// MemoryKV is the in-memory fallback used when no durable storage is
// available; state lasts for the session only.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV allocates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get reads the value for a key.
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set writes the value for a key.
func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Delete removes a key.
func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
