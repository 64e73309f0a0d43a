package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is the key-value persistence the history is stored in.
// This allows for swapping the storage layer in tests and at startup.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(key string, value []byte) error
}

// FileBackend stores each key as <dir>/<key>.json.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a FileBackend rooted at dir. The directory is
// created on first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// DefaultDir is where history lives when nothing else is configured.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "go-pairs"), nil
}

func (fb *FileBackend) path(key string) string {
	return filepath.Join(fb.dir, key+".json")
}

func (fb *FileBackend) Get(key string) ([]byte, error) {
	b, err := os.ReadFile(fb.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", key, err)
	}
	return b, nil
}

// Set writes through a temp file and a rename so readers never see a
// partially written value.
func (fb *FileBackend) Set(key string, value []byte) error {
	if err := os.MkdirAll(fb.dir, 0755); err != nil {
		return fmt.Errorf("error creating history directory: %w", err)
	}

	tmp, err := os.CreateTemp(fb.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file for %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), fb.path(key)); err != nil {
		return fmt.Errorf("error replacing %s: %w", key, err)
	}
	return nil
}

// MemoryBackend keeps values in process memory only.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryBackend) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}
