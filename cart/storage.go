package cart

import (
	"os"
	"path/filepath"
	"sync"
)

// Storage is the durable key-value port the cart persists through. The
// browser build backs it with localStorage; here a file-backed and an
// in-memory implementation cover CLI targets and tests.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Clear(key string) error
}

// MemoryStorage keeps values in a map. Zero value is not usable; call
// NewMemoryStorage.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (m *MemoryStorage) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.values[key]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *MemoryStorage) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.values[key] = cp
	return nil
}

func (m *MemoryStorage) Clear(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// FileStorage stores each key as a JSON file under a directory.
type FileStorage struct {
	Dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{Dir: dir}
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *FileStorage) Read(key string) ([]byte, error) {
	return os.ReadFile(f.path(key))
}

func (f *FileStorage) Write(key string, data []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(key), data, 0o644)
}

func (f *FileStorage) Clear(key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
