// internal/storage/store.go
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound ключ ещё ни разу не записывался.
var ErrNotFound = errors.New("key not found")

// Store долговременное хранилище целых чисел по ключу.
type Store interface {
	GetInt(key string) (int, error)
	SetInt(key string, value int) error
}

// MemoryStore держит значения только в памяти.
type MemoryStore struct {
	values map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (m *MemoryStore) GetInt(key string) (int, error) {
	v, ok := m.values[key]
	if !ok {
		return 0, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return v, nil
}

func (m *MemoryStore) SetInt(key string, value int) error {
	m.values[key] = value
	return nil
}

// FileStore хранит все ключи в одном YAML-файле и переписывает его целиком
// при каждой записи.
type FileStore struct {
	path   string
	values map[string]int
}

// OpenFileStore читает файл, если он есть. Отсутствующий файл даёт пустое хранилище.
func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, values: make(map[string]int)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fs.values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal store file %s: %w", path, err)
	}
	if fs.values == nil {
		fs.values = make(map[string]int)
	}
	return fs, nil
}

func (f *FileStore) GetInt(key string) (int, error) {
	v, ok := f.values[key]
	if !ok {
		return 0, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return v, nil
}

// SetInt пишет через временный файл и rename, чтобы не оставить полузаписанный файл.
func (f *FileStore) SetInt(key string, value int) error {
	prev, had := f.values[key]
	f.values[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) flush() error {
	data, err := yaml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
