package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.GetInt("bestScore"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetInt on empty store: err = %v, want ErrNotFound", err)
	}
	if err := s.SetInt("bestScore", 17); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	if v, err := s.GetInt("bestScore"); err != nil || v != 17 {
		t.Errorf("GetInt = %d, %v; want 17, nil", v, err)
	}
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "records.yaml")

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.GetInt("deathCount"); !errors.Is(err, ErrNotFound) {
		t.Errorf("fresh store: err = %v, want ErrNotFound", err)
	}
	if err := s.SetInt("deathCount", 3); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	if err := s.SetInt("bestScore", 25); err != nil {
		t.Fatalf("SetInt: %v", err)
	}

	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	for key, want := range map[string]int{"deathCount": 3, "bestScore": 25} {
		got, err := reopened.GetInt(key)
		if err != nil || got != want {
			t.Errorf("%s = %d, %v; want %d", key, got, err, want)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the store file, found %d entries", len(entries))
	}
}

func TestOpenFileStoreRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	if err := os.WriteFile(path, []byte("bestScore: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFileStore(path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestOpenFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SetInt("bestScore", 1); err != nil {
		t.Errorf("SetInt after empty file: %v", err)
	}
}
