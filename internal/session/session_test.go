package session

import (
	"errors"
	"testing"

	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/storage"

	"github.com/google/uuid"
)

type failingStore struct{ err error }

func (f failingStore) GetInt(string) (int, error) { return 0, f.err }
func (f failingStore) SetInt(string, int) error { return f.err }

func TestNewReadsRecords(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SetInt(config.BestScoreKey, 31)
	store.SetInt(config.DeathCountKey, 4)

	s, err := New(store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.BestScore != 31 || s.Deaths != 4 || s.Score != 0 {
		t.Errorf("session = %+v", s)
	}
	if s.ID == uuid.Nil {
		t.Error("session ID not assigned")
	}
}

func TestNewWithEmptyStore(t *testing.T) {
	s, err := New(storage.NewMemoryStore())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.BestScore != 0 || s.Deaths != 0 {
		t.Errorf("session = %+v, want zero records", s)
	}
}

func TestNewPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := New(failingStore{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestAddPointTracksBest(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SetInt(config.BestScoreKey, 2)
	s, _ := New(store)

	wantImproved := []bool{false, false, true, true}
	for i, want := range wantImproved {
		score, improved := s.AddPoint()
		if score != i+1 {
			t.Errorf("point %d: score = %d", i, score)
		}
		if improved != want {
			t.Errorf("point %d: improved = %v, want %v", i, improved, want)
		}
	}
	if s.BestScore != 4 {
		t.Errorf("best = %d, want 4", s.BestScore)
	}

	if err := s.SaveBest(); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}
	if v, _ := store.GetInt(config.BestScoreKey); v != 4 {
		t.Errorf("stored best = %d, want 4", v)
	}
}

func TestEndCountsDeathOnce(t *testing.T) {
	store := storage.NewMemoryStore()
	s, _ := New(store)

	if !s.End() {
		t.Error("first End returned false")
	}
	if s.End() {
		t.Error("second End returned true")
	}
	if s.Deaths != 1 {
		t.Errorf("deaths = %d, want 1", s.Deaths)
	}
	if score, _ := s.AddPoint(); score != 0 {
		t.Errorf("AddPoint after End changed score to %d", score)
	}

	if err := s.SaveDeaths(); err != nil {
		t.Fatalf("SaveDeaths: %v", err)
	}
	if v, _ := store.GetInt(config.DeathCountKey); v != 1 {
		t.Errorf("stored deaths = %d, want 1", v)
	}
}

func TestSaveErrorsAreWrapped(t *testing.T) {
	boom := errors.New("read-only")
	s := &Session{store: failingStore{err: boom}}
	if err := s.SaveBest(); !errors.Is(err, boom) {
		t.Errorf("SaveBest err = %v", err)
	}
	if err := s.SaveDeaths(); !errors.Is(err, boom) {
		t.Errorf("SaveDeaths err = %v", err)
	}
}
