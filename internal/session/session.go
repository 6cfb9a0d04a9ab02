// internal/session/session.go
package session

import (
	"errors"
	"fmt"

	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/storage"

	"github.com/google/uuid"
)

// Session состояние одной попытки: счёт и рекорды, которые видит игрок.
// Создаётся при старте попытки и выбрасывается при рестарте.
type Session struct {
	ID        uuid.UUID
	Score     int
	BestScore int
	Deaths    int
	Over      bool

	store storage.Store
}

// New начинает сессию, подтягивая рекорд и число смертей из store.
func New(store storage.Store) (*Session, error) {
	s := &Session{ID: uuid.New(), store: store}

	best, err := readInt(store, config.BestScoreKey)
	if err != nil {
		return s, err
	}
	deaths, err := readInt(store, config.DeathCountKey)
	if err != nil {
		return s, err
	}
	s.BestScore = best
	s.Deaths = deaths
	return s, nil
}

// AddPoint прибавляет очко. improved=true, если побит рекорд.
func (s *Session) AddPoint() (score int, improved bool) {
	if s.Over {
		return s.Score, false
	}
	s.Score++
	if s.Score > s.BestScore {
		s.BestScore = s.Score
		improved = true
	}
	return s.Score, improved
}

// End завершает сессию. Смерть засчитывается только один раз.
func (s *Session) End() bool {
	if s.Over {
		return false
	}
	s.Over = true
	s.Deaths++
	return true
}

// SaveBest записывает рекорд в хранилище.
func (s *Session) SaveBest() error {
	if err := s.store.SetInt(config.BestScoreKey, s.BestScore); err != nil {
		return fmt.Errorf("failed to save best score: %w", err)
	}
	return nil
}

// SaveDeaths записывает счётчик смертей в хранилище.
func (s *Session) SaveDeaths() error {
	if err := s.store.SetInt(config.DeathCountKey, s.Deaths); err != nil {
		return fmt.Errorf("failed to save death count: %w", err)
	}
	return nil
}

func readInt(store storage.Store, key string) (int, error) {
	v, err := store.GetInt(key)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return v, nil
}
