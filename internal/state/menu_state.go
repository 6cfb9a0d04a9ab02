// internal/state/menu_state.go
package state

import (
	"errors"
	"fmt"

	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/storage"
	"go-flappy-spin/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*MenuState)(nil)

// MenuState заставка с рекордом; пробел или клик начинают игру.
type MenuState struct {
	sm     *StateMachine
	svc    *Services
	banner *ui.Banner
	best   int
	deaths int
}

func NewMenuState(sm *StateMachine, svc *Services) *MenuState {
	return &MenuState{
		sm:     sm,
		svc:    svc,
		banner: ui.NewBanner(svc.Fonts.Banner),
	}
}

func (m *MenuState) Enter() {
	m.best = m.readRecord(config.BestScoreKey)
	m.deaths = m.readRecord(config.DeathCountKey)
}

func (m *MenuState) readRecord(key string) int {
	v, err := m.svc.Store.GetInt(key)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		m.svc.Log.Warnw("could not read record", "key", key, "error", err)
	}
	return v
}

func (m *MenuState) Update(deltaTime float64) {
	if flapPressed() {
		m.sm.SetState(NewGameState(m.sm, m.svc))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.banner.Draw(screen, fmt.Sprintf("%s\nBest: %d   Deaths: %d\nSpace or Click to Start",
		m.svc.Settings.WindowTitle, m.best, m.deaths))
}

func (m *MenuState) Exit() {}
