// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-flappy-spin/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*GameOverState)(nil)

// restartDelay секунды, в течение которых клик не перезапускает игру,
// чтобы случайный взмах сразу после удара не начал новую попытку.
const restartDelay = 0.4

// GameOverState показывает замёрзшую сцену и ждёт клика для рестарта.
type GameOverState struct {
	sm      *StateMachine
	game    *GameState
	banner  *ui.Banner
	elapsed float64
}

func NewGameOverState(sm *StateMachine, game *GameState) *GameOverState {
	return &GameOverState{
		sm:     sm,
		game:   game,
		banner: ui.NewBanner(game.svc.Fonts.Banner),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.elapsed < restartDelay {
		return
	}
	if flapPressed() {
		svc := s.game.svc
		s.game.Close()
		s.sm.SetState(NewGameState(s.sm, svc))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.banner.Draw(screen, fmt.Sprintf("Game Over\nScore: %d\nClick to Restart", s.game.game.Score()))
}

func (s *GameOverState) Exit() {}
