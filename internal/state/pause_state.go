// internal/state/pause_state.go
package state

import (
	"go-flappy-spin/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает предыдущее состояние и рисует его под надписью.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	banner        *ui.Banner
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		banner:        ui.NewBanner(prevState.svc.Fonts.Banner),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if pausePressed() || flapPressed() {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	s.banner.Draw(screen, "PAUSED\nP to resume")
}

func (s *PauseState) Exit() {}
