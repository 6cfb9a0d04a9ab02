// internal/app/events.go
package app

import "go-flappy-spin/internal/event"

// GameEventListener переводит события систем в действия игры.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.Flapped:
		l.game.flap()
	case event.WallPassed:
		l.game.scorePoint()
	case event.BallCrashed:
		var cause event.CrashCause
		if data, ok := e.Data.(event.BallCrashedData); ok {
			cause = data.Cause
		}
		l.game.crash(cause)
	}
}
