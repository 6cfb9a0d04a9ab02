// internal/state/game_state.go
package state

import (
	"go-flappy-spin/internal/app"
	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/ui"
	"go-flappy-spin/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*GameState)(nil)

// GameState одна попытка: ввод, отрисовка и переходы поверх app.Game.
type GameState struct {
	sm   *StateMachine
	svc  *Services
	game *app.Game

	started  bool
	renderer *render.WorldRenderer
	hud      *ui.ScoreIndicator
}

func NewGameState(sm *StateMachine, svc *Services) *GameState {
	game, err := app.NewGame(app.Options{
		Store:      svc.Store,
		Rng:        svc.Rng,
		Difficulty: svc.Settings.Difficulty,
		Palette:    svc.Palette,
		Sounds:     svc.Audio,
		Log:        svc.Log,
	})
	if err != nil {
		svc.Log.Warnw("records unavailable, starting from zero", "error", err)
	}
	return &GameState{
		sm:       sm,
		svc:      svc,
		game:     game,
		renderer: render.NewWorldRenderer(game.ECS),
		hud:      ui.NewScoreIndicator(config.HUDOffsetX, config.HUDOffsetY, svc.Fonts.HUD),
	}
}

func (g *GameState) Enter() {
	if !g.started {
		g.started = true
		sess := g.game.Session
		g.svc.Log.Infow("session started",
			"session", sess.ID.String(),
			"best", sess.BestScore,
			"deaths", sess.Deaths,
		)
	}
}

func (g *GameState) Update(deltaTime float64) {
	if pausePressed() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if flapPressed() {
		g.game.Flap()
	}

	before := g.game.Score()
	g.game.Update(deltaTime)
	if g.game.Score() > before {
		g.hud.Pulse()
	}

	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	sess := g.game.Session
	g.renderer.Draw(screen)
	g.hud.Draw(screen, sess.Score, sess.BestScore, sess.Deaths)
}

func (g *GameState) Exit() {}

// Close освобождает ресурсы попытки; после него состояние не используется.
func (g *GameState) Close() {
	g.renderer.Dispose()
}
