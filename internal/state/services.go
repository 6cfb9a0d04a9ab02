// internal/state/services.go
package state

import (
	"go-flappy-spin/internal/assets"
	"go-flappy-spin/internal/audio"
	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/effect"
	"go-flappy-spin/internal/storage"
	"go-flappy-spin/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Services живут весь процесс и передаются от состояния к состоянию.
// Всё, что относится к одной попытке, создаётся заново в GameState.
type Services struct {
	Settings config.Settings
	Palette  effect.Palette
	Store    storage.Store
	Audio    *audio.Manager
	Fonts    *assets.Fonts
	Rng      *utils.PRNGService
	Log      *zap.SugaredLogger
}

// flapPressed пробел или левая кнопка мыши в этом кадре
func flapPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// pausePressed P или Escape в этом кадре
func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
