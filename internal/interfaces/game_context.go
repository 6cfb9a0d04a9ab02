// internal/interfaces/game_context.go
package interfaces

import "image/color"

// GameContext то, что системы спрашивают у игры, не завися от пакета app.
type GameContext interface {
	Score() int
	WallColor() color.RGBA
}
