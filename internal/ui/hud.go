// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/effect"
	"go-flappy-spin/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ScoreIndicator выводит счёт, рекорд и число смертей в левом верхнем углу.
// При новом очке строка счёта коротко вспыхивает.
type ScoreIndicator struct {
	X, Y          int
	face          font.Face
	FlashColor    color.RGBA
	LastScoreTime time.Time
}

func NewScoreIndicator(x, y int, face font.Face) *ScoreIndicator {
	return &ScoreIndicator{
		X:          x,
		Y:          y,
		face:       face,
		FlashColor: color.RGBA{255, 215, 0, 255},
	}
}

// Pulse запускает вспышку
func (i *ScoreIndicator) Pulse() {
	i.LastScoreTime = time.Now()
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, score, best, deaths int) {
	lineHeight := i.face.Metrics().Height.Ceil()
	if lineHeight < config.HUDLineGap {
		lineHeight = config.HUDLineGap
	}

	elapsed := time.Since(i.LastScoreTime).Seconds()
	scoreColor := effect.BlendRGB(config.TextLightColor, i.FlashColor, math.Exp(-elapsed*6))

	lines := []struct {
		s string
		c color.RGBA
	}{
		{fmt.Sprintf("Score: %d", score), scoreColor},
		{fmt.Sprintf("Best: %d", best), config.TextLightColor},
		{fmt.Sprintf("Deaths: %d", deaths), config.TextLightColor},
	}
	y := i.Y + lineHeight
	for _, l := range lines {
		// тень
		text.Draw(screen, l.s, i.face, i.X+1, y+1, render.DarkenColor(config.BackgroundColor))
		text.Draw(screen, l.s, i.face, i.X, y, l.c)
		y += lineHeight
	}
}
