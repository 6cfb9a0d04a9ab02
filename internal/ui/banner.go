// internal/ui/banner.go
package ui

import (
	"image/color"
	"strings"

	"go-flappy-spin/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Banner крупный текст по центру экрана поверх затемнения.
type Banner struct {
	face    font.Face
	Color   color.Color
	Overlay color.Color
}

func NewBanner(face font.Face) *Banner {
	return &Banner{
		face:    face,
		Color:   config.TextLightColor,
		Overlay: config.OverlayColor,
	}
}

// Draw рисует строки message (через \n), каждую по центру.
func (b *Banner) Draw(screen *ebiten.Image, message string) {
	if b.Overlay != nil {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, b.Overlay, false)
	}

	lines := strings.Split(message, "\n")
	lineHeight := b.face.Metrics().Height.Ceil()
	y := config.ScreenHeight/2 - lineHeight*len(lines)/2 + b.face.Metrics().Ascent.Ceil()
	for _, line := range lines {
		bounds := text.BoundString(b.face, line)
		x := (config.ScreenWidth - bounds.Dx()) / 2
		text.Draw(screen, line, b.face, x, y, b.Color)
		y += lineHeight
	}
}
