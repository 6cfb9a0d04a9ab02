// internal/assets/fonts.go
package assets

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	HUDFontSize    = 20
	BannerFontSize = 40
)

// Fonts шрифты, которые нужны интерфейсу
type Fonts struct {
	HUD    font.Face
	Banner font.Face
}

// LoadFonts разбирает встроенный Go Regular и создаёт два кегля.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	hud, err := newFace(tt, HUDFontSize)
	if err != nil {
		return nil, err
	}
	banner, err := newFace(tt, BannerFontSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{HUD: hud, Banner: banner}, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %vpt face: %w", size, err)
	}
	return face, nil
}
