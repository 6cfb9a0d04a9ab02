// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06 // секунды, защита от скачка после сворачивания окна

	BallRadius     = 20.0
	BallStartY     = ScreenHeight - 100
	Gravity        = 800.0  // px/s²
	BounceVelocity = -350.0 // px/s, вверх

	WallSpeed       = 200.0 // px/s
	WallGap         = 180.0
	WallWidth       = 40.0
	WallInterval    = 1200.0 // ms
	WallMarginY     = 100.0  // отступ щели от верхнего и нижнего края
	MinWallInterval = 650.0
	MaxWallSpeed    = 340.0
	MinWallGap      = 130.0

	RotationDurationMs = 2000.0 // совпадает с effect.DefaultDurationMs

	HUDOffsetX = 20
	HUDOffsetY = 20
	HUDLineGap = 18
)

// Ключи в хранилище рекордов
const (
	BestScoreKey  = "bestScore"
	DeathCountKey = "deathCount"
)

var (
	BackgroundColor = color.RGBA{34, 34, 34, 255}
	BallColor       = color.RGBA{0, 234, 255, 255}
	CrashColor      = color.RGBA{255, 0, 0, 255}
	WallColor       = color.RGBA{255, 68, 68, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 140}

	// CardinalColors цвета стен для 0°, 90°, 180° и 270°.
	// Нулевой совпадает с исходным цветом стен.
	CardinalColors = [4]color.RGBA{
		WallColor,
		colornames.Limegreen,
		colornames.Dodgerblue,
		colornames.Gold,
	}
)
