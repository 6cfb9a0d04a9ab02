// internal/component/obstacle.go
package component

import "image/color"

// Rect прямоугольник в мировых координатах
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Obstacle пара стен (верхняя и нижняя) с просветом между ними.
// X центра пары хранится в Position.
type Obstacle struct {
	Width     float64
	GapTop    float64 // верхняя граница просвета
	GapHeight float64
	Height    float64 // высота мира, до неё тянется нижняя стена
	Tint      color.RGBA
}

// SetTint перекрашивает обе стены пары.
func (o *Obstacle) SetTint(c color.RGBA) {
	o.Tint = c
}

// Walls возвращает верхнюю и нижнюю стены для центра centerX.
func (o *Obstacle) Walls(centerX float64) (top, bottom Rect) {
	minX := centerX - o.Width/2
	maxX := centerX + o.Width/2
	top = Rect{MinX: minX, MinY: 0, MaxX: maxX, MaxY: o.GapTop}
	bottom = Rect{MinX: minX, MinY: o.GapTop + o.GapHeight, MaxX: maxX, MaxY: o.Height}
	return top, bottom
}
