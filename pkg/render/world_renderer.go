// pkg/render/world_renderer.go
package render

import (
	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует мир в отдельное изображение и выводит его на экран,
// повернув вокруг центра на угол камеры. HUD рисуется поверх, без поворота.
type WorldRenderer struct {
	ecs   *entity.ECS
	world *ebiten.Image
}

func NewWorldRenderer(ecs *entity.ECS) *WorldRenderer {
	return &WorldRenderer{ecs: ecs}
}

func (r *WorldRenderer) Draw(screen *ebiten.Image) {
	if r.world == nil {
		r.world = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	}
	r.world.Fill(config.BackgroundColor)

	// Сначала стены
	for _, id := range r.ecs.ObstacleIDs() {
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		o := r.ecs.Obstacles[id]
		top, bottom := o.Walls(pos.X)
		for _, w := range [2]struct{ x, y, w, h float64 }{
			{top.MinX, top.MinY, top.MaxX - top.MinX, top.MaxY - top.MinY},
			{bottom.MinX, bottom.MinY, bottom.MaxX - bottom.MinX, bottom.MaxY - bottom.MinY},
		} {
			vector.DrawFilledRect(r.world, float32(w.x), float32(w.y), float32(w.w), float32(w.h), o.Tint, false)
		}
	}

	// Затем мяч
	for id, rd := range r.ecs.Renderables {
		if pos, hasPos := r.ecs.Positions[id]; hasPos {
			vector.DrawFilledCircle(r.world, float32(pos.X), float32(pos.Y), rd.Radius, rd.Color, true)
		}
	}

	screen.Fill(config.BackgroundColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-config.ScreenWidth/2, -config.ScreenHeight/2)
	op.GeoM.Rotate(r.ecs.Camera.Rotation)
	op.GeoM.Translate(config.ScreenWidth/2, config.ScreenHeight/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.world, op)
}

// Dispose освобождает буфер мира.
func (r *WorldRenderer) Dispose() {
	if r.world != nil {
		r.world.Deallocate()
		r.world = nil
	}
}
