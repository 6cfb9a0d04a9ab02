// internal/system/collision.go
package system

import (
	"go-flappy-spin/internal/component"
	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/entity"
	"go-flappy-spin/internal/event"
	"go-flappy-spin/internal/utils"
)

// CollisionSystem проверяет мяч против стен и против верхнего/нижнего края.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update возвращает true, если в этом кадре мяч разбился.
func (s *CollisionSystem) Update() bool {
	crashed := false
	for id, ball := range s.ecs.Balls {
		if ball.Crashed {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		cause, hit := s.check(pos, ball.Radius)
		if !hit {
			continue
		}
		ball.Crashed = true
		crashed = true
		if r, ok := s.ecs.Renderables[id]; ok {
			r.Color = config.CrashColor
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BallCrashed,
			Data: event.BallCrashedData{Cause: cause},
		})
	}
	return crashed
}

func (s *CollisionSystem) check(pos *component.Position, radius float64) (event.CrashCause, bool) {
	if pos.Y > config.ScreenHeight-radius || pos.Y < radius {
		return event.CrashBounds, true
	}
	for _, id := range s.ecs.ObstacleIDs() {
		opos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		top, bottom := s.ecs.Obstacles[id].Walls(opos.X)
		if CircleOverlapsRect(pos.X, pos.Y, radius, top) || CircleOverlapsRect(pos.X, pos.Y, radius, bottom) {
			return event.CrashWall, true
		}
	}
	return "", false
}

// CircleOverlapsRect ближайшая к центру точка прямоугольника лежит внутри круга.
func CircleOverlapsRect(cx, cy, r float64, rect component.Rect) bool {
	nx := utils.Clamp(cx, rect.MinX, rect.MaxX)
	ny := utils.Clamp(cy, rect.MinY, rect.MaxY)
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy < r*r
}
