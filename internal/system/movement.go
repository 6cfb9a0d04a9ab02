// internal/system/movement.go
package system

import (
	"go-flappy-spin/internal/entity"
)

// MovementSystem двигает всё, у чего есть скорость; мяч дополнительно
// разгоняется гравитацией. Полуявный Эйлер: сначала скорость, потом позиция.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, vel := range s.ecs.Velocities {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if g, hasGravity := s.ecs.Gravities[id]; hasGravity {
			vel.Y += g.Y * deltaTime
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
	}
}
