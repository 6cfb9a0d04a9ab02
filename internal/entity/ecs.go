// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-flappy-spin/internal/component"
	"go-flappy-spin/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Gravities   map[types.EntityID]*component.Gravity
	Renderables map[types.EntityID]*component.Renderable
	Balls       map[types.EntityID]*component.Ball
	Obstacles   map[types.EntityID]*component.Obstacle
	Camera      *component.Camera
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Gravities:   make(map[types.EntityID]*component.Gravity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Balls:       make(map[types.EntityID]*component.Ball),
		Obstacles:   make(map[types.EntityID]*component.Obstacle),
		Camera:      &component.Camera{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Gravities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Balls, id)
	delete(ecs.Obstacles, id)
}

// ObstacleIDs возвращает ID препятствий по возрастанию, чтобы обход
// не зависел от порядка map.
func (ecs *ECS) ObstacleIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Obstacles))
	for id := range ecs.Obstacles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
