package entity

import (
	"testing"

	"go-flappy-spin/internal/component"
)

func TestNewEntityIsMonotonic(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	if a == 0 || b != a+1 {
		t.Errorf("ids = %d, %d", a, b)
	}
}

func TestRemoveEntityDropsEveryComponent(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Obstacles[id] = &component.Obstacle{}
	ecs.Renderables[id] = &component.Renderable{}

	ecs.RemoveEntity(id)

	if len(ecs.Positions)+len(ecs.Velocities)+len(ecs.Obstacles)+len(ecs.Renderables) != 0 {
		t.Error("components left after RemoveEntity")
	}
}

func TestObstacleIDsSorted(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 20; i++ {
		ecs.Obstacles[ecs.NewEntity()] = &component.Obstacle{}
	}
	ids := ecs.ObstacleIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not ascending: %v", ids)
		}
	}
}
