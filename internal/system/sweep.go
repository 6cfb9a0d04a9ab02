// internal/system/sweep.go
package system

import (
	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/entity"
	"go-flappy-spin/internal/event"
)

// SweepSystem раз в кадр убирает пары стен, ушедшие за правый край, и на
// каждую удалённую пару шлёт ровно одно событие WallPassed. Удаление и
// событие происходят в одном месте, так что повторно пара не засчитается.
type SweepSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	limitX          float64
}

func NewSweepSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *SweepSystem {
	return &SweepSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		limitX:          config.ScreenWidth,
	}
}

// Update возвращает число убранных пар.
func (s *SweepSystem) Update() int {
	retired := 0
	for _, id := range s.ecs.ObstacleIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}
		if pos.X-s.ecs.Obstacles[id].Width/2 <= s.limitX {
			continue
		}
		s.ecs.RemoveEntity(id)
		retired++
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WallPassed,
			Data: event.WallPassedData{Obstacle: id},
		})
	}
	return retired
}
