// internal/system/spawn.go
package system

import (
	"math"

	"go-flappy-spin/internal/component"
	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/entity"
	"go-flappy-spin/internal/interfaces"
	"go-flappy-spin/internal/types"
	"go-flappy-spin/internal/utils"
)

// SpawnSystem выпускает пары стен с левого края. Чем больше счёт,
// тем чаще, быстрее и уже.
type SpawnSystem struct {
	ecs        *entity.ECS
	rng        *utils.PRNGService
	game       interfaces.GameContext
	difficulty config.Difficulty
	timerMs    float64
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService, game interfaces.GameContext, difficulty config.Difficulty) *SpawnSystem {
	return &SpawnSystem{
		ecs:        ecs,
		rng:        rng,
		game:       game,
		difficulty: difficulty,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.timerMs += deltaTime * 1000
	interval := s.Interval(s.game.Score())
	if s.timerMs >= interval {
		s.timerMs -= interval
		s.Spawn()
	}
}

// Interval пауза между стенами в миллисекундах
func (s *SpawnSystem) Interval(score int) float64 {
	return math.Max(config.MinWallInterval, config.WallInterval-float64(score)*s.difficulty.IntervalStepMs)
}

// Speed скорость стен в px/s
func (s *SpawnSystem) Speed(score int) float64 {
	return math.Min(config.MaxWallSpeed, config.WallSpeed+float64(score)*s.difficulty.SpeedStep)
}

// Gap высота просвета
func (s *SpawnSystem) Gap(score int) float64 {
	return math.Max(config.MinWallGap, config.WallGap-float64(score)*s.difficulty.GapStep)
}

// Spawn создаёт пару стен прямо сейчас и возвращает её ID.
func (s *SpawnSystem) Spawn() types.EntityID {
	score := s.game.Score()
	gap := s.Gap(score)
	gapTop := s.rng.Between(int(config.WallMarginY), int(config.ScreenHeight-config.WallMarginY-gap))

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: -config.WallWidth / 2, Y: config.ScreenHeight / 2}
	s.ecs.Velocities[id] = &component.Velocity{X: s.Speed(score)}
	s.ecs.Obstacles[id] = &component.Obstacle{
		Width:     config.WallWidth,
		GapTop:    float64(gapTop),
		GapHeight: gap,
		Height:    config.ScreenHeight,
		Tint:      s.game.WallColor(),
	}
	return id
}
