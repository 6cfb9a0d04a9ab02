// internal/app/game.go
package app

import (
	"image/color"

	"go-flappy-spin/internal/component"
	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/effect"
	"go-flappy-spin/internal/entity"
	"go-flappy-spin/internal/event"
	"go-flappy-spin/internal/interfaces"
	"go-flappy-spin/internal/session"
	"go-flappy-spin/internal/storage"
	"go-flappy-spin/internal/system"
	"go-flappy-spin/internal/types"
	"go-flappy-spin/internal/utils"

	"go.uber.org/zap"
)

var _ interfaces.GameContext = (*Game)(nil)

// Options всё, что Game получает снаружи.
type Options struct {
	Store      storage.Store
	Rng        *utils.PRNGService
	Difficulty config.Difficulty
	Palette    effect.Palette
	Sounds     interfaces.SoundPlayer // nil = без звука
	Log        *zap.SugaredLogger
}

type silent struct{}

func (silent) Play(interfaces.Sound) {}

// Game holds the state and logic of one attempt.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Session         *session.Session
	Rotation        *effect.RotationController

	MovementSystem  *system.MovementSystem
	SpawnSystem     *system.SpawnSystem
	SweepSystem     *system.SweepSystem
	CollisionSystem *system.CollisionSystem

	BallID types.EntityID

	palette   effect.Palette
	wallColor color.RGBA
	sounds    interfaces.SoundPlayer
	log       *zap.SugaredLogger
}

// NewGame initializes a new attempt. Ошибка чтения рекордов не фатальна:
// игра начинается с нулями, а ошибка возвращается для лога.
func NewGame(opts Options) (*Game, error) {
	if opts.Log == nil {
		opts.Log = zap.NewNop().Sugar()
	}
	if opts.Sounds == nil {
		opts.Sounds = silent{}
	}
	if opts.Rng == nil {
		opts.Rng = utils.NewPRNGService(0)
	}
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}

	sess, err := session.New(opts.Store)

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Session:         sess,
		Rotation:        effect.NewRotationController(ecs.Camera, config.RotationDurationMs, opts.Log),
		palette:         opts.Palette,
		wallColor:       opts.Palette[0],
		sounds:          opts.Sounds,
		log:             opts.Log,
	}
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.SpawnSystem = system.NewSpawnSystem(ecs, opts.Rng, g, opts.Difficulty)
	g.SweepSystem = system.NewSweepSystem(ecs, dispatcher)
	g.CollisionSystem = system.NewCollisionSystem(ecs, dispatcher)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.Flapped, listener)
	dispatcher.Subscribe(event.WallPassed, listener)
	dispatcher.Subscribe(event.BallCrashed, listener)

	g.createBall()
	return g, err
}

func (g *Game) createBall() {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: config.ScreenWidth / 2, Y: config.BallStartY}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Gravities[id] = &component.Gravity{Y: config.Gravity}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.BallColor, Radius: config.BallRadius}
	g.ECS.Balls[id] = &component.Ball{Radius: config.BallRadius}
	g.BallID = id
}

// Update один кадр. После удара мира больше не двигаем.
func (g *Game) Update(deltaTime float64) {
	if g.Session.Over {
		return
	}
	g.ECS.GameTime += deltaTime

	g.MovementSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	if !g.Session.Over {
		g.SweepSystem.Update()
	}
	g.wallColor = g.Rotation.Advance(deltaTime*1000, g.obstacles(), g.palette, g.wallColor)
}

// Flap подбрасывает мяч
func (g *Game) Flap() {
	g.EventDispatcher.Dispatch(event.Event{Type: event.Flapped})
}

// IsOver true после удара
func (g *Game) IsOver() bool { return g.Session.Over }

// Score текущий счёт
func (g *Game) Score() int { return g.Session.Score }

// WallColor базовый цвет для новых стен
func (g *Game) WallColor() color.RGBA { return g.wallColor }

// obstacles препятствия текущего кадра в виде Tintable, по возрастанию ID
func (g *Game) obstacles() []effect.Tintable {
	ids := g.ECS.ObstacleIDs()
	out := make([]effect.Tintable, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.ECS.Obstacles[id])
	}
	return out
}

func (g *Game) flap() {
	if g.Session.Over {
		return
	}
	if vel, ok := g.ECS.Velocities[g.BallID]; ok {
		vel.Y = config.BounceVelocity
		g.sounds.Play(interfaces.SoundFlap)
	}
}

func (g *Game) scorePoint() {
	if g.Session.Over {
		return
	}
	score, improved := g.Session.AddPoint()
	if improved {
		if err := g.Session.SaveBest(); err != nil {
			g.log.Warnw("could not persist best score", "error", err)
		}
	}
	g.sounds.Play(interfaces.SoundScore)

	wasAnimating := g.Rotation.IsAnimating()
	g.Rotation.RequestRotation(score)
	if !wasAnimating && g.Rotation.IsAnimating() {
		g.sounds.Play(interfaces.SoundRotate)
	}
}

func (g *Game) crash(cause event.CrashCause) {
	if !g.Session.End() {
		return
	}
	if err := g.Session.SaveDeaths(); err != nil {
		g.log.Warnw("could not persist death count", "error", err)
	}
	g.sounds.Play(interfaces.SoundCrash)
	g.log.Infow("session ended",
		"session", g.Session.ID.String(),
		"score", g.Session.Score,
		"best", g.Session.BestScore,
		"deaths", g.Session.Deaths,
		"cause", string(cause),
	)
}
