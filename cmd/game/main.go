// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-flappy-spin/internal/assets"
	"go-flappy-spin/internal/audio"
	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/logger"
	"go-flappy-spin/internal/state"
	"go-flappy-spin/internal/storage"
	"go-flappy-spin/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const (
	settingsPath  = "settings.yaml"
	startFromGame = false // true: сразу в игру, false: через меню
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	// отрицательная дельта (переведённые часы) превращается в ноль,
	// слишком большая (свёрнутое окно) обрезается
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, found, err := config.LoadSettings(settingsPath)
	if err != nil {
		log.Printf("settings: %v; using defaults", err)
	}

	lg, err := logger.New(logger.Config{Level: settings.Log.Level, Development: settings.Log.Development})
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()
	lg.Infow("settings loaded", "path", settingsPath, "found", found)

	if settings.PprofAddr != "" {
		go func() {
			lg.Warnw("pprof server stopped", "error", http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	svc, err := newServices(settings, lg)
	if err != nil {
		lg.Fatalw("startup failed", "error", err)
	}
	defer svc.Audio.Close()

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, svc))
	} else {
		sm.SetState(state.NewMenuState(sm, svc))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(settings.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		lg.Fatalw("game loop failed", "error", err)
	}
}

func newServices(settings config.Settings, lg *zap.SugaredLogger) (*state.Services, error) {
	palette, err := settings.CardinalPalette()
	if err != nil {
		return nil, err
	}

	var store storage.Store
	if settings.RecordsPath == "" {
		store = storage.NewMemoryStore()
	} else {
		fs, err := storage.OpenFileStore(settings.RecordsPath)
		if err != nil {
			lg.Warnw("records file unreadable, records will not persist", "error", err)
			store = storage.NewMemoryStore()
		} else {
			store = fs
		}
	}

	sound := audio.NewManager(settings.Audio)
	if err := sound.Init(); err != nil {
		lg.Warnw("audio disabled", "error", err)
	}

	fonts, err := assets.LoadFonts()
	if err != nil {
		return nil, err
	}

	return &state.Services{
		Settings: settings,
		Palette:  palette,
		Store:    store,
		Audio:    sound,
		Fonts:    fonts,
		Rng:      utils.NewPRNGService(settings.Seed),
		Log:      lg,
	}, nil
}
