// internal/audio/manager.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"go-flappy-spin/internal/config"
	"go-flappy-spin/internal/interfaces"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

var _ interfaces.SoundPlayer = (*Manager)(nil)

// Manager проигрывает эффекты через общий микшер. Без успешного Init
// (или при выключенном звуке) Play ничего не делает.
type Manager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

func NewManager(cfg config.AudioConfig) *Manager {
	return &Manager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init открывает аудиоустройство. Повторный вызов ничего не делает.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Enabled true, если звук реально будет слышен
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

func (m *Manager) Play(s interfaces.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	streamer := m.create(s)
	if streamer == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

func (m *Manager) create(s interfaces.Sound) beep.Streamer {
	vol := m.cfg.MasterVolume
	switch s {
	case interfaces.SoundFlap:
		return CreateFlapSound(m.rate, vol)
	case interfaces.SoundScore:
		return CreateScoreSound(m.rate, vol)
	case interfaces.SoundCrash:
		return CreateCrashSound(m.rate, vol)
	case interfaces.SoundRotate:
		return CreateRotateSound(m.rate, vol)
	}
	return nil
}

// Close глушит всё, что ещё играет.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
