// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings возвращается, когда файл настроек прочитан, но значения бессмысленны.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings параметры, которые можно поменять без пересборки.
type Settings struct {
	WindowTitle string      `yaml:"window_title"`
	RecordsPath string      `yaml:"records_path"`
	Seed        int64       `yaml:"seed"`
	PprofAddr   string      `yaml:"pprof_addr"` // пусто = без pprof
	Log         LogConfig   `yaml:"log"`
	Audio       AudioConfig `yaml:"audio"`
	Difficulty  Difficulty  `yaml:"difficulty"`
	Palette     []string    `yaml:"palette"` // четыре цвета "#rrggbb", пусто = CardinalColors
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
}

// Difficulty описывает, как усложняется игра с ростом счёта.
// Все шаги применяются за одно очко.
type Difficulty struct {
	IntervalStepMs float64 `yaml:"interval_step_ms"`
	SpeedStep      float64 `yaml:"speed_step"`
	GapStep        float64 `yaml:"gap_step"`
}

// DefaultSettings значения, с которыми игра запускается без файла.
func DefaultSettings() Settings {
	return Settings{
		WindowTitle: "Flappy Spin",
		RecordsPath: "records.yaml",
		Log: LogConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.5,
		},
		Difficulty: Difficulty{
			IntervalStepMs: 15,
			SpeedStep:      4,
			GapStep:        1,
		},
	}
}

// LoadSettings читает YAML поверх значений по умолчанию.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию и found=false.
func LoadSettings(path string) (s Settings, found bool, err error) {
	s = DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, false, nil
	}
	if err != nil {
		return s, false, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), true, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), true, err
	}
	return s, true, nil
}

// Validate проверяет диапазоны значений.
func (s Settings) Validate() error {
	if s.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive, got %d", ErrInvalidSettings, s.Audio.SampleRate)
	}
	if s.Audio.MasterVolume < 0 || s.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume must be in [0,1], got %v", ErrInvalidSettings, s.Audio.MasterVolume)
	}
	d := s.Difficulty
	if d.IntervalStepMs < 0 || d.SpeedStep < 0 || d.GapStep < 0 {
		return fmt.Errorf("%w: difficulty steps must not be negative", ErrInvalidSettings)
	}
	if _, err := s.CardinalPalette(); err != nil {
		return err
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidSettings, s.Log.Level)
	}
	return nil
}

// CardinalPalette цвета стен для четырёх положений камеры.
func (s Settings) CardinalPalette() ([4]color.RGBA, error) {
	if len(s.Palette) == 0 {
		return CardinalColors, nil
	}
	var out [4]color.RGBA
	if len(s.Palette) != len(out) {
		return out, fmt.Errorf("%w: palette needs %d colors, got %d", ErrInvalidSettings, len(out), len(s.Palette))
	}
	for i, hex := range s.Palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return out, fmt.Errorf("%w: palette[%d]: %v", ErrInvalidSettings, i, err)
		}
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out, nil
}
