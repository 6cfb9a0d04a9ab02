// internal/interfaces/sound.go
package interfaces

import "fmt"

// Sound звуковой эффект игры
type Sound int

const (
	SoundFlap Sound = iota
	SoundScore
	SoundCrash
	SoundRotate
)

func (s Sound) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundCrash:
		return "crash"
	case SoundRotate:
		return "rotate"
	}
	return fmt.Sprintf("Sound(%d)", int(s))
}

// SoundPlayer проигрывает эффекты; реализация может молчать.
type SoundPlayer interface {
	Play(s Sound)
}
