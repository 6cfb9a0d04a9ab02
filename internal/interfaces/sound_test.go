package interfaces

import "testing"

func TestSoundString(t *testing.T) {
	if SoundRotate.String() != "rotate" || Sound(42).String() != "Sound(42)" {
		t.Errorf("unexpected names: %s, %s", SoundRotate, Sound(42))
	}
}
