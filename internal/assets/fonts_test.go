package assets

import "testing"

func TestLoadFonts(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts: %v", err)
	}
	hud := f.HUD.Metrics().Height.Ceil()
	banner := f.Banner.Metrics().Height.Ceil()
	if hud <= 0 || banner <= hud {
		t.Errorf("line heights hud=%d banner=%d, want 0 < hud < banner", hud, banner)
	}
}
