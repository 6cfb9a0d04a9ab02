package effect

import (
	"image/color"
	"math"
	"testing"
)

type fakeViewport struct {
	rotation float64
	calls    int
}

func (v *fakeViewport) SetRotation(radians float64) {
	v.rotation = radians
	v.calls++
}

type fakeWall struct {
	tint color.RGBA
}

func (w *fakeWall) SetTint(c color.RGBA) { w.tint = c }

var (
	red    = color.RGBA{255, 0, 0, 255}
	green  = color.RGBA{0, 255, 0, 255}
	blue   = color.RGBA{0, 0, 255, 255}
	yellow = color.RGBA{255, 255, 0, 255}
	grey   = color.RGBA{90, 90, 90, 255}

	testPalette = Palette{red, green, blue, yellow}
)

func newTestController() (*RotationController, *fakeViewport) {
	vp := &fakeViewport{}
	return NewRotationController(vp, DefaultDurationMs, nil), vp
}

func TestAdvanceIdleReturnsFallback(t *testing.T) {
	c, vp := newTestController()
	wall := &fakeWall{}

	for _, dt := range []float64{0, 16.6, 5000} {
		got := c.Advance(dt, []Tintable{wall}, testPalette, grey)
		if got != grey {
			t.Errorf("Advance(%v) while idle = %v, want %v", dt, got, grey)
		}
	}
	if c.CurrentRotation() != 0 {
		t.Errorf("CurrentRotation = %v, want 0", c.CurrentRotation())
	}
	if vp.calls != 0 {
		t.Errorf("viewport touched %d times while idle", vp.calls)
	}
	if wall.tint != (color.RGBA{}) {
		t.Errorf("wall tinted while idle: %v", wall.tint)
	}
}

func TestRequestRotationQuantizesScore(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{10, math.Pi / 2},
		{12, math.Pi / 2},
		{19, math.Pi / 2},
		{20, math.Pi},
		{35, 3 * math.Pi / 2},
		{41, 2 * math.Pi},
	}
	for _, tt := range tests {
		c, _ := newTestController()
		c.RequestRotation(tt.score)
		if !c.IsAnimating() {
			t.Errorf("score %d: expected animation to start", tt.score)
		}
		if math.Abs(c.TargetRotation()-tt.want) > 1e-12 {
			t.Errorf("score %d: target = %v, want %v", tt.score, c.TargetRotation(), tt.want)
		}
	}
}

func TestRequestRotationBelowFirstMilestoneIsNoop(t *testing.T) {
	for score := 0; score <= 9; score++ {
		c, _ := newTestController()
		c.RequestRotation(score)
		if c.IsAnimating() {
			t.Errorf("score %d started an animation", score)
		}
		if c.TargetRotation() != 0 {
			t.Errorf("score %d: target = %v, want 0", score, c.TargetRotation())
		}
	}
}

func TestRequestRotationDroppedWhileAnimating(t *testing.T) {
	c, _ := newTestController()
	c.RequestRotation(10)
	c.Advance(500, nil, testPalette, grey)
	c.RequestRotation(25)

	if math.Abs(c.TargetRotation()-math.Pi/2) > 1e-12 {
		t.Errorf("target = %v, want first request's π/2", c.TargetRotation())
	}
	if c.Progress() != 0.25 {
		t.Errorf("progress reset by dropped request: %v", c.Progress())
	}
}

func TestAdvanceConvergesMonotonically(t *testing.T) {
	c, _ := newTestController()
	c.RequestRotation(10)

	prev := c.Progress()
	steps := 0
	for c.IsAnimating() {
		c.Advance(300, nil, testPalette, grey)
		if c.Progress() <= prev {
			t.Fatalf("progress did not increase: %v -> %v", prev, c.Progress())
		}
		prev = c.Progress()
		steps++
		if steps > 100 {
			t.Fatal("animation never finished")
		}
	}
	if c.Progress() != 1 {
		t.Errorf("final progress = %v, want 1", c.Progress())
	}
	if steps != 7 {
		t.Errorf("finished after %d steps, want 7", steps)
	}

	rot := c.CurrentRotation()
	for i := 0; i < 3; i++ {
		c.Advance(300, nil, testPalette, grey)
	}
	if c.CurrentRotation() != rot {
		t.Errorf("idle advance changed rotation: %v -> %v", rot, c.CurrentRotation())
	}
}

func TestAdvanceOvershootSnapsToEnd(t *testing.T) {
	c, vp := newTestController()
	wall := &fakeWall{}
	c.RequestRotation(10)

	got := c.Advance(5000, []Tintable{wall}, testPalette, grey)

	if c.Progress() != 1 {
		t.Errorf("progress = %v, want exactly 1", c.Progress())
	}
	if c.IsAnimating() {
		t.Error("still animating after overshoot")
	}
	if c.CurrentRotation() != c.TargetRotation() {
		t.Errorf("current %v != target %v", c.CurrentRotation(), c.TargetRotation())
	}
	if got != green {
		t.Errorf("returned %v, want pure end color %v", got, green)
	}
	if wall.tint != green {
		t.Errorf("wall tint = %v, want %v", wall.tint, green)
	}
	if math.Abs(vp.rotation-math.Pi/2) > 1e-12 {
		t.Errorf("viewport rotation = %v, want π/2", vp.rotation)
	}
}

func TestAdvanceExampleScenario(t *testing.T) {
	c, vp := newTestController()
	walls := []Tintable{&fakeWall{}, &fakeWall{}}

	c.RequestRotation(12)

	got := c.Advance(1000, walls, testPalette, grey)
	if got != grey {
		t.Errorf("mid-transition returned %v, want fallback %v", got, grey)
	}
	if c.Progress() != 0.5 {
		t.Errorf("progress = %v, want 0.5", c.Progress())
	}
	if math.Abs(vp.rotation-math.Pi/4) > 1e-12 {
		t.Errorf("rotation = %v, want π/4", vp.rotation)
	}
	half := color.RGBA{128, 128, 0, 255}
	for i, w := range walls {
		if w.(*fakeWall).tint != half {
			t.Errorf("wall %d tint = %v, want %v", i, w.(*fakeWall).tint, half)
		}
	}

	got = c.Advance(1000, walls, testPalette, grey)
	if got != green {
		t.Errorf("final color = %v, want %v", got, green)
	}
	if c.IsAnimating() {
		t.Error("expected idle after second advance")
	}
	if math.Abs(vp.rotation-math.Pi/2) > 1e-12 {
		t.Errorf("rotation = %v, want π/2", vp.rotation)
	}
}

func TestPaletteWrapsAfterFullTurn(t *testing.T) {
	c, _ := newTestController()
	var base color.RGBA
	for _, score := range []int{10, 20, 30, 40} {
		c.RequestRotation(score)
		base = c.Advance(DefaultDurationMs, nil, testPalette, base)
	}
	if base != red {
		t.Errorf("after four quarter turns color = %v, want %v", base, red)
	}
	if math.Abs(c.CurrentRotation()-2*math.Pi) > 1e-12 {
		t.Errorf("rotation = %v, want cumulative 2π", c.CurrentRotation())
	}

	c.RequestRotation(50)
	got := c.Advance(DefaultDurationMs, nil, testPalette, base)
	if got != green {
		t.Errorf("fifth quarter color = %v, want %v", got, green)
	}
}

func TestBlendRGBBounds(t *testing.T) {
	from := color.RGBA{10, 200, 40, 255}
	to := color.RGBA{250, 0, 100, 255}

	if got := BlendRGB(from, to, 0); got != from {
		t.Errorf("t=0: %v, want %v", got, from)
	}
	if got := BlendRGB(from, to, 1); got != to {
		t.Errorf("t=1: %v, want %v", got, to)
	}
	if got, want := BlendRGB(from, to, 0.25), (color.RGBA{70, 150, 55, 255}); got != want {
		t.Errorf("t=0.25: %v, want %v", got, want)
	}
}

func TestAdvanceNegativeDeltaKeepsProgress(t *testing.T) {
	c, _ := newTestController()
	c.RequestRotation(10)
	c.Advance(500, nil, testPalette, red)

	c.Advance(-300, nil, testPalette, red)
	if got := c.Progress(); got != 0.25 {
		t.Errorf("progress = %v, want 0.25", got)
	}
	if !c.IsAnimating() {
		t.Error("negative delta stopped the animation")
	}
}
