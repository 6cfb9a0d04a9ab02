// internal/effect/rotation.go
package effect

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
)

const (
	// DefaultDurationMs длительность одного поворота на 90°
	DefaultDurationMs = 2000.0
	// ScoreStep сколько очков нужно для следующей четверти оборота
	ScoreStep = 10

	quarterTurn = math.Pi / 2
)

// Viewport всё, что умеет поворачиваться (камера).
type Viewport interface {
	SetRotation(radians float64)
}

// Tintable объект, на который можно наложить цвет.
type Tintable interface {
	SetTint(c color.RGBA)
}

// Palette цвета для четырёх положений камеры (0°, 90°, 180°, 270°).
type Palette [4]color.RGBA

// RotationController поворачивает камеру на четверть оборота за каждые
// ScoreStep очков и одновременно перекрашивает препятствия.
//
// Поворот накапливается и не сворачивается в [0, 2π), поэтому храним
// номер четверти целым числом: угол всегда равен quadrant*π/2 без
// накопленной ошибки округления.
type RotationController struct {
	viewport   Viewport
	log        *zap.SugaredLogger
	durationMs float64

	currentQuadrant int
	targetQuadrant  int
	animating       bool
	progress        float64
}

// NewRotationController создаёт контроллер в состоянии покоя (угол 0).
func NewRotationController(viewport Viewport, durationMs float64, log *zap.SugaredLogger) *RotationController {
	if durationMs <= 0 {
		durationMs = DefaultDurationMs
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &RotationController{
		viewport:   viewport,
		log:        log,
		durationMs: durationMs,
	}
}

// RequestRotation ставит новую цель по счёту. Пока идёт анимация,
// запросы отбрасываются, а не копятся.
func (c *RotationController) RequestRotation(score int) {
	desired := quadrantForScore(score)
	if desired == c.currentQuadrant || c.animating {
		return
	}
	c.targetQuadrant = desired
	c.animating = true
	c.progress = 0
	c.log.Debugw("camera rotation started",
		"score", score,
		"targetDegrees", float64(desired)*90,
	)
}

// Advance продвигает анимацию на deltaMs, красит obstacles и возвращает
// базовый цвет стен. Пока переход не закончен, возвращается fallback;
// в кадре завершения возвращается конечный цвет.
func (c *RotationController) Advance(deltaMs float64, obstacles []Tintable, palette Palette, fallback color.RGBA) color.RGBA {
	if !c.animating {
		return fallback
	}

	if deltaMs < 0 {
		deltaMs = 0
	}
	c.progress += deltaMs / c.durationMs
	if c.progress > 1 {
		c.progress = 1
	}

	from := quadrantAngle(c.currentQuadrant)
	to := quadrantAngle(c.targetQuadrant)
	if c.viewport != nil {
		c.viewport.SetRotation(from + (to-from)*c.progress)
	}

	start := palette[paletteIndex(c.currentQuadrant)]
	end := palette[paletteIndex(c.targetQuadrant)]
	tint := BlendRGB(start, end, c.progress)
	for _, o := range obstacles {
		o.SetTint(tint)
	}

	if c.progress == 1 {
		c.animating = false
		c.currentQuadrant = c.targetQuadrant
		return tint
	}
	return fallback
}

// CurrentRotation угол, на котором закончилась последняя анимация.
func (c *RotationController) CurrentRotation() float64 {
	return quadrantAngle(c.currentQuadrant)
}

// TargetRotation угол, к которому движется (или двигалась) анимация.
func (c *RotationController) TargetRotation() float64 {
	return quadrantAngle(c.targetQuadrant)
}

func (c *RotationController) IsAnimating() bool { return c.animating }

// Progress доля пройденного перехода в [0, 1].
func (c *RotationController) Progress() float64 { return c.progress }

// BlendRGB линейно смешивает каналы R, G, B; t=0 даёт from, t=1 даёт to.
// Результат всегда непрозрачный.
func BlendRGB(from, to color.RGBA, t float64) color.RGBA {
	a := toColorful(from)
	b := toColorful(to)
	r, g, bl := a.BlendRgb(b, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func quadrantForScore(score int) int {
	return int(math.Floor(float64(score) / ScoreStep))
}

func quadrantAngle(q int) float64 {
	return float64(q) * quarterTurn
}

// paletteIndex номер четверти по модулю 4, всегда в 0..3.
func paletteIndex(q int) int {
	return ((q % 4) + 4) % 4
}
