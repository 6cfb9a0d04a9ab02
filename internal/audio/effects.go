// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует волну заданной частоты; частота может линейно
// меняться от freq до freqEnd за всю длительность.
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator создаёт осциллятор постоянной частоты
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep создаёт осциллятор со скольжением частоты от from к to
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqEnd:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope плавно включает и гасит звук, чтобы не было щелчков
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope упрощённая огибающая: только attack и release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume громкость в линейной шкале; log2(0) даёт -Inf, поэтому ноль глушим отдельно
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	flapDuration   = 90 * time.Millisecond
	scoreDuration  = 220 * time.Millisecond
	crashDuration  = 350 * time.Millisecond
	rotateDuration = 600 * time.Millisecond
)

// CreateFlapSound короткий восходящий писк
func CreateFlapSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(420, 760, flapDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, flapDuration, 5*time.Millisecond, 40*time.Millisecond, rate)
	return newVolume(shaped, vol*0.4)
}

// CreateScoreSound двухнотный звон за пройденную стену
func CreateScoreSound(rate beep.SampleRate, vol float64) beep.Streamer {
	half := scoreDuration / 2
	first := NewEnvelope(NewOscillator(880, half, WaveSine, rate), half, 3*time.Millisecond, 30*time.Millisecond, rate)
	second := NewEnvelope(NewOscillator(1320, half, WaveSine, rate), half, 3*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(beep.Seq(first, second), vol*0.7)
}

// CreateCrashSound шумовой удар
func CreateCrashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, crashDuration, WaveNoise, rate)
	thud := NewSweep(180, 40, crashDuration, WaveSaw, rate)
	mixed := beep.Mix(
		newVolume(NewEnvelope(noise, crashDuration, 2*time.Millisecond, 300*time.Millisecond, rate), 0.6),
		newVolume(NewEnvelope(thud, crashDuration, 2*time.Millisecond, 250*time.Millisecond, rate), 0.5),
	)
	return newVolume(mixed, vol)
}

// CreateRotateSound медленный свип на время начала поворота камеры
func CreateRotateSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(220, 440, rotateDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, rotateDuration, 120*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(shaped, vol*0.5)
}
