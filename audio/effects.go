package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// sweep generates a finite wave whose frequency glides from startFreq to endFreq
type sweep struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	rng       *rand.Rand
}

// NewSweep creates a gliding oscillator
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		rng:       rand.New(rand.NewSource(int64(startFreq*1000 + endFreq))),
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
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
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
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

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with a linear gain, zero gain is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Jump sound durations
const (
	jumpDuration = 180 * time.Millisecond
	jumpAttack   = 5 * time.Millisecond
	jumpRelease  = 120 * time.Millisecond

	shootDuration = 90 * time.Millisecond
	shootAttack   = 2 * time.Millisecond
	shootRelease  = 70 * time.Millisecond
)

// CreateJumpSound generates a rising chirp, variant shifts the pitch so two jumps sound apart
func CreateJumpSound(rate beep.SampleRate, variant int) beep.Streamer {
	base := 220.0 * (1 + 0.25*float64(variant))
	osc := NewSweep(base, base*3, jumpDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, jumpDuration, jumpAttack, jumpRelease, rate)
	return beep.Take(rate.N(jumpDuration), newVolume(shaped, 0.4))
}

// CreateShootSound generates a falling zap over a short sine tail
func CreateShootSound(rate beep.SampleRate) beep.Streamer {
	zap := NewEnvelope(NewSweep(1400, 300, shootDuration, WaveSquare, rate), shootDuration, shootAttack, shootRelease, rate)
	noise := NewEnvelope(NewSweep(0, 0, shootDuration, WaveNoise, rate), shootDuration, shootAttack, shootRelease, rate)

	tail := beep.Silence(0)
	if sine, err := generators.SineTone(rate, 880); err == nil {
		tail = beep.Take(rate.N(shootDuration), sine)
	}

	// Take bounds the mix so buffering always terminates
	return beep.Take(rate.N(shootDuration), beep.Mix(
		newVolume(zap, 0.35),
		newVolume(noise, 0.15),
		newVolume(NewEnvelope(tail, shootDuration, shootAttack, shootRelease, rate), 0.1),
	))
}
