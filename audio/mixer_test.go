package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constant returns a finite streamer emitting val for n samples
func constant(val float64, n int) beep.Streamer {
	left := n
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if left <= 0 {
			return 0, false
		}
		k := len(samples)
		if k > left {
			k = left
		}
		for i := 0; i < k; i++ {
			samples[i] = [2]float64{val, val}
		}
		left -= k
		return k, true
	})
}

func TestMixerPlayUnknownHandle(t *testing.T) {
	m := NewMixer(48000, 1)
	m.Play(NoSample)
	m.Play(Sample(42))
	assert.Equal(t, uint64(0), m.Played())
	assert.Equal(t, 0, m.Playing())
}

func TestMixerPlaysAndDrains(t *testing.T) {
	m := NewMixer(48000, 0.5)
	s := m.Register(constant(0.8, 100))
	require.NotEqual(t, NoSample, s)

	m.Play(s)
	m.Play(s)
	assert.Equal(t, uint64(2), m.Played())
	assert.Equal(t, 2, m.Playing())

	buf := make([][2]float64, 50)
	n, ok := m.Stream(buf)
	assert.Equal(t, 50, n)
	assert.True(t, ok)
	// Two instances of 0.8 at half master volume
	assert.InDelta(t, 0.8, buf[0][0], 1e-3)
	assert.InDelta(t, 0.8, buf[49][1], 1e-3)

	big := make([][2]float64, 512)
	m.Stream(big)
	m.Stream(big)
	assert.Equal(t, 0, m.Playing())

	// Silence once drained
	m.Stream(buf)
	for _, frame := range buf {
		assert.Zero(t, frame[0])
	}
}

func TestMixerStopClears(t *testing.T) {
	m := NewMixer(48000, 1)
	s := m.Register(constant(1, 1000))
	m.Play(s)
	m.Stop()
	assert.Equal(t, 0, m.Playing())
}

func TestRegisterBankProducesAudibleSamples(t *testing.T) {
	m := NewMixer(48000, 1)
	bank := RegisterBank(m)

	handles := []Sample{bank.Jump[0], bank.Jump[1], bank.Shoot}
	seen := map[Sample]bool{}
	for _, h := range handles {
		assert.NotEqual(t, NoSample, h)
		assert.False(t, seen[h], "handles must be distinct")
		seen[h] = true
	}

	for _, h := range handles {
		m.Play(h)
		buf := make([][2]float64, 2048)
		m.Stream(buf)

		energy := 0.0
		for _, frame := range buf {
			energy += math.Abs(frame[0])
		}
		assert.Greater(t, energy, 0.0, "sample %d is silent", h)
		m.Stop()
	}
}

func TestSweepTerminates(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewSweep(100, 200, 10*time.Millisecond, WaveSine, rate)
	total := 0
	buf := make([][2]float64, 16)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, rate.N(10*time.Millisecond), total)
}
