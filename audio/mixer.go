package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/roomrow/parameter"
)

// Mixer owns registered sample buffers and mixes every playing instance
type Mixer struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	samples []*beep.Buffer
	played  uint64
}

// NewMixer creates a mixer at sampleRate with a master volume in [0, 1]
func NewMixer(sampleRate int, volume float64) *Mixer {
	return &Mixer{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// SampleRate returns the mixer rate
func (m *Mixer) SampleRate() beep.SampleRate {
	return m.rate
}

// Register renders a finite streamer into a buffer and returns its handle
func (m *Mixer) Register(s beep.Streamer) Sample {
	buf := beep.NewBuffer(beep.Format{SampleRate: m.rate, NumChannels: parameter.AudioChannels, Precision: 2})
	buf.Append(s)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = append(m.samples, buf)
	return Sample(len(m.samples))
}

// Play starts a new instance of a sample, unknown handles are ignored
func (m *Mixer) Play(sample Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := int(sample) - 1
	if i < 0 || i >= len(m.samples) {
		return
	}
	buf := m.samples[i]
	m.mixer.Add(buf.Streamer(0, buf.Len()))
	m.played++
}

// Playing returns the number of instances still in the mix
func (m *Mixer) Playing() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Len()
}

// Played returns the number of accepted play requests
func (m *Mixer) Played() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.played
}

// Stream mixes all playing instances at master volume
func (m *Mixer) Stream(samples [][2]float64) (n int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, _ = m.mixer.Stream(samples)
	for i := range samples {
		if i >= n {
			samples[i] = [2]float64{}
			continue
		}
		samples[i][0] *= m.volume
		samples[i][1] *= m.volume
	}
	// Never drains, silence is streamed while nothing plays
	return len(samples), true
}

func (m *Mixer) Err() error { return nil }

// Stop drops every playing instance, registered samples stay
func (m *Mixer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mixer.Clear()
}
