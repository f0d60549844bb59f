// Package output connects an audio.Mixer to the system speaker.
// It is the only package that links the platform audio backend.
package output

import (
	"fmt"

	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/roomrow/audio"
	"github.com/lixenwraith/roomrow/parameter"
)

// Device is an open speaker fed by a mixer
type Device struct {
	mixer *audio.Mixer
}

// Open initializes the speaker at the mixer rate and starts streaming the mix
func Open(m *audio.Mixer) (*Device, error) {
	rate := m.SampleRate()
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(m)
	return &Device{mixer: m}, nil
}

// Close silences the mix and releases the speaker
func (d *Device) Close() {
	d.mixer.Stop()
	speaker.Clear()
	speaker.Close()
}
