package parameter

import "time"

// Audio defaults, overridable through configuration
const (
	AudioSampleRate = 48000
	AudioVolume     = 0.2
	AudioChannels   = 2

	// AudioBufferDuration is the speaker buffer, it bounds playback latency
	AudioBufferDuration = 100 * time.Millisecond
)
