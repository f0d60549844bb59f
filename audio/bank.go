package audio

// Bank holds the handles of the synthesized game sounds
type Bank struct {
	Jump  [2]Sample
	Shoot Sample
}

// RegisterBank synthesizes and registers every game sound on the mixer
func RegisterBank(m *Mixer) Bank {
	rate := m.SampleRate()
	return Bank{
		Jump: [2]Sample{
			m.Register(CreateJumpSound(rate, 0)),
			m.Register(CreateJumpSound(rate, 1)),
		},
		Shoot: m.Register(CreateShootSound(rate)),
	}
}
