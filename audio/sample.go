// Package audio plays short sound samples for the simulation through beep.
// It is a fire-and-forget collaborator: nothing played here feeds back into game state.
package audio

// Sample is a handle to a registered sample, the zero value plays nothing
type Sample int

// NoSample is the empty handle
const NoSample Sample = 0

// Nop discards every play request
type Nop struct{}

func (Nop) Play(Sample) {}
