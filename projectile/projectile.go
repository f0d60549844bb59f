// Package projectile owns the fixed projectile pool: spawn, flight, tile impact and the poof animation.
package projectile

import (
	"github.com/lixenwraith/roomrow/animation"
	"github.com/lixenwraith/roomrow/entity"
	"github.com/lixenwraith/roomrow/vmath"
)

// State is the projectile lifecycle state
type State uint8

const (
	StateDead State = iota
	StateActive
	StatePoof
)

func (s State) String() string {
	switch s {
	case StateDead:
		return "Dead"
	case StateActive:
		return "Active"
	case StatePoof:
		return "Poof"
	default:
		return "Unknown"
	}
}

// Index is the stable identity of a pool slot
type Index int

// Projectile is one pool slot
type Projectile struct {
	State    State
	Pos      vmath.Vec2F
	Vel      vmath.Vec2F
	Lifetime float64
	Shooter  entity.Index

	Active animation.Frames
	Poof   animation.Frames
}

// CurrentSprite returns the frame of the running animation
func (p *Projectile) CurrentSprite() (animation.Sprite, bool) {
	switch p.State {
	case StateActive:
		return p.Active.Sprite()
	case StatePoof:
		return p.Poof.Sprite()
	default:
		return animation.Sprite{}, false
	}
}

// poof switches to the impact animation from its first frame
func (p *Projectile) poof() {
	p.State = StatePoof
	p.Poof.Reset()
}

// poofDone reports whether the impact animation reached its last frame
// Zero or one frame ends at the first poof update
func (p *Projectile) poofDone() bool {
	n := p.Poof.Count()
	return n <= 1 || p.Poof.Current == n-1
}
