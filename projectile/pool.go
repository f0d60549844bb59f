package projectile

import (
	"fmt"

	"github.com/lixenwraith/roomrow/animation"
	"github.com/lixenwraith/roomrow/entity"
	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/vmath"
)

// Tiles answers solid-tile queries at world positions
type Tiles interface {
	IsTileAtWorldEmpty(p vmath.Vec2F) bool
}

// Templates are the animations every spawned projectile starts from
type Templates struct {
	Active animation.Frames
	Poof   animation.Frames
}

// Pool is the fixed projectile arena, first-fit allocated
type Pool struct {
	slots     [parameter.ProjectilesCount]Projectile
	templates Templates
}

// NewPool creates an all-Dead pool
func NewPool(templates Templates) *Pool {
	return &Pool{templates: templates}
}

// Len returns the pool capacity
func (p *Pool) Len() int {
	return len(p.slots)
}

// InBounds checks an index against the pool capacity
func (p *Pool) InBounds(index Index) bool {
	return 0 <= index && int(index) < len(p.slots)
}

// Get returns the slot at index, panics on an out-of-bounds index
func (p *Pool) Get(index Index) *Projectile {
	if !p.InBounds(index) {
		panic(fmt.Sprintf("projectile: index %d out of pool bounds [0, %d)", index, len(p.slots)))
	}
	return &p.slots[index]
}

// Spawn activates the first Dead slot, a full pool drops the request
func (p *Pool) Spawn(pos, vel vmath.Vec2F, shooter entity.Index) {
	for i := range p.slots {
		if p.slots[i].State != StateDead {
			continue
		}
		p.slots[i] = Projectile{
			State:    StateActive,
			Pos:      pos,
			Vel:      vel,
			Lifetime: parameter.ProjectileLifetime,
			Shooter:  shooter,
			Active:   p.templates.Active.Clone(),
			Poof:     p.templates.Poof.Clone(),
		}
		return
	}
}

// Update advances every slot one tick
func (p *Pool) Update(dt float64, tiles Tiles) {
	for i := range p.slots {
		pr := &p.slots[i]
		switch pr.State {
		case StateActive:
			pr.Active.Update(dt)
			pr.Pos = vmath.V2Add(pr.Pos, vmath.V2Scale(pr.Vel, dt))
			if !tiles.IsTileAtWorldEmpty(pr.Pos) {
				pr.poof()
			}
			pr.Lifetime -= dt
			if pr.Lifetime <= parameter.ProjectileLifetimeEpsilon {
				pr.poof()
			}

		case StatePoof:
			pr.Poof.Update(dt)
			if pr.poofDone() {
				pr.State = StateDead
			}

		case StateDead:
		}
	}
}

// Kill poofs an Active projectile, other states are left alone
func (p *Pool) Kill(index Index) {
	pr := p.Get(index)
	if pr.State == StateActive {
		pr.poof()
	}
}

// CountAlive returns the number of slots that are not Dead
func (p *Pool) CountAlive() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].State != StateDead {
			n++
		}
	}
	return n
}

// Each visits every slot in index order
func (p *Pool) Each(fn func(Index, *Projectile)) {
	for i := range p.slots {
		fn(Index(i), &p.slots[i])
	}
}

// Hitbox returns the square pick box centered on a projectile
func (p *Pool) Hitbox(index Index) vmath.RectF {
	pr := p.Get(index)
	const pad = parameter.ProjectileTrackingPadding
	return vmath.Rect(pr.Pos.X-pad*0.5, pr.Pos.Y-pad*0.5, pad, pad)
}

// At returns the first non-Dead projectile whose pick box contains point
func (p *Pool) At(point vmath.Vec2F) (Index, bool) {
	for i := range p.slots {
		if p.slots[i].State == StateDead {
			continue
		}
		if vmath.RectContains(p.Hitbox(Index(i)), point) {
			return Index(i), true
		}
	}
	return 0, false
}
