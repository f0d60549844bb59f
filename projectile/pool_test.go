package projectile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/roomrow/animation"
	"github.com/lixenwraith/roomrow/entity"
	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/vmath"
)

const dt = parameter.SimulationDeltaTime

type openTiles struct{}

func (openTiles) IsTileAtWorldEmpty(vmath.Vec2F) bool { return true }

type solidTiles struct{}

func (solidTiles) IsTileAtWorldEmpty(vmath.Vec2F) bool { return false }

func newTestPool(poofFrames int) *Pool {
	return NewPool(Templates{
		Active: animation.NewFrames("plasma_bolt", 5, 0.05),
		Poof:   animation.NewFrames("plasma_pop", poofFrames, 0),
	})
}

var _ entity.Spawner = (*Pool)(nil)

func TestSpawnFirstFit(t *testing.T) {
	p := newTestPool(3)
	p.Spawn(vmath.V2(1, 1), vmath.V2(10, 0), 0)
	p.Spawn(vmath.V2(2, 2), vmath.V2(10, 0), 4)
	assert.Equal(t, 2, p.CountAlive())

	p.Get(0).State = StateDead
	p.Spawn(vmath.V2(3, 3), vmath.V2(0, 0), 7)

	first := p.Get(0)
	assert.Equal(t, StateActive, first.State)
	assert.Equal(t, vmath.V2(3, 3), first.Pos)
	assert.Equal(t, entity.Index(7), first.Shooter)
	assert.Equal(t, parameter.ProjectileLifetime, first.Lifetime)
	assert.Equal(t, entity.Index(4), p.Get(1).Shooter)
}

func TestSpawnFullPoolDropped(t *testing.T) {
	p := newTestPool(3)
	for i := 0; i < p.Len(); i++ {
		p.Spawn(vmath.V2(float64(i), 0), vmath.V2(0, 0), 0)
	}
	require.Equal(t, parameter.ProjectilesCount, p.CountAlive())

	before := p.slots
	p.Spawn(vmath.V2(-1, -1), vmath.V2(5, 5), 3)
	assert.Equal(t, before, p.slots)
}

func TestSpawnClonesTemplates(t *testing.T) {
	p := newTestPool(3)
	p.Spawn(vmath.V2(0, 0), vmath.V2(0, 0), 0)
	p.Update(dt, openTiles{})

	assert.Equal(t, 1, p.Get(0).Active.Current)
	assert.Equal(t, 0, p.templates.Active.Current)
}

func TestActiveIntegrates(t *testing.T) {
	p := newTestPool(3)
	p.Spawn(vmath.V2(0, 0), vmath.V2(120, -60), 0)
	p.Update(0.5, openTiles{})

	pr := p.Get(0)
	assert.Equal(t, StateActive, pr.State)
	assert.InDelta(t, 60.0, pr.Pos.X, 1e-9)
	assert.InDelta(t, -30.0, pr.Pos.Y, 1e-9)
	assert.InDelta(t, parameter.ProjectileLifetime-0.5, pr.Lifetime, 1e-9)
}

func TestLifetimeExpires(t *testing.T) {
	p := newTestPool(3)
	p.Spawn(vmath.V2(0, 0), vmath.V2(parameter.ProjectileSpeed, 0), 0)

	for i := 0; i < 299; i++ {
		p.Update(dt, openTiles{})
	}
	assert.Equal(t, StateActive, p.Get(0).State)

	// 300 ticks of 1/60 s is exactly the lifetime
	p.Update(dt, openTiles{})
	assert.Equal(t, StatePoof, p.Get(0).State)
}

func TestTileImpactPoofs(t *testing.T) {
	p := newTestPool(3)
	p.Spawn(vmath.V2(0, 0), vmath.V2(100, 0), 0)
	p.Update(dt, solidTiles{})

	pr := p.Get(0)
	assert.Equal(t, StatePoof, pr.State)
	assert.Equal(t, 0, pr.Poof.Current)

	sprite, ok := pr.CurrentSprite()
	assert.True(t, ok)
	assert.Equal(t, "plasma_pop", sprite.Sheet)

	// Poof does not move
	pos := pr.Pos
	p.Update(dt, solidTiles{})
	assert.Equal(t, pos, pr.Pos)
}

func TestPoofEndsOnLastFrame(t *testing.T) {
	p := newTestPool(3)
	p.Spawn(vmath.V2(0, 0), vmath.V2(0, 0), 0)
	p.Kill(0)

	p.Update(dt, openTiles{})
	assert.Equal(t, StatePoof, p.Get(0).State)
	assert.Equal(t, 1, p.Get(0).Poof.Current)

	p.Update(dt, openTiles{})
	assert.Equal(t, StateDead, p.Get(0).State)
	assert.Equal(t, 0, p.CountAlive())
}

func TestPoofShortAnimationTerminates(t *testing.T) {
	for _, frames := range []int{0, 1} {
		p := newTestPool(frames)
		p.Spawn(vmath.V2(0, 0), vmath.V2(0, 0), 0)
		p.Kill(0)

		p.Update(dt, openTiles{})
		assert.Equal(t, StateDead, p.Get(0).State, "%d poof frames", frames)
	}
}

func TestKillOnlyActive(t *testing.T) {
	p := newTestPool(3)
	p.Kill(0)
	assert.Equal(t, StateDead, p.Get(0).State)

	p.Spawn(vmath.V2(0, 0), vmath.V2(0, 0), 0)
	p.Kill(0)
	p.Update(dt, openTiles{})
	require.Equal(t, 1, p.Get(0).Poof.Current)

	p.Kill(0)
	assert.Equal(t, 1, p.Get(0).Poof.Current, "poofing projectile keeps its frame")
}

func TestGetPanicsOutOfBounds(t *testing.T) {
	p := newTestPool(3)
	assert.Panics(t, func() { p.Get(Index(p.Len())) })
	assert.Panics(t, func() { p.Kill(-1) })
}

func TestAtAndHitbox(t *testing.T) {
	p := newTestPool(3)
	_, ok := p.At(vmath.V2(100, 100))
	assert.False(t, ok)

	p.Spawn(vmath.V2(500, 500), vmath.V2(0, 0), 0)
	p.Spawn(vmath.V2(100, 100), vmath.V2(0, 0), 0)

	box := p.Hitbox(1)
	assert.Equal(t, vmath.Rect(75, 75, 50, 50), box)

	index, ok := p.At(vmath.V2(110, 90))
	assert.True(t, ok)
	assert.Equal(t, Index(1), index)

	_, ok = p.At(vmath.V2(200, 200))
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Active", StateActive.String())
	assert.Equal(t, "Dead", StateDead.String())
}
