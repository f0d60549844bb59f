package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/roomrow/animation"
	"github.com/lixenwraith/roomrow/audio"
	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/room"
	"github.com/lixenwraith/roomrow/vmath"
)

const dt = parameter.SimulationDeltaTime

var gravity = vmath.V2(parameter.GravityX, parameter.GravityY)

type openSpace struct{}

func (openSpace) ResolvePointCollision(p vmath.Vec2F) vmath.Vec2F { return p }

type recordPlayer struct{ played []audio.Sample }

func (r *recordPlayer) Play(s audio.Sample) { r.played = append(r.played, s) }

type fixedRNG int

func (f fixedRNG) Intn(n int) int { return int(f) % n }

type recordSpawner struct {
	pos, vel []vmath.Vec2F
	shooter  []Index
}

func (r *recordSpawner) Spawn(pos, vel vmath.Vec2F, shooter Index) {
	r.pos = append(r.pos, pos)
	r.vel = append(r.vel, vel)
	r.shooter = append(r.shooter, shooter)
}

func testTemplate() Template {
	return Template{
		Idle:        animation.NewFrames("idle", 4, 0.1),
		Walking:     animation.NewFrames("walking", 4, 0.1),
		JumpSamples: [parameter.JumpSamplesCapacity]audio.Sample{1, 2},
	}
}

// floorRow returns a row whose first room is solid from tile row 3 down, surface at y=150
func floorRow() *room.Row {
	row := room.NewRow()
	r := row.Room(0)
	for y := 3; y < parameter.RoomHeight; y++ {
		for x := 0; x < parameter.RoomWidth; x++ {
			r.SetTile(room.TileCoord{X: x, Y: y}, room.TileWall)
		}
	}
	return row
}

func spawned(pos vmath.Vec2F) *Entity {
	e := &Entity{}
	e.Spawn(testTemplate(), pos)
	return e
}

func TestSpawnResetsSlot(t *testing.T) {
	e := spawned(vmath.V2(10, 10))
	e.Vel = vmath.V2(5, 5)
	e.CooldownWeapon = 4
	e.JumpState = JumpActive
	e.Kill()

	e.Spawn(testTemplate(), vmath.V2(1, 2))
	assert.Equal(t, StateAlive, e.State)
	assert.Equal(t, AliveIdle, e.AliveState)
	assert.Equal(t, JumpNone, e.JumpState)
	assert.Equal(t, vmath.V2(1, 2), e.Pos)
	assert.Equal(t, vmath.Vec2F{}, e.Vel)
	assert.Equal(t, 0, e.CooldownWeapon)
	assert.Equal(t, 0.0, e.Poof.A)
	assert.True(t, e.Poof.Sprite.IsZero())
}

func TestLandingZeroesVerticalVelocity(t *testing.T) {
	row := floorRow()
	e := spawned(vmath.V2(100, 125))
	e.Vel = vmath.V2(0, 500)

	e.Update(gravity, dt, row)

	assert.Equal(t, 0.0, e.Vel.Y)
	assert.InDelta(t, 128.0, e.Pos.Y, 1e-9)
	assert.InDelta(t, 150.0, e.HitboxWorld().Y+e.HitboxWorld().H, 1e-9)
}

func TestFallingEntityLandsOnImpactTick(t *testing.T) {
	row := floorRow()
	e := spawned(vmath.V2(100, 100))
	e.Vel = vmath.V2(0, 500)

	// Ticks 1-2 are airborne, tick 3 sinks about 1.2 px so the correction stays under the threshold
	for i := 1; i <= 3; i++ {
		e.Update(gravity, dt, row)
		assert.NotZero(t, e.Vel.Y, "tick %d", i)
	}
	assert.InDelta(t, 625.0, e.Vel.Y, 1e-9)
	assert.InDelta(t, 128.0, e.Pos.Y, 1e-9)

	// Tick 4 sinks about 11 px, past the threshold
	e.Update(gravity, dt, row)
	assert.Equal(t, 0.0, e.Vel.Y)
	assert.InDelta(t, 128.0, e.Pos.Y, 1e-9)
	assert.InDelta(t, 150.0, e.HitboxWorld().Y+e.HitboxWorld().H, 1e-9)
}

func TestFallingEntityRestsOnFloor(t *testing.T) {
	row := floorRow()
	e := spawned(vmath.V2(100, 100))

	zeroed := false
	for i := 0; i < 240; i++ {
		e.Update(gravity, dt, row)
		bottom := e.HitboxWorld().Y + e.HitboxWorld().H
		assert.LessOrEqual(t, bottom, 150.0+1e-9, "tick %d", i)
		if e.Vel.Y == 0 {
			zeroed = true
		}
	}
	assert.True(t, zeroed)
	assert.InDelta(t, 150.0, e.HitboxWorld().Y+e.HitboxWorld().H, 1e-9)
}

func TestSmallCorrectionKeepsVelocity(t *testing.T) {
	row := floorRow()
	e := spawned(vmath.V2(100, 130))
	e.Vel = vmath.V2(0, 100)

	// Bottom corners sit 2 px inside the floor
	e.ResolveCollision(row)
	assert.Equal(t, 100.0, e.Vel.Y)
	assert.InDelta(t, 128.0, e.Pos.Y, 1e-9)
}

func TestKillIdempotent(t *testing.T) {
	e := spawned(vmath.V2(0, 0))
	e.Kill()
	require.Equal(t, StatePoof, e.State)

	sprite, ok := e.CurrentSprite()
	assert.True(t, ok)
	assert.Equal(t, "idle", sprite.Sheet)

	e.Poof.A = 0.5
	e.Kill()
	assert.Equal(t, StatePoof, e.State)
	assert.Equal(t, 0.5, e.Poof.A)
}

func TestPoofEndsDead(t *testing.T) {
	e := spawned(vmath.V2(0, 0))
	e.Kill()

	prev := e.Poof.A
	for i := 0; i < 11; i++ {
		e.Update(gravity, dt, openSpace{})
		assert.Greater(t, e.Poof.A, prev)
		prev = e.Poof.A
	}
	assert.Equal(t, StatePoof, e.State)
	assert.Equal(t, vmath.V2(0, 0), e.Pos, "poof does not move")

	e.Update(gravity, dt, openSpace{})
	e.Update(gravity, dt, openSpace{})
	assert.Equal(t, StateDead, e.State)

	_, ok := e.CurrentSprite()
	assert.False(t, ok)

	e.Update(gravity, dt, openSpace{})
	assert.Equal(t, StateDead, e.State)
}

func TestJumpStateMachine(t *testing.T) {
	e := spawned(vmath.V2(0, 0))
	player := &recordPlayer{}

	e.Jump(gravity, player, fixedRNG(1))
	require.Equal(t, JumpPrepare, e.JumpState)
	assert.Empty(t, player.played)

	e.PrepareJump.T = 0.1
	e.Jump(gravity, player, fixedRNG(1))
	require.Equal(t, JumpActive, e.JumpState)
	assert.InDelta(t, -1250.0, e.Vel.Y, 1e-9)
	assert.Equal(t, []audio.Sample{2}, player.played)

	// Ignored mid-air
	e.Jump(gravity, player, fixedRNG(0))
	assert.Equal(t, JumpActive, e.JumpState)
	assert.Len(t, player.played, 1)
}

func TestJumpChargeCapped(t *testing.T) {
	e := spawned(vmath.V2(0, 0))
	e.Jump(gravity, nil, fixedRNG(0))
	for i := 0; i < 60; i++ {
		e.Update(gravity, dt, openSpace{})
	}
	assert.True(t, e.PrepareJump.Finished())

	e.Jump(gravity, nil, fixedRNG(0))
	assert.InDelta(t, -parameter.MaxJumpCharge*parameter.GravityY, e.Vel.Y, 1e-9)
}

func TestJumpAnimationReturnsToNone(t *testing.T) {
	e := spawned(vmath.V2(0, 0))
	e.Jump(gravity, nil, fixedRNG(0))
	e.Jump(gravity, nil, fixedRNG(0))
	require.Equal(t, JumpActive, e.JumpState)

	for i := 0; i < 30 && e.JumpState == JumpActive; i++ {
		e.Update(gravity, dt, openSpace{})
	}
	assert.Equal(t, JumpNone, e.JumpState)
}

func TestJumpIgnoredUnlessAlive(t *testing.T) {
	e := spawned(vmath.V2(0, 0))
	e.Kill()
	e.Jump(gravity, nil, fixedRNG(0))
	assert.Equal(t, JumpNone, e.JumpState)
}

func TestWalk(t *testing.T) {
	e := spawned(vmath.V2(0, 0))

	e.Walk(-1)
	assert.Equal(t, AliveWalking, e.AliveState)
	assert.Equal(t, -parameter.WalkSpeed, e.Vel.X)

	sprite, ok := e.CurrentSprite()
	assert.True(t, ok)
	assert.Equal(t, "walking", sprite.Sheet)

	e.Walk(0)
	assert.Equal(t, AliveIdle, e.AliveState)
	assert.Equal(t, 0.0, e.Vel.X)
}

func TestWalkIntoWallIdles(t *testing.T) {
	row := room.NewRow()
	r := row.Room(0)
	for y := 0; y < parameter.RoomHeight; y++ {
		r.SetTile(room.TileCoord{X: 4, Y: y}, room.TileWall)
	}

	// Right hitbox edge at 198, one tick of walking reaches about 206 inside the column at x=200
	e := spawned(vmath.V2(176, 300))
	e.Walk(1)
	e.Update(gravity, dt, row)

	assert.Equal(t, 0.0, e.Vel.X)
	assert.Equal(t, AliveIdle, e.AliveState)
	assert.InDelta(t, 200.0, e.HitboxWorld().X+e.HitboxWorld().W, 1e-9)

	sprite, ok := e.CurrentSprite()
	assert.True(t, ok)
	assert.Equal(t, "idle", sprite.Sheet)
}

func TestWalkSurvivesSmallCorrection(t *testing.T) {
	e := spawned(vmath.V2(0, 300))
	e.Walk(1)
	e.Update(gravity, dt, openSpace{})
	assert.Equal(t, AliveWalking, e.AliveState)
	assert.Equal(t, parameter.WalkSpeed, e.Vel.X)
}

func TestJumpWithoutRNGPlaysFirstSample(t *testing.T) {
	e := spawned(vmath.V2(0, 0))
	player := &recordPlayer{}

	e.Jump(gravity, player, nil)
	e.Jump(gravity, player, nil)
	assert.Equal(t, JumpActive, e.JumpState)
	assert.Equal(t, []audio.Sample{1}, player.played)
}

func TestPointGunAt(t *testing.T) {
	e := spawned(vmath.V2(10, 10))

	e.PointGunAt(vmath.V2(10, 20))
	assert.InDelta(t, 0.0, e.GunDir.X, 1e-9)
	assert.InDelta(t, 1.0, e.GunDir.Y, 1e-9)
	assert.False(t, e.FacesRight())

	e.PointGunAt(vmath.V2(10, 10))
	assert.Equal(t, vmath.Vec2F{}, e.GunDir)
}

func TestVisualTexboxFollowsJumpPhase(t *testing.T) {
	e := spawned(vmath.V2(100, 100))
	assert.Equal(t, e.TexboxWorld(), e.VisualTexbox())

	e.Jump(gravity, nil, fixedRNG(0))
	e.PrepareJump.T = e.PrepareJump.Duration
	v := e.VisualTexbox()
	assert.Greater(t, v.W, e.TexboxLocal.W)
	assert.InDelta(t, e.TexboxWorld().Y+e.TexboxWorld().H, v.Y+v.H, 1e-9)
}
