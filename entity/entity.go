// Package entity simulates player and enemy actors: physics, corner collision and the
// alive/poof/dead lifecycle with its locomotion and jump sub-states.
package entity

import (
	"math"

	"github.com/lixenwraith/roomrow/animation"
	"github.com/lixenwraith/roomrow/audio"
	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/vmath"
)

// Template carries the per-spawn assets an entity slot is initialized with
type Template struct {
	Idle        animation.Frames
	Walking     animation.Frames
	JumpSamples [parameter.JumpSamplesCapacity]audio.Sample
}

// Entity is a player or AI actor living in a fixed table slot
type Entity struct {
	State      State
	AliveState AliveState
	JumpState  JumpState

	TexboxLocal vmath.RectF
	HitboxLocal vmath.RectF
	Pos         vmath.Vec2F
	Vel         vmath.Vec2F

	// CooldownWeapon counts ticks, it keeps decrementing below zero
	CooldownWeapon int
	GunDir         vmath.Vec2F

	Idle          animation.Frames
	Walking       animation.Frames
	Poof          animation.Squash
	PrepareJump   animation.Rubber
	JumpAnimation animation.ComposeRubber

	JumpSamples [parameter.JumpSamplesCapacity]audio.Sample
}

// Spawn reinitializes every field of the slot to an Alive entity at pos
func (e *Entity) Spawn(tmpl Template, pos vmath.Vec2F) {
	const (
		tex = parameter.EntityTexboxSize
		hit = parameter.EntityHitboxSize
	)

	*e = Entity{
		State:          StateAlive,
		AliveState:     AliveIdle,
		JumpState:      JumpNone,
		TexboxLocal:    vmath.Rect(-tex/2, -tex/2, tex, tex),
		HitboxLocal:    vmath.Rect(-hit/2, -hit/2, hit, hit),
		Pos:            pos,
		Vel:            vmath.Vec2F{},
		CooldownWeapon: 0,
		GunDir:         vmath.V2(1, 0),
		Idle:           tmpl.Idle.Clone(),
		Walking:        tmpl.Walking.Clone(),
		Poof: animation.Squash{
			Duration: parameter.EntityPoofDuration,
		},
		PrepareJump: animation.Rubber{
			Begin:    parameter.PrepareJumpBegin,
			End:      parameter.PrepareJumpEnd,
			Duration: parameter.PrepareJumpDuration,
		},
		JumpAnimation: animation.NewComposeRubber(
			animation.Rubber{
				Begin:    parameter.JumpStretchBegin,
				End:      parameter.JumpStretchEnd,
				Duration: parameter.JumpStretchDuration,
			},
			animation.Rubber{
				Begin:    parameter.JumpReleaseBegin,
				End:      parameter.JumpReleaseEnd,
				Duration: parameter.JumpReleaseDuration,
			},
		),
		JumpSamples: tmpl.JumpSamples,
	}
}

// TexboxWorld returns the visual bounds in world space
func (e *Entity) TexboxWorld() vmath.RectF {
	return vmath.RectTranslate(e.TexboxLocal, e.Pos)
}

// HitboxWorld returns the collision bounds in world space
func (e *Entity) HitboxWorld() vmath.RectF {
	return vmath.RectTranslate(e.HitboxLocal, e.Pos)
}

// VisualTexbox returns the world texbox deformed by the active jump phase
func (e *Entity) VisualTexbox() vmath.RectF {
	switch e.JumpState {
	case JumpPrepare:
		return e.PrepareJump.TransformRect(e.TexboxLocal, e.Pos)
	case JumpActive:
		return e.JumpAnimation.TransformRect(e.TexboxLocal, e.Pos)
	default:
		return e.TexboxWorld()
	}
}

// locomotion returns the animation of the active locomotion state
func (e *Entity) locomotion() *animation.Frames {
	if e.AliveState == AliveWalking {
		return &e.Walking
	}
	return &e.Idle
}

// CurrentSprite returns the frame the entity currently shows
func (e *Entity) CurrentSprite() (animation.Sprite, bool) {
	switch e.State {
	case StateAlive:
		return e.locomotion().Sprite()
	case StatePoof:
		return e.Poof.Sprite, !e.Poof.Sprite.IsZero()
	default:
		return animation.Sprite{}, false
	}
}

// ResolveCollision corrects the four hitbox corners one after another
// Each correction shifts the remaining corners and the position, and a
// correction of ImpactThreshold or more on an axis zeroes that velocity component
func (e *Entity) ResolveCollision(collider Collider) {
	mesh := vmath.RectCorners(e.HitboxWorld())

	for i := range mesh {
		t := collider.ResolvePointCollision(mesh[i])
		d := vmath.V2Sub(t, mesh[i])

		if math.Abs(d.Y) >= parameter.ImpactThreshold {
			e.Vel.Y = 0
		}
		if math.Abs(d.X) >= parameter.ImpactThreshold {
			e.Vel.X = 0
		}

		for j := range mesh {
			mesh[j] = vmath.V2Add(mesh[j], d)
		}
		e.Pos = vmath.V2Add(e.Pos, d)
	}
}

// Update advances one fixed tick
func (e *Entity) Update(gravity vmath.Vec2F, dt float64, collider Collider) {
	switch e.State {
	case StateAlive:
		e.Vel = vmath.V2Add(e.Vel, vmath.V2Scale(gravity, dt))
		e.Pos = vmath.V2Add(e.Pos, vmath.V2Scale(e.Vel, dt))
		e.ResolveCollision(collider)
		e.CooldownWeapon--

		// Blocked by a wall
		if e.AliveState == AliveWalking && e.Vel.X == 0 {
			e.AliveState = AliveIdle
		}

		switch e.JumpState {
		case JumpNone:
		case JumpPrepare:
			e.PrepareJump.Update(dt)
		case JumpActive:
			e.JumpAnimation.Update(dt)
			if e.JumpAnimation.Finished() {
				e.JumpState = JumpNone
			}
		}

		e.locomotion().Update(dt)

	case StatePoof:
		e.Poof.Update(dt)
		if e.Poof.A >= 1 {
			e.State = StateDead
		}

	case StateDead:
	}
}

// Kill starts the dissolve, capturing the visible locomotion frame
// No-op unless Alive
func (e *Entity) Kill() {
	if e.State != StateAlive {
		return
	}
	e.Poof.Reset()
	if sprite, ok := e.locomotion().Sprite(); ok {
		e.Poof.Sprite = sprite
	}
	e.State = StatePoof
}

// Jump advances the jump sub-state: first call prepares, second launches
// Launch vertical velocity is -min(anticipation progress, MaxJumpCharge) * gravity.Y
// A nil rng always plays the first jump sample
func (e *Entity) Jump(gravity vmath.Vec2F, player SamplePlayer, rng RNG) {
	if e.State != StateAlive {
		return
	}

	switch e.JumpState {
	case JumpNone:
		e.PrepareJump.Reset()
		e.JumpState = JumpPrepare

	case JumpPrepare:
		a := e.PrepareJump.Progress()
		e.JumpAnimation.Reset()
		e.JumpState = JumpActive
		e.Vel.Y = gravity.Y * -math.Min(a, parameter.MaxJumpCharge)
		if player != nil {
			pick := 0
			if rng != nil {
				pick = rng.Intn(len(e.JumpSamples))
			}
			player.Play(e.JumpSamples[pick])
		}

	case JumpActive:
	}
}

// Walk sets the locomotion state from a horizontal direction in [-1, 1]
// Zero direction idles and stops horizontal motion
func (e *Entity) Walk(direction float64) {
	if e.State != StateAlive {
		return
	}
	if direction == 0 {
		e.AliveState = AliveIdle
		e.Vel.X = 0
		return
	}
	e.AliveState = AliveWalking
	e.Vel.X = direction * parameter.WalkSpeed
}

// PointGunAt aims toward a world-space target, zero-safe when target equals position
func (e *Entity) PointGunAt(target vmath.Vec2F) {
	e.GunDir = vmath.V2Normalize(vmath.V2Sub(target, e.Pos))
}

// FacesRight reports the horizontal facing used for sprite flipping
func (e *Entity) FacesRight() bool {
	return e.GunDir.X > 0
}
