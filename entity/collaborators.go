package entity

import (
	"github.com/lixenwraith/roomrow/audio"
	"github.com/lixenwraith/roomrow/vmath"
)

// Collider corrects a single world-space point against static geometry
type Collider interface {
	ResolvePointCollision(p vmath.Vec2F) vmath.Vec2F
}

// SamplePlayer plays a sound sample, fire-and-forget
type SamplePlayer interface {
	Play(sample audio.Sample)
}

// Spawner receives projectile spawn requests from weapon fire
type Spawner interface {
	Spawn(pos, vel vmath.Vec2F, shooter Index)
}

// RNG picks jump sounds
type RNG interface {
	Intn(n int) int
}
