package parameter

// World physics
const (
	// GravityX, GravityY are the default gravity components in px/s²
	GravityX = 0.0
	GravityY = 2500.0

	// ImpactThreshold is the per-corner correction (px) at which the matching velocity component is zeroed
	ImpactThreshold = 5.0

	// WalkSpeed is the horizontal speed of a walking entity in px/s
	WalkSpeed = 500.0
)
