package parameter

// Sprite sheets, frame counts and per-frame durations in seconds
const (
	SheetIdle       = "idle"
	SheetWalking    = "walking"
	SheetPlasmaBolt = "plasma_bolt"
	SheetPlasmaPop  = "plasma_pop"

	IdleFrameCount    = 2
	IdleFrameDuration = 0.4

	WalkingFrameCount    = 4
	WalkingFrameDuration = 0.1

	PlasmaBoltFrameCount    = 2
	PlasmaBoltFrameDuration = 0.05

	PlasmaPopFrameCount    = 4
	PlasmaPopFrameDuration = 0.05
)
