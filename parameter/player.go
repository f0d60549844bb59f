package parameter

// Entity arena
const (
	// EntitiesCount is the fixed entity table capacity
	EntitiesCount = 69

	// PlayerEntityIndex is the slot reserved for the player
	PlayerEntityIndex = 0

	// EnemyEntityIndexOffset is the first enemy slot, one enemy per room after the first
	EnemyEntityIndexOffset = 1

	// EnemyCount is the number of enemies spawned by a reset
	EnemyCount = RoomRowCount - 1
)

// Entity geometry, local to entity position
const (
	EntityTexboxSize = 64.0
	EntityHitboxSize = EntityTexboxSize - 20.0

	// EntityGunLength is the length of the rendered aim line
	EntityGunLength = 50.0
)

// Entity animation
const (
	// EntityPoofDuration is the dissolve time after a kill, in seconds
	EntityPoofDuration = 0.2

	// Jump anticipation squash
	PrepareJumpBegin    = 0.0
	PrepareJumpEnd      = 0.2
	PrepareJumpDuration = 0.2

	// Jump arc, stretch then release
	JumpStretchBegin    = 0.2
	JumpStretchEnd      = -0.2
	JumpStretchDuration = 0.1
	JumpReleaseBegin    = -0.2
	JumpReleaseEnd      = 0.0
	JumpReleaseDuration = 0.2

	// MaxJumpCharge caps anticipation progress used for launch velocity
	MaxJumpCharge = 0.6

	// JumpSamplesCapacity is the number of jump sounds an entity picks from
	JumpSamplesCapacity = 2
)
