package entity

// State is the outer lifecycle state
type State uint8

const (
	StateDead State = iota
	StateAlive
	StatePoof
)

func (s State) String() string {
	switch s {
	case StateDead:
		return "Dead"
	case StateAlive:
		return "Alive"
	case StatePoof:
		return "Poof"
	default:
		return "Unknown"
	}
}

// AliveState is the locomotion sub-state, meaningful only while Alive
type AliveState uint8

const (
	AliveIdle AliveState = iota
	AliveWalking
)

func (s AliveState) String() string {
	switch s {
	case AliveIdle:
		return "Idle"
	case AliveWalking:
		return "Walking"
	default:
		return "Unknown"
	}
}

// JumpState is the jump sub-state, meaningful only while Alive
type JumpState uint8

const (
	JumpNone JumpState = iota
	JumpPrepare
	JumpActive
)

func (s JumpState) String() string {
	switch s {
	case JumpNone:
		return "NoJump"
	case JumpPrepare:
		return "Prepare"
	case JumpActive:
		return "Jump"
	default:
		return "Unknown"
	}
}
