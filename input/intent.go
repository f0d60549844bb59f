// Package input translates terminal events into game intents.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit
	IntentToggleDebug
	IntentToggleStepMode
	IntentStepOnce

	// Player
	IntentJump
	IntentWalkLeft
	IntentWalkRight
	IntentStop
	IntentFire

	// Debug tooling
	IntentTeleport
	IntentCopyRoom
	IntentPasteRoom
	IntentSaveRoom
	IntentLoadRoom
	IntentReset
	IntentBeginDraw
	IntentEndDraw
)

// Intent is one translated action, Room is set for IntentTeleport
type Intent struct {
	Type IntentType
	Room int
}
