package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings, digits are handled as teleports and never looked up here
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyLeft:   IntentWalkLeft,
			tcell.KeyRight:  IntentWalkRight,
			tcell.KeyDown:   IntentStop,
			tcell.KeyUp:     IntentJump,
			tcell.KeyEnter:  IntentFire,
		},
		Runes: map[rune]IntentType{
			' ': IntentJump,
			'a': IntentWalkLeft,
			'd': IntentWalkRight,
			's': IntentStop,
			'f': IntentFire,
			'q': IntentToggleDebug,
			'z': IntentToggleStepMode,
			'x': IntentStepOnce,
			'c': IntentCopyRoom,
			'v': IntentPasteRoom,
			'e': IntentSaveRoom,
			'i': IntentLoadRoom,
			'r': IntentReset,
		},
	}
}

// Lookup resolves a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() != tcell.KeyRune {
		return Intent{Type: t.SpecialKeys[ev.Key()]}
	}

	ch := ev.Rune()
	if '0' <= ch && ch <= '9' {
		// 1 is the first room, 0 maps outside the row
		return Intent{Type: IntentTeleport, Room: int(ch-'0') - 1}
	}
	return Intent{Type: t.Runes[ch]}
}
