package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/room"
	"github.com/lixenwraith/roomrow/vmath"
)

// Controller receives translated intents
// Implemented by engine.Game
type Controller interface {
	MoveCursor(screen vmath.Vec2F)
	Fire() bool
	Jump()
	Walk(direction float64)
	BeginDraw()
	EndDraw()
	ToggleDebug()
	ToggleStepMode()
	StepOnce() bool
	TeleportToRoom(index room.Index) bool
	CopyRoom() bool
	PasteRoom() bool
	SaveRoom() error
	LoadRoom() error
	Reset()
}

// Handler processes terminal events for one controller
// The terminal has no key-up events: every jump key press advances the jump state
type Handler struct {
	ctrl    Controller
	keys    *KeyTable
	buttons tcell.ButtonMask
}

// NewHandler creates a handler with the default key table
func NewHandler(ctrl Controller) *Handler {
	return &Handler{
		ctrl: ctrl,
		keys: DefaultKeyTable(),
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.Dispatch(h.keys.Lookup(ev))
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

// handleMouse moves the cursor and turns button mask changes into presses and releases
func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	h.ctrl.MoveCursor(CellCenter(x, y))

	buttons := ev.Buttons()
	pressed := buttons &^ h.buttons
	released := h.buttons &^ buttons
	h.buttons = buttons

	if pressed&tcell.ButtonPrimary != 0 {
		h.Dispatch(Intent{Type: IntentFire})
	}
	if pressed&tcell.ButtonSecondary != 0 {
		h.Dispatch(Intent{Type: IntentBeginDraw})
	}
	if released&tcell.ButtonSecondary != 0 {
		h.Dispatch(Intent{Type: IntentEndDraw})
	}
}

// Dispatch applies an intent, returns false on quit
func (h *Handler) Dispatch(in Intent) bool {
	switch in.Type {
	case IntentQuit:
		return false
	case IntentToggleDebug:
		h.ctrl.ToggleDebug()
	case IntentToggleStepMode:
		h.ctrl.ToggleStepMode()
	case IntentStepOnce:
		h.ctrl.StepOnce()
	case IntentJump:
		h.ctrl.Jump()
	case IntentWalkLeft:
		h.ctrl.Walk(-1)
	case IntentWalkRight:
		h.ctrl.Walk(1)
	case IntentStop:
		h.ctrl.Walk(0)
	case IntentFire:
		h.ctrl.Fire()
	case IntentTeleport:
		h.ctrl.TeleportToRoom(room.Index(in.Room))
	case IntentCopyRoom:
		h.ctrl.CopyRoom()
	case IntentPasteRoom:
		h.ctrl.PasteRoom()
	case IntentSaveRoom:
		// Failures surface through the popup
		_ = h.ctrl.SaveRoom()
	case IntentLoadRoom:
		_ = h.ctrl.LoadRoom()
	case IntentReset:
		h.ctrl.Reset()
	case IntentBeginDraw:
		h.ctrl.BeginDraw()
	case IntentEndDraw:
		h.ctrl.EndDraw()
	case IntentNone:
	}
	return true
}

// CellCenter returns the screen pixel at the middle of a terminal cell
func CellCenter(x, y int) vmath.Vec2F {
	return vmath.V2(
		(float64(x)+0.5)*parameter.CellPixelWidth,
		(float64(y)+0.5)*parameter.CellPixelHeight,
	)
}
