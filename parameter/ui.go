package parameter

// Debug overlay
const (
	// DebugPadding is the HUD inset from the screen corner, in pixels
	DebugPadding = 10.0

	// DebugLineHeight is the spacing between HUD text lines, in pixels
	DebugLineHeight = CellPixelHeight

	// CollisionProbeSize is the half extent of the drawn collision probe
	CollisionProbeSize = 10.0

	// MinimapRoomWidth and MinimapRoomHeight size one room on the debug minimap
	MinimapRoomWidth  = 40.0
	MinimapRoomHeight = 30.0
)
