package parameter

// Terminal projection
// The world is measured in pixels, each terminal cell covers a fixed pixel block
const (
	// CellPixelWidth is the horizontal pixel span of one terminal cell
	CellPixelWidth = 10.0

	// CellPixelHeight is the vertical pixel span of one cell, cells are about twice as tall as wide
	CellPixelHeight = 20.0

	// NeighborRoomDim is the brightness kept by rooms adjacent to the player's room
	NeighborRoomDim = 0.22
)
