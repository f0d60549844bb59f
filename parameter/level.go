package parameter

// Room grid geometry
const (
	// TileSize is the edge length of a square tile in px
	TileSize = 50.0

	// RoomWidth, RoomHeight are room dimensions in tiles
	RoomWidth  = 16
	RoomHeight = 12

	// RoomRowCount is the number of rooms laid out left to right
	RoomRowCount = 8

	// RoomPixelWidth, RoomPixelHeight are the world-space room boundary size
	RoomPixelWidth  = RoomWidth * TileSize
	RoomPixelHeight = RoomHeight * TileSize

	// RoomFloorRows is the number of wall rows the default layout fills from the bottom
	RoomFloorRows = 3
)
