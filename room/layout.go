package room

import "github.com/lixenwraith/roomrow/parameter"

// Floor fills the default layout: solid bottom rows with a ledge in the middle
// Used when no persisted room exists
func Floor(r *Room) {
	r.Tiles = Tiles{}
	for y := parameter.RoomHeight - parameter.RoomFloorRows; y < parameter.RoomHeight; y++ {
		for x := 0; x < parameter.RoomWidth; x++ {
			r.Tiles[y][x] = TileWall
		}
	}
	ledge := parameter.RoomHeight - parameter.RoomFloorRows - 3
	for x := parameter.RoomWidth/2 - 2; x < parameter.RoomWidth/2+2; x++ {
		r.Tiles[ledge][x] = TileWall
	}
}
