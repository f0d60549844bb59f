// Package room implements the static tile geometry of the room row and its persistence.
package room

import "github.com/lixenwraith/roomrow/parameter"

// Tile is the kind of a single grid cell
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// TileCoord addresses a tile inside a room, X is the column
type TileCoord struct {
	X, Y int
}

// Tiles is the fixed row-major tile array of one room
type Tiles [parameter.RoomHeight][parameter.RoomWidth]Tile
