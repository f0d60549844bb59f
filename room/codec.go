package room

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/lixenwraith/roomrow/parameter"
)

// Persisted layout, little endian:
//
//	uint32 width | uint32 height | width*height tile bytes, row-major

const headerSize = 8

var (
	ErrShortData  = errors.New("room: data shorter than layout")
	ErrDimensions = errors.New("room: dimensions mismatch")
	ErrTileKind   = errors.New("room: unknown tile kind")
)

// MarshalBinary encodes the tile grid, position is not persisted
func (r *Room) MarshalBinary() ([]byte, error) {
	buf := make([]byte, headerSize+parameter.RoomWidth*parameter.RoomHeight)
	binary.LittleEndian.PutUint32(buf[0:4], parameter.RoomWidth)
	binary.LittleEndian.PutUint32(buf[4:8], parameter.RoomHeight)

	i := headerSize
	for y := range r.Tiles {
		for x := range r.Tiles[y] {
			buf[i] = byte(r.Tiles[y][x])
			i++
		}
	}
	return buf, nil
}

// UnmarshalBinary decodes a tile grid, the room is untouched on error
func (r *Room) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: %d header bytes", ErrShortData, len(data))
	}
	w := binary.LittleEndian.Uint32(data[0:4])
	h := binary.LittleEndian.Uint32(data[4:8])
	if w != parameter.RoomWidth || h != parameter.RoomHeight {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDimensions, w, h, parameter.RoomWidth, parameter.RoomHeight)
	}
	if want := headerSize + int(w*h); len(data) < want {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortData, len(data), want)
	}

	var tiles Tiles
	i := headerSize
	for y := range tiles {
		for x := range tiles[y] {
			t := Tile(data[i])
			if t != TileEmpty && t != TileWall {
				return fmt.Errorf("%w: %d at (%d, %d)", ErrTileKind, t, x, y)
			}
			tiles[y][x] = t
			i++
		}
	}
	r.Tiles = tiles
	return nil
}
