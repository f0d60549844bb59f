package room

import (
	"fmt"
	"math"

	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/vmath"
)

// Index addresses a room in the row
type Index int

// Row is the fixed sequence of rooms laid out left to right
type Row struct {
	rooms [parameter.RoomRowCount]Room
}

// NewRow creates a row of empty rooms at their world offsets
func NewRow() *Row {
	row := &Row{}
	for i := range row.rooms {
		row.rooms[i].Position = vmath.Vec2F{X: float64(i) * Boundary.W, Y: 0}
	}
	return row
}

// Len returns the number of rooms
func (row *Row) Len() int {
	return len(row.rooms)
}

// InBounds checks a room index against the row length
func (row *Row) InBounds(index Index) bool {
	return 0 <= index && int(index) < len(row.rooms)
}

// Room returns the room at index, panics on an out-of-bounds index
func (row *Row) Room(index Index) *Room {
	if !row.InBounds(index) {
		panic(fmt.Sprintf("room: index %d out of row bounds [0, %d)", index, len(row.rooms)))
	}
	return &row.rooms[index]
}

// IndexAt maps a world x coordinate to its room, ok=false outside the row
func (row *Row) IndexAt(p vmath.Vec2F) (Index, bool) {
	f := math.Floor(p.X / Boundary.W)
	if f < 0 || f >= float64(len(row.rooms)) {
		return 0, false
	}
	return Index(f), true
}

// ResolvePointCollision corrects a point against the room owning its x coordinate
// Points outside the row are returned unchanged
func (row *Row) ResolvePointCollision(p vmath.Vec2F) vmath.Vec2F {
	index, ok := row.IndexAt(p)
	if !ok {
		return p
	}
	return row.rooms[index].ResolvePointCollision(p)
}

// IsTileAtWorldEmpty queries the room owning the point, points outside the row are open
func (row *Row) IsTileAtWorldEmpty(p vmath.Vec2F) bool {
	index, ok := row.IndexAt(p)
	if !ok {
		return true
	}
	return row.rooms[index].IsTileAtWorldEmpty(p)
}
