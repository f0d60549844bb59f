package room

import (
	"math"

	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/vmath"
)

// Boundary is the room-local extent shared by all rooms
var Boundary = vmath.RectF{
	X: 0,
	Y: 0,
	W: parameter.RoomPixelWidth,
	H: parameter.RoomPixelHeight,
}

// Room is a fixed tile grid placed at a world-space offset
type Room struct {
	Position vmath.Vec2F
	Tiles    Tiles
}

// IsTileInBounds checks tile coordinates against the grid dimensions
func (r *Room) IsTileInBounds(c TileCoord) bool {
	return 0 <= c.X && c.X < parameter.RoomWidth && 0 <= c.Y && c.Y < parameter.RoomHeight
}

// IsTileEmpty reports whether the tile is open, out-of-bounds tiles count as open
func (r *Room) IsTileEmpty(c TileCoord) bool {
	if !r.IsTileInBounds(c) {
		return true
	}
	return r.Tiles[c.Y][c.X] == TileEmpty
}

// TileAt returns the tile coordinate covering a world-space point, possibly out of bounds
func (r *Room) TileAt(p vmath.Vec2F) TileCoord {
	local := vmath.V2Sub(p, r.Position)
	return TileCoord{
		X: int(math.Floor(local.X / parameter.TileSize)),
		Y: int(math.Floor(local.Y / parameter.TileSize)),
	}
}

// IsTileAtWorldEmpty reports whether the tile under a world-space point is open
func (r *Room) IsTileAtWorldEmpty(p vmath.Vec2F) bool {
	return r.IsTileEmpty(r.TileAt(p))
}

// SetTile writes a tile for debug editing, returns false when the coordinate is rejected
func (r *Room) SetTile(c TileCoord, t Tile) bool {
	if !r.IsTileInBounds(c) {
		return false
	}
	r.Tiles[c.Y][c.X] = t
	return true
}

// CopyFrom replaces the tile contents with another room's, position is kept
func (r *Room) CopyFrom(other *Room) {
	r.Tiles = other.Tiles
}

// Center returns the world-space center of the room
func (r *Room) Center() vmath.Vec2F {
	return vmath.V2Add(r.Position, vmath.RectCenter(Boundary))
}

// WorldBoundary returns the room extent in world space
func (r *Room) WorldBoundary() vmath.RectF {
	return vmath.RectTranslate(Boundary, r.Position)
}

// side is one candidate exit from a wall tile
type side struct {
	neighbor TileCoord
	dist     float64
	target   vmath.Vec2F
}

// ResolvePointCollision pushes a point out of the wall tile it lies in
// The exit is the tile edge with the smallest displacement, preferring edges
// that open onto a non-wall tile; ties go left, right, top, bottom
// Points in open or out-of-bounds tiles are returned unchanged
func (r *Room) ResolvePointCollision(p vmath.Vec2F) vmath.Vec2F {
	tile := r.TileAt(p)
	if r.IsTileEmpty(tile) {
		return p
	}

	local := vmath.V2Sub(p, r.Position)
	x0 := float64(tile.X) * parameter.TileSize
	y0 := float64(tile.Y) * parameter.TileSize
	x1 := x0 + parameter.TileSize
	y1 := y0 + parameter.TileSize

	sides := [4]side{
		{TileCoord{tile.X - 1, tile.Y}, local.X - x0, vmath.Vec2F{X: x0, Y: local.Y}},
		{TileCoord{tile.X + 1, tile.Y}, x1 - local.X, vmath.Vec2F{X: x1, Y: local.Y}},
		{TileCoord{tile.X, tile.Y - 1}, local.Y - y0, vmath.Vec2F{X: local.X, Y: y0}},
		{TileCoord{tile.X, tile.Y + 1}, y1 - local.Y, vmath.Vec2F{X: local.X, Y: y1}},
	}

	best := -1
	for i, s := range sides {
		if !r.IsTileEmpty(s.neighbor) {
			continue
		}
		if best < 0 || s.dist < sides[best].dist {
			best = i
		}
	}
	// Enclosed tile: every edge competes
	if best < 0 {
		best = 0
		for i := 1; i < len(sides); i++ {
			if sides[i].dist < sides[best].dist {
				best = i
			}
		}
	}

	return vmath.V2Add(sides[best].target, r.Position)
}
