package engine

import (
	"log"

	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/projectile"
	"github.com/lixenwraith/roomrow/room"
	"github.com/lixenwraith/roomrow/vmath"
)

// MoveCursor records the mouse in screen pixels, refreshes the collision probe and extends a tile drag
func (g *Game) MoveCursor(screen vmath.Vec2F) {
	g.cursor = screen
	g.mouseWorld = g.Camera.ToWorld(screen)
	g.collisionProbe = g.Rooms.ResolvePointCollision(g.mouseWorld)

	switch g.drawState {
	case DrawCreate:
		g.setTileAt(g.mouseWorld, room.TileWall)
	case DrawDelete:
		g.setTileAt(g.mouseWorld, room.TileEmpty)
	case DrawIdle:
	}
}

// Cursor returns the last mouse position in screen pixels
func (g *Game) Cursor() vmath.Vec2F {
	return g.cursor
}

// MouseWorld returns the last mouse position in world pixels
func (g *Game) MouseWorld() vmath.Vec2F {
	return g.mouseWorld
}

// CollisionProbe returns the mouse point resolved against the room geometry
func (g *Game) CollisionProbe() vmath.Vec2F {
	return g.collisionProbe
}

// Fire shoots the player's weapon, playing the shot sample on success
func (g *Game) Fire() bool {
	if !g.Entities.Shoot(parameter.PlayerEntityIndex, g.Projectiles) {
		return false
	}
	g.audio.Play(g.bank.Shoot)
	return true
}

// Jump advances the player's jump: first call crouches, second launches
func (g *Game) Jump() {
	g.Player().Jump(g.Gravity, g.audio, g.rng)
}

// Walk sets the player's horizontal direction, zero stops
func (g *Game) Walk(direction float64) {
	g.Player().Walk(direction)
}

// BeginDraw starts a debug tile drag: tracks a projectile under the mouse, otherwise toggles the tile
// The toggled tile picks whether the drag creates or deletes
func (g *Game) BeginDraw() {
	if !g.Debug {
		return
	}

	g.tracking, g.isTracking = g.Projectiles.At(g.mouseWorld)
	if g.isTracking {
		return
	}

	index, ok := g.Rooms.IndexAt(g.mouseWorld)
	if !ok {
		return
	}
	r := g.Rooms.Room(index)
	c := r.TileAt(g.mouseWorld)
	if !r.IsTileInBounds(c) {
		return
	}
	if r.IsTileEmpty(c) {
		g.drawState = DrawCreate
		r.SetTile(c, room.TileWall)
	} else {
		g.drawState = DrawDelete
		r.SetTile(c, room.TileEmpty)
	}
}

// EndDraw releases the tile brush
func (g *Game) EndDraw() {
	g.drawState = DrawIdle
}

// DrawState returns the active tile brush
func (g *Game) DrawState() DrawState {
	return g.drawState
}

// Tracked returns the projectile followed by the debug overlay
func (g *Game) Tracked() (projectile.Index, bool) {
	return g.tracking, g.isTracking
}

func (g *Game) setTileAt(p vmath.Vec2F, t room.Tile) {
	index, ok := g.Rooms.IndexAt(p)
	if !ok {
		return
	}
	r := g.Rooms.Room(index)
	r.SetTile(r.TileAt(p), t)
}

// ToggleDebug flips the debug overlay and tooling, which also pauses enemy AI
func (g *Game) ToggleDebug() {
	g.Debug = !g.Debug
	log.Printf("debug: %t", g.Debug)
}

// ToggleStepMode switches between the accumulator and manual ticks
func (g *Game) ToggleStepMode() {
	g.Clock.SetStepMode(!g.Clock.StepMode())
	log.Printf("step mode: %t", g.Clock.StepMode())
}

// StepOnce runs a single tick while in step mode
func (g *Game) StepOnce() bool {
	if !g.Clock.StepMode() {
		return false
	}
	g.Step(g.Clock.Tick())
	return true
}

// TeleportToRoom moves the player to the center of a room, debug only
func (g *Game) TeleportToRoom(index room.Index) bool {
	if !g.Debug || !g.Rooms.InBounds(index) {
		return false
	}
	g.Player().Pos = g.Rooms.Room(index).Center()
	log.Printf("teleport: room %d", index)
	return true
}

// CopyRoom remembers the player's room as the paste source, debug only
func (g *Game) CopyRoom() bool {
	if !g.Debug {
		return false
	}
	g.clipboard = g.playerRoom()
	g.Notify("Copied room %d", g.clipboard)
	return true
}

// PasteRoom overwrites the player's room tiles with the copied room, debug only
func (g *Game) PasteRoom() bool {
	if !g.Debug {
		return false
	}
	dst := g.playerRoom()
	g.Rooms.Room(dst).CopyFrom(g.Rooms.Room(g.clipboard))
	g.Notify("Pasted room %d into room %d", g.clipboard, dst)
	return true
}

// SaveRoom writes the player's room to the store
func (g *Game) SaveRoom() error {
	if g.store == nil {
		return nil
	}
	index := g.playerRoom()
	if err := g.store.Save(g.Rooms.Room(index), index); err != nil {
		g.Notify("Save room %d failed: %v", index, err)
		return err
	}
	g.Notify("Saved room %d to `%s`", index, g.store.Path(index))
	return nil
}

// LoadRoom reloads the player's room from the store, the room is untouched on error
func (g *Game) LoadRoom() error {
	if g.store == nil {
		return nil
	}
	index := g.playerRoom()
	if err := g.store.Load(g.Rooms.Room(index), index); err != nil {
		g.Notify("Load room %d failed: %v", index, err)
		return err
	}
	g.Notify("Loaded room %d from `%s`", index, g.store.Path(index))
	return nil
}

// Reset respawns every entity
func (g *Game) Reset() {
	g.ResetEntities()
	log.Printf("entities reset")
}
