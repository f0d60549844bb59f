package engine

import (
	"fmt"

	"github.com/lixenwraith/roomrow/entity"
	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/projectile"
	"github.com/lixenwraith/roomrow/render"
	"github.com/lixenwraith/roomrow/room"
	"github.com/lixenwraith/roomrow/vmath"
)

// projectileSpriteSize is the drawn extent of a projectile, one terminal cell
var projectileSpriteSize = vmath.V2(parameter.CellPixelWidth, parameter.CellPixelHeight)

// Render draws one frame: the player's room, its dimmed neighbours, entities, projectiles and overlays
func (g *Game) Render(r Renderer) {
	current := g.playerRoom()
	g.Camera.Size = r.Size()
	g.Camera.Pos = g.Rooms.Room(current).Center()

	r.Clear(render.RgbBackground)

	if current > 0 {
		g.renderRoom(r, current-1, parameter.NeighborRoomDim)
	}
	g.renderRoom(r, current, 1)
	if int(current)+1 < g.Rooms.Len() {
		g.renderRoom(r, current+1, parameter.NeighborRoomDim)
	}

	g.Entities.Each(func(_ entity.Index, e *entity.Entity) {
		g.renderEntity(r, e)
	})
	g.Projectiles.Each(func(_ projectile.Index, p *projectile.Projectile) {
		g.renderProjectile(r, p)
	})

	if g.Debug {
		g.renderDebugOverlay(r)
	}

	if text, ok := g.popup.Text(); ok {
		size := r.Size()
		r.RenderText(vmath.V2(parameter.DebugPadding, size.Y-parameter.DebugLineHeight), text, render.RgbPopup)
	}

	r.Show()
}

// renderRoom fills the wall tiles, a wall with open space above gets the grass color
func (g *Game) renderRoom(r Renderer, index room.Index, brightness float64) {
	rm := g.Rooms.Room(index)
	for y := 0; y < parameter.RoomHeight; y++ {
		for x := 0; x < parameter.RoomWidth; x++ {
			c := room.TileCoord{X: x, Y: y}
			if rm.IsTileEmpty(c) {
				continue
			}
			color := render.RgbGround
			if rm.IsTileEmpty(room.TileCoord{X: x, Y: y - 1}) {
				color = render.RgbGroundTop
			}
			tile := vmath.Rect(
				rm.Position.X+float64(x)*parameter.TileSize,
				rm.Position.Y+float64(y)*parameter.TileSize,
				parameter.TileSize,
				parameter.TileSize,
			)
			r.FillRect(g.Camera.ToScreenRect(tile), render.Scale(color, brightness))
		}
	}
}

func (g *Game) renderEntity(r Renderer, e *entity.Entity) {
	switch e.State {
	case entity.StateAlive:
		if sprite, ok := e.CurrentSprite(); ok {
			r.RenderSpriteFrame(sprite, g.Camera.ToScreenRect(e.VisualTexbox()), !e.FacesRight(), 1)
		}
		muzzle := vmath.V2Add(e.Pos, vmath.V2Scale(e.GunDir, parameter.EntityGunLength))
		r.RenderLine(g.Camera.ToScreen(e.Pos), g.Camera.ToScreen(muzzle), render.RgbGun)

	case entity.StatePoof:
		if sprite, ok := e.CurrentSprite(); ok {
			dst := e.Poof.TransformRect(e.TexboxWorld())
			r.RenderSpriteFrame(sprite, g.Camera.ToScreenRect(dst), !e.FacesRight(), e.Poof.Alpha())
		}

	case entity.StateDead:
	}
}

func (g *Game) renderProjectile(r Renderer, p *projectile.Projectile) {
	sprite, ok := p.CurrentSprite()
	if !ok {
		return
	}
	center := g.Camera.ToScreen(p.Pos)
	dst := vmath.Rect(
		center.X-projectileSpriteSize.X*0.5,
		center.Y-projectileSpriteSize.Y*0.5,
		projectileSpriteSize.X,
		projectileSpriteSize.Y,
	)
	r.RenderSpriteFrame(sprite, dst, p.Vel.X < 0, 1)
}

// renderDebugOverlay draws the probe, the room under the mouse, the HUD, the minimap and debug boxes
func (g *Game) renderDebugOverlay(r Renderer) {
	const probe = parameter.CollisionProbeSize
	r.FillRect(g.Camera.ToScreenRect(vmath.Rect(g.collisionProbe.X-probe, g.collisionProbe.Y-probe, probe*2, probe*2)), render.RgbDebug)

	if index, ok := g.Rooms.IndexAt(g.mouseWorld); ok {
		r.RenderRectOutline(g.Camera.ToScreenRect(g.Rooms.Room(index).WorldBoundary()), render.RgbDebug)

		rm := g.Rooms.Room(index)
		c := rm.TileAt(g.mouseWorld)
		tile := vmath.Rect(
			rm.Position.X+float64(c.X)*parameter.TileSize,
			rm.Position.Y+float64(c.Y)*parameter.TileSize,
			parameter.TileSize,
			parameter.TileSize,
		)
		r.RenderRectOutline(g.Camera.ToScreenRect(tile), render.RgbDebug)
	}

	g.Entities.Each(func(_ entity.Index, e *entity.Entity) {
		if e.State != entity.StateAlive {
			return
		}
		r.RenderRectOutline(g.Camera.ToScreenRect(e.TexboxWorld()), render.RgbTexbox)
		r.RenderRectOutline(g.Camera.ToScreenRect(e.HitboxWorld()), render.RgbHitbox)
	})

	player := g.Player()
	lines := []string{
		fmt.Sprintf("Tick: %d Hz, step mode: %t", parameter.SimulationFPS, g.Clock.StepMode()),
		fmt.Sprintf("Mouse Position: (%.4f, %.4f)", g.mouseWorld.X, g.mouseWorld.Y),
		fmt.Sprintf("Collision Probe: (%.4f, %.4f)", g.collisionProbe.X, g.collisionProbe.Y),
		fmt.Sprintf("Projectiles: %d", g.Projectiles.CountAlive()),
		fmt.Sprintf("Player position: (%.4f, %.4f)", player.Pos.X, player.Pos.Y),
		fmt.Sprintf("Player velocity: (%.4f, %.4f)", player.Vel.X, player.Vel.Y),
		fmt.Sprintf("Player state: %s %s %s", player.State, player.AliveState, player.JumpState),
	}
	for i, line := range lines {
		r.RenderText(vmath.V2(parameter.DebugPadding, parameter.DebugPadding+float64(i)*parameter.DebugLineHeight), line, render.RgbDebug)
	}

	minimap := vmath.V2(parameter.DebugPadding, parameter.DebugPadding+float64(len(lines)+1)*parameter.DebugLineHeight)
	g.renderMinimap(r, minimap)

	if g.isTracking {
		p := g.Projectiles.Get(g.tracking)
		r.RenderRectOutline(g.Camera.ToScreenRect(g.Projectiles.Hitbox(g.tracking)), render.RgbTracked)

		size := r.Size()
		tracked := []string{
			fmt.Sprintf("State: %s", p.State),
			fmt.Sprintf("Position: (%.4f, %.4f)", p.Pos.X, p.Pos.Y),
			fmt.Sprintf("Velocity: (%.4f, %.4f)", p.Vel.X, p.Vel.Y),
			fmt.Sprintf("Shooter Index: %d", p.Shooter),
		}
		for i, line := range tracked {
			pos := vmath.V2(size.X*0.5, parameter.DebugPadding+float64(i)*parameter.DebugLineHeight)
			r.RenderText(pos, line, render.RgbTracked)
		}
	}

	if index, ok := g.Projectiles.At(g.mouseWorld); ok {
		r.RenderRectOutline(g.Camera.ToScreenRect(g.Projectiles.Hitbox(index)), render.RgbTracked)
	}
}

// renderMinimap outlines every room in a strip and marks the player
func (g *Game) renderMinimap(r Renderer, origin vmath.Vec2F) {
	for i := 0; i < g.Rooms.Len(); i++ {
		cell := vmath.Rect(origin.X+float64(i)*parameter.MinimapRoomWidth, origin.Y, parameter.MinimapRoomWidth, parameter.MinimapRoomHeight)
		r.RenderRectOutline(cell, render.RgbMinimap)
	}

	pos := g.Player().Pos
	scale := vmath.V2(parameter.MinimapRoomWidth/room.Boundary.W, parameter.MinimapRoomHeight/room.Boundary.H)
	dot := vmath.V2(origin.X+pos.X*scale.X, origin.Y+pos.Y*scale.Y)
	r.FillRect(vmath.Rect(dot.X, dot.Y, 1, 1), render.RgbDebug)
}
