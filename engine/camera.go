package engine

import "github.com/lixenwraith/roomrow/vmath"

// Camera maps between world and screen pixels, Pos is the world point at the screen center
type Camera struct {
	Pos  vmath.Vec2F
	Size vmath.Vec2F
}

// ToScreen converts a world point to screen pixels
func (c Camera) ToScreen(p vmath.Vec2F) vmath.Vec2F {
	return vmath.V2Add(vmath.V2Sub(p, c.Pos), vmath.V2Scale(c.Size, 0.5))
}

// ToWorld converts a screen pixel to a world point
func (c Camera) ToWorld(p vmath.Vec2F) vmath.Vec2F {
	return vmath.V2Sub(vmath.V2Add(p, c.Pos), vmath.V2Scale(c.Size, 0.5))
}

// ToScreenRect converts a world rect to screen pixels
func (c Camera) ToScreenRect(r vmath.RectF) vmath.RectF {
	p := c.ToScreen(vmath.V2(r.X, r.Y))
	return vmath.Rect(p.X, p.Y, r.W, r.H)
}
