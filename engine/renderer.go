package engine

import (
	"github.com/lixenwraith/roomrow/animation"
	"github.com/lixenwraith/roomrow/render"
	"github.com/lixenwraith/roomrow/vmath"
)

// Renderer draws screen-space pixel geometry
// Implemented by render.TerminalRenderer
type Renderer interface {
	Size() vmath.Vec2F
	Clear(bg render.RGB)
	FillRect(rect vmath.RectF, color render.RGB)
	RenderSpriteFrame(sprite animation.Sprite, dst vmath.RectF, flip bool, alpha float64)
	RenderRectOutline(rect vmath.RectF, color render.RGB)
	RenderLine(from, to vmath.Vec2F, color render.RGB)
	RenderText(pos vmath.Vec2F, text string, color render.RGB)
	Show()
}
