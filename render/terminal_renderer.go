package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/roomrow/animation"
	"github.com/lixenwraith/roomrow/parameter"
	"github.com/lixenwraith/roomrow/vmath"
)

// Block glyphs
const (
	glyphFill    = '█'
	glyphOutline = '░'
	glyphLine    = '·'
)

// TerminalRenderer draws screen-space pixel geometry onto a tcell screen
// Every cell covers CellPixelWidth x CellPixelHeight pixels
type TerminalRenderer struct {
	screen tcell.Screen
	bg     RGB
	cellW  float64
	cellH  float64
}

// NewTerminalRenderer creates a renderer on an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		bg:     RgbBackground,
		cellW:  parameter.CellPixelWidth,
		cellH:  parameter.CellPixelHeight,
	}
}

// Size returns the screen size in pixels
func (r *TerminalRenderer) Size() vmath.Vec2F {
	w, h := r.screen.Size()
	return vmath.V2(float64(w)*r.cellW, float64(h)*r.cellH)
}

// Clear fills the whole screen with the background color
func (r *TerminalRenderer) Clear(bg RGB) {
	r.bg = bg
	style := tcell.StyleDefault.Background(bg.TCell())
	r.screen.Fill(' ', style)
}

// Show flushes the frame to the terminal
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// cell maps a screen pixel to its cell
func (r *TerminalRenderer) cell(p vmath.Vec2F) (int, int) {
	return int(math.Floor(p.X / r.cellW)), int(math.Floor(p.Y / r.cellH))
}

// span returns the half-open cell range covered by a pixel rect, never empty
func (r *TerminalRenderer) span(rect vmath.RectF) (x0, y0, x1, y1 int) {
	x0, y0 = r.cell(vmath.V2(rect.X, rect.Y))
	x1 = int(math.Ceil((rect.X + rect.W) / r.cellW))
	y1 = int(math.Ceil((rect.Y + rect.H) / r.cellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// set writes one cell, clipped to the screen
func (r *TerminalRenderer) set(x, y int, ch rune, fg RGB) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(fg.TCell()).Background(r.bg.TCell())
	r.screen.SetContent(x, y, ch, nil, style)
}

// FillRect paints a solid rect
func (r *TerminalRenderer) FillRect(rect vmath.RectF, color RGB) {
	x0, y0, x1, y1 := r.span(rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.set(x, y, glyphFill, color)
		}
	}
}

// RenderSpriteFrame fills dst with the frame glyph, faded toward the background by alpha
func (r *TerminalRenderer) RenderSpriteFrame(sprite animation.Sprite, dst vmath.RectF, flip bool, alpha float64) {
	if alpha <= 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}
	ch, color := glyph(sprite.Sheet, sprite.Frame, flip)
	color = Blend(r.bg, color, alpha)

	x0, y0, x1, y1 := r.span(dst)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.set(x, y, ch, color)
		}
	}
}

// RenderRectOutline draws the border cells of a rect
func (r *TerminalRenderer) RenderRectOutline(rect vmath.RectF, color RGB) {
	x0, y0, x1, y1 := r.span(rect)
	for x := x0; x < x1; x++ {
		r.set(x, y0, glyphOutline, color)
		r.set(x, y1-1, glyphOutline, color)
	}
	for y := y0; y < y1; y++ {
		r.set(x0, y, glyphOutline, color)
		r.set(x1-1, y, glyphOutline, color)
	}
}

// RenderLine walks the cells between two pixels
func (r *TerminalRenderer) RenderLine(from, to vmath.Vec2F, color RGB) {
	x0, y0 := r.cell(from)
	x1, y1 := r.cell(to)

	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		r.set(x0, y0, glyphLine, color)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		r.set(x, y, glyphLine, color)
	}
}

// RenderText writes text left to right starting at the cell under pos
func (r *TerminalRenderer) RenderText(pos vmath.Vec2F, text string, color RGB) {
	x, y := r.cell(pos)
	for _, ch := range text {
		r.set(x, y, ch, color)
		x++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
