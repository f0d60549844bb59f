package vmath

// RectF is an axis-aligned rectangle, X/Y is the top-left corner
type RectF struct {
	X, Y, W, H float64
}

func Rect(x, y, w, h float64) RectF {
	return RectF{x, y, w, h}
}

// RectTranslate moves the rectangle by offset, size unchanged
func RectTranslate(r RectF, offset Vec2F) RectF {
	return RectF{r.X + offset.X, r.Y + offset.Y, r.W, r.H}
}

// RectContains checks if point is within rect, edges inclusive
func RectContains(r RectF, p Vec2F) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

// RectCorners returns corners ordered top-left, top-right, bottom-left, bottom-right
func RectCorners(r RectF) [4]Vec2F {
	p0 := Vec2F{r.X, r.Y}
	p1 := Vec2F{r.X + r.W, r.Y + r.H}
	return [4]Vec2F{
		p0,
		{p1.X, p0.Y},
		{p0.X, p1.Y},
		p1,
	}
}

// RectCenter returns the center point of the rect
func RectCenter(r RectF) Vec2F {
	return Vec2F{r.X + r.W*0.5, r.Y + r.H*0.5}
}
