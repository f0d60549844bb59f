package animation

import "github.com/lixenwraith/roomrow/vmath"

// ComposeRubber plays rubber segments back to back
type ComposeRubber struct {
	Segments []Rubber
	Current  int
}

// NewComposeRubber chains the given segments in order
func NewComposeRubber(segments ...Rubber) ComposeRubber {
	return ComposeRubber{Segments: append([]Rubber(nil), segments...)}
}

// Update advances the active segment and switches to the next on its completion
func (c *ComposeRubber) Update(dt float64) {
	if len(c.Segments) == 0 {
		return
	}
	seg := &c.Segments[c.Current]
	seg.Update(dt)
	if seg.Finished() && c.Current+1 < len(c.Segments) {
		c.Current++
	}
}

// Finished reports whether the last segment completed
func (c *ComposeRubber) Finished() bool {
	if len(c.Segments) == 0 {
		return true
	}
	return c.Current == len(c.Segments)-1 && c.Segments[c.Current].Finished()
}

// Reset rewinds every segment and returns to the first one
func (c *ComposeRubber) Reset() {
	for i := range c.Segments {
		c.Segments[i].Reset()
	}
	c.Current = 0
}

// Value returns the active segment's offset
func (c *ComposeRubber) Value() float64 {
	if len(c.Segments) == 0 {
		return 0
	}
	return c.Segments[c.Current].Value()
}

// TransformRect applies the active segment's offset
func (c *ComposeRubber) TransformRect(texbox vmath.RectF, origin vmath.Vec2F) vmath.RectF {
	return squashRect(texbox, origin, c.Value())
}
