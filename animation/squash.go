package animation

import (
	"math"

	"github.com/lixenwraith/roomrow/vmath"
)

// Squash fades a captured sprite from opaque to transparent over Duration
// A is the normalized progress
type Squash struct {
	Sprite   Sprite
	Duration float64
	A        float64
}

// Update advances progress linearly
func (s *Squash) Update(dt float64) {
	if s.Duration <= 0 {
		s.A = 1
		return
	}
	s.A += dt / s.Duration
}

// Finished reports whether the fade is complete
func (s *Squash) Finished() bool {
	return s.A >= 1
}

// Reset restarts the fade, captured sprite and duration are kept
func (s *Squash) Reset() {
	s.A = 0
}

// Alpha returns the opacity in [0, 1]
func (s *Squash) Alpha() float64 {
	return 1 - math.Min(math.Max(s.A, 0), 1)
}

// TransformRect flattens the texture rect toward its bottom edge as the fade progresses
func (s *Squash) TransformRect(texbox vmath.RectF) vmath.RectF {
	a := math.Min(math.Max(s.A, 0), 1)
	w := texbox.W * (1 + 0.5*a)
	h := texbox.H * (1 - a)
	return vmath.RectF{
		X: texbox.X + (texbox.W-w)*0.5,
		Y: texbox.Y + texbox.H - h,
		W: w,
		H: h,
	}
}
