package animation

import "github.com/lixenwraith/roomrow/vmath"

// Rubber interpolates a scalar from Begin to End over Duration
// The scalar is a squash offset: positive widens and flattens, negative stretches
type Rubber struct {
	Begin    float64
	End      float64
	Duration float64
	T        float64
}

// Update advances elapsed time until finished
func (r *Rubber) Update(dt float64) {
	if !r.Finished() {
		r.T += dt
	}
}

// Finished reports whether elapsed time reached duration
func (r *Rubber) Finished() bool {
	return r.T >= r.Duration
}

// Reset zeroes elapsed time, bounds untouched
func (r *Rubber) Reset() {
	r.T = 0
}

// Progress returns elapsed/duration, unclamped, 1 for a zero duration
func (r *Rubber) Progress() float64 {
	if r.Duration <= 0 {
		return 1
	}
	return r.T / r.Duration
}

// Value returns the interpolated offset, clamped to the segment
func (r *Rubber) Value() float64 {
	p := r.Progress()
	if p > 1 {
		p = 1
	}
	return r.Begin + (r.End-r.Begin)*p
}

// TransformRect applies the offset to a local texbox anchored at origin, bottom edge kept
func (r *Rubber) TransformRect(texbox vmath.RectF, origin vmath.Vec2F) vmath.RectF {
	return squashRect(texbox, origin, r.Value())
}

func squashRect(texbox vmath.RectF, origin vmath.Vec2F, offset float64) vmath.RectF {
	w := texbox.W * (1 + offset)
	h := texbox.H * (1 - offset)
	return vmath.RectF{
		X: origin.X - w*0.5,
		Y: origin.Y + texbox.Y + texbox.H - h,
		W: w,
		H: h,
	}
}
