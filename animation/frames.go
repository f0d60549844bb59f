package animation

// Frames cycles through an ordered sprite sequence, one frame per FrameDuration
type Frames struct {
	Sprites       []Sprite
	FrameDuration float64
	Current       int
	cooldown      float64
}

// NewFrames builds a frame cycle over count consecutive frames of sheet
func NewFrames(sheet string, count int, frameDuration float64) Frames {
	sprites := make([]Sprite, count)
	for i := range sprites {
		sprites[i] = Sprite{Sheet: sheet, Frame: i}
	}
	return Frames{
		Sprites:       sprites,
		FrameDuration: frameDuration,
	}
}

// Clone returns an independent copy so pooled slots never share cursor state
func (f Frames) Clone() Frames {
	c := f
	c.Sprites = append([]Sprite(nil), f.Sprites...)
	return c
}

// Count returns the number of frames
func (f *Frames) Count() int {
	return len(f.Sprites)
}

// Update consumes the frame cooldown and steps the cursor once it runs out
// Loops indefinitely, no frames is inert
func (f *Frames) Update(dt float64) {
	if dt < f.cooldown {
		f.cooldown -= dt
		return
	}
	if n := len(f.Sprites); n > 0 {
		f.Current = (f.Current + 1) % n
		f.cooldown = f.FrameDuration
	}
}

// Reset rewinds to the first frame
func (f *Frames) Reset() {
	f.Current = 0
	f.cooldown = 0
}

// Sprite returns the frame under the cursor, ok=false when the cursor is out of range
func (f *Frames) Sprite() (Sprite, bool) {
	if f.Current < 0 || f.Current >= len(f.Sprites) {
		return Sprite{}, false
	}
	return f.Sprites[f.Current], true
}
