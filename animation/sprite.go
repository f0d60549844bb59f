// Package animation holds the time-driven value producers consumed by entities and projectiles.
// Every kind advances by a delta time; completion of the terminating kinds is a simulation event.
package animation

// Sprite references one frame of a named sprite sheet
// The renderer owns the mapping from sheet name to pixels or glyphs
type Sprite struct {
	Sheet string
	Frame int
}

// IsZero reports whether no sprite was captured
func (s Sprite) IsZero() bool {
	return s.Sheet == ""
}
