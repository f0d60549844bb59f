package render

import "github.com/lixenwraith/roomrow/parameter"

// sheet is the terminal stand-in for a sprite sheet: one rune per frame
// flipped frames face left, nil reuses frames
type sheet struct {
	color   RGB
	frames  []rune
	flipped []rune
}

var sheets = map[string]sheet{
	parameter.SheetIdle:       {color: RgbEntity, frames: []rune("@&"), flipped: nil},
	parameter.SheetWalking:    {color: RgbWalking, frames: []rune("}>)>"), flipped: []rune("{<(<")},
	parameter.SheetPlasmaBolt: {color: RgbPlasmaBolt, frames: []rune("*+")},
	parameter.SheetPlasmaPop:  {color: RgbPlasmaPop, frames: []rune("oO°.")},
}

// unknownGlyph marks a sheet or frame the table does not know
const unknownGlyph = '?'

// glyph resolves a sheet frame to its rune and color
func glyph(name string, frame int, flip bool) (rune, RGB) {
	s, ok := sheets[name]
	if !ok {
		return unknownGlyph, RgbDebug
	}
	frames := s.frames
	if flip && s.flipped != nil {
		frames = s.flipped
	}
	if frame < 0 || frame >= len(frames) {
		return unknownGlyph, s.color
	}
	return frames[frame], s.color
}
