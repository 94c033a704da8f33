package text

import "github.com/go-text/typesetting/di"

// ShapedGlyph is a glyph positioned relative to the start of a shaped run.
type ShapedGlyph struct {
	// GID is the glyph index in the face.
	GID uint16

	// Cluster is the index of the first rune this glyph represents.
	Cluster int

	// X and Y are the offset of the glyph origin from the pen position at
	// which this glyph starts. Y points down.
	X, Y float32

	// Advance is how far the pen moves after this glyph.
	Advance float32
}

// Shaper converts a run of runes in one direction to positioned glyphs.
// Glyphs are returned in visual order, left to right.
type Shaper interface {
	Shape(runes []rune, face *Face, px float32, dir di.Direction) []ShapedGlyph
}

// BuiltinShaper maps each rune to one glyph using the font's character map,
// applying pair kerning from the kern table.
//
// It does not substitute ligatures or contextual forms. Right-to-left runs
// are reversed so glyphs come out in visual order.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (BuiltinShaper) Shape(runes []rune, face *Face, px float32, dir di.Direction) []ShapedGlyph {
	if len(runes) == 0 || face == nil {
		return nil
	}

	result := make([]ShapedGlyph, 0, len(runes))
	var prev uint16
	for i := range runes {
		cluster := i
		if dir.Progression() == di.TowardTopLeft {
			cluster = len(runes) - 1 - i
		}
		gid := face.GlyphIndex(runes[cluster])
		if len(result) > 0 {
			result[len(result)-1].Advance += face.Kern(prev, gid, px)
		}
		result = append(result, ShapedGlyph{
			GID:     gid,
			Cluster: cluster,
			Advance: face.Advance(gid, px),
		})
		prev = gid
	}
	return result
}
