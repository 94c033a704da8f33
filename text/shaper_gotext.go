package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - Kerning pairs from GPOS
//   - Right-to-left text (Arabic, Hebrew)
//   - Complex scripts (Devanagari, Thai, etc.)
//
// Faces that go-text cannot parse are shaped with the BuiltinShaper.
//
// GoTextShaper reuses one HarfbuzzShaper and is not safe for concurrent use.
type GoTextShaper struct {
	hb       shaping.HarfbuzzShaper
	fallback BuiltinShaper
	lang     language.Language
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{lang: language.NewLanguage("en")}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(runes []rune, face *Face, px float32, dir di.Direction) []ShapedGlyph {
	if len(runes) == 0 || face == nil {
		return nil
	}
	gtFace := face.goTextFace()
	if gtFace == nil {
		return s.fallback.Shape(runes, face, px, dir)
	}

	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gtFace,
		Size:      ppem(px),
		Script:    detectScript(runes),
		Language:  s.lang,
	})
	return convertGlyphs(out.Glyphs)
}

// detectScript returns the script of the first non-space rune. Segments
// passed by Layout are single words, so one script per run is enough.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs to ShapedGlyphs.
// go-text offsets point up; ShapedGlyph offsets point down.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		result[i] = ShapedGlyph{
			GID:     uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			Cluster: g.TextIndex(),
			X:       fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: fixedToFloat(g.Advance),
		}
	}
	return result
}

var (
	_ Shaper = (*GoTextShaper)(nil)
	_ Shaper = BuiltinShaper{}
)
