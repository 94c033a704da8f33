package text

import (
	"math"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/bidi"
)

// Box is an axis-aligned rectangle given by its corners. Y points down.
type Box struct {
	MinX, MinY, MaxX, MaxY float32
}

// Glyph is one positioned glyph produced by Layout.
type Glyph struct {
	// Key identifies the glyph's bitmap in a GlyphCache.
	Key GlyphRasterKey

	// X and Y are the pen position on the baseline, relative to the top-left
	// corner of the layout.
	X, Y float32

	// Advance is the horizontal advance of the glyph.
	Advance float32

	// Bounds is the ink box relative to the top-left corner of the layout.
	Bounds Box

	// Line is the zero-based line index.
	Line int

	// LineTop and LineHeight describe the line box containing the glyph.
	LineTop, LineHeight float32
}

// LayoutOptions constrain Layout.
type LayoutOptions struct {
	// MaxWidth is the width at which words wrap. Zero, negative, infinite
	// and NaN values disable wrapping.
	MaxWidth float32
}

func (o LayoutOptions) wraps() bool {
	return o.MaxWidth > 0 && !math.IsInf(float64(o.MaxWidth), 1)
}

// Layout shapes content with face at px pixels per em and breaks it into
// lines, starting at the top-left corner.
//
// Lines break at every mandatory break and, when wrapping is enabled, before
// a word whose ink would extend past MaxWidth on a line that already holds
// text. Whitespace advances the pen but produces no glyphs. A word wider
// than MaxWidth is placed on its own line without being split.
func Layout(face *Face, shaper Shaper, content string, px float32, opts LayoutOptions) []Glyph {
	if face == nil || content == "" || !(px > 0) {
		return nil
	}
	if shaper == nil {
		shaper = BuiltinShaper{}
	}

	var (
		m        = face.Metrics(px)
		wrap     = opts.wraps()
		sizeBits = math.Float32bits(px)
		fontName = face.Name()

		glyphs  []Glyph
		penX    float32
		lineTop float32
		line    int
	)
	newLine := func() {
		penX = 0
		lineTop += m.LineHeight
		line++
	}

	state := -1
	rest := content
	for len(rest) > 0 {
		var (
			seg       string
			mustBreak bool
		)
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		hard := mustBreak && uniseg.HasTrailingLineBreakInString(seg)
		if hard {
			seg = trimLineBreak(seg)
		}

		runes := []rune(seg)
		shaped := shaper.Shape(runes, face, px, direction(runes))

		var width, ink float32
		for _, g := range shaped {
			width += g.Advance
			if !isSpace(runeAt(runes, g.Cluster)) {
				ink = width
			}
		}
		if wrap && penX > 0 && penX+ink > opts.MaxWidth {
			newLine()
		}

		baseline := lineTop + m.Ascent
		x := penX
		for _, g := range shaped {
			r := runeAt(runes, g.Cluster)
			if !isSpace(r) {
				gx, gy := x+g.X, baseline+g.Y
				minX, minY, maxX, maxY := face.Bounds(g.GID, px)
				glyphs = append(glyphs, Glyph{
					Key:        GlyphRasterKey{Font: fontName, Char: r, Glyph: g.GID, SizeBits: sizeBits},
					X:          gx,
					Y:          gy,
					Advance:    g.Advance,
					Bounds:     Box{MinX: gx + minX, MinY: gy + minY, MaxX: gx + maxX, MaxY: gy + maxY},
					Line:       line,
					LineTop:    lineTop,
					LineHeight: m.LineHeight,
				})
			}
			x += g.Advance
		}
		penX += width

		if hard {
			newLine()
		}
	}
	return glyphs
}

func runeAt(runes []rune, i int) rune {
	if i < 0 || i >= len(runes) {
		return 0
	}
	return runes[i]
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// trimLineBreak removes the mandatory break at the end of a line segment.
func trimLineBreak(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	for _, nl := range [...]string{"\n", "\r", "\v", "\f", "\u0085", "\u2028", "\u2029"} {
		if strings.HasSuffix(s, nl) {
			return s[:len(s)-len(nl)]
		}
	}
	return s
}

// direction returns the direction of the first strong character, or
// left-to-right when there is none.
func direction(runes []rune) di.Direction {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
	}
	return di.DirectionLTR
}
