package text

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggsoft"
)

// Metrics holds the vertical metrics of a face at one pixel size.
// Distances are in pixels with y pointing down from the line top.
type Metrics struct {
	// Ascent is the distance from the line top to the baseline.
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the
	// lowest descender. It is positive.
	Descent float32

	// LineHeight is the recommended distance between consecutive baselines.
	LineHeight float32
}

// Face is a decoded font.
//
// Glyph metrics and outlines come from golang.org/x/image/font/sfnt. When
// go-text/typesetting can also parse the data, the face carries a go-text
// font for HarfBuzz shaping.
type Face struct {
	id     uint64
	name   string
	sfnt   *sfnt.Font
	gotext *font.Font

	mu     sync.Mutex
	buf    sfnt.Buffer
	shaped *font.Face
}

// ParseFace decodes TrueType or OpenType data.
func ParseFace(name string, data []byte) (*Face, error) {
	return parseFace(0, name, data)
}

func parseFace(id uint64, name string, data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %q: %w", name, err)
	}
	face := &Face{id: id, name: name, sfnt: f}

	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		ggsoft.Logger().Debug("text: go-text cannot parse font, using builtin shaping",
			"font", name, "err", err)
	} else {
		face.gotext = gt.Font
	}
	return face, nil
}

// ID returns the registry-assigned identifier. Faces parsed outside a
// registry have ID 0.
func (f *Face) ID() uint64 { return f.id }

// Name returns the name the face was resolved under. The fallback face has
// an empty name.
func (f *Face) Name() string { return f.name }

// NumGlyphs returns the number of glyphs in the font.
func (f *Face) NumGlyphs() int { return f.sfnt.NumGlyphs() }

// Metrics returns the vertical metrics at px pixels per em.
func (f *Face) Metrics(px float32) Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.sfnt.Metrics(&f.buf, ppem(px), xfont.HintingNone)
	if err != nil {
		return Metrics{Ascent: px, LineHeight: px}
	}
	lh := m.Height
	if lh <= 0 {
		lh = m.Ascent + m.Descent
	}
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(lh),
	}
}

// GlyphIndex returns the glyph for r, or 0 (the missing glyph) when the font
// has none.
func (f *Face) GlyphIndex(r rune) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, err := f.sfnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return uint16(gid)
}

// Advance returns the horizontal advance of gid at px pixels per em.
func (f *Face) Advance(gid uint16, px float32) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	adv, err := f.sfnt.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), ppem(px), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// Bounds returns the ink box of gid relative to the pen on the baseline,
// with y pointing down.
func (f *Face) Bounds(gid uint16, px float32) (minX, minY, maxX, maxY float32) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, _, err := f.sfnt.GlyphBounds(&f.buf, sfnt.GlyphIndex(gid), ppem(px), xfont.HintingNone)
	if err != nil {
		return 0, 0, 0, 0
	}
	return fixedToFloat(b.Min.X), fixedToFloat(b.Min.Y), fixedToFloat(b.Max.X), fixedToFloat(b.Max.Y)
}

// Kern returns the kerning adjustment between a and b. Fonts without a kern
// table return 0.
func (f *Face) Kern(a, b uint16, px float32) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	k, err := f.sfnt.Kern(&f.buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), ppem(px), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// outline returns a copy of the outline of gid at px pixels per em.
func (f *Face) outline(gid uint16, px float32) (sfnt.Segments, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	segs, err := f.sfnt.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem(px), nil)
	if err != nil {
		return nil, err
	}
	return append(sfnt.Segments(nil), segs...), nil
}

// goTextFace returns the go-text face used for shaping, or nil when go-text
// could not parse the font. The returned face is not safe for concurrent
// use; callers shape on the renderer goroutine.
func (f *Face) goTextFace() *font.Face {
	if f.gotext == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shaped == nil {
		f.shaped = font.NewFace(f.gotext)
	}
	return f.shaped
}

func ppem(px float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(px) * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
