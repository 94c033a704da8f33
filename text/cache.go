package text

import (
	"math"

	"github.com/gogpu/ggsoft/internal/cache"
)

// LayoutKey identifies one shaping request.
//
// The size is compared by its IEEE 754 bit pattern so that equal requests
// always hit, including NaN sizes.
type LayoutKey struct {
	Content  string
	SizeBits uint32
	Font     string
}

// NewLayoutKey creates the cache key for laying out content at size px with
// the named font. The default font has an empty name.
func NewLayoutKey(content string, px float32, font string) LayoutKey {
	return LayoutKey{Content: content, SizeBits: math.Float32bits(px), Font: font}
}

// Size returns the pixel size encoded in the key.
func (k LayoutKey) Size() float32 {
	return math.Float32frombits(k.SizeBits)
}

// CacheStats contains cache statistics for monitoring.
type CacheStats = cache.Stats

// LayoutCache maps layout keys to positioned glyphs.
//
// Entries are only replaced whole: Put stores a complete layout and the
// previous one for the key is dropped. Entries are never evicted.
type LayoutCache struct {
	store *cache.Cache[LayoutKey, []Glyph]
}

// NewLayoutCache creates an empty layout cache.
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{store: cache.New[LayoutKey, []Glyph]()}
}

// Get returns the glyphs stored under key. The slice must not be modified.
func (c *LayoutCache) Get(key LayoutKey) ([]Glyph, bool) {
	return c.store.Get(key)
}

// Put stores glyphs under key, replacing any previous layout.
func (c *LayoutCache) Put(key LayoutKey, glyphs []Glyph) {
	c.store.Set(key, glyphs)
}

// Len returns the number of cached layouts.
func (c *LayoutCache) Len() int {
	return c.store.Len()
}

// Stats returns current cache statistics.
func (c *LayoutCache) Stats() CacheStats {
	return c.store.Stats()
}

// GlyphRasterKey identifies one rasterized glyph.
//
// Char is the first character of the glyph's cluster. Glyph is the shaped
// glyph index, which differs from the character map lookup when the shaper
// substitutes ligatures or contextual forms.
type GlyphRasterKey struct {
	Font     string
	Char     rune
	Glyph    uint16
	SizeBits uint32
}

// Size returns the pixel size encoded in the key.
func (k GlyphRasterKey) Size() float32 {
	return math.Float32frombits(k.SizeBits)
}

// GlyphCache maps glyph keys to coverage bitmaps. Bitmaps are rasterized on
// first use and never evicted.
type GlyphCache struct {
	store *cache.Cache[GlyphRasterKey, *Bitmap]
}

// NewGlyphCache creates an empty glyph cache.
func NewGlyphCache() *GlyphCache {
	return &GlyphCache{store: cache.New[GlyphRasterKey, *Bitmap]()}
}

// Get returns the bitmap for key, rasterizing it from face on a miss.
// The bitmap must not be modified.
func (c *GlyphCache) Get(key GlyphRasterKey, face *Face) *Bitmap {
	return c.store.GetOrCreate(key, func() *Bitmap {
		return Rasterize(face, key.Glyph, key.Size())
	})
}

// Len returns the number of cached bitmaps.
func (c *GlyphCache) Len() int {
	return c.store.Len()
}

// Stats returns current cache statistics.
func (c *GlyphCache) Stats() CacheStats {
	return c.store.Stats()
}
