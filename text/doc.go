// Package text shapes, lays out and rasterizes text for the software backend.
//
// # Overview
//
// Text drawing is split into two memoized stages:
//
//   - Layout turns a (content, size, font) triple into positioned glyphs.
//     Results are stored in a [LayoutCache] under a [LayoutKey].
//   - Rasterize turns one glyph at one size into a coverage [Bitmap].
//     Results are stored in a [GlyphCache] under a [GlyphRasterKey].
//
// Fonts are resolved by name through a [Registry], which falls back to the
// built-in Go Regular face when a font cannot be decoded.
//
// # Shaping
//
// Two shapers are provided. [GoTextShaper] uses the HarfBuzz port from
// go-text/typesetting and applies kerning, ligatures and complex script
// rules. [BuiltinShaper] maps runes to glyphs one by one with kerning from
// the font's kern table.
//
// # Line Breaking
//
// Layout breaks lines at Unicode line break opportunities (UAX #14) and
// always at mandatory breaks. Words wrap when they would overflow the
// maximum width. Whitespace advances the pen but produces no glyphs.
//
// # Threading
//
// Registry and the caches are owned by one renderer and are not safe for
// concurrent use. A [Face] may be shared; its methods are safe for
// concurrent use.
package text
