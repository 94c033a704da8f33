// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"image"

	"github.com/gogpu/ggsoft"
	"github.com/gogpu/ggsoft/primitive"
	"github.com/gogpu/ggsoft/surface"
	"github.com/gogpu/ggsoft/text"
)

// drawText composites the glyphs of t. Glyph positions come from the layout
// stored by Measure; without one the text is laid out here and the result
// is discarded.
func (b *Backend) drawText(f *surface.Frame, t primitive.Text, scale float32) {
	px := b.textSize(t.Size)
	bounds := t.Bounds.Scale(scale)

	glyphs, ok := b.layouts.Get(text.NewLayoutKey(t.Content, px, t.Font.Name))
	face := b.registry.ResolveFont(t.Font)
	if !ok {
		b.inline++
		ggsoft.Logger().Debug("backend: text drawn without measure",
			"content", t.Content, "size", px, "font", t.Font.String())
		glyphs = text.Layout(face, b.shaper, t.Content, px, text.LayoutOptions{MaxWidth: bounds.Width})
	}
	glyphs = text.Align(glyphs, bounds.Size(), t.HorizontalAlignment, t.VerticalAlignment)

	for _, g := range glyphs {
		bm := b.glyphs.Get(g.Key, face)
		if bm.Empty() {
			continue
		}
		x := float64(bounds.X+g.X) + float64(bm.Left)
		y := float64(bounds.Y+g.Y) + float64(bm.Top)
		f.DrawImage(x, y, b.glyphSprite(bm, t.Color))
	}
}

// glyphSprite colors a coverage bitmap. Each channel is floor(channel ×
// coverage); color channels are capped by alpha so the sprite is valid
// premultiplied RGBA. The returned image is reused by the next call.
func (b *Backend) glyphSprite(bm *text.Bitmap, c primitive.Color) *image.RGBA {
	img := b.spriteImage(bm.Width, bm.Height)
	n := c.NRGBA()
	cr, cg, cb, ca := float32(n.R)/255, float32(n.G)/255, float32(n.B)/255, float32(n.A)/255

	pix := img.Pix
	for i, cov := range bm.Coverage {
		v := float32(cov)
		a := uint8(ca * v)
		o := i * 4
		pix[o+0] = min(uint8(cr*v), a)
		pix[o+1] = min(uint8(cg*v), a)
		pix[o+2] = min(uint8(cb*v), a)
		pix[o+3] = a
	}
	return img
}
