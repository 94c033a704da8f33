// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"fmt"

	"github.com/gogpu/ggsoft"
	"github.com/gogpu/ggsoft/primitive"
	"github.com/gogpu/ggsoft/surface"
)

// render draws p and its children in order. Clip and Translate restore the
// frame state they change before returning.
func (b *Backend) render(f *surface.Frame, p primitive.Primitive, scale float32) {
	switch v := p.(type) {
	case primitive.None:
	case primitive.Group:
		for _, child := range v.Primitives {
			b.render(f, child, scale)
		}
	case primitive.Text:
		b.drawText(f, v, scale)
	case primitive.Quad:
		b.drawQuad(f, v)
	case primitive.Clip:
		f.PushClipRect(v.Bounds.Image())
		saved := f.Transform()
		origin := v.Bounds.Origin().Add(v.Offset)
		f.SetTransform(surface.Translate(float64(origin.X), float64(origin.Y)))
		b.render(f, v.Content, scale)
		f.SetTransform(saved)
		f.PopClip()
	case primitive.Translate:
		saved := f.Transform()
		f.SetTransform(surface.Translate(float64(v.Translation.X), float64(v.Translation.Y)))
		b.render(f, v.Content, scale)
		f.SetTransform(saved)
	case primitive.Cached:
		b.render(f, v.Content(), scale)
	case primitive.Image, primitive.Svg, primitive.Mesh2D:
		// Not rasterized by this backend.
	case nil:
		ggsoft.Logger().Warn("backend: skipping nil primitive")
	default:
		ggsoft.Logger().Warn("backend: skipping unknown primitive", "type", fmt.Sprintf("%T", p))
	}
}

// drawQuad fills the outer rounded rectangle with the border color and the
// rectangle inset by the border width with the background on top.
func (b *Backend) drawQuad(f *surface.Frame, q primitive.Quad) {
	x, y := float64(q.Bounds.X), float64(q.Bounds.Y)
	w, h := float64(q.Bounds.Width), float64(q.Bounds.Height)
	r := float64(q.BorderRadius)
	if !(w > 0) || !(h > 0) {
		return
	}

	b.path.Clear()
	b.path.RoundedRectangle(x, y, w, h, r)
	f.Fill(b.path, q.BorderColor)

	bw := float64(q.BorderWidth)
	if w-2*bw <= 0 || h-2*bw <= 0 {
		return
	}
	b.path.Clear()
	b.path.RoundedRectangle(x+bw, y+bw, w-2*bw, h-2*bw, r)
	f.Fill(b.path, q.Background)
}
