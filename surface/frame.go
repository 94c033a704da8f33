// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Frame is an ephemeral drawing surface: an RGBA pixel buffer with a current
// transform and a clip stack.
//
// A Frame is not safe for concurrent use.
type Frame struct {
	img       *image.RGBA
	transform Matrix
	clips     clipStack

	rast    vector.Rasterizer
	maskBuf []uint8
}

// NewFrame creates a transparent frame of the given size. Negative
// dimensions are treated as zero.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Frame{
		img:       img,
		transform: Identity(),
		clips:     newClipStack(img.Rect),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.img.Rect.Dx() }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.img.Rect.Dy() }

// Bounds returns the frame rectangle.
func (f *Frame) Bounds() image.Rectangle { return f.img.Rect }

// Image returns the backing image. Pixels are premultiplied RGBA.
func (f *Frame) Image() *image.RGBA { return f.img }

// Snapshot returns a copy of the current pixels.
func (f *Frame) Snapshot() *image.RGBA {
	out := image.NewRGBA(f.img.Rect)
	copy(out.Pix, f.img.Pix)
	return out
}

// Clear replaces every pixel with c, ignoring the clip and transform.
func (f *Frame) Clear(c color.Color) {
	draw.Draw(f.img, f.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Transform returns the current transform.
func (f *Frame) Transform() Matrix { return f.transform }

// SetTransform replaces the current transform.
func (f *Frame) SetTransform(m Matrix) { f.transform = m }

// PushClipRect restricts drawing to r intersected with the current clip.
// r is in device space.
func (f *Frame) PushClipRect(r image.Rectangle) {
	f.clips.push(r)
}

// PopClip restores the clip active before the last PushClipRect.
// It is a no-op when no clip is pushed.
func (f *Frame) PopClip() { f.clips.pop() }

// ClipDepth returns the number of pushed clip regions.
func (f *Frame) ClipDepth() int { return f.clips.depth() }

// ClipBounds returns the effective clip rectangle.
func (f *Frame) ClipBounds() image.Rectangle { return f.clips.bounds }

// Reset clears the clip stack and restores the identity transform. Pixels
// are left untouched.
func (f *Frame) Reset() {
	f.transform = Identity()
	f.clips.reset(f.img.Rect)
}

// Fill paints the interior of path with c using the non-zero winding rule
// and anti-aliased coverage, blending source-over. The path is mapped
// through the current transform and clipped.
func (f *Frame) Fill(path *Path, c color.Color) {
	if path == nil || path.IsEmpty() || !f.transform.IsFinite() {
		return
	}
	p := path
	if !f.transform.IsIdentity() {
		p = path.Transform(f.transform)
	}

	minX, minY, maxX, maxY := p.Bounds()
	if math.IsNaN(minX + minY + maxX + maxY) {
		return
	}
	r := image.Rect(
		int(math.Max(math.Floor(minX), math.MinInt32)),
		int(math.Max(math.Floor(minY), math.MinInt32)),
		int(math.Min(math.Ceil(maxX), math.MaxInt32)),
		int(math.Min(math.Ceil(maxY), math.MaxInt32)),
	).Intersect(f.clips.bounds)
	if r.Empty() {
		return
	}

	w, h := r.Dx(), r.Dy()
	f.rast.Reset(w, h)
	f.rast.DrawOp = draw.Src
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	pt := func(q Point) (float32, float32) {
		return float32(q.X - ox), float32(q.Y - oy)
	}

	pts := p.Points()
	i := 0
	open := false
	for _, verb := range p.Verbs() {
		switch verb {
		case VerbMoveTo:
			if open {
				f.rast.ClosePath()
			}
			f.rast.MoveTo(pt(pts[i]))
			open = true
		case VerbLineTo:
			f.rast.LineTo(pt(pts[i]))
		case VerbQuadTo:
			bx, by := pt(pts[i])
			cx, cy := pt(pts[i+1])
			f.rast.QuadTo(bx, by, cx, cy)
		case VerbCubicTo:
			bx, by := pt(pts[i])
			cx, cy := pt(pts[i+1])
			dx, dy := pt(pts[i+2])
			f.rast.CubeTo(bx, by, cx, cy, dx, dy)
		case VerbClose:
			f.rast.ClosePath()
			open = false
		}
		i += pointsPerVerb[verb]
	}
	if open {
		f.rast.ClosePath()
	}

	mask := f.scratchMask(w, h)
	f.rast.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	draw.DrawMask(f.img, r, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// DrawImage composites img source-over with its top-left corner at (x, y)
// in user space. The position is mapped through the current transform and
// rounded to the nearest pixel; the image itself is not scaled.
func (f *Frame) DrawImage(x, y float64, img image.Image) {
	if img == nil {
		return
	}
	d := f.transform.TransformPoint(Point{x, y})
	if math.IsNaN(d.X) || math.IsNaN(d.Y) || math.IsInf(d.X, 0) || math.IsInf(d.Y, 0) {
		return
	}
	sb := img.Bounds()
	at := image.Pt(int(math.Floor(d.X+0.5)), int(math.Floor(d.Y+0.5)))
	dst := sb.Sub(sb.Min).Add(at)
	clipped := dst.Intersect(f.clips.bounds)
	if clipped.Empty() {
		return
	}
	sp := sb.Min.Add(clipped.Min.Sub(dst.Min))
	draw.Draw(f.img, clipped, img, sp, draw.Over)
}

// scratchMask returns a w×h alpha mask backed by a reused buffer. Its
// contents are undefined; the rasterizer overwrites it with draw.Src.
func (f *Frame) scratchMask(w, h int) *image.Alpha {
	n := w * h
	if cap(f.maskBuf) < n {
		f.maskBuf = make([]uint8, n)
	}
	return &image.Alpha{
		Pix:    f.maskBuf[:n],
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
}
