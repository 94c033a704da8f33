package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Bitmap is the coverage of one rasterized glyph.
//
// Left and Top place the bitmap's top-left pixel relative to the pen
// position on the baseline, with y pointing down. Coverage holds Width*Height
// samples in row-major order, 0 for no ink and 255 for full ink.
type Bitmap struct {
	Width, Height int
	Left, Top     int
	Coverage      []uint8
}

// Empty reports whether the bitmap has no pixels.
func (b *Bitmap) Empty() bool {
	return b == nil || b.Width == 0 || b.Height == 0
}

// Alpha returns the coverage as an alpha image sharing the bitmap's pixels.
func (b *Bitmap) Alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    b.Coverage,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Rasterize renders glyph gid of face at px pixels per em. Glyphs without
// an outline, such as spaces, produce an empty bitmap.
func Rasterize(face *Face, gid uint16, px float32) *Bitmap {
	if face == nil || px <= 0 {
		return &Bitmap{}
	}
	segments, err := face.outline(gid, px)
	if err != nil || len(segments) == 0 {
		return &Bitmap{}
	}

	// Quantize the sub-pixel bounds to whole pixels around the pen at the
	// origin, then bias the outline so it starts at (0, 0).
	b := segments.Bounds()
	r := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if r.Empty() {
		return &Bitmap{}
	}
	biasX := -fixed.Int26_6(r.Min.X << 6)
	biasY := -fixed.Int26_6(r.Min.Y << 6)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X+biasX) / 64, float32(p.Y+biasY) / 64
	}

	var rast vector.Rasterizer
	rast.Reset(r.Dx(), r.Dy())
	rast.DrawOp = draw.Src
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			rast.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			rast.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			rast.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			rast.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}

	bm := &Bitmap{
		Width:    r.Dx(),
		Height:   r.Dy(),
		Left:     r.Min.X,
		Top:      r.Min.Y,
		Coverage: make([]uint8, r.Dx()*r.Dy()),
	}
	mask := bm.Alpha()
	rast.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	return bm
}
