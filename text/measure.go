package text

import (
	"math"

	"github.com/gogpu/ggsoft/primitive"
)

// Measure returns the size of a layout.
//
// Two extents are computed: the advance extent (pen position after each
// glyph and the bottom of its line box) and the ink extent (glyph bounds).
// The width is the larger of the advance width rounded up and the ink width;
// the height is the larger of the two heights.
func Measure(glyphs []Glyph) (width, height float32) {
	var advW, advH, inkW, inkH float32
	for _, g := range glyphs {
		advW = max(advW, g.X+g.Advance)
		advH = max(advH, g.LineTop+g.LineHeight)
		inkW = max(inkW, g.Bounds.MaxX)
		inkH = max(inkH, g.Bounds.MaxY)
	}
	return max(float32(math.Ceil(float64(advW))), inkW), max(advH, inkH)
}

// Align positions a top-left layout inside a box of the given size.
//
// Horizontal alignment is applied per line using each line's advance width.
// Vertical alignment moves the whole block using its measured height. Left
// and top alignment return glyphs unchanged; otherwise a shifted copy is
// returned and glyphs is left untouched.
func Align(glyphs []Glyph, box primitive.Size, h primitive.HorizontalAlignment, v primitive.VerticalAlignment) []Glyph {
	if len(glyphs) == 0 || (h == primitive.AlignLeft && v == primitive.AlignTop) {
		return glyphs
	}

	var dy float32
	if v != primitive.AlignTop {
		_, height := Measure(glyphs)
		dy = box.Height - height
		if v == primitive.AlignMiddle {
			dy /= 2
		}
	}

	var lineWidths map[int]float32
	if h != primitive.AlignLeft {
		lineWidths = make(map[int]float32)
		for _, g := range glyphs {
			lineWidths[g.Line] = max(lineWidths[g.Line], g.X+g.Advance)
		}
	}

	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		var dx float32
		if lineWidths != nil {
			dx = box.Width - lineWidths[g.Line]
			if h == primitive.AlignCenter {
				dx /= 2
			}
		}
		g.X += dx
		g.Y += dy
		g.Bounds = Box{
			MinX: g.Bounds.MinX + dx, MinY: g.Bounds.MinY + dy,
			MaxX: g.Bounds.MaxX + dx, MaxY: g.Bounds.MaxY + dy,
		}
		g.LineTop += dy
		out[i] = g
	}
	return out
}
