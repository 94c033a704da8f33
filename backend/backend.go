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

// Overlay text style.
const (
	overlaySize = 14
)

var overlayColor = primitive.White

// Backend renders primitive trees onto surface frames.
//
// It owns the font registry, the layout cache filled by Measure and the
// glyph cache filled by Draw. Nothing is evicted; entries live as long as
// the Backend.
type Backend struct {
	settings ggsoft.Settings
	registry *text.Registry
	shaper   text.Shaper

	layouts *text.LayoutCache
	glyphs  *text.GlyphCache

	// inline counts text draws that had to lay out without a prior Measure.
	inline uint64

	path   *surface.Path
	sprite []uint8
}

// New creates a backend with the given settings. A zero DefaultTextSize is
// replaced by ggsoft.DefaultTextSize.
func New(settings ggsoft.Settings, opts ...Option) *Backend {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = text.NewRegistry()
	}
	if o.shaper == nil {
		o.shaper = text.NewGoTextShaper()
	}
	if settings.DefaultTextSize == 0 {
		settings.DefaultTextSize = ggsoft.DefaultTextSize
	}

	return &Backend{
		settings: settings,
		registry: o.registry,
		shaper:   o.shaper,
		layouts:  text.NewLayoutCache(),
		glyphs:   text.NewGlyphCache(),
		path:     surface.NewPath(),
	}
}

// Settings returns the settings the backend was created with.
func (b *Backend) Settings() ggsoft.Settings { return b.settings }

// DefaultSize returns the text size used when a text primitive has none.
func (b *Backend) DefaultSize() float32 {
	return float32(b.settings.DefaultTextSize)
}

func (b *Backend) textSize(size float32) float32 {
	if !(size > 0) {
		return b.DefaultSize()
	}
	return size
}

// Measure lays out content inside bounds and returns the size of the
// result. The layout is stored for the next Draw of the same content, size
// and font, replacing any earlier layout for that combination.
func (b *Backend) Measure(content string, size float32, font primitive.Font, bounds primitive.Size) (width, height float32) {
	glyphs := b.layout(content, b.textSize(size), font, bounds)
	return text.Measure(glyphs)
}

func (b *Backend) layout(content string, px float32, font primitive.Font, bounds primitive.Size) []text.Glyph {
	face := b.registry.ResolveFont(font)
	glyphs := text.Layout(face, b.shaper, content, px, text.LayoutOptions{MaxWidth: bounds.Width})
	b.layouts.Put(text.NewLayoutKey(content, px, font.Name), glyphs)
	return glyphs
}

// Draw renders out onto frame and then draws each overlay line on top. It
// returns out.Interaction unchanged.
//
// Overlay lines start at the top-left corner of the viewport and each line
// is placed below the previous one; they are not drawn on top of each other.
//
// Rendering starts from the frame's current transform and clip stack. Both
// are the same when Draw returns as when it was called.
func (b *Backend) Draw(frame *surface.Frame, viewport Viewport, out Output, overlay []string) primitive.Interaction {
	if frame == nil {
		return out.Interaction
	}

	b.render(frame, out.Primitive, viewport.scale())

	physical := viewport.PhysicalSize()
	var y float32
	for _, line := range overlay {
		bounds := primitive.Rectangle{Y: y, Width: physical.Width, Height: physical.Height}
		_, h := b.Measure(line, overlaySize, primitive.DefaultFont, bounds.Size())
		b.drawText(frame, primitive.Text{
			Content: line,
			Bounds:  bounds,
			Color:   overlayColor,
			Size:    overlaySize,
		}, 1)
		y += h
	}

	return out.Interaction
}

// Stats reports cache usage.
type Stats struct {
	// Layouts counts layout cache lookups made by Draw.
	Layouts text.CacheStats

	// Glyphs counts glyph bitmap lookups.
	Glyphs text.CacheStats

	// InlineLayouts counts text draws that found no layout from Measure.
	InlineLayouts uint64

	// Fonts is the number of fonts loaded, excluding the fallback.
	Fonts int
}

// Stats returns current cache statistics.
func (b *Backend) Stats() Stats {
	return Stats{
		Layouts:       b.layouts.Stats(),
		Glyphs:        b.glyphs.Stats(),
		InlineLayouts: b.inline,
		Fonts:         b.registry.Len(),
	}
}

// spriteImage returns a w×h RGBA image backed by a reused buffer.
func (b *Backend) spriteImage(w, h int) *image.RGBA {
	n := w * h * 4
	if cap(b.sprite) < n {
		b.sprite = make([]uint8, n)
	}
	return &image.RGBA{
		Pix:    b.sprite[:n],
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
}
