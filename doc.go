// Package ggsoft is a software rasterization backend for retained UI primitive trees.
//
// # Overview
//
// A UI layout engine describes each frame as a tree of primitives (quads, text,
// clips, translations, groups). ggsoft walks that tree and rasterizes it into an
// in-memory RGBA frame, optionally persisting every committed frame to a
// lossless image file.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/ggsoft"
//		"github.com/gogpu/ggsoft/backend"
//		"github.com/gogpu/ggsoft/compositor"
//		"github.com/gogpu/ggsoft/primitive"
//	)
//
//	comp, renderer, err := compositor.New(ggsoft.Settings{DefaultTextSize: 20, Output: "frame.png"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	sc := comp.CreateSwapChain(comp.CreateSurface(), 640, 480)
//	_, err = comp.Draw(renderer, sc, backend.NewViewport(640, 480, 1), primitive.Black,
//		backend.Output{Primitive: tree}, nil)
//
// # Architecture
//
// The module is organized leaf-first:
//   - primitive: the drawable instruction tree and its geometry
//   - surface: frames (pixel buffer, transform, clip stack, path fill)
//   - text: font registry, shaping, line layout, layout and glyph caches
//   - backend: the recursive primitive interpreter
//   - compositor: surfaces, swap chains, frame commit and deferred work
//
// # Caching
//
// Text is shaped once per (content, size, font) triple by Measure and reused by
// every subsequent draw with the same key. Glyph coverage bitmaps are cached per
// (font, character, glyph, size). Neither cache is shared between backends.
//
// # Threading
//
// A Backend and its caches are owned by a single goroutine. Rendering is
// synchronous; the only deferred work is drained by the compositor after each
// committed frame.
package ggsoft

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
