// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend interprets primitive trees onto a software surface.
//
// A [Backend] owns a font registry, a layout cache and a glyph cache. The UI
// layer calls [Backend.Measure] during layout and [Backend.Draw] during
// paint with the same text arguments, so the second call reuses the glyph
// positions computed by the first instead of shaping again:
//
//	b := backend.New(ggsoft.DefaultSettings())
//	w, h := b.Measure("Hello", 20, primitive.DefaultFont, primitive.Size{Width: 200, Height: 40})
//	interaction := b.Draw(frame, backend.NewViewport(800, 600, 1), out, nil)
//
// Supported primitives are [primitive.Group], [primitive.Text],
// [primitive.Quad], [primitive.Clip], [primitive.Translate] and
// [primitive.Cached]. Image, Svg and Mesh2D primitives are accepted and
// skipped.
//
// A Backend is not safe for concurrent use.
package backend
