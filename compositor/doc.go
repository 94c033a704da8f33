// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compositor presents rendered frames.
//
// A [Compositor] hands out surfaces and swap chains, draws a primitive tree
// through a [backend.Backend] into a fresh frame for every Draw, commits the
// frame to the configured output file and then runs deferred tasks that are
// ready.
//
//	c, b, err := compositor.New(settings)
//	if err != nil {
//		return err
//	}
//	sc := c.CreateSwapChain(c.CreateSurface(), 800, 600)
//	interaction, err := c.Draw(b, sc, backend.NewViewport(800, 600, 1), primitive.White, out, nil)
//
// The compositor is single threaded. Deferred tasks run on the goroutine
// that calls Draw.
package compositor
