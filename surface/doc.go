// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the in-memory drawing surface used by the
// software backend.
//
// A [Frame] is an RGBA pixel buffer with a current affine transform and a
// stack of rectangular clip regions. Paths are filled with anti-aliased
// coverage from golang.org/x/image/vector and composited source-over.
//
// # Coordinate Spaces
//
// Path coordinates and image positions passed to [Frame.Fill] and
// [Frame.DrawImage] are in user space and pass through the current
// transform. Clip rectangles are in device space and are not transformed.
//
// # Usage
//
//	f := surface.NewFrame(640, 480)
//	f.Clear(color.Black)
//
//	f.PushClipRect(image.Rect(10, 10, 200, 100))
//	f.SetTransform(surface.Translate(10, 10))
//
//	p := surface.NewPath()
//	p.RoundedRectangle(0, 0, 100, 40, 6)
//	f.Fill(p, color.White)
//
//	f.SetTransform(surface.Identity())
//	f.PopClip()
//
//	if err := f.Save("frame.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Persistence
//
// Frames are encoded with a lossless format chosen by file extension:
// PNG, BMP or TIFF. Additional formats can be added with [RegisterFormat].
package surface
