// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"fmt"
	"time"

	"github.com/gogpu/ggsoft/surface"
)

// SurfaceHandle identifies a surface. Handles are issued in increasing
// order starting at zero.
type SurfaceHandle uint64

func (h SurfaceHandle) String() string {
	return fmt.Sprintf("surface#%d", uint64(h))
}

// Surface is a renderable area, typically one per window.
type Surface struct {
	handle SurfaceHandle
}

// Handle returns the surface handle.
func (s Surface) Handle() SurfaceHandle { return s.handle }

// SurfaceInfo describes an issued surface.
type SurfaceInfo struct {
	Handle    SurfaceHandle
	CreatedAt time.Time

	// Width and Height are the dimensions of the latest swap chain created
	// for the surface, or zero if none was created.
	Width, Height uint32
}

// SwapChain provides frames of a fixed size for a surface. Resizing creates
// a new swap chain.
type SwapChain struct {
	surface       SurfaceHandle
	width, height uint32
}

// Surface returns the handle of the surface the swap chain belongs to.
func (sc *SwapChain) Surface() SurfaceHandle { return sc.surface }

// Width returns the frame width in pixels.
func (sc *SwapChain) Width() uint32 { return sc.width }

// Height returns the frame height in pixels.
func (sc *SwapChain) Height() uint32 { return sc.height }

func (sc *SwapChain) String() string {
	return fmt.Sprintf("SwapChain{surface: %v, width: %d, height: %d}", sc.surface, sc.width, sc.height)
}

// CurrentFrame allocates a cleared frame of the swap chain's size.
// It returns ErrFrameUnavailable when the size has no area.
func (sc *SwapChain) CurrentFrame() (*surface.Frame, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: nil swap chain", ErrFrameUnavailable)
	}
	if sc.width == 0 || sc.height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFrameUnavailable, sc.width, sc.height)
	}
	return surface.NewFrame(int(sc.width), int(sc.height)), nil
}
