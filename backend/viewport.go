// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import "github.com/gogpu/ggsoft/primitive"

// Viewport is the physical size of the drawing area and the factor between
// logical and physical units.
type Viewport struct {
	Width, Height uint32
	ScaleFactor   float64
}

// NewViewport creates a viewport. A non-positive scale factor becomes 1.
func NewViewport(width, height uint32, scale float64) Viewport {
	if !(scale > 0) {
		scale = 1
	}
	return Viewport{Width: width, Height: height, ScaleFactor: scale}
}

// PhysicalSize returns the size in pixels.
func (v Viewport) PhysicalSize() primitive.Size {
	return primitive.Size{Width: float32(v.Width), Height: float32(v.Height)}
}

// LogicalSize returns the size in logical units.
func (v Viewport) LogicalSize() primitive.Size {
	s := v.scale()
	return primitive.Size{Width: float32(v.Width) / s, Height: float32(v.Height) / s}
}

func (v Viewport) scale() float32 {
	if !(v.ScaleFactor > 0) {
		return 1
	}
	return float32(v.ScaleFactor)
}

// Output is a primitive tree paired with the mouse cursor the UI wants
// while it is displayed.
type Output struct {
	Primitive   primitive.Primitive
	Interaction primitive.Interaction
}
