// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image"

// clipStack manages nested rectangular clip regions in device space.
// Each push intersects with the current bounds; each pop restores the
// bounds that were active before the matching push.
type clipStack struct {
	entries []image.Rectangle
	bounds  image.Rectangle
}

func newClipStack(bounds image.Rectangle) clipStack {
	return clipStack{
		entries: make([]image.Rectangle, 0, 8),
		bounds:  bounds,
	}
}

func (cs *clipStack) push(r image.Rectangle) {
	cs.entries = append(cs.entries, cs.bounds)
	cs.bounds = cs.bounds.Intersect(r)
}

// pop is a no-op on an empty stack.
func (cs *clipStack) pop() {
	if len(cs.entries) == 0 {
		return
	}
	last := len(cs.entries) - 1
	cs.bounds = cs.entries[last]
	cs.entries = cs.entries[:last]
}

func (cs *clipStack) depth() int {
	return len(cs.entries)
}

func (cs *clipStack) reset(bounds image.Rectangle) {
	cs.entries = cs.entries[:0]
	cs.bounds = bounds
}
