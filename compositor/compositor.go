// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compositor

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/ggsoft"
	"github.com/gogpu/ggsoft/backend"
	"github.com/gogpu/ggsoft/internal/taskpool"
	"github.com/gogpu/ggsoft/primitive"
	"github.com/gogpu/ggsoft/surface"
)

// Common compositor errors.
var (
	// ErrFrameUnavailable is returned when a swap chain cannot produce a
	// frame, which happens when its size has no area.
	ErrFrameUnavailable = errors.New("compositor: frame unavailable")

	// ErrNilBackend is returned by Draw when no backend is given.
	ErrNilBackend = errors.New("compositor: nil backend")
)

// Task is deferred work run after a frame is committed. See Spawn.
type Task = taskpool.Task

// Waker reschedules a task that returned Pending.
type Waker = taskpool.Waker

// Poll is the result of running a Task once.
type Poll = taskpool.Poll

// TaskID identifies a spawned task.
type TaskID = taskpool.ID

// Task results.
const (
	Ready   = taskpool.Ready
	Pending = taskpool.Pending
)

// Compositor issues surfaces and swap chains and presents frames.
//
// Compositor is NOT safe for concurrent use, except Spawn and Waker.Wake,
// which may be called from any goroutine.
type Compositor struct {
	settings  ggsoft.Settings
	surfaces  []SurfaceInfo
	pool      *taskpool.Pool
	presented uint64
	last      *surface.Frame
	now       func() time.Time
}

// Request creates a compositor. It fails when settings name an output file
// with an unsupported image format.
func Request(settings ggsoft.Settings) (*Compositor, error) {
	if settings.Output != "" {
		if _, err := surface.FormatFromPath(settings.Output); err != nil {
			return nil, fmt.Errorf("compositor: output %q: %w", settings.Output, err)
		}
	}
	ggsoft.Logger().Info("compositor: created",
		"output", settings.Output, "default_text_size", settings.DefaultTextSize)
	return &Compositor{
		settings: settings,
		pool:     taskpool.New(),
		now:      time.Now,
	}, nil
}

// New creates a compositor and a backend sharing its settings.
func New(settings ggsoft.Settings, opts ...backend.Option) (*Compositor, *backend.Backend, error) {
	c, err := Request(settings)
	if err != nil {
		return nil, nil, err
	}
	return c, c.CreateBackend(opts...), nil
}

// Settings returns the compositor settings.
func (c *Compositor) Settings() ggsoft.Settings { return c.settings }

// CreateBackend creates a backend with the compositor's settings.
func (c *Compositor) CreateBackend(opts ...backend.Option) *backend.Backend {
	return backend.New(c.settings, opts...)
}

// CreateSurface issues a new surface.
func (c *Compositor) CreateSurface() Surface {
	h := SurfaceHandle(len(c.surfaces))
	c.surfaces = append(c.surfaces, SurfaceInfo{Handle: h, CreatedAt: c.now()})
	return Surface{handle: h}
}

// Surfaces returns the issued surfaces in creation order.
func (c *Compositor) Surfaces() []SurfaceInfo {
	out := make([]SurfaceInfo, len(c.surfaces))
	copy(out, c.surfaces)
	return out
}

// CreateSwapChain creates a swap chain of the given size for s, replacing
// the size recorded for any earlier swap chain of s.
func (c *Compositor) CreateSwapChain(s Surface, width, height uint32) *SwapChain {
	sc := &SwapChain{surface: s.handle, width: width, height: height}
	if i := int(s.handle); i < len(c.surfaces) {
		c.surfaces[i].Width = width
		c.surfaces[i].Height = height
	}
	ggsoft.Logger().Debug("compositor: swap chain created", "swap_chain", sc.String())
	return sc
}

// Draw renders one frame: it clears a new frame to background, draws out
// and the overlay lines with b, commits the frame and runs ready deferred
// tasks. It returns the interaction of out.
//
// A frame that cannot be acquired is reported without drawing. A commit
// failure is returned after deferred tasks have run.
func (c *Compositor) Draw(
	b *backend.Backend,
	sc *SwapChain,
	viewport backend.Viewport,
	background primitive.Color,
	out backend.Output,
	overlay []string,
) (primitive.Interaction, error) {
	if b == nil {
		return out.Interaction, ErrNilBackend
	}
	frame, err := sc.CurrentFrame()
	if err != nil {
		return out.Interaction, err
	}

	frame.Clear(background.NRGBA())
	interaction := b.Draw(frame, viewport, out, overlay)

	err = c.commit(frame)
	c.presented++
	c.last = frame

	n := c.presented
	c.pool.Spawn(func(*Waker) Poll {
		s := b.Stats()
		ggsoft.Logger().Debug("compositor: frame presented",
			"frame", n,
			"layout_hit_rate", s.Layouts.HitRate,
			"inline_layouts", s.InlineLayouts,
			"glyphs", s.Glyphs.Len,
			"glyph_hit_rate", s.Glyphs.HitRate)
		return Ready
	})
	c.pool.RunUntilStalled()

	return interaction, err
}

// commit writes frame to the configured output file, if any.
func (c *Compositor) commit(frame *surface.Frame) error {
	if c.settings.Output == "" {
		return nil
	}
	if err := frame.Save(c.settings.Output); err != nil {
		return fmt.Errorf("compositor: commit frame: %w", err)
	}
	return nil
}

// Spawn schedules t to run after the next committed frame. It is safe to
// call from any goroutine.
func (c *Compositor) Spawn(t Task) TaskID {
	return c.pool.Spawn(t)
}

// PendingTasks returns the number of deferred tasks that have not finished.
func (c *Compositor) PendingTasks() int {
	return c.pool.Len()
}

// FramesPresented returns the number of frames drawn and committed.
func (c *Compositor) FramesPresented() uint64 { return c.presented }

// LastFrame returns the most recently presented frame, or nil.
func (c *Compositor) LastFrame() *surface.Frame { return c.last }
