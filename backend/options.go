// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import "github.com/gogpu/ggsoft/text"

// Option configures a Backend during creation.
//
// Example:
//
//	b := backend.New(settings, backend.WithShaper(text.BuiltinShaper{}))
type Option func(*options)

type options struct {
	shaper   text.Shaper
	registry *text.Registry
}

// WithShaper sets the shaper used for text layout. The default is a
// HarfBuzz shaper from go-text.
func WithShaper(s text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithRegistry sets the font registry. Use it to share faces between
// backends or to install a different fallback font.
func WithRegistry(r *text.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}
