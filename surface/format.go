// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when no encoder is registered for a
// format name or file extension.
var ErrUnsupportedFormat = errors.New("surface: unsupported image format")

// Built-in format names.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// EncodeFunc writes img to w.
type EncodeFunc func(w io.Writer, img image.Image) error

// FormatEntry represents a registered image encoder.
type FormatEntry struct {
	// Name is the unique identifier for this format.
	Name string

	// Extensions lists the lowercase file extensions, with the leading dot,
	// that select this format.
	Extensions []string

	// Encode writes an image in this format.
	Encode EncodeFunc
}

// formatRegistry maps format names and file extensions to encoders.
type formatRegistry struct {
	mu      sync.RWMutex
	entries map[string]*FormatEntry
	byExt   map[string]string
}

var formats = &formatRegistry{
	entries: make(map[string]*FormatEntry),
	byExt:   make(map[string]string),
}

func init() {
	RegisterFormat(FormatPNG, []string{".png"}, png.Encode)
	RegisterFormat(FormatBMP, []string{".bmp"}, bmp.Encode)
	RegisterFormat(FormatTIFF, []string{".tif", ".tiff"}, func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	})
}

// RegisterFormat adds an encoder for the given format name and file
// extensions. Registering a name that already exists replaces the previous
// entry and its extensions. An extension already used by another name is
// reassigned to this one.
func RegisterFormat(name string, extensions []string, encode EncodeFunc) {
	formats.mu.Lock()
	defer formats.mu.Unlock()

	if prev, ok := formats.entries[name]; ok {
		for _, ext := range prev.Extensions {
			if formats.byExt[ext] == name {
				delete(formats.byExt, ext)
			}
		}
	}

	entry := &FormatEntry{Name: name, Encode: encode}
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		entry.Extensions = append(entry.Extensions, ext)
		formats.byExt[ext] = name
	}
	formats.entries[name] = entry
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	formats.mu.RLock()
	defer formats.mu.RUnlock()

	names := make([]string, 0, len(formats.entries))
	for name := range formats.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatFromPath returns the format name selected by the extension of path.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	formats.mu.RLock()
	defer formats.mu.RUnlock()

	name, ok := formats.byExt[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return name, nil
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	formats.mu.RLock()
	entry, ok := formats.entries[format]
	formats.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return entry.Encode(w, img)
}

// Encode writes the frame pixels to w in the named format.
func (f *Frame) Encode(w io.Writer, format string) error {
	return Encode(w, f.img, format)
}

// Save writes the frame to path, choosing the format from its extension.
func (f *Frame) Save(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return f.Encode(file, format)
}
