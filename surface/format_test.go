// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"out/frame.png", FormatPNG},
		{"FRAME.PNG", FormatPNG},
		{"frame.bmp", FormatBMP},
		{"frame.tif", FormatTIFF},
		{"frame.tiff", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}

	for _, bad := range []string{"frame.jpg", "frame", ""} {
		if _, err := FormatFromPath(bad); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", bad, err)
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	f := NewFrame(1, 1)
	if err := f.Encode(io.Discard, "webp"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(webp) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	f := NewFrame(4, 3)
	f.Clear(color.NRGBA{10, 20, 30, 255})
	p := NewPath()
	p.Rectangle(1, 1, 2, 1)
	f.Fill(p, color.NRGBA{200, 100, 50, 255})

	decoders := map[string]func(io.Reader) (image.Image, error){
		"frame.png":  png.Decode,
		"frame.bmp":  bmp.Decode,
		"frame.tiff": tiff.Decode,
	}
	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := f.Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			img, err := decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			for y := range 3 {
				for x := range 4 {
					got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
					want := color.NRGBAModel.Convert(f.Image().At(x, y)).(color.NRGBA)
					if got != want {
						t.Errorf("pixel(%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.gif")
	if err := NewFrame(1, 1).Save(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.gif) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save() created a file for an unsupported format")
	}
}

func TestRegisterFormat(t *testing.T) {
	var called bool
	RegisterFormat("test-raw", []string{"RAW"}, func(w io.Writer, img image.Image) error {
		called = true
		_, err := w.Write([]byte{1})
		return err
	})

	name, err := FormatFromPath("x.raw")
	if err != nil || name != "test-raw" {
		t.Fatalf("FormatFromPath(x.raw) = %q, %v", name, err)
	}
	var buf bytes.Buffer
	if err := NewFrame(1, 1).Encode(&buf, name); err != nil || !called || buf.Len() != 1 {
		t.Errorf("Encode(test-raw) = %v, called %v, %d bytes", err, called, buf.Len())
	}

	found := false
	for _, n := range Formats() {
		found = found || n == "test-raw"
	}
	if !found {
		t.Errorf("Formats() = %v, missing test-raw", Formats())
	}
}

func TestRegisterFormatReplacesExtensions(t *testing.T) {
	enc := func(io.Writer, image.Image) error { return nil }
	RegisterFormat("test-swap", []string{".swa"}, enc)
	RegisterFormat("test-swap", []string{".swb"}, enc)

	if _, err := FormatFromPath("x.swa"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromPath(x.swa) error = %v, want ErrUnsupportedFormat", err)
	}
	if name, err := FormatFromPath("x.swb"); err != nil || name != "test-swap" {
		t.Errorf("FormatFromPath(x.swb) = %q, %v; want test-swap", name, err)
	}

	// An extension taken over by another name stays with that name.
	RegisterFormat("test-swap-other", []string{".swb"}, enc)
	RegisterFormat("test-swap", []string{".swc"}, enc)
	if name, _ := FormatFromPath("x.swb"); name != "test-swap-other" {
		t.Errorf("FormatFromPath(x.swb) = %q, want test-swap-other", name)
	}
}
