package text

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-text/typesetting/di"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggsoft"
	"github.com/gogpu/ggsoft/primitive"
)

func regularFace(t testing.TB) *Face {
	t.Helper()
	f, err := ParseFace("Go Regular", goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFace() error = %v", err)
	}
	return f
}

func TestParseFace(t *testing.T) {
	if _, err := ParseFace("empty", nil); err != ErrEmptyFontData {
		t.Errorf("ParseFace(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := ParseFace("junk", []byte("not a font")); err == nil {
		t.Error("ParseFace(junk) error = nil, want error")
	}

	f := regularFace(t)
	if f.Name() != "Go Regular" || f.ID() != 0 {
		t.Errorf("Name() = %q, ID() = %d", f.Name(), f.ID())
	}
	if f.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if f.goTextFace() == nil {
		t.Error("goTextFace() = nil for a TrueType font")
	}
}

func TestFaceMetrics(t *testing.T) {
	f := regularFace(t)
	m := f.Metrics(20)
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics(20) = %+v, want positive ascent and descent", m)
	}
	if m.LineHeight < m.Ascent {
		t.Errorf("LineHeight %v < Ascent %v", m.LineHeight, m.Ascent)
	}
	if m2 := f.Metrics(40); m2.LineHeight <= m.LineHeight {
		t.Errorf("Metrics(40).LineHeight = %v, want more than %v", m2.LineHeight, m.LineHeight)
	}
}

func TestFaceGlyphs(t *testing.T) {
	f := regularFace(t)
	gid := f.GlyphIndex('A')
	if gid == 0 {
		t.Fatal("GlyphIndex('A') = 0")
	}
	if adv := f.Advance(gid, 20); adv <= 0 || adv > 20 {
		t.Errorf("Advance('A', 20) = %v", adv)
	}
	minX, minY, maxX, maxY := f.Bounds(gid, 20)
	if !(minY < 0 && maxY <= 0.5 && maxX > minX) {
		t.Errorf("Bounds('A') = %v %v %v %v, want ink above the baseline", minX, minY, maxX, maxY)
	}
	if got := f.GlyphIndex('\U0010FFFD'); got != 0 {
		t.Errorf("GlyphIndex(private use) = %d, want 0", got)
	}
}

func TestRegistryResolve(t *testing.T) {
	orig := ggsoft.Logger()
	t.Cleanup(func() { ggsoft.SetLogger(orig) })
	var logs bytes.Buffer
	ggsoft.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))

	r := NewRegistry()
	if r.Resolve("", nil) != r.Fallback() {
		t.Error("Resolve(\"\") is not the fallback face")
	}
	if r.ResolveFont(primitive.DefaultFont) != r.Fallback() {
		t.Error("ResolveFont(default) is not the fallback face")
	}

	mono := r.ResolveFont(primitive.Font{Name: "Mono", Bytes: gomono.TTF})
	if mono == r.Fallback() || mono.Name() != "Mono" {
		t.Fatalf("Resolve(Mono) = %q, want decoded face", mono.Name())
	}
	if again := r.Resolve("Mono", nil); again != mono {
		t.Error("second Resolve(Mono) decoded again")
	}
	if mono.ID() == r.Fallback().ID() {
		t.Errorf("Mono ID %d equals fallback ID", mono.ID())
	}

	bad := r.Resolve("Broken", []byte{1, 2, 3})
	if bad != r.Fallback() {
		t.Error("Resolve(Broken) did not return the fallback face")
	}
	r.Resolve("Broken", []byte{1, 2, 3})

	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	out := logs.String()
	if !strings.Contains(out, "using fallback font") || !strings.Contains(out, "font=Broken") {
		t.Errorf("warning not logged: %q", out)
	}
	if n := strings.Count(out, "font=Broken"); n != 1 {
		t.Errorf("warning logged %d times, want once", n)
	}
}

func TestNewRegistryWithFallback(t *testing.T) {
	r, err := NewRegistryWithFallback(gomono.TTF)
	if err != nil {
		t.Fatalf("NewRegistryWithFallback() error = %v", err)
	}
	if r.Fallback().Name() != "" {
		t.Errorf("fallback Name() = %q, want empty", r.Fallback().Name())
	}
	if _, err := NewRegistryWithFallback(nil); err == nil {
		t.Error("NewRegistryWithFallback(nil) error = nil")
	}
}

func TestBuiltinShaper(t *testing.T) {
	f := regularFace(t)
	runes := []rune("AVB")

	got := BuiltinShaper{}.Shape(runes, f, 20, di.DirectionLTR)
	if len(got) != 3 {
		t.Fatalf("Shape() returned %d glyphs, want 3", len(got))
	}
	for i, g := range got {
		if g.Cluster != i || g.GID != f.GlyphIndex(runes[i]) {
			t.Errorf("glyph %d = %+v", i, g)
		}
	}
	if want := f.Advance(got[2].GID, 20); got[2].Advance != want {
		t.Errorf("last advance = %v, want %v (no kerning after the last glyph)", got[2].Advance, want)
	}

	rtl := BuiltinShaper{}.Shape(runes, f, 20, di.DirectionRTL)
	if rtl[0].Cluster != 2 || rtl[2].Cluster != 0 {
		t.Errorf("RTL clusters = %d..%d, want reversed", rtl[0].Cluster, rtl[2].Cluster)
	}

	if (BuiltinShaper{}).Shape(nil, f, 20, di.DirectionLTR) != nil {
		t.Error("Shape(nil) != nil")
	}
}

func TestGoTextShaper(t *testing.T) {
	f := regularFace(t)
	runes := []rune("Hello")
	s := NewGoTextShaper()

	got := s.Shape(runes, f, 20, di.DirectionLTR)
	if len(got) != len(runes) {
		t.Fatalf("Shape(Hello) returned %d glyphs, want %d", len(got), len(runes))
	}
	var hb, builtin float32
	for i, g := range got {
		if g.GID != f.GlyphIndex(runes[g.Cluster]) {
			t.Errorf("glyph %d GID = %d, want cmap glyph for %q", i, g.GID, runes[g.Cluster])
		}
		hb += g.Advance
	}
	for _, g := range (BuiltinShaper{}).Shape(runes, f, 20, di.DirectionLTR) {
		builtin += g.Advance
	}
	if d := hb - builtin; d > 1 || d < -1 {
		t.Errorf("HarfBuzz width %v differs from builtin width %v", hb, builtin)
	}
}
