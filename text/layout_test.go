package text

import (
	"math"
	"testing"

	"github.com/go-text/typesetting/di"

	"github.com/gogpu/ggsoft/primitive"
)

func layoutChars(glyphs []Glyph) string {
	rs := make([]rune, len(glyphs))
	for i, g := range glyphs {
		rs[i] = g.Key.Char
	}
	return string(rs)
}

func wordWidth(f *Face, word string, px float32) float32 {
	var w float32
	for _, g := range (BuiltinShaper{}).Shape([]rune(word), f, px, di.DirectionLTR) {
		w += g.Advance
	}
	return w
}

func TestLayoutSingleLine(t *testing.T) {
	f := regularFace(t)
	glyphs := Layout(f, BuiltinShaper{}, "Hello world", 20, LayoutOptions{})

	if got := layoutChars(glyphs); got != "Helloworld" {
		t.Fatalf("Layout chars = %q, want whitespace omitted", got)
	}
	m := f.Metrics(20)
	for i, g := range glyphs {
		if g.Line != 0 || g.Y != m.Ascent || g.LineHeight != m.LineHeight {
			t.Errorf("glyph %d = %+v, want first line on the baseline", i, g)
		}
		if g.Key.Font != "Go Regular" || g.Key.Size() != 20 {
			t.Errorf("glyph %d key = %+v", i, g.Key)
		}
	}
	if glyphs[0].X != 0 {
		t.Errorf("first glyph X = %v, want 0", glyphs[0].X)
	}
	w := glyphs[5]
	if want := wordWidth(f, "Hello ", 20); math.Abs(float64(w.X-want)) > 0.01 {
		t.Errorf("'w' X = %v, want %v (space advances the pen)", w.X, want)
	}
}

func TestLayoutWraps(t *testing.T) {
	f := regularFace(t)
	max := wordWidth(f, "Hello", 20) + 2
	glyphs := Layout(f, BuiltinShaper{}, "Hello world", 20, LayoutOptions{MaxWidth: max})

	if len(glyphs) != 10 {
		t.Fatalf("len = %d, want 10", len(glyphs))
	}
	w := glyphs[5]
	m := f.Metrics(20)
	if w.Key.Char != 'w' || w.Line != 1 || w.X != 0 {
		t.Errorf("'w' = %+v, want start of line 1", w)
	}
	if w.LineTop != m.LineHeight || w.Y != m.LineHeight+m.Ascent {
		t.Errorf("'w' LineTop = %v, Y = %v", w.LineTop, w.Y)
	}

	// The trailing space does not count toward the wrap decision.
	exact := wordWidth(f, "Hello", 20)
	glyphs = Layout(f, BuiltinShaper{}, "Hello ", 20, LayoutOptions{MaxWidth: exact})
	for _, g := range glyphs {
		if g.Line != 0 {
			t.Errorf("glyph %q on line %d, want 0", g.Key.Char, g.Line)
		}
	}
}

func TestLayoutLongWordNotSplit(t *testing.T) {
	f := regularFace(t)
	glyphs := Layout(f, BuiltinShaper{}, "a extraordinarily", 20, LayoutOptions{MaxWidth: 15})
	if got := glyphs[len(glyphs)-1].Line; got != 1 {
		t.Errorf("last glyph on line %d, want 1", got)
	}
	if glyphs[1].X != 0 {
		t.Errorf("long word starts at X = %v, want 0", glyphs[1].X)
	}
}

func TestLayoutUnboundedWidth(t *testing.T) {
	f := regularFace(t)
	for _, w := range []float32{0, -5, float32(math.Inf(1)), float32(math.NaN())} {
		glyphs := Layout(f, BuiltinShaper{}, "one two three four", 20, LayoutOptions{MaxWidth: w})
		if last := glyphs[len(glyphs)-1]; last.Line != 0 {
			t.Errorf("MaxWidth %v: wrapped to line %d", w, last.Line)
		}
	}
}

func TestLayoutHardBreaks(t *testing.T) {
	f := regularFace(t)
	tests := []struct {
		content string
		lines   []int
	}{
		{"a\nb", []int{0, 1}},
		{"a\r\nb", []int{0, 1}},
		{"a\n\nb", []int{0, 2}},
		{"a\u2028b", []int{0, 1}},
		{"ab", []int{0, 0}},
	}
	for _, tt := range tests {
		glyphs := Layout(f, BuiltinShaper{}, tt.content, 20, LayoutOptions{})
		if len(glyphs) != len(tt.lines) {
			t.Errorf("Layout(%q) = %d glyphs, want %d", tt.content, len(glyphs), len(tt.lines))
			continue
		}
		for i, g := range glyphs {
			if g.Line != tt.lines[i] {
				t.Errorf("Layout(%q) glyph %d line = %d, want %d", tt.content, i, g.Line, tt.lines[i])
			}
		}
		if last := glyphs[len(glyphs)-1]; tt.lines[len(tt.lines)-1] > 0 && last.X != 0 {
			t.Errorf("Layout(%q) last glyph X = %v, want 0 after a break", tt.content, last.X)
		}
	}
}

func TestLayoutDegenerate(t *testing.T) {
	f := regularFace(t)
	if g := Layout(f, nil, "   \t ", 20, LayoutOptions{}); len(g) != 0 {
		t.Errorf("whitespace layout = %d glyphs, want 0", len(g))
	}
	if g := Layout(f, nil, "", 20, LayoutOptions{}); g != nil {
		t.Error("empty layout != nil")
	}
	if g := Layout(f, nil, "x", 0, LayoutOptions{}); g != nil {
		t.Error("zero-size layout != nil")
	}
	if g := Layout(nil, nil, "x", 20, LayoutOptions{}); g != nil {
		t.Error("nil-face layout != nil")
	}
}

func TestLayoutGoTextMatchesGlyphs(t *testing.T) {
	f := regularFace(t)
	glyphs := Layout(f, NewGoTextShaper(), "Hi there", 16, LayoutOptions{})
	if got := layoutChars(glyphs); got != "Hithere" {
		t.Errorf("chars = %q, want Hithere", got)
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		s    string
		want di.Direction
	}{
		{"abc", di.DirectionLTR},
		{"123", di.DirectionLTR},
		{"", di.DirectionLTR},
		{"שלום", di.DirectionRTL},
		{"(مرحبا)", di.DirectionRTL},
	}
	for _, tt := range tests {
		if got := direction([]rune(tt.s)); got != tt.want {
			t.Errorf("direction(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestTrimLineBreak(t *testing.T) {
	for in, want := range map[string]string{
		"a\n": "a", "a\r\n": "a", "a\r": "a", "a\u2029": "a", "a": "a", "\n": "",
	} {
		if got := trimLineBreak(in); got != want {
			t.Errorf("trimLineBreak(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name          string
		glyphs        []Glyph
		width, height float32
	}{
		{"empty", nil, 0, 0},
		{
			"advance wins and rounds up",
			[]Glyph{{X: 0, Advance: 10.2, Bounds: Box{MaxX: 9, MaxY: 11}, LineHeight: 12}},
			11, 12,
		},
		{
			"ink wins",
			[]Glyph{{X: 0, Advance: 10, Bounds: Box{MaxX: 11.5, MaxY: 14}, LineHeight: 12}},
			11.5, 14,
		},
		{
			"second line",
			[]Glyph{
				{X: 0, Advance: 5, Bounds: Box{MaxX: 5, MaxY: 10}, LineHeight: 12},
				{X: 0, Advance: 3, Bounds: Box{MaxX: 3, MaxY: 22}, Line: 1, LineTop: 12, LineHeight: 12},
			},
			5, 24,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Measure(tt.glyphs)
			if w != tt.width || h != tt.height {
				t.Errorf("Measure() = (%v, %v), want (%v, %v)", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestAlign(t *testing.T) {
	glyphs := []Glyph{
		{X: 0, Y: 8, Advance: 10, Bounds: Box{MaxX: 10, MaxY: 10}, LineHeight: 10},
		{X: 0, Y: 18, Advance: 4, Bounds: Box{MinY: 10, MaxX: 4, MaxY: 20}, Line: 1, LineTop: 10, LineHeight: 10},
	}
	box := primitive.Size{Width: 30, Height: 40}

	same := Align(glyphs, box, primitive.AlignLeft, primitive.AlignTop)
	if &same[0] != &glyphs[0] {
		t.Error("left/top Align copied the glyphs")
	}

	c := Align(glyphs, box, primitive.AlignCenter, primitive.AlignMiddle)
	if c[0].X != 10 || c[1].X != 13 {
		t.Errorf("centered X = %v, %v; want 10, 13", c[0].X, c[1].X)
	}
	if c[0].Y != 18 || c[1].LineTop != 20 || c[1].Bounds.MaxY != 30 {
		t.Errorf("middle Y = %v, LineTop = %v, MaxY = %v", c[0].Y, c[1].LineTop, c[1].Bounds.MaxY)
	}

	r := Align(glyphs, box, primitive.AlignRight, primitive.AlignBottom)
	if r[0].Bounds.MaxX != 30 || r[1].Bounds.MaxX != 30 || r[1].Bounds.MaxY != 40 {
		t.Errorf("right/bottom bounds = %+v, %+v", r[0].Bounds, r[1].Bounds)
	}
	if glyphs[0].X != 0 {
		t.Error("Align modified its input")
	}
}
