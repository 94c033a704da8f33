package primitive

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScene = `
interaction: pointer
fonts:
  mono: fonts/mono.ttf
root:
  type: group
  children:
    - type: quad
      bounds: [0, 0, 120, 40]
      background: "#ffffff"
      border_radius: 4
      border_width: 2
      border_color: "#000000"
    - type: cached
      name: label
      child:
        type: text
        content: Hello
        bounds: [8, 8, 104, 24]
        size: 16
        font: mono
        align: center
        valign: bottom
    - type: clip
      bounds: [0, 50, 60, 20]
      offset: [1, 2]
      child: {type: ref, name: label}
    - type: image
      handle: logo.png
      bounds: [0, 0, 10, 10]
    - {type: svg, handle: icon.svg}
    - type: mesh2d
      vertices: [[0, 0, 1, 0, 0, 1], [1, 0, 0, 1, 0, 1], [0, 1, 0, 0, 1, 1]]
      indices: [0, 1, 2]
    - type: none
`

func TestDecodeScene(t *testing.T) {
	var loads []string
	loader := func(path string) ([]byte, error) {
		loads = append(loads, path)
		return []byte("font-bytes"), nil
	}

	root, interaction, err := DecodeScene(strings.NewReader(sampleScene), WithFontLoader(loader))
	require.NoError(t, err)
	assert.Equal(t, Pointer, interaction)
	assert.Equal(t, []string{"fonts/mono.ttf"}, loads)

	g, ok := root.(Group)
	require.True(t, ok, "root is %T", root)
	require.Len(t, g.Primitives, 7)

	q := g.Primitives[0].(Quad)
	assert.Equal(t, Rectangle{Width: 120, Height: 40}, q.Bounds)
	assert.Equal(t, White, q.Background)
	assert.Equal(t, Black, q.BorderColor)
	assert.Equal(t, float32(4), q.BorderRadius)
	assert.Equal(t, float32(2), q.BorderWidth)

	cached := g.Primitives[1].(Cached)
	text := cached.Content().(Text)
	assert.Equal(t, "Hello", text.Content)
	assert.Equal(t, "mono", text.Font.Name)
	assert.Equal(t, []byte("font-bytes"), text.Font.Bytes)
	assert.Equal(t, AlignCenter, text.HorizontalAlignment)
	assert.Equal(t, AlignBottom, text.VerticalAlignment)
	assert.Equal(t, Black, text.Color)

	clip := g.Primitives[2].(Clip)
	assert.Equal(t, Vector{X: 1, Y: 2}, clip.Offset)
	ref, ok := clip.Content.(Cached)
	require.True(t, ok)
	assert.True(t, ref.Same(cached), "ref must share the cached node")

	assert.Equal(t, "logo.png", g.Primitives[3].(Image).Handle)
	assert.Equal(t, "icon.svg", g.Primitives[4].(Svg).Handle)
	mesh := g.Primitives[5].(Mesh2D)
	assert.Len(t, mesh.Buffers.Vertices, 3)
	assert.Equal(t, [4]float32{0, 1, 0, 1}, mesh.Buffers.Vertices[1].Color)
	assert.IsType(t, None{}, g.Primitives[6])
}

func TestDecodeSceneErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
	}{
		{"empty", "", ErrEmptyScene},
		{"no root", "interaction: idle\n", ErrEmptyScene},
		{"unknown type", "root: {type: circle}\n", ErrUnknownPrimitive},
		{"dangling ref", "root: {type: ref, name: nope}\n", ErrUnknownReference},
		{"bad bounds", "root: {type: quad, bounds: [1, 2]}\n", nil},
		{"bad color", "root: {type: quad, background: red}\n", nil},
		{"bad interaction", "interaction: hover\nroot: {type: none}\n", nil},
		{"unknown field", "root: {type: none, colour: x}\n", nil},
		{"bad index", "root: {type: mesh2d, indices: [0]}\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeScene(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestDecodeSceneFontLoadError(t *testing.T) {
	input := "fonts: {serif: x.ttf}\nroot: {type: text, font: serif}\n"
	loadErr := errors.New("boom")
	_, _, err := DecodeScene(strings.NewReader(input), WithFontLoader(func(string) ([]byte, error) {
		return nil, loadErr
	}))
	assert.ErrorIs(t, err, loadErr)
}

func TestDecodeSceneUnlistedFontKeepsName(t *testing.T) {
	root, _, err := DecodeScene(strings.NewReader("root: {type: text, font: Missing}\n"))
	require.NoError(t, err)
	text := root.(Text)
	assert.Equal(t, Font{Name: "Missing"}, text.Font)
}
