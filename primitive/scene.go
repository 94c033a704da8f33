package primitive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// A scene document describes one primitive tree in YAML:
//
//	interaction: pointer
//	fonts:
//	  mono: fonts/mono.ttf
//	root:
//	  type: group
//	  children:
//	    - type: quad
//	      bounds: [0, 0, 120, 40]
//	      background: "#ffffff"
//	      border_width: 2
//	      border_color: "#000000"
//	    - type: cached
//	      name: label
//	      child:
//	        type: text
//	        content: Hello
//	        bounds: [8, 8, 104, 24]
//	        font: mono
//	    - type: translate
//	      offset: [0, 50]
//	      child: {type: ref, name: label}
//
// A ref node reuses an earlier cached node by name; both places share the
// same sub-tree.
type sceneFile struct {
	Interaction string            `yaml:"interaction"`
	Fonts       map[string]string `yaml:"fonts"`
	Root        *sceneNode        `yaml:"root"`
}

type sceneNode struct {
	Type     string       `yaml:"type"`
	Name     string       `yaml:"name"`
	Children []*sceneNode `yaml:"children"`
	Child    *sceneNode   `yaml:"child"`
	Bounds   []float32    `yaml:"bounds"`
	Offset   []float32    `yaml:"offset"`

	Content string  `yaml:"content"`
	Color   string  `yaml:"color"`
	Size    float32 `yaml:"size"`
	Font    string  `yaml:"font"`
	Align   string  `yaml:"align"`
	VAlign  string  `yaml:"valign"`

	Background   string  `yaml:"background"`
	BorderRadius float32 `yaml:"border_radius"`
	BorderWidth  float32 `yaml:"border_width"`
	BorderColor  string  `yaml:"border_color"`

	Handle   string       `yaml:"handle"`
	Vertices [][6]float32 `yaml:"vertices"`
	Indices  []uint32     `yaml:"indices"`
}

// DecodeOption configures DecodeScene.
type DecodeOption func(*decoder)

// WithFontLoader sets the function used to read the font files listed in
// the scene's fonts table. The default reads from the file system.
func WithFontLoader(load func(path string) ([]byte, error)) DecodeOption {
	return func(d *decoder) {
		d.loadFont = load
	}
}

type decoder struct {
	loadFont func(path string) ([]byte, error)
	fonts    map[string]string
	loaded   map[string]Font
	cached   map[string]Cached
}

// DecodeScene reads a YAML scene document and returns its root primitive and
// interaction hint.
func DecodeScene(r io.Reader, opts ...DecodeOption) (Primitive, Interaction, error) {
	d := &decoder{
		loadFont: os.ReadFile,
		loaded:   make(map[string]Font),
		cached:   make(map[string]Cached),
	}
	for _, opt := range opts {
		opt(d)
	}

	var file sceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, Idle, ErrEmptyScene
		}
		return nil, Idle, fmt.Errorf("primitive: failed to parse scene: %w", err)
	}
	if file.Root == nil {
		return nil, Idle, ErrEmptyScene
	}

	interaction, err := ParseInteraction(file.Interaction)
	if err != nil {
		return nil, Idle, err
	}
	d.fonts = file.Fonts

	root, err := d.node(file.Root, "root")
	if err != nil {
		return nil, Idle, err
	}
	return root, interaction, nil
}

func (d *decoder) node(n *sceneNode, path string) (Primitive, error) {
	if n == nil {
		return None{}, nil
	}
	switch strings.ToLower(n.Type) {
	case "", "none":
		return None{}, nil
	case "group":
		g := Group{Primitives: make([]Primitive, 0, len(n.Children))}
		for i, c := range n.Children {
			p, err := d.node(c, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			g.Primitives = append(g.Primitives, p)
		}
		return g, nil
	case "text":
		return d.text(n, path)
	case "quad":
		return d.quad(n, path)
	case "image":
		b, err := rect(n.Bounds, path)
		return Image{Handle: n.Handle, Bounds: b}, err
	case "svg":
		b, err := rect(n.Bounds, path)
		return Svg{Handle: n.Handle, Bounds: b}, err
	case "mesh2d":
		return d.mesh(n, path)
	case "clip":
		b, err := rect(n.Bounds, path)
		if err != nil {
			return nil, err
		}
		off, err := vector(n.Offset, path)
		if err != nil {
			return nil, err
		}
		content, err := d.node(n.Child, path+".child")
		if err != nil {
			return nil, err
		}
		return Clip{Bounds: b, Offset: off, Content: content}, nil
	case "translate":
		off, err := vector(n.Offset, path)
		if err != nil {
			return nil, err
		}
		content, err := d.node(n.Child, path+".child")
		if err != nil {
			return nil, err
		}
		return Translate{Translation: off, Content: content}, nil
	case "cached":
		content, err := d.node(n.Child, path+".child")
		if err != nil {
			return nil, err
		}
		c := NewCached(content)
		if n.Name != "" {
			d.cached[n.Name] = c
		}
		return c, nil
	case "ref":
		c, ok := d.cached[n.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s: %q", ErrUnknownReference, path, n.Name)
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s: %q", ErrUnknownPrimitive, path, n.Type)
}

func (d *decoder) text(n *sceneNode, path string) (Primitive, error) {
	b, err := rect(n.Bounds, path)
	if err != nil {
		return nil, err
	}
	c, err := colorOr(n.Color, Black, path)
	if err != nil {
		return nil, err
	}
	font, err := d.font(n.Font)
	if err != nil {
		return nil, fmt.Errorf("primitive: %s: %w", path, err)
	}
	t := Text{Content: n.Content, Bounds: b, Color: c, Size: n.Size, Font: font}
	switch strings.ToLower(n.Align) {
	case "", "left":
	case "center":
		t.HorizontalAlignment = AlignCenter
	case "right":
		t.HorizontalAlignment = AlignRight
	default:
		return nil, fmt.Errorf("primitive: %s: unknown align %q", path, n.Align)
	}
	switch strings.ToLower(n.VAlign) {
	case "", "top":
	case "center", "middle":
		t.VerticalAlignment = AlignMiddle
	case "bottom":
		t.VerticalAlignment = AlignBottom
	default:
		return nil, fmt.Errorf("primitive: %s: unknown valign %q", path, n.VAlign)
	}
	return t, nil
}

func (d *decoder) quad(n *sceneNode, path string) (Primitive, error) {
	b, err := rect(n.Bounds, path)
	if err != nil {
		return nil, err
	}
	bg, err := colorOr(n.Background, Transparent, path)
	if err != nil {
		return nil, err
	}
	border, err := colorOr(n.BorderColor, Transparent, path)
	if err != nil {
		return nil, err
	}
	return Quad{
		Bounds:       b,
		Background:   bg,
		BorderRadius: n.BorderRadius,
		BorderWidth:  n.BorderWidth,
		BorderColor:  border,
	}, nil
}

func (d *decoder) mesh(n *sceneNode, path string) (Primitive, error) {
	m := Mesh2D{Buffers: Mesh2DBuffers{Indices: n.Indices}}
	for _, v := range n.Vertices {
		m.Buffers.Vertices = append(m.Buffers.Vertices, Vertex2D{
			Position: [2]float32{v[0], v[1]},
			Color:    [4]float32{v[2], v[3], v[4], v[5]},
		})
	}
	for _, idx := range n.Indices {
		if int(idx) >= len(m.Buffers.Vertices) {
			return nil, fmt.Errorf("primitive: %s: index %d out of range", path, idx)
		}
	}
	if len(n.Bounds) != 0 {
		b, err := rect(n.Bounds, path)
		if err != nil {
			return nil, err
		}
		m.Size = b.Size()
	}
	return m, nil
}

// font resolves a font name through the scene's fonts table. Names missing
// from the table keep their name and no bytes, leaving the fallback decision
// to the renderer.
func (d *decoder) font(name string) (Font, error) {
	if name == "" || strings.EqualFold(name, "default") {
		return DefaultFont, nil
	}
	if f, ok := d.loaded[name]; ok {
		return f, nil
	}
	f := Font{Name: name}
	if path, ok := d.fonts[name]; ok {
		data, err := d.loadFont(path)
		if err != nil {
			return Font{}, fmt.Errorf("failed to load font %q: %w", name, err)
		}
		f.Bytes = data
	}
	d.loaded[name] = f
	return f, nil
}

func rect(v []float32, path string) (Rectangle, error) {
	switch len(v) {
	case 0:
		return Rectangle{}, nil
	case 4:
		return Rectangle{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
	}
	return Rectangle{}, fmt.Errorf("primitive: %s: bounds needs 4 numbers, got %d", path, len(v))
}

func vector(v []float32, path string) (Vector, error) {
	switch len(v) {
	case 0:
		return Vector{}, nil
	case 2:
		return Vector{X: v[0], Y: v[1]}, nil
	}
	return Vector{}, fmt.Errorf("primitive: %s: offset needs 2 numbers, got %d", path, len(v))
}

func colorOr(s string, def Color, path string) (Color, error) {
	if s == "" {
		return def, nil
	}
	c, err := ParseHex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
