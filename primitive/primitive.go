package primitive

// Primitive is one node of the drawable instruction tree.
//
// Primitive values are immutable once handed to a renderer. Composite
// variants own their children, except [Cached], whose content is shared.
type Primitive interface {
	isPrimitive()
}

// None draws nothing.
type None struct{}

// Group draws its children in order. Later children paint over earlier ones.
type Group struct {
	Primitives []Primitive
}

// Text is a run of text laid out inside Bounds.
type Text struct {
	Content             string
	Bounds              Rectangle
	Color               Color
	Size                float32
	Font                Font
	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment
}

// Quad is a filled, optionally rounded and bordered rectangle.
type Quad struct {
	Bounds       Rectangle
	Background   Color
	BorderRadius float32
	BorderWidth  float32
	BorderColor  Color
}

// Image is a raster image placeholder. It is not rendered.
type Image struct {
	Handle string
	Bounds Rectangle
}

// Svg is a vector image placeholder. It is not rendered.
type Svg struct {
	Handle string
	Bounds Rectangle
}

// Clip restricts Content to Bounds and translates it by the bounds origin
// plus Offset.
type Clip struct {
	Bounds  Rectangle
	Offset  Vector
	Content Primitive
}

// Translate draws Content with a translation transform.
type Translate struct {
	Translation Vector
	Content     Primitive
}

// Vertex2D is a colored mesh vertex.
type Vertex2D struct {
	Position [2]float32
	Color    [4]float32
}

// Mesh2DBuffers holds the vertices and triangle indices of a mesh.
type Mesh2DBuffers struct {
	Vertices []Vertex2D
	Indices  []uint32
}

// Mesh2D is a triangle mesh. Triangle pipelines are not part of a scanline
// rasterizer, so the renderer skips it.
type Mesh2D struct {
	Buffers Mesh2DBuffers
	Size    Size
}

func (None) isPrimitive()      {}
func (Group) isPrimitive()     {}
func (Text) isPrimitive()      {}
func (Quad) isPrimitive()      {}
func (Image) isPrimitive()     {}
func (Svg) isPrimitive()       {}
func (Clip) isPrimitive()      {}
func (Translate) isPrimitive() {}
func (Mesh2D) isPrimitive()    {}
func (Cached) isPrimitive()    {}

// Walk calls fn for p and, depth first, for every primitive nested in it.
// Returning false from fn skips the children of that node. Shared content of
// a [Cached] node is visited each time it is reached.
func Walk(p Primitive, fn func(Primitive) bool) {
	if p == nil || !fn(p) {
		return
	}
	switch v := p.(type) {
	case Group:
		for _, child := range v.Primitives {
			Walk(child, fn)
		}
	case Clip:
		Walk(v.Content, fn)
	case Translate:
		Walk(v.Content, fn)
	case Cached:
		Walk(v.Content(), fn)
	}
}
