// Package primitive defines the drawable instruction tree rendered by the
// software backend.
//
// A frame is described by a single root [Primitive]. Composite variants
// ([Group], [Clip], [Translate], [Cached]) nest other primitives; leaf variants
// ([Quad], [Text]) paint pixels. [Image], [Svg] and [Mesh2D] are accepted by
// the renderer but currently draw nothing.
//
// The variant set is closed: only types in this package implement Primitive.
// Renderers dispatch with a type switch over the concrete types.
package primitive
