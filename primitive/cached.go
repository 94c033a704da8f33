package primitive

// Cached references a shared, immutable sub-tree.
//
// Copying a Cached value copies the reference, not the tree, so the same
// content can appear under several parents and in several frames. Content
// must not be modified after NewCached returns.
type Cached struct {
	node *cachedNode
}

type cachedNode struct {
	content Primitive
}

// NewCached wraps content in a shareable handle.
func NewCached(content Primitive) Cached {
	if content == nil {
		content = None{}
	}
	return Cached{node: &cachedNode{content: content}}
}

// Content returns the shared sub-tree. The zero Cached yields None.
func (c Cached) Content() Primitive {
	if c.node == nil {
		return None{}
	}
	return c.node.content
}

// Same reports whether c and other reference the same sub-tree.
func (c Cached) Same(other Cached) bool {
	return c.node != nil && c.node == other.node
}
