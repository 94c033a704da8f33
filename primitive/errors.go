package primitive

import "errors"

// Scene decoding errors.
var (
	// ErrUnknownPrimitive is returned for a scene node with an unrecognized type.
	ErrUnknownPrimitive = errors.New("primitive: unknown primitive type")

	// ErrUnknownReference is returned for a ref node naming no earlier cached node.
	ErrUnknownReference = errors.New("primitive: unknown cached reference")

	// ErrEmptyScene is returned when a scene document has no root primitive.
	ErrEmptyScene = errors.New("primitive: empty scene")
)
