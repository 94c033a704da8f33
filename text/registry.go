package text

import (
	"fmt"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggsoft"
	"github.com/gogpu/ggsoft/primitive"
)

// Registry resolves font names to faces.
//
// Faces are decoded on first use and kept for the lifetime of the registry.
// A fallback face always exists and is used for the default font and for
// any font whose data cannot be decoded.
type Registry struct {
	fallback *Face
	faces    map[string]*Face
	failed   map[string]struct{}
	nextID   uint64
}

// NewRegistry creates a registry whose fallback is the Go Regular font
// compiled into the binary.
func NewRegistry() *Registry {
	r, err := NewRegistryWithFallback(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("text: built-in fallback font: %v", err))
	}
	return r
}

// NewRegistryWithFallback creates a registry with a custom fallback face.
func NewRegistryWithFallback(data []byte) (*Registry, error) {
	fallback, err := parseFace(1, "", data)
	if err != nil {
		return nil, err
	}
	return &Registry{
		fallback: fallback,
		faces:    make(map[string]*Face),
		failed:   make(map[string]struct{}),
		nextID:   2,
	}, nil
}

// Fallback returns the fallback face.
func (r *Registry) Fallback() *Face {
	return r.fallback
}

// Resolve returns the face registered under name, decoding data the first
// time the name is seen. An empty name resolves to the fallback face without
// a lookup. Decode failures are logged once per name and resolve to the
// fallback face; Resolve never fails.
func (r *Registry) Resolve(name string, data []byte) *Face {
	if name == "" {
		return r.fallback
	}
	if f, ok := r.faces[name]; ok {
		return f
	}
	if _, ok := r.failed[name]; ok {
		return r.fallback
	}

	f, err := parseFace(r.nextID, name, data)
	if err != nil {
		ggsoft.Logger().Warn("text: using fallback font",
			"font", name, "err", err)
		r.failed[name] = struct{}{}
		return r.fallback
	}
	r.nextID++
	r.faces[name] = f
	return f
}

// ResolveFont resolves a primitive font.
func (r *Registry) ResolveFont(f primitive.Font) *Face {
	return r.Resolve(f.Name, f.Bytes)
}

// Len returns the number of named faces successfully decoded.
func (r *Registry) Len() int {
	return len(r.faces)
}
