// Package mesh describes drawable shapes: interleaved vertex data, an optional
// index list and the byte layout a backend needs to read the vertices.
package mesh

import (
	"errors"
	"fmt"
	"unsafe"
)

// Vertex is one interleaved vertex: position, 8-bit color and texture
// coordinate. Shapes without texturing leave U and V at zero.
type Vertex struct {
	X, Y, Z float32
	R, G, B uint8
	U, V    float32
}

// Shape is static vertex data plus an optional triangle index list.
//
// Shapes are created once and never mutated.
type Shape struct {
	Name     string
	Vertices []Vertex
	Indices  []uint16
}

var ErrEmpty = errors.New("mesh: empty shape")

// Indexed reports whether the shape is drawn through its index list.
func (s Shape) Indexed() bool { return len(s.Indices) > 0 }

// Count returns the number of vertices submitted by one draw.
func (s Shape) Count() int {
	if s.Indexed() {
		return len(s.Indices)
	}
	return len(s.Vertices)
}

// Triangles returns the triangle count of one draw.
func (s Shape) Triangles() int { return s.Count() / 3 }

// Layout returns the attribute layout of the shape's vertex buffer.
func (s Shape) Layout() Layout { return VertexLayout }

// Validate checks the triangle list is complete and every index is in range.
func (s Shape) Validate() error {
	if len(s.Vertices) == 0 {
		return fmt.Errorf("%w: %s", ErrEmpty, s.Name)
	}
	if s.Count()%3 != 0 {
		return fmt.Errorf("mesh: %s: %d vertices is not a triangle list", s.Name, s.Count())
	}
	for i, idx := range s.Indices {
		if int(idx) >= len(s.Vertices) {
			return fmt.Errorf("mesh: %s: index %d = %d out of range (%d vertices)", s.Name, i, idx, len(s.Vertices))
		}
	}
	return nil
}

// Expand resolves the index list into the vertex sequence a non-indexed draw
// would submit.
func (s Shape) Expand() []Vertex {
	if !s.Indexed() {
		out := make([]Vertex, len(s.Vertices))
		copy(out, s.Vertices)
		return out
	}
	out := make([]Vertex, 0, len(s.Indices))
	for _, idx := range s.Indices {
		out = append(out, s.Vertices[idx])
	}
	return out
}

// Bytes returns the raw interleaved bytes of vs as laid out in memory.
//
// The result aliases vs.
func Bytes(vs []Vertex) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*int(unsafe.Sizeof(Vertex{})))
}
