package mesh

import (
	"errors"
	"fmt"
	"unsafe"
)

// AttribType is the component type of a vertex attribute.
type AttribType uint8

const (
	AttribFloat32 AttribType = iota + 1
	AttribUint8
)

// Size returns the byte size of one component.
func (t AttribType) Size() uintptr {
	switch t {
	case AttribFloat32:
		return 4
	case AttribUint8:
		return 1
	default:
		return 0
	}
}

func (t AttribType) String() string {
	switch t {
	case AttribFloat32:
		return "float32"
	case AttribUint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// Attrib describes one interleaved vertex attribute.
//
// Location matches the hard-coded attribute location used by the shader
// programs (position 0, color 1, texcoord 2).
type Attrib struct {
	Name       string
	Location   uint32
	Components int
	Type       AttribType
	Normalized bool
	Offset     uintptr
}

// Size returns the byte size of the whole attribute.
func (a Attrib) Size() uintptr { return uintptr(a.Components) * a.Type.Size() }

// Layout is the byte layout of an interleaved vertex buffer.
//
// The layout handed to a backend must describe the in-memory struct exactly:
// backends read attributes through it and never through the Go type.
type Layout struct {
	Stride  uintptr
	Attribs []Attrib
}

const (
	AttribPosition = "vPosition"
	AttribColor    = "vColor"
	AttribTexCoord = "vTexture"
)

const (
	LocPosition uint32 = iota
	LocColor
	LocTexCoord
)

// VertexLayout is the layout of Vertex.
var VertexLayout = Layout{
	Stride: unsafe.Sizeof(Vertex{}),
	Attribs: []Attrib{
		{Name: AttribPosition, Location: LocPosition, Components: 3, Type: AttribFloat32, Offset: unsafe.Offsetof(Vertex{}.X)},
		{Name: AttribColor, Location: LocColor, Components: 3, Type: AttribUint8, Normalized: true, Offset: unsafe.Offsetof(Vertex{}.R)},
		{Name: AttribTexCoord, Location: LocTexCoord, Components: 2, Type: AttribFloat32, Offset: unsafe.Offsetof(Vertex{}.U)},
	},
}

var (
	ErrBadStride = errors.New("mesh: invalid stride")
	ErrOverflow  = errors.New("mesh: attribute overflows stride")
	ErrOverlap   = errors.New("mesh: attributes overlap")
)

// Validate checks that every attribute fits inside the stride and that no two
// attributes share bytes.
func (l Layout) Validate() error {
	if l.Stride == 0 {
		return ErrBadStride
	}
	for i, a := range l.Attribs {
		if a.Components <= 0 || a.Type.Size() == 0 {
			return fmt.Errorf("mesh: attribute %q: bad format %d x %s", a.Name, a.Components, a.Type)
		}
		if a.Offset+a.Size() > l.Stride {
			return fmt.Errorf("%w: %q ends at %d, stride %d", ErrOverflow, a.Name, a.Offset+a.Size(), l.Stride)
		}
		for _, b := range l.Attribs[:i] {
			if a.Offset < b.Offset+b.Size() && b.Offset < a.Offset+a.Size() {
				return fmt.Errorf("%w: %q and %q", ErrOverlap, b.Name, a.Name)
			}
		}
	}
	return nil
}

// Lookup returns the attribute with the given name.
func (l Layout) Lookup(name string) (Attrib, bool) {
	for _, a := range l.Attribs {
		if a.Name == name {
			return a, true
		}
	}
	return Attrib{}, false
}
