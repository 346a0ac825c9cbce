package quarkgl

import (
	"encoding/binary"
	"fmt"
	"math"

	"gldemo/quarkgl/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// BufferTarget is the binding point of a buffer object.
type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

type bufferObject struct {
	data    []byte
	indices []uint16
}

type layoutState struct {
	buf    uint32
	layout mesh.Layout
}

// GenBuffer creates an empty buffer object and returns its non-zero name.
func (c *Context) GenBuffer() uint32 {
	c.buffers = append(c.buffers, &bufferObject{})
	return uint32(len(c.buffers))
}

func (c *Context) buffer(id uint32) (*bufferObject, error) {
	if id == 0 || int(id) > len(c.buffers) || c.buffers[id-1] == nil {
		return nil, fmt.Errorf("%w: %d", ErrNoBuffer, id)
	}
	return c.buffers[id-1], nil
}

// DeleteBuffer releases a buffer object. Deleting a bound buffer unbinds it.
func (c *Context) DeleteBuffer(id uint32) {
	if _, err := c.buffer(id); err != nil {
		return
	}
	c.buffers[id-1] = nil
	if c.array == id {
		c.array = 0
	}
	if c.element == id {
		c.element = 0
	}
	if c.layout.buf == id {
		c.layoutSet = false
	}
}

// BindBuffer binds id to target. Zero unbinds.
func (c *Context) BindBuffer(target BufferTarget, id uint32) error {
	if id != 0 {
		if _, err := c.buffer(id); err != nil {
			return err
		}
	}
	if target == ElementArrayBuffer {
		c.element = id
	} else {
		c.array = id
	}
	return nil
}

// BufferData copies data into the buffer bound to ArrayBuffer.
func (c *Context) BufferData(data []byte) error {
	b, err := c.buffer(c.array)
	if err != nil {
		return err
	}
	b.data = append(b.data[:0], data...)
	return nil
}

// ElementData copies indices into the buffer bound to ElementArrayBuffer.
func (c *Context) ElementData(indices []uint16) error {
	b, err := c.buffer(c.element)
	if err != nil {
		return err
	}
	b.indices = append(b.indices[:0], indices...)
	return nil
}

// VertexLayout describes how the buffer bound to ArrayBuffer is read. It
// plays the part of the attribute pointer calls and captures that buffer.
func (c *Context) VertexLayout(l mesh.Layout) error {
	if _, err := c.buffer(c.array); err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}
	c.layout = layoutState{buf: c.array, layout: l}
	c.layoutSet = true
	return nil
}

// vertexIn is one fetched vertex.
type vertexIn struct {
	Position mgl32.Vec4
	Color    mgl32.Vec3
	TexCoord mgl32.Vec2
}

// vertexCount returns how many whole vertices the captured buffer holds.
func (c *Context) vertexCount() (int, []byte, error) {
	if !c.layoutSet {
		return 0, nil, fmt.Errorf("%w: no vertex layout", ErrNoBuffer)
	}
	b, err := c.buffer(c.layout.buf)
	if err != nil {
		return 0, nil, err
	}
	return len(b.data) / int(c.layout.layout.Stride), b.data, nil
}

// fetch decodes vertex i. Missing attributes take the fixed-function
// defaults: w = 1 and white.
func (c *Context) fetch(data []byte, i int) vertexIn {
	l := c.layout.layout
	base := i * int(l.Stride)
	v := vertexIn{Position: mgl32.Vec4{0, 0, 0, 1}, Color: mgl32.Vec3{1, 1, 1}}
	for _, a := range l.Attribs {
		off := base + int(a.Offset)
		var vals [4]float32
		n := a.Components
		if n > 4 {
			n = 4
		}
		for k := 0; k < n; k++ {
			vals[k] = readComponent(data, off+k*int(a.Type.Size()), a)
		}
		switch a.Location {
		case mesh.LocPosition:
			v.Position = mgl32.Vec4{0, 0, 0, 1}
			copy(v.Position[:n], vals[:n])
		case mesh.LocColor:
			copy(v.Color[:min(n, 3)], vals[:min(n, 3)])
		case mesh.LocTexCoord:
			copy(v.TexCoord[:min(n, 2)], vals[:min(n, 2)])
		}
	}
	return v
}

func readComponent(data []byte, off int, a mesh.Attrib) float32 {
	switch a.Type {
	case mesh.AttribUint8:
		if off < 0 || off >= len(data) {
			return 0
		}
		if a.Normalized {
			return float32(data[off]) / 255
		}
		return float32(data[off])
	default:
		if off < 0 || off+4 > len(data) {
			return 0
		}
		return math.Float32frombits(binary.NativeEndian.Uint32(data[off:]))
	}
}
