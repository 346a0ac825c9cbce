package quarkgl

import (
	"errors"
	"image"

	"gldemo/quarkgl/texture"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoBuffer       = errors.New("quarkgl: no such buffer")
	ErrNoProgram      = errors.New("quarkgl: no program in use")
	ErrNoTarget       = errors.New("quarkgl: no target")
	ErrBadUnit        = errors.New("quarkgl: texture unit out of range")
	ErrStackOverflow  = errors.New("quarkgl: matrix stack overflow")
	ErrStackUnderflow = errors.New("quarkgl: matrix stack underflow")
	ErrBadDraw        = errors.New("quarkgl: draw out of range")
)

// MaxTextureUnits is the number of texture units a Context exposes.
const MaxTextureUnits = 4

// Context is the software rendering state machine. It is not safe for
// concurrent use.
type Context struct {
	target Target
	w, h   int

	Mode RenderMode

	depthTest bool
	depthBuf  []float32

	buffers []*bufferObject
	array   uint32
	element uint32

	// Attribute pointers capture the array buffer bound when they were set.
	layoutSet bool
	layout    layoutState

	matMode MatrixMode
	stacks  [2][]mgl32.Mat4

	program *Program

	textures [MaxTextureUnits]*image.RGBA
	samplers [MaxTextureUnits]texture.Sampler

	scratch []vertexOut
}

// NewContext creates a context drawing into t.
func NewContext(t Target) *Context {
	c := &Context{Mode: RenderSolid}
	for i := range c.stacks {
		c.stacks[i] = []mgl32.Mat4{mgl32.Ident4()}
	}
	c.SetTarget(t)
	return c
}

// SetTarget replaces the target and resizes the depth buffer.
func (c *Context) SetTarget(t Target) {
	c.target = t
	c.w, c.h = 0, 0
	if t != nil {
		c.w, c.h = t.Size()
	}
	n := c.w * c.h
	if n < 0 {
		n = 0
	}
	if cap(c.depthBuf) < n {
		c.depthBuf = make([]float32, n)
	} else {
		c.depthBuf = c.depthBuf[:n]
	}
	c.clearDepth()
}

// Target returns the current target.
func (c *Context) Target() Target { return c.target }

// EnableDepthTest toggles the depth test. While disabled the depth buffer is
// neither read nor written.
func (c *Context) EnableDepthTest(on bool) { c.depthTest = on }

// DepthTest reports whether the depth test is enabled.
func (c *Context) DepthTest() bool { return c.depthTest }

// Clear fills the target with col and optionally resets the depth buffer.
func (c *Context) Clear(col Color, depth bool) {
	if c.target != nil {
		c.target.Clear(col)
	}
	if depth {
		c.clearDepth()
	}
}

func (c *Context) clearDepth() {
	for i := range c.depthBuf {
		c.depthBuf[i] = 1
	}
}

// UseProgram installs p for subsequent draws. nil selects the fixed
// function pipeline.
func (c *Context) UseProgram(p *Program) { c.program = p }

// Program returns the program in use.
func (c *Context) Program() *Program { return c.program }

// UniformMatrix4 sets a matrix uniform on the program in use.
func (c *Context) UniformMatrix4(name string, m mgl32.Mat4) error {
	if c.program == nil {
		return ErrNoProgram
	}
	c.program.SetMat4(name, m)
	return nil
}

// Uniform1i sets an integer uniform on the program in use.
func (c *Context) Uniform1i(name string, v int32) error {
	if c.program == nil {
		return ErrNoProgram
	}
	c.program.SetInt(name, v)
	return nil
}

// BindTexture attaches img to a texture unit. nil detaches it.
func (c *Context) BindTexture(unit int, img *image.RGBA) error {
	if unit < 0 || unit >= MaxTextureUnits {
		return ErrBadUnit
	}
	c.textures[unit] = img
	return nil
}

// BindSampler sets the sampling state of a texture unit.
func (c *Context) BindSampler(unit int, s texture.Sampler) error {
	if unit < 0 || unit >= MaxTextureUnits {
		return ErrBadUnit
	}
	c.samplers[unit] = s
	return nil
}

func (c *Context) sample(unit int32, uv mgl32.Vec2) mgl32.Vec4 {
	if unit < 0 || int(unit) >= MaxTextureUnits {
		return mgl32.Vec4{}
	}
	col := c.samplers[unit].Sample(c.textures[unit], uv[0], uv[1])
	return FromRGBA(col).Vec4()
}
