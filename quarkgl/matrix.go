package quarkgl

import "github.com/go-gl/mathgl/mgl32"

// MatrixMode selects the stack the matrix calls operate on.
type MatrixMode uint8

const (
	ModelView MatrixMode = iota
	Projection
)

// MaxStackDepth bounds each matrix stack.
const MaxStackDepth = 32

func (c *Context) MatrixMode(m MatrixMode) {
	if m == Projection {
		c.matMode = Projection
		return
	}
	c.matMode = ModelView
}

func (c *Context) top() *mgl32.Mat4 {
	s := c.stacks[c.matMode]
	return &s[len(s)-1]
}

func (c *Context) LoadIdentity()           { *c.top() = mgl32.Ident4() }
func (c *Context) LoadMatrix(m mgl32.Mat4) { *c.top() = m }
func (c *Context) MultMatrix(m mgl32.Mat4) { t := c.top(); *t = t.Mul4(m) }

func (c *Context) Translate(x, y, z float32) { c.MultMatrix(mgl32.Translate3D(x, y, z)) }
func (c *Context) Scale(x, y, z float32)     { c.MultMatrix(mgl32.Scale3D(x, y, z)) }

// Rotate multiplies by a rotation of deg degrees about (x, y, z).
func (c *Context) Rotate(deg, x, y, z float32) {
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() == 0 {
		return
	}
	c.MultMatrix(mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize()))
}

func (c *Context) PushMatrix() error {
	s := c.stacks[c.matMode]
	if len(s) >= MaxStackDepth {
		return ErrStackOverflow
	}
	c.stacks[c.matMode] = append(s, s[len(s)-1])
	return nil
}

func (c *Context) PopMatrix() error {
	s := c.stacks[c.matMode]
	if len(s) <= 1 {
		return ErrStackUnderflow
	}
	c.stacks[c.matMode] = s[:len(s)-1]
	return nil
}

// Matrix returns the top of the given stack.
func (c *Context) Matrix(m MatrixMode) mgl32.Mat4 {
	if m != Projection {
		m = ModelView
	}
	s := c.stacks[m]
	return s[len(s)-1]
}

// ModelViewProjection is the combined transform the fixed function applies.
func (c *Context) ModelViewProjection() mgl32.Mat4 {
	return c.Matrix(Projection).Mul4(c.Matrix(ModelView))
}
