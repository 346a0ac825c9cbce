package quarkgl

import (
	"fmt"
	"image/color"

	"gldemo/quarkgl/mesh"
	"gldemo/render"

	"github.com/go-gl/mathgl/mgl32"
)

// Backend drives a Context through the render.Backend contract.
type Backend struct {
	ctx     *Context
	present func() error

	shapes map[render.Buffer]shapeBuffers
	bound  render.Buffer
}

type shapeBuffers struct {
	vbo, ibo uint32
	layout   mesh.Layout
	count    int
}

// NewBackend wraps ctx. present runs after each frame; nil is allowed.
func NewBackend(ctx *Context, present func() error) *Backend {
	return &Backend{ctx: ctx, present: present, shapes: make(map[render.Buffer]shapeBuffers)}
}

// Context returns the wrapped context.
func (b *Backend) Context() *Context { return b.ctx }

func (b *Backend) Configure(s render.Setup) error {
	if err := s.Validate(); err != nil {
		return err
	}
	switch s.Program {
	case render.FixedFunction:
		b.ctx.UseProgram(nil)
		return nil
	case render.StackShader:
		b.ctx.UseProgram(StackProgram())
		return nil
	case render.UniformShader:
		b.ctx.UseProgram(ColorProgram())
		return nil
	}

	b.ctx.UseProgram(TexturedProgram())
	const unit = 1
	if err := b.ctx.BindTexture(unit, s.Texture); err != nil {
		return err
	}
	if err := b.ctx.BindSampler(unit, s.Sampler); err != nil {
		return err
	}
	return b.ctx.Uniform1i(UniformSampler, unit)
}

func (b *Backend) Upload(s mesh.Shape) (render.Buffer, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	sb := shapeBuffers{layout: s.Layout(), count: s.Count()}
	sb.vbo = b.ctx.GenBuffer()
	if err := b.ctx.BindBuffer(ArrayBuffer, sb.vbo); err != nil {
		return 0, err
	}
	if err := b.ctx.BufferData(mesh.Bytes(s.Vertices)); err != nil {
		return 0, err
	}
	if s.Indexed() {
		sb.ibo = b.ctx.GenBuffer()
		if err := b.ctx.BindBuffer(ElementArrayBuffer, sb.ibo); err != nil {
			return 0, err
		}
		if err := b.ctx.ElementData(s.Indices); err != nil {
			return 0, err
		}
	}
	id := render.Buffer(sb.vbo)
	b.shapes[id] = sb
	return id, nil
}

func (b *Backend) SetDepthTest(on bool) { b.ctx.EnableDepthTest(on) }

func (b *Backend) Clear(c color.RGBA, depth bool) { b.ctx.Clear(FromRGBA(c), depth) }

func (b *Backend) Bind(id render.Buffer) error {
	sb, ok := b.shapes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoBuffer, id)
	}
	if err := b.ctx.BindBuffer(ArrayBuffer, sb.vbo); err != nil {
		return err
	}
	if err := b.ctx.VertexLayout(sb.layout); err != nil {
		return err
	}
	if err := b.ctx.BindBuffer(ElementArrayBuffer, sb.ibo); err != nil {
		return err
	}
	b.bound = id
	return nil
}

func (b *Backend) Draw(id render.Buffer) error {
	sb, ok := b.shapes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoBuffer, id)
	}
	if b.bound != id {
		return fmt.Errorf("quarkgl: draw of buffer %d while %d is bound", id, b.bound)
	}
	if sb.ibo != 0 {
		return b.ctx.DrawElements(sb.count)
	}
	return b.ctx.DrawArrays(0, sb.count)
}

func (b *Backend) Present() error {
	if b.present == nil {
		return nil
	}
	return b.present()
}

func (b *Backend) Sink(p render.Pipeline) render.TransformSink {
	if p == render.Uniform {
		return uniformSink{ctx: b.ctx}
	}
	return stackSink{ctx: b.ctx}
}

// stackSink loads the fixed-function projection and model-view stacks.
type stackSink struct{ ctx *Context }

func (s stackSink) SetTransform(proj, modelView mgl32.Mat4) error {
	s.ctx.MatrixMode(Projection)
	s.ctx.LoadMatrix(proj)
	s.ctx.MatrixMode(ModelView)
	s.ctx.LoadMatrix(modelView)
	return nil
}

// uniformSink uploads proj*modelView to the program's ModelViewProject.
type uniformSink struct{ ctx *Context }

func (s uniformSink) SetTransform(proj, modelView mgl32.Mat4) error {
	return s.ctx.UniformMatrix4(UniformMVP, proj.Mul4(modelView))
}

var _ render.Backend = (*Backend)(nil)
