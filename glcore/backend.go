//go:build cgo && glfw

package glcore

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"gldemo/quarkgl/mesh"
	"gldemo/quarkgl/texture"
	"gldemo/render"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const textureUnit = 1

// Backend draws through the current OpenGL context.
type Backend struct {
	log     *slog.Logger
	present func() error

	program uint32
	mvpLoc  int32
	texture uint32

	shapes map[render.Buffer]glShape
	bound  render.Buffer
}

type glShape struct {
	vbo, ibo uint32
	layout   mesh.Layout
	count    int32
}

// New loads the GL entry points. present swaps the window buffers.
func New(logger *slog.Logger, present func() error) (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: init: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("opengl", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Backend{log: logger, present: present, mvpLoc: -1, shapes: make(map[render.Buffer]glShape)}, nil
}

// Viewport sets the drawable area in pixels.
func (b *Backend) Viewport(w, h int) { gl.Viewport(0, 0, int32(w), int32(h)) }

func (b *Backend) Configure(s render.Setup) error {
	if err := s.Validate(); err != nil {
		return err
	}
	vs, fs, ok := Sources(s.Program)
	if !ok {
		gl.UseProgram(0)
		b.program = 0
		return nil
	}
	prog, err := b.newProgram(s.Program.String(), vs, fs)
	if err != nil {
		return err
	}
	b.program = prog
	gl.UseProgram(prog)
	b.mvpLoc = gl.GetUniformLocation(prog, gl.Str("ModelViewProject\x00"))

	if s.Program == render.TexturedShader {
		return b.uploadTexture(s)
	}
	return nil
}

func (b *Backend) uploadTexture(s render.Setup) error {
	img := s.Texture
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	gl.GenTextures(1, &b.texture)
	if b.texture == 0 {
		return fmt.Errorf("glcore: no texture name")
	}
	gl.ActiveTexture(gl.TEXTURE0 + textureUnit)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)

	wrap := int32(gl.REPEAT)
	if s.Sampler.Wrap == texture.Clamp {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	filter := int32(gl.NEAREST)
	if s.Sampler.Filter == texture.Linear {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	loc := gl.GetUniformLocation(b.program, gl.Str("tex\x00"))
	gl.Uniform1i(loc, textureUnit)
	return glError("texture")
}

func (b *Backend) newProgram(name, vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := b.compileShader(name, vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := b.compileShader(name, fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.BindAttribLocation(program, mesh.LocPosition, gl.Str(mesh.AttribPosition+"\x00"))
	gl.BindAttribLocation(program, mesh.LocColor, gl.Str(mesh.AttribColor+"\x00"))
	gl.BindAttribLocation(program, mesh.LocTexCoord, gl.Str(mesh.AttribTexCoord+"\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	log := programLog(program)
	if log != "" {
		b.log.Debug("program info log", "program", name, "log", log)
	}
	if status == gl.FALSE {
		return 0, fmt.Errorf("glcore: link %s: %v", name, log)
	}
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func (b *Backend) compileShader(name, source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	log := shaderLog(shader)
	if log != "" {
		b.log.Debug("shader info log", "program", name, "log", log)
	}
	if status == gl.FALSE {
		return 0, fmt.Errorf("glcore: compile %s: %v", name, log)
	}
	return shader, nil
}

func shaderLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func programLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func (b *Backend) Upload(s mesh.Shape) (render.Buffer, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	sh := glShape{layout: s.Layout(), count: int32(s.Count())}

	data := mesh.Bytes(s.Vertices)
	gl.GenBuffers(1, &sh.vbo)
	if sh.vbo == 0 {
		return 0, fmt.Errorf("glcore: no buffer name for %s", s.Name)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, sh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)

	if s.Indexed() {
		gl.GenBuffers(1, &sh.ibo)
		if sh.ibo == 0 {
			return 0, fmt.Errorf("glcore: no index buffer name for %s", s.Name)
		}
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sh.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(s.Indices)*2, gl.Ptr(s.Indices), gl.STATIC_DRAW)
	}
	if err := glError("upload " + s.Name); err != nil {
		return 0, err
	}
	id := render.Buffer(sh.vbo)
	b.shapes[id] = sh
	return id, nil
}

func (b *Backend) SetDepthTest(on bool) {
	if on {
		gl.Enable(gl.DEPTH_TEST)
		return
	}
	gl.Disable(gl.DEPTH_TEST)
}

func (b *Backend) Clear(c color.RGBA, depth bool) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

func glType(t mesh.AttribType) uint32 {
	if t == mesh.AttribUint8 {
		return gl.UNSIGNED_BYTE
	}
	return gl.FLOAT
}

func (b *Backend) Bind(id render.Buffer) error {
	sh, ok := b.shapes[id]
	if !ok {
		return fmt.Errorf("glcore: no buffer %d", id)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, sh.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sh.ibo)
	stride := int32(sh.layout.Stride)

	if b.program == 0 {
		for _, a := range sh.layout.Attribs {
			off := gl.PtrOffset(int(a.Offset))
			switch a.Location {
			case mesh.LocPosition:
				gl.EnableClientState(gl.VERTEX_ARRAY)
				gl.VertexPointer(int32(a.Components), glType(a.Type), stride, off)
			case mesh.LocColor:
				gl.EnableClientState(gl.COLOR_ARRAY)
				gl.ColorPointer(int32(a.Components), glType(a.Type), stride, off)
			}
		}
	} else {
		for _, a := range sh.layout.Attribs {
			gl.EnableVertexAttribArray(a.Location)
			gl.VertexAttribPointerWithOffset(a.Location, int32(a.Components), glType(a.Type), a.Normalized, stride, a.Offset)
		}
	}
	b.bound = id
	return nil
}

func (b *Backend) Draw(id render.Buffer) error {
	sh, ok := b.shapes[id]
	if !ok {
		return fmt.Errorf("glcore: no buffer %d", id)
	}
	if b.bound != id {
		return fmt.Errorf("glcore: draw of buffer %d while %d is bound", id, b.bound)
	}
	if sh.ibo != 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, sh.count, gl.UNSIGNED_SHORT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, sh.count)
	}
	return glError("draw")
}

func (b *Backend) Present() error {
	if b.present == nil {
		return nil
	}
	return b.present()
}

func (b *Backend) Sink(p render.Pipeline) render.TransformSink {
	if p == render.Uniform {
		return uniformSink{b}
	}
	return stackSink{}
}

type stackSink struct{}

func (stackSink) SetTransform(proj, modelView mgl32.Mat4) error {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&modelView[0])
	return glError("matrix stack")
}

type uniformSink struct{ b *Backend }

func (s uniformSink) SetTransform(proj, modelView mgl32.Mat4) error {
	if s.b.program == 0 || s.b.mvpLoc < 0 {
		return fmt.Errorf("glcore: program has no ModelViewProject uniform")
	}
	mvp := proj.Mul4(modelView)
	gl.UniformMatrix4fv(s.b.mvpLoc, 1, false, &mvp[0])
	return glError("uniform")
}

var errNames = map[uint32]string{
	gl.INVALID_ENUM:      "GL_INVALID_ENUM",
	gl.INVALID_VALUE:     "GL_INVALID_VALUE",
	gl.INVALID_OPERATION: "GL_INVALID_OPERATION",
	gl.OUT_OF_MEMORY:     "GL_OUT_OF_MEMORY",
}

func glError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	name, ok := errNames[code]
	if !ok {
		name = fmt.Sprintf("0x%x", code)
	}
	return fmt.Errorf("glcore: %s: %s", op, name)
}

var _ render.Backend = (*Backend)(nil)
