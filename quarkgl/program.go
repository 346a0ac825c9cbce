package quarkgl

import "github.com/go-gl/mathgl/mgl32"

// Uniform names shared by the built-in programs.
const (
	UniformMVP     = "ModelViewProject"
	UniformSampler = "tex"
)

// Varying carries interpolated values from the vertex to the fragment stage.
type Varying struct {
	Color    mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Env is what a shader stage can read besides its inputs.
type Env struct {
	// ModelViewProjection is the built-in matrix-stack transform.
	ModelViewProjection mgl32.Mat4

	p *Program
	c *Context
}

func (e *Env) Mat4(name string) mgl32.Mat4 { return e.p.mats[name] }
func (e *Env) Int(name string) int32       { return e.p.ints[name] }

// Sample reads the texture bound to unit.
func (e *Env) Sample(unit int32, uv mgl32.Vec2) mgl32.Vec4 { return e.c.sample(unit, uv) }

// Program is a pair of Go shader stages plus their uniforms.
type Program struct {
	Name string

	Vertex   func(e *Env, pos mgl32.Vec4, color mgl32.Vec3, tex mgl32.Vec2) (mgl32.Vec4, Varying)
	Fragment func(e *Env, v Varying) mgl32.Vec4

	mats map[string]mgl32.Mat4
	ints map[string]int32
}

// NewProgram links the two stages into a program.
func NewProgram(name string,
	vertex func(e *Env, pos mgl32.Vec4, color mgl32.Vec3, tex mgl32.Vec2) (mgl32.Vec4, Varying),
	fragment func(e *Env, v Varying) mgl32.Vec4,
) *Program {
	return &Program{
		Name:     name,
		Vertex:   vertex,
		Fragment: fragment,
		mats:     make(map[string]mgl32.Mat4),
		ints:     make(map[string]int32),
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) { p.mats[name] = m }
func (p *Program) SetInt(name string, v int32)       { p.ints[name] = v }

func passColor(_ *Env, v Varying) mgl32.Vec4 { return v.Color.Vec4(1) }

// StackProgram transforms by the built-in matrix stack and passes vertex
// colors through.
func StackProgram() *Program {
	return NewProgram("stack",
		func(e *Env, pos mgl32.Vec4, color mgl32.Vec3, _ mgl32.Vec2) (mgl32.Vec4, Varying) {
			return e.ModelViewProjection.Mul4x1(pos), Varying{Color: color}
		},
		passColor,
	)
}

// ColorProgram transforms by the ModelViewProject uniform and passes vertex
// colors through.
func ColorProgram() *Program {
	return NewProgram("color",
		func(e *Env, pos mgl32.Vec4, color mgl32.Vec3, _ mgl32.Vec2) (mgl32.Vec4, Varying) {
			return e.Mat4(UniformMVP).Mul4x1(pos), Varying{Color: color}
		},
		passColor,
	)
}

// TexturedProgram is ColorProgram with the texture on the unit named by the
// tex uniform laid over the vertex color by its alpha.
func TexturedProgram() *Program {
	return NewProgram("textured",
		func(e *Env, pos mgl32.Vec4, color mgl32.Vec3, tex mgl32.Vec2) (mgl32.Vec4, Varying) {
			return e.Mat4(UniformMVP).Mul4x1(pos), Varying{Color: color, TexCoord: tex}
		},
		func(e *Env, v Varying) mgl32.Vec4 {
			t := e.Sample(e.Int(UniformSampler), v.TexCoord)
			return v.Color.Vec4(0).Mul(1 - t[3]).Add(t)
		},
	)
}
