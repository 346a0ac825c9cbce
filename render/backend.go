package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"gldemo/quarkgl/mesh"
	"gldemo/quarkgl/texture"

	"github.com/go-gl/mathgl/mgl32"
)

// Buffer names a shape uploaded to a backend.
type Buffer uint32

var (
	ErrBackend  = errors.New("render: backend error")
	ErrBadSetup = errors.New("render: invalid setup")
)

// Pipeline selects how the transform reaches the vertex stage.
type Pipeline uint8

const (
	// Legacy loads projection and model-view into the fixed-function matrix
	// stacks.
	Legacy Pipeline = iota
	// Uniform uploads the combined matrix to the ModelViewProject uniform.
	Uniform
)

func (p Pipeline) String() string {
	if p == Uniform {
		return "uniform"
	}
	return "legacy"
}

// ParsePipeline parses "legacy" or "uniform".
func ParsePipeline(s string) (Pipeline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "stack", "":
		return Legacy, nil
	case "uniform":
		return Uniform, nil
	}
	return Legacy, fmt.Errorf("%w: unknown pipeline %q", ErrBadSetup, s)
}

// Program selects the shading stages.
type Program uint8

const (
	// FixedFunction draws with vertex colors and no program.
	FixedFunction Program = iota
	// StackShader is a program that reads the built-in matrix stack.
	StackShader
	// UniformShader is a program that reads the ModelViewProject uniform.
	UniformShader
	// TexturedShader is UniformShader plus a sampled texture.
	TexturedShader
)

func (p Program) String() string {
	switch p {
	case StackShader:
		return "stack-shader"
	case UniformShader:
		return "uniform-shader"
	case TexturedShader:
		return "textured-shader"
	default:
		return "fixed-function"
	}
}

// Setup is the state a backend prepares once before the first frame.
type Setup struct {
	Pipeline Pipeline
	Program  Program
	Texture  *image.RGBA
	Sampler  texture.Sampler
}

// Validate rejects combinations no backend can draw: the uniform pipeline
// needs a program that declares the uniform, and the fixed function and
// stack programs only read the matrix stack.
func (s Setup) Validate() error {
	switch s.Program {
	case FixedFunction, StackShader:
		if s.Pipeline != Legacy {
			return fmt.Errorf("%w: %s needs the legacy pipeline", ErrBadSetup, s.Program)
		}
	case UniformShader, TexturedShader:
		if s.Pipeline != Uniform {
			return fmt.Errorf("%w: %s needs the uniform pipeline", ErrBadSetup, s.Program)
		}
	default:
		return fmt.Errorf("%w: unknown program %d", ErrBadSetup, s.Program)
	}
	if s.Program == TexturedShader && s.Texture == nil {
		return fmt.Errorf("%w: textured program without a texture", ErrBadSetup)
	}
	return nil
}

// TransformSink delivers a transform to the vertex stage.
type TransformSink interface {
	SetTransform(proj, modelView mgl32.Mat4) error
}

// Backend is a graphics API the frame renderer drives.
type Backend interface {
	Configure(s Setup) error
	Upload(s mesh.Shape) (Buffer, error)
	SetDepthTest(on bool)
	Clear(c color.RGBA, depth bool)
	Bind(b Buffer) error
	Draw(b Buffer) error
	Present() error
	Sink(p Pipeline) TransformSink
}

// UploadAll registers shapes with b in order. Any failure is fatal to
// startup and is reported wrapped in ErrBackend.
func UploadAll(b Backend, shapes []mesh.Shape) ([]Buffer, error) {
	out := make([]Buffer, 0, len(shapes))
	for _, s := range shapes {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackend, err)
		}
		buf, err := b.Upload(s)
		if err != nil {
			return nil, fmt.Errorf("%w: upload %s: %v", ErrBackend, s.Name, err)
		}
		out = append(out, buf)
	}
	return out, nil
}
