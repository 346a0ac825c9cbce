//go:build !cgo || !glfw

package glcore

import (
	"image/color"
	"log/slog"

	"gldemo/quarkgl/mesh"
	"gldemo/render"
)

// Backend is unavailable without cgo and the glfw tag.
type Backend struct{}

func New(*slog.Logger, func() error) (*Backend, error) { return nil, ErrUnavailable }

func (b *Backend) Viewport(w, h int) {}

func (b *Backend) Configure(render.Setup) error { return ErrUnavailable }

func (b *Backend) Upload(mesh.Shape) (render.Buffer, error) { return 0, ErrUnavailable }

func (b *Backend) SetDepthTest(bool) {}

func (b *Backend) Clear(color.RGBA, bool) {}

func (b *Backend) Bind(render.Buffer) error { return ErrUnavailable }

func (b *Backend) Draw(render.Buffer) error { return ErrUnavailable }

func (b *Backend) Present() error { return ErrUnavailable }

func (b *Backend) Sink(render.Pipeline) render.TransformSink { return nil }
