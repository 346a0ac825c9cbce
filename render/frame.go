// Package render draws one frame of placed shape instances through a
// Backend.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"gldemo/quarkgl/xform"

	"github.com/go-gl/mathgl/mgl32"
)

// Instance is one shape drawn at one placement.
type Instance struct {
	Buffer    Buffer
	Triangles int
	Placement xform.Placement
}

// FrameStats summarizes one frame.
type FrameStats struct {
	Drawn     int
	Failed    int
	Triangles int
	Err       error
}

// Renderer is the per-frame draw loop.
//
// Clear, then for each instance bind, set transform and draw, then present.
// An instance that fails is logged and skipped; the frame goes on.
type Renderer struct {
	Backend    Backend
	Pipeline   Pipeline
	Depth      bool
	ClearColor color.RGBA
	Logger     *slog.Logger

	// Quiet drops per-instance errors without logging them.
	Quiet bool

	sink TransformSink
}

// NewRenderer applies the depth toggle to b and selects the transform sink.
func NewRenderer(b Backend, p Pipeline, depth bool, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	b.SetDepthTest(depth)
	return &Renderer{
		Backend:    b,
		Pipeline:   p,
		Depth:      depth,
		ClearColor: color.RGBA{A: 0xFF},
		Logger:     logger,
		sink:       b.Sink(p),
	}
}

// Frame renders instances in order with the shared projection.
func (r *Renderer) Frame(proj mgl32.Mat4, instances []Instance) FrameStats {
	var st FrameStats
	if r.sink == nil {
		r.sink = r.Backend.Sink(r.Pipeline)
	}
	r.Backend.Clear(r.ClearColor, r.Depth)

	var errs []error
	for i, in := range instances {
		if err := r.draw(proj, in); err != nil {
			st.Failed++
			errs = append(errs, fmt.Errorf("instance %d: %w", i, err))
			if !r.Quiet {
				r.Logger.Warn("draw failed", "instance", i, "buffer", in.Buffer, "err", err)
			}
			continue
		}
		st.Drawn++
		st.Triangles += in.Triangles
	}

	if err := r.Backend.Present(); err != nil {
		errs = append(errs, fmt.Errorf("present: %w", err))
		r.Logger.Warn("present failed", "err", err)
	}
	st.Err = errors.Join(errs...)
	return st
}

func (r *Renderer) draw(proj mgl32.Mat4, in Instance) error {
	if err := r.Backend.Bind(in.Buffer); err != nil {
		return err
	}
	if err := r.sink.SetTransform(proj, xform.ModelView(in.Placement)); err != nil {
		return err
	}
	return r.Backend.Draw(in.Buffer)
}
