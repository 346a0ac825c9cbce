// Package app runs one demo of the catalog against a hal.HAL.
package app

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"gldemo/anim"
	"gldemo/demo"
	"gldemo/glcore"
	"gldemo/hal"
	"gldemo/quarkgl"
	"gldemo/quarkgl/mesh"
	"gldemo/quarkgl/texture"
	"gldemo/render"

	"github.com/go-gl/mathgl/mgl32"
)

// DepthMode overrides a demo's depth test.
type DepthMode uint8

const (
	DepthAuto DepthMode = iota
	DepthOn
	DepthOff
)

// ParseDepthMode accepts "auto", "on" and "off".
func ParseDepthMode(s string) (DepthMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DepthAuto, nil
	case "on":
		return DepthOn, nil
	case "off":
		return DepthOff, nil
	}
	return DepthAuto, fmt.Errorf("unknown depth mode %q", s)
}

type Config struct {
	Demo string
	// Pipeline forces "legacy" or "uniform"; empty keeps the demo's.
	Pipeline  string
	Depth     DepthMode
	ScenePath string

	// Hz converts a static demo's linger time into frames.
	Hz     int
	Frames int

	HUD     bool
	Dump    string
	Verbose bool
}

type system struct {
	h   hal.HAL
	log *slog.Logger
	cfg Config

	demo   demo.Demo
	shapes []mesh.Shape
	bufs   []render.Buffer
	proj   mgl32.Mat4

	renderer *render.Renderer
	driver   *anim.Driver

	fb     hal.Framebuffer
	target *quarkgl.RGB565Target

	fps    fpsMeter
	frames int
	stats  render.FrameStats
	// tris is the triangle count submitted for the frame being drawn.
	tris   int
	hud    []string
}

// New loads the configured demo, uploads its shapes and returns the step
// function drawing one frame per call. The step returns hal.ErrStop once
// the demo is over.
func New(h hal.HAL, cfg Config) (func() error, error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	return guard(h, s.log, s.step), nil
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	s := &system{h: h, cfg: cfg, log: newLogger(h.Logger(), cfg.Verbose)}
	if err := s.load(); err != nil {
		return nil, err
	}
	var backend render.Backend
	var w, ht int
	if surf := h.Surface(); surf != nil {
		w, ht = surf.Size()
		gb, err := glcore.New(s.log, surf.SwapBuffers)
		if err != nil {
			return nil, err
		}
		gb.Viewport(w, ht)
		backend = gb
	} else {
		disp := h.Display()
		if disp == nil || disp.Framebuffer() == nil {
			return nil, errors.New("app: no framebuffer")
		}
		s.fb = disp.Framebuffer()
		if s.fb.Format() != hal.PixelFormatRGB565 {
			return nil, fmt.Errorf("app: unsupported pixel format %d", s.fb.Format())
		}
		w, ht = s.fb.Width(), s.fb.Height()
		s.target = &quarkgl.RGB565Target{Buf: s.fb.Buffer(), Stride: s.fb.StrideBytes(), W: w, H: ht}
		backend = quarkgl.NewBackend(quarkgl.NewContext(s.target), s.present)
	}
	if err := s.setup(backend, w, ht); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *system) load() error {
	d, ok := demo.Lookup(s.cfg.Demo)
	if !ok {
		return fmt.Errorf("app: unknown demo %q (have %s)", s.cfg.Demo, strings.Join(demo.IDs(), ", "))
	}
	if s.cfg.ScenePath != "" {
		o, err := demo.LoadOverrides(s.cfg.ScenePath)
		if err != nil {
			return err
		}
		if d, err = o.Apply(d); err != nil {
			return err
		}
	}
	if s.cfg.Pipeline != "" {
		p, err := render.ParsePipeline(s.cfg.Pipeline)
		if err != nil {
			return err
		}
		if d, err = d.WithPipeline(p); err != nil {
			return err
		}
	}
	switch s.cfg.Depth {
	case DepthOn:
		d.Depth = true
	case DepthOff:
		d.Depth = false
	}
	s.demo = d
	return nil
}

func (s *system) setup(b render.Backend, w, h int) error {
	d := s.demo
	setup := render.Setup{Pipeline: d.Pipeline(), Program: d.Program, Sampler: texture.Blocky}
	if d.Texture {
		setup.Texture = texture.Smiley()
	}
	if err := b.Configure(setup); err != nil {
		return err
	}

	shapes, err := d.MeshShapes()
	if err != nil {
		return err
	}
	bufs, err := render.UploadAll(b, shapes)
	if err != nil {
		return err
	}
	s.shapes, s.bufs = shapes, bufs

	proj := d.View.Projection(w, h)
	if err := proj.Validate(); err != nil {
		return err
	}
	s.proj = proj.Matrix()

	s.renderer = render.NewRenderer(b, d.Pipeline(), d.Depth, s.log)
	s.renderer.ClearColor = d.ClearColor

	limit := s.cfg.Frames
	if limit <= 0 {
		limit = d.FrameLimit(s.cfg.Hz)
	}
	s.driver = anim.NewDriver(limit, d.Hold, d.View.CenterZ, d.Scene)

	s.log.Info("demo loaded",
		"id", d.ID, "title", d.Title,
		"program", d.Program, "pipeline", d.Pipeline(),
		"depth", d.Depth, "frames", limit, "hold", d.Hold,
		"shapes", len(shapes), "size", fmt.Sprintf("%dx%d", w, h))
	return nil
}

func (s *system) step() error {
	s.pollKeys()
	s.pollTicks()
	if s.driver.Done() {
		return s.finish()
	}

	instances := s.instances()
	s.tris = 0
	for _, in := range instances {
		s.tris += in.Triangles
	}
	s.stats = s.renderer.Frame(s.proj, instances)
	s.frames++
	s.fps.frame()
	if s.stats.Err != nil {
		s.log.Debug("frame errors", "frame", s.driver.Clock.Frame, "failed", s.stats.Failed)
	}

	if err := s.driver.Advance(); err != nil {
		if errors.Is(err, anim.ErrFinished) {
			return s.finish()
		}
		return err
	}
	return nil
}

func (s *system) instances() []render.Instance {
	placed := s.driver.Placements()
	out := make([]render.Instance, 0, len(placed))
	for _, p := range placed {
		out = append(out, render.Instance{
			Buffer:    s.bufs[p.Shape],
			Triangles: s.shapes[p.Shape].Triangles(),
			Placement: p.Placement,
		})
	}
	return out
}

func (s *system) pollKeys() {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			if ev.Press {
				s.log.Debug("key", "code", ev.Code, "rune", string(ev.Rune))
				s.driver.Stop()
			}
		default:
			return
		}
	}
}

func (s *system) pollTicks() {
	t := s.h.Time()
	if t == nil || t.Ticks() == nil {
		return
	}
	ch := t.Ticks()
	for {
		select {
		case ms := <-ch:
			s.fps.tick(ms)
		default:
			return
		}
	}
}

// present draws the overlay over the software frame and hands it to the
// display.
func (s *system) present() error {
	if s.cfg.HUD && s.target != nil {
		s.hud = append(s.hud[:0],
			fmt.Sprintf("%s %s", s.demo.ID, s.demo.Title),
			fmt.Sprintf("frame %d  tris %d", s.driver.Clock.Frame, s.tris),
			fmt.Sprintf("fps %d", s.fps.fps),
		)
		quarkgl.DrawText(s.target, 2, quarkgl.HUDLineHeight, quarkgl.RGB(0xFF, 0xFF, 0xFF), s.hud...)
	}
	return s.fb.Present()
}

func (s *system) finish() error {
	if err := s.dump(); err != nil {
		return err
	}
	s.log.Info("demo finished", "id", s.demo.ID, "frames", s.frames)
	return hal.ErrStop
}

func (s *system) dump() error {
	if s.cfg.Dump == "" {
		return nil
	}
	if s.fb == nil {
		return errors.New("app: dump needs the software renderer")
	}
	f, err := os.Create(s.cfg.Dump)
	if err != nil {
		return err
	}
	if err := png.Encode(f, hal.RGBA(s.fb)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.log.Info("frame written", "path", s.cfg.Dump)
	return nil
}

// fpsMeter counts frames per second of tick time.
type fpsMeter struct {
	start  uint64
	now    uint64
	frames int
	fps    int
}

func (m *fpsMeter) tick(ms uint64) {
	m.now = ms
	if m.start == 0 {
		m.start = ms
	}
}

func (m *fpsMeter) frame() {
	m.frames++
	if m.now-m.start >= 1000 {
		m.fps = int(uint64(m.frames) * 1000 / (m.now - m.start))
		m.start = m.now
		m.frames = 0
	}
}
