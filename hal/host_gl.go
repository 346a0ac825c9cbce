//go:build cgo && glfw

package hal

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gldemo/internal/buildinfo"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event processing must run on the main thread.
	runtime.LockOSThread()
}

var glfwKeys = map[glfw.Key]KeyCode{
	glfw.KeyUp:        KeyUp,
	glfw.KeyDown:      KeyDown,
	glfw.KeyLeft:      KeyLeft,
	glfw.KeyRight:     KeyRight,
	glfw.KeyEnter:     KeyEnter,
	glfw.KeyEscape:    KeyEscape,
	glfw.KeyBackspace: KeyBackspace,
	glfw.KeyTab:       KeyTab,
	glfw.KeySpace:     KeySpace,
}

type glSurface struct {
	win *glfw.Window
}

func (s glSurface) Size() (int, int) { return s.win.GetFramebufferSize() }

func (s glSurface) SwapBuffers() error {
	s.win.SwapBuffers()
	return nil
}

// RunGL opens an OpenGL 2.1 window and runs the app against its context.
// The step function is called once per polled event batch until the
// window closes or a step returns ErrStop.
func RunGL(cfg Config, newApp func(HAL) (func() error, error)) error {
	cfg = cfg.withDefaults()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title+" ("+buildinfo.Short()+")", nil, nil)
	if err != nil {
		return fmt.Errorf("glfw window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	h := newHost(cfg, os.Stdout)
	h.surface = glSurface{win: win}
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		h.kbd.emit(KeyEvent{Code: glfwKeys[key], Press: action == glfw.Press})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		h.kbd.emit(KeyEvent{Press: true, Rune: r})
	})

	step, err := newApp(h)
	if err != nil {
		return err
	}
	for !win.ShouldClose() {
		glfw.PollEvents()
		h.t.step()
		if step == nil {
			continue
		}
		if err := step(); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	return nil
}
