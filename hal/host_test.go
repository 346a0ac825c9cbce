package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestRunHeadlessStop(t *testing.T) {
	h := newHost(Config{Width: 8, Height: 4}, &bytes.Buffer{})
	calls := 0
	err := runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return func() error {
			calls++
			if calls == 3 {
				return ErrStop
			}
			return nil
		}, nil
	}, HeadlessConfig{Enabled: true, Unpaced: true})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestRunHeadlessTicks(t *testing.T) {
	h := newHost(Config{Width: 8, Height: 4}, &bytes.Buffer{})
	calls := 0
	err := runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return func() error { calls++; return nil }, nil
	}, HeadlessConfig{Enabled: true, Unpaced: true, Ticks: 5, Hz: 50})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if calls != 5 {
		t.Fatalf("calls = %d, want 5", calls)
	}

	var last uint64
	for {
		select {
		case v := <-h.Time().Ticks():
			last = v
			continue
		default:
		}
		break
	}
	if last != 100 {
		t.Fatalf("last tick = %d, want 100", last)
	}
}

func TestRunHeadlessErrors(t *testing.T) {
	h := newHost(Config{}, &bytes.Buffer{})
	boom := errors.New("boom")
	err := runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return func() error { return boom }, nil
	}, HeadlessConfig{Unpaced: true})
	if !errors.Is(err, boom) {
		t.Fatalf("runHeadless = %v, want %v", err, boom)
	}

	err = runHeadless(context.Background(), h, func(HAL) (func() error, error) {
		return nil, boom
	}, HeadlessConfig{Unpaced: true})
	if !errors.Is(err, boom) {
		t.Fatalf("runHeadless = %v, want %v", err, boom)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = runHeadless(ctx, h, func(HAL) (func() error, error) {
		return func() error { return nil }, nil
	}, HeadlessConfig{Unpaced: true})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("runHeadless = %v, want %v", err, context.Canceled)
	}
}

func TestConfigDefaults(t *testing.T) {
	h := newHost(Config{}, &bytes.Buffer{})
	fb := h.Display().Framebuffer()
	if fb.Width() != 640 || fb.Height() != 480 {
		t.Fatalf("size = %dx%d, want 640x480", fb.Width(), fb.Height())
	}
	if fb.StrideBytes() != 1280 || len(fb.Buffer()) != 1280*480 {
		t.Fatalf("stride = %d len = %d", fb.StrideBytes(), len(fb.Buffer()))
	}
	if h.Surface() != nil {
		t.Fatalf("Surface() = %v, want nil", h.Surface())
	}
}

func TestFramebufferRGBA(t *testing.T) {
	h := newHost(Config{Width: 3, Height: 2}, &bytes.Buffer{})
	fb := h.Display().Framebuffer()
	fb.ClearRGB(255, 0, 0)
	buf := fb.Buffer()
	p := rgb565(0, 0, 255)
	buf[fb.StrideBytes()+2] = byte(p)
	buf[fb.StrideBytes()+3] = byte(p >> 8)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	img := RGBA(fb)
	if got := img.RGBAAt(0, 0); got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Fatalf("RGBAAt(0,0) = %v, want red", got)
	}
	if got := img.RGBAAt(1, 1); got.R != 0 || got.B != 255 {
		t.Fatalf("RGBAAt(1,1) = %v, want blue", got)
	}
	if h.fb.presented != 1 {
		t.Fatalf("presented = %d, want 1", h.fb.presented)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}} {
		r, g, b := rgb888From565(rgb565(c[0], c[1], c[2]))
		if r != c[0] || g != c[1] || b != c[2] {
			t.Fatalf("rgb888From565(rgb565(%v)) = %d,%d,%d", c, r, g, b)
		}
	}
}

func TestLoggerAndKeyboard(t *testing.T) {
	var out bytes.Buffer
	h := newHost(Config{}, &out)
	h.Logger().WriteLineString("hello")
	h.Logger().WriteLineBytes([]byte("world"))
	if got, want := out.String(), "hello\nworld\n"; got != want {
		t.Fatalf("log = %q, want %q", got, want)
	}

	h.kbd.emit(KeyEvent{Code: KeyEscape, Press: true})
	select {
	case ev := <-h.Input().Keyboard().Events():
		if ev.Code != KeyEscape || !ev.Press {
			t.Fatalf("event = %+v", ev)
		}
	default:
		t.Fatal("no key event")
	}
}
