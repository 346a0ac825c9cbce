package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"gldemo/hal"
	"gldemo/quarkgl"

	"tinygo.org/x/tinyfont"
)

// guard turns a panicking step into an error, after logging the stack and
// painting it onto the framebuffer.
func guard(h hal.HAL, log *slog.Logger, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			log.Error("step panic", "panic", v)
			for _, line := range strings.Split(string(stack), "\n") {
				if line != "" {
					log.Debug(line)
				}
			}
			showPanic(h, v, stack)
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func showPanic(h hal.HAL, v any, stack []byte) {
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	fb.ClearRGB(255, 255, 255)

	font := quarkgl.HUDFont
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	fontHeight := int16(quarkgl.HUDLineHeight)
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}

	lines := []string{"Panic:", fmt.Sprintf("%v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	t := &quarkgl.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	d := quarkgl.Displayer(t)
	fg := color.RGBA{A: 255}
	cols := int16(fb.Width()) / fontWidth
	y := fontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > int16(fb.Height()) {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return s, ""
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
