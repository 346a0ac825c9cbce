package quarkgl

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// HUDFont is the overlay font.
var HUDFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// HUDLineHeight is the baseline advance of HUDFont in pixels.
const HUDLineHeight = 10

// Displayer exposes a Target as a drivers.Displayer so tinyfont can draw
// into it.
func Displayer(t Target) drivers.Displayer { return targetDisplay{t: t} }

type targetDisplay struct {
	t Target
}

func (d targetDisplay) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), FromRGBA(c))
}

func (d targetDisplay) Display() error { return nil }

// DrawText writes lines of overlay text starting with the first baseline at
// (x, y).
func DrawText(t Target, x, y int, c Color, lines ...string) {
	d := Displayer(t)
	for i, s := range lines {
		tinyfont.WriteLine(d, HUDFont, int16(x), int16(y+i*HUDLineHeight), s, c.ToRGBA())
	}
}
