package quarkgl

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// FromRGBA converts an image/color value.
func FromRGBA(c color.RGBA) Color { return Color{R: c.R, G: c.G, B: c.B, A: c.A} }

// ToRGBA converts to an image/color value.
func (c Color) ToRGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

// Vec4 returns the color normalized to [0,1].
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// ColorFromVec4 clamps a normalized color into 8-bit channels.
func ColorFromVec4(v mgl32.Vec4) Color {
	return Color{R: unorm8(v[0]), G: unorm8(v[1]), B: unorm8(v[2]), A: unorm8(v[3])}
}

func unorm8(f float32) uint8 {
	return uint8(clampF32(f, 0, 1)*255 + 0.5)
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
