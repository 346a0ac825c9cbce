// Package texture builds small RGBA textures and samples them the way the
// fixed-function texture units do.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

var ErrBadBitmap = errors.New("texture: bitmap size mismatch")

// Monochrome expands a 1-bit-per-pixel bitmap into RGBA. Each row is w/8
// bytes, most significant bit leftmost. Set bits take color c, clear bits
// are fully transparent black.
func Monochrome(bits []byte, w, h int, c color.RGBA) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || w%8 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadBitmap, w, h)
	}
	if len(bits) != w/8*h {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrBadBitmap, len(bits), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	set := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	for y := 0; y < h; y++ {
		row := bits[y*w/8 : (y+1)*w/8]
		for x := 0; x < w; x++ {
			if row[x/8]&(0x80>>uint(x%8)) != 0 {
				img.SetRGBA(x, y, set)
			}
		}
	}
	return img, nil
}

// SmileyBits is a 16x16 smiley face.
var SmileyBits = []byte{
	0x00, 0x00,
	0x00, 0x00,
	0x07, 0xE0,
	0x08, 0x10,
	0x10, 0x08,
	0x20, 0x04,
	0x44, 0x22,
	0x40, 0x02,
	0x40, 0x02,
	0x40, 0x02,
	0x42, 0x42,
	0x23, 0xC4,
	0x10, 0x08,
	0x0C, 0x30,
	0x03, 0xC0,
	0x00, 0x00,
}

// Smiley returns the red smiley texture.
func Smiley() *image.RGBA {
	img, err := Monochrome(SmileyBits, 16, 16, color.RGBA{R: 0xFF, A: 0xFF})
	if err != nil {
		panic(err)
	}
	return img
}

// Wrap selects how coordinates outside [0,1) are folded back.
type Wrap uint8

const (
	Repeat Wrap = iota
	Clamp
)

func (w Wrap) String() string {
	if w == Clamp {
		return "clamp"
	}
	return "repeat"
}

// Filter selects the texel lookup.
type Filter uint8

const (
	// Nearest returns the texel containing the coordinate.
	Nearest Filter = iota
	// Linear blends the four texels around the coordinate.
	Linear
)

func (f Filter) String() string {
	if f == Linear {
		return "linear"
	}
	return "nearest"
}

// Sampler is the sampling state bound next to a texture.
type Sampler struct {
	Wrap   Wrap
	Filter Filter
}

// Blocky is the nearest/repeat sampler.
var Blocky = Sampler{Wrap: Repeat, Filter: Nearest}

// Sample returns the texel of img at (u, v). Row 0 of the image is v = 0.
// A nil or empty image samples as transparent black.
func (s Sampler) Sample(img *image.RGBA, u, v float32) color.RGBA {
	if img == nil {
		return color.RGBA{}
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return color.RGBA{}
	}
	if s.Filter == Linear {
		return s.linear(img, u, v)
	}
	x := s.texel(u, w)
	y := s.texel(v, h)
	return img.RGBAAt(b.Min.X+x, b.Min.Y+y)
}

func (s Sampler) linear(img *image.RGBA, u, v float32) color.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	x0, fx := split(u, w)
	y0, fy := split(v, h)
	x1, y1 := s.wrap(x0+1, w), s.wrap(y0+1, h)
	x0, y0 = s.wrap(x0, w), s.wrap(y0, h)

	c00 := img.RGBAAt(b.Min.X+x0, b.Min.Y+y0)
	c10 := img.RGBAAt(b.Min.X+x1, b.Min.Y+y0)
	c01 := img.RGBAAt(b.Min.X+x0, b.Min.Y+y1)
	c11 := img.RGBAAt(b.Min.X+x1, b.Min.Y+y1)
	mix := func(a, b, c, d uint8) uint8 {
		top := float64(a)*(1-fx) + float64(b)*fx
		bot := float64(c)*(1-fx) + float64(d)*fx
		return uint8(math.Round(top*(1-fy) + bot*fy))
	}
	return color.RGBA{
		R: mix(c00.R, c10.R, c01.R, c11.R),
		G: mix(c00.G, c10.G, c01.G, c11.G),
		B: mix(c00.B, c10.B, c01.B, c11.B),
		A: mix(c00.A, c10.A, c01.A, c11.A),
	}
}

// split maps t to the lower of the two texel centers around it and the
// weight of the upper one.
func split(t float32, n int) (int, float64) {
	if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
		return 0, 0
	}
	p := float64(t)*float64(n) - 0.5
	i := math.Floor(p)
	return int(i), p - i
}

func (s Sampler) texel(t float32, n int) int {
	if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
		return 0
	}
	return s.wrap(int(math.Floor(float64(t)*float64(n))), n)
}

func (s Sampler) wrap(i, n int) int {
	switch s.Wrap {
	case Clamp:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	default:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
}
