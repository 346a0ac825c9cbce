package quarkgl

import (
	"image"
	"image/color"
)

// ImageTarget renders into an *image.RGBA. Alpha is always written opaque.
type ImageTarget struct {
	Img *image.RGBA
}

// NewImageTarget allocates a w x h target.
func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	pix := t.Img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = 0xFF
	}
}

func (t *ImageTarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	b := t.Img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !p.In(b) {
		return
	}
	t.Img.SetRGBA(p.X, p.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
}

// At reads a pixel back.
func (t *ImageTarget) At(x, y int) Color {
	if t == nil || t.Img == nil {
		return Color{}
	}
	b := t.Img.Bounds()
	return FromRGBA(t.Img.RGBAAt(b.Min.X+x, b.Min.Y+y))
}
