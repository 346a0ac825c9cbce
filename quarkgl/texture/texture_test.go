package texture

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestMonochromeExpandsBits(t *testing.T) {
	img, err := Monochrome([]byte{0x80, 0x01}, 8, 2, color.RGBA{R: 10, G: 20, B: 30})
	if err != nil {
		t.Fatalf("Monochrome() error = %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 10, G: 20, B: 30, A: 0xFF}) {
		t.Fatalf("(0,0) = %v, want set color", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{}) {
		t.Fatalf("(1,0) = %v, want transparent", got)
	}
	if got := img.RGBAAt(7, 1); got.A != 0xFF {
		t.Fatalf("(7,1).A = %d, want 255", got.A)
	}
}

func TestMonochromeRejectsBadSize(t *testing.T) {
	if _, err := Monochrome([]byte{0}, 8, 2, color.RGBA{}); !errors.Is(err, ErrBadBitmap) {
		t.Fatalf("Monochrome() error = %v, want ErrBadBitmap", err)
	}
	if _, err := Monochrome([]byte{0}, 7, 1, color.RGBA{}); !errors.Is(err, ErrBadBitmap) {
		t.Fatalf("Monochrome(w=7) error = %v, want ErrBadBitmap", err)
	}
}

func TestSmiley(t *testing.T) {
	img := Smiley()
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("Smiley() bounds = %v, want 16x16", b)
	}
	// Row 2 is 0x07,0xE0: pixels 5..10 set.
	for x := 0; x < 16; x++ {
		got := img.RGBAAt(x, 2).A != 0
		want := x >= 5 && x <= 10
		if got != want {
			t.Fatalf("row 2 pixel %d set = %v, want %v", x, got, want)
		}
	}
	if c := img.RGBAAt(5, 2); c.R != 0xFF || c.G != 0 || c.B != 0 {
		t.Fatalf("smiley color = %v, want red", c)
	}
}

func TestSamplerWrap(t *testing.T) {
	img, err := Monochrome([]byte{0x80}, 8, 1, color.RGBA{G: 0xFF})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		s    Sampler
		u    float32
		set  bool
	}{
		{"repeat origin", Blocky, 0, true},
		{"repeat second texel", Blocky, 0.2, false},
		{"repeat wraps", Blocky, 4.01, true},
		{"repeat negative", Blocky, -0.99, true},
		{"clamp high", Sampler{Wrap: Clamp}, 4.01, false},
		{"clamp low", Sampler{Wrap: Clamp}, -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.s.Sample(img, tt.u, 0.5).A != 0
			if got != tt.set {
				t.Fatalf("Sample(%v) set = %v, want %v", tt.u, got, tt.set)
			}
		})
	}
	if c := Blocky.Sample(nil, 0, 0); c != (color.RGBA{}) {
		t.Fatalf("Sample(nil) = %v, want zero", c)
	}
}

func TestSamplerLinear(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 0, A: 0xFF})
	img.SetRGBA(1, 0, color.RGBA{R: 200, A: 0xFF})

	clamp := Sampler{Wrap: Clamp, Filter: Linear}
	tests := []struct {
		s    Sampler
		u    float32
		want uint8
	}{
		{clamp, 0.25, 0},
		{clamp, 0.5, 100},
		{clamp, 0.625, 150},
		{clamp, 0.75, 200},
		{clamp, 1, 200},
		// Repeat blends the last texel back into the first.
		{Sampler{Wrap: Repeat, Filter: Linear}, 1, 100},
		{Sampler{Wrap: Clamp, Filter: Nearest}, 0.5, 200},
	}
	for _, tt := range tests {
		if got := tt.s.Sample(img, tt.u, 0.5); got.R != tt.want || got.A != 0xFF {
			t.Fatalf("%v/%v Sample(%v) = %v, want R %d", tt.s.Wrap, tt.s.Filter, tt.u, got, tt.want)
		}
	}
}
