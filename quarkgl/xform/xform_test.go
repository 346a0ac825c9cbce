package xform

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrustumInvertible(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		near := 0.01 + rng.Float32()*10
		far := near + 0.01 + rng.Float32()*100
		w := 0.1 + rng.Float32()*4
		h := 0.1 + rng.Float32()*4
		p := FrustumOf(-w, w, -h, h, near, far)
		if err := p.Validate(); err != nil {
			t.Fatalf("Validate(%+v) = %v, want nil", p, err)
		}
		m := p.Matrix()
		if d := m.Det(); d == 0 || math.IsNaN(float64(d)) {
			t.Fatalf("Det(%+v) = %v, want non-zero", p, d)
		}
		if m.Inv() == (mgl32.Mat4{}) {
			t.Fatalf("Inv(%+v) = zero matrix", p)
		}
	}
}

func TestValidateRejectsBadFrustum(t *testing.T) {
	tests := []struct {
		name string
		p    Projection
	}{
		{"near zero", FrustumOf(-1, 1, -1, 1, 0, 10)},
		{"near negative", FrustumOf(-1, 1, -1, 1, -1, 10)},
		{"near equals far", FrustumOf(-1, 1, -1, 1, 5, 5)},
		{"near beyond far", FrustumOf(-1, 1, -1, 1, 8, 3)},
		{"empty width", FrustumOf(1, 1, -1, 1, 1, 3)},
		{"ortho empty depth", OrthoOf(-1, 1, -1, 1, 2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); !errors.Is(err, ErrBadProjection) {
				t.Fatalf("Validate() = %v, want ErrBadProjection", err)
			}
		})
	}
	if err := (Projection{}).Validate(); err != nil {
		t.Fatalf("identity Validate() = %v, want nil", err)
	}
}

func TestModelViewOriginIsTranslation(t *testing.T) {
	for _, p := range []Placement{At(0, 0, 0), At(1, 2, 3), At(-0.5, 0.25, -6)} {
		got := Apply(ModelView(p), 0, 0, 0)
		want := mgl32.Vec4{p.X, p.Y, p.Z, 1}
		if got != want {
			t.Fatalf("ModelView(%+v)*origin = %v, want %v", p, got, want)
		}
	}
}

func TestModelViewOrder(t *testing.T) {
	// Scale, then rotate 90 degrees about Y, then translate.
	p := Placement{X: 10, Y: 0, Z: 0, RotYDeg: 90, Scale: 2}
	got := Apply(ModelView(p), 1, 0, 0)
	want := mgl32.Vec4{10, 0, -2, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("ModelView(%+v)*(1,0,0) = %v, want %v", p, got, want)
	}
}

func TestRotationFullTurn(t *testing.T) {
	a := ModelView(Placement{X: 1, Y: 2, Z: 3, RotYDeg: 0, Scale: 1.5})
	b := ModelView(Placement{X: 1, Y: 2, Z: 3, RotYDeg: 360, Scale: 1.5})
	if !a.ApproxEqualThreshold(b, 1e-5) {
		t.Fatalf("rot 360 = %v, want %v", b, a)
	}
	if r := ModelView(Placement{Scale: 1}); r != mgl32.Ident4() {
		t.Fatalf("ModelView(rot 0, scale 1) = %v, want identity", r)
	}
}

func TestZeroScaleCollapses(t *testing.T) {
	m := ModelView(Placement{X: 1, Y: 1, Z: 1, RotYDeg: 45, Scale: 0})
	a := Apply(m, 0.4, 0.75, -0.25)
	b := Apply(m, -0.4, 0, 0.5)
	if !a.ApproxEqual(b) {
		t.Fatalf("scale 0 points differ: %v vs %v", a, b)
	}
}

func TestShapeInFrontOfCamera(t *testing.T) {
	proj := FrustumOf(-4.0/3, 4.0/3, -1, 1, 3.5, 8.5)
	if err := proj.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	clip := Apply(MVP(proj.Matrix(), Placement{X: 1, Y: 0, Z: -1, Scale: 1}), 0, 0, 0)
	if clip.W() <= 0 {
		t.Fatalf("clip W = %v, want > 0", clip.W())
	}
	if clip.W() != 1 {
		t.Fatalf("clip W = %v, want 1", clip.W())
	}

	// Centered in the depth of field the point lands inside the clip volume.
	clip = Apply(MVP(proj.Matrix(), Placement{X: 1, Y: 0, Z: -6, Scale: 1}), 0, 0, 0)
	for i, c := range []float32{clip.X(), clip.Y(), clip.Z()} {
		if c < -clip.W() || c > clip.W() {
			t.Fatalf("clip[%d] = %v outside +-%v", i, c, clip.W())
		}
	}
}

func TestAspectFrustum(t *testing.T) {
	p := AspectFrustum(640, 480, 6, 5)
	want := FrustumOf(-4.0/3, 4.0/3, -1, 1, 3.5, 8.5)
	if p != want {
		t.Fatalf("AspectFrustum() = %+v, want %+v", p, want)
	}
	if o := AspectOrtho(0, 0); o.Right != 1 {
		t.Fatalf("AspectOrtho(0,0).Right = %v, want 1", o.Right)
	}
}
