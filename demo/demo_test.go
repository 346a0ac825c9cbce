package demo

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gldemo/anim"
	"gldemo/quarkgl/xform"
	"gldemo/render"
)

func TestCatalogValid(t *testing.T) {
	ids := IDs()
	want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "11", "12", "12.5", "13", "14", "15", "16"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("IDs() = %v, want %v", ids, want)
		}
		d, ok := Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%q) ok = false", id)
		}
		if err := d.Validate(); err != nil {
			t.Fatalf("Lookup(%q).Validate() = %v", id, err)
		}
		if _, err := d.MeshShapes(); err != nil {
			t.Fatalf("Lookup(%q).MeshShapes() = %v", id, err)
		}
		setup := render.Setup{Pipeline: d.Pipeline(), Program: d.Program}
		if d.Texture {
			continue
		}
		if err := setup.Validate(); err != nil {
			t.Fatalf("demo %s setup: %v", id, err)
		}
	}
	if _, ok := Lookup("10"); ok {
		t.Fatalf("Lookup(10) ok = true, want false")
	}
}

func TestDemoParameters(t *testing.T) {
	tests := []struct {
		id     string
		frames int
		hold   bool
		depth  bool
		view   xform.ProjectionKind
		count  int
	}{
		{"1", 120, false, false, xform.Identity, 1},
		{"3", 300, false, false, xform.Ortho, 2},
		{"7", 400, false, false, xform.Ortho, 5},
		{"8", 400, false, false, xform.Frustum, 3},
		{"9", 400, false, true, xform.Frustum, 3},
		{"14", 400, true, true, xform.Frustum, 3},
		{"16", 400, true, true, xform.Frustum, 1},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d, _ := Lookup(tt.id)
			if got := d.FrameLimit(60); got != tt.frames {
				t.Fatalf("FrameLimit(60) = %d, want %d", got, tt.frames)
			}
			if d.Hold != tt.hold || d.Depth != tt.depth || d.View.Kind != tt.view || len(d.Scene) != tt.count {
				t.Fatalf("demo = %+v", d)
			}
		})
	}
	d8, _ := Lookup("8")
	if p := d8.View.Projection(640, 480); p.Near != 1 || p.Far != 3 {
		t.Fatalf("demo 8 near/far = %v/%v, want 1/3", p.Near, p.Far)
	}
	d9, _ := Lookup("9")
	if p := d9.View.Projection(640, 480); p.Near != 4 || p.Far != 8 {
		t.Fatalf("demo 9 near/far = %v/%v, want 4/8", p.Near, p.Far)
	}
}

func TestWithPipeline(t *testing.T) {
	d, _ := Lookup("12")
	u, err := d.WithPipeline(render.Uniform)
	if err != nil || u.Program != render.UniformShader || u.Pipeline() != render.Uniform {
		t.Fatalf("WithPipeline(uniform) = %v, %v", u.Program, err)
	}
	d, _ = Lookup("14")
	l, err := d.WithPipeline(render.Legacy)
	if err != nil || l.Program != render.StackShader {
		t.Fatalf("WithPipeline(legacy) = %v, %v", l.Program, err)
	}
	d, _ = Lookup("16")
	if _, err := d.WithPipeline(render.Legacy); err == nil {
		t.Fatalf("textured WithPipeline(legacy) = nil error")
	}
}

func TestOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := []byte(`
frames: 50
hold: false
depth: false
clear: [10, 20, 30]
instances:
  - {shape: 0, radius: 1, z: 0, spin: 2, scale: 1}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	o, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides() = %v", err)
	}
	d, _ := Lookup("14")
	d, err = o.Apply(d)
	if err != nil {
		t.Fatalf("Apply() = %v", err)
	}
	if d.Frames != 50 || d.Hold || d.Depth || len(d.Scene) != 1 || d.Scene[0].Spin != 2 {
		t.Fatalf("Apply() = %+v", d)
	}
	if d.ClearColor.R != 10 || d.ClearColor.B != 30 || d.ClearColor.A != 0xFF {
		t.Fatalf("ClearColor = %v", d.ClearColor)
	}
}

func TestOverridesRejected(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colour: [1,2,3]"},
		{"bad clear", "clear: [1, 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOverrides([]byte(tt.yaml)); err == nil {
				t.Fatalf("ParseOverrides(%q) = nil error", tt.yaml)
			}
		})
	}

	d, _ := Lookup("9")
	two := 2
	if _, err := (Overrides{Frames: &two}).Apply(d); err != nil {
		t.Fatalf("Apply(frames) = %v", err)
	}
	o, err := ParseOverrides([]byte("instances: [{shape: 3, scale: 1}]"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.Apply(d); err == nil {
		t.Fatalf("Apply(shape 3) = nil error, want out of range")
	}
	zero := float32(0)
	o = Overrides{DepthOfField: &zero, CenterZ: &zero}
	if _, err := o.Apply(d); err == nil {
		t.Fatalf("Apply(center 0) = nil error, want bad projection")
	}
	if _, err := ParseOverrides(nil); err != nil {
		t.Fatalf("ParseOverrides(nil) = %v", err)
	}
}

func TestOverridesClearAlpha(t *testing.T) {
	o, err := ParseOverrides([]byte("clear: [1, 2, 3, 4]"))
	if err != nil {
		t.Fatal(err)
	}
	d, _ := Lookup("7")
	if d, err = o.Apply(d); err != nil {
		t.Fatalf("Apply() = %v", err)
	}
	if got, want := d.ClearColor, (color.RGBA{R: 1, G: 2, B: 3, A: 4}); got != want {
		t.Fatalf("ClearColor = %v, want %v", got, want)
	}
}

func TestCenterZOverrideMovesScene(t *testing.T) {
	for _, center := range []float32{4, 6, 10, 40} {
		c := center
		d, _ := Lookup("11")
		d, err := (Overrides{CenterZ: &c}).Apply(d)
		if err != nil {
			t.Fatalf("Apply(center_z %v) = %v", c, err)
		}
		proj := d.View.Projection(640, 480).Matrix()
		for _, frame := range []int{0, 200, 400} {
			for i, p := range d.Scene.Place(anim.Clock{Frame: frame}, d.View.CenterZ) {
				v := xform.Apply(xform.MVP(proj, p.Placement), 0, 0, 0)
				if v.W() <= 0 || v.Z() < -v.W() || v.Z() > v.W() {
					t.Fatalf("center_z %v frame %d instance %d: clip = %v, outside the view volume", c, frame, i, v)
				}
			}
		}
	}
}
