package mesh

import (
	"errors"
	"testing"
	"unsafe"
)

func TestVertexLayoutMatchesStruct(t *testing.T) {
	if err := VertexLayout.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if VertexLayout.Stride != unsafe.Sizeof(Vertex{}) {
		t.Fatalf("Stride = %d, want %d", VertexLayout.Stride, unsafe.Sizeof(Vertex{}))
	}

	want := map[string]uintptr{
		AttribPosition: unsafe.Offsetof(Vertex{}.X),
		AttribColor:    unsafe.Offsetof(Vertex{}.R),
		AttribTexCoord: unsafe.Offsetof(Vertex{}.U),
	}
	for name, off := range want {
		a, ok := VertexLayout.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) ok = false, want true", name)
		}
		if a.Offset != off {
			t.Fatalf("Lookup(%q).Offset = %d, want %d", name, a.Offset, off)
		}
	}
}

func TestLayoutValidateRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name string
		l    Layout
		want error
	}{
		{"zero stride", Layout{}, ErrBadStride},
		{"overflow", Layout{Stride: 8, Attribs: []Attrib{
			{Name: "p", Components: 3, Type: AttribFloat32},
		}}, ErrOverflow},
		{"overlap", Layout{Stride: 24, Attribs: []Attrib{
			{Name: "p", Components: 3, Type: AttribFloat32},
			{Name: "c", Components: 3, Type: AttribUint8, Offset: 8},
		}}, ErrOverlap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.l.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuiltinShapesValid(t *testing.T) {
	for _, name := range []string{
		"triangle", "square", "square-indexed", "pentagon", "pentagon-indexed",
		"pyramid", "pyramid-indexed", "shaded-pyramid", "textured-pyramid",
	} {
		s, ok := Builtin(name)
		if !ok {
			t.Fatalf("Builtin(%q) ok = false, want true", name)
		}
		if err := s.Validate(); err != nil {
			t.Fatalf("Builtin(%q).Validate() = %v", name, err)
		}
	}
	if _, ok := Builtin("cube"); ok {
		t.Fatalf("Builtin(cube) ok = true, want false")
	}
}

func TestIndexedPyramidExpandsToFlatPyramid(t *testing.T) {
	flat := Pyramid()
	idx := PyramidIndexed()

	if !idx.Indexed() || flat.Indexed() {
		t.Fatalf("Indexed() = %v/%v, want true/false", idx.Indexed(), flat.Indexed())
	}
	if idx.Count() != 12 || flat.Count() != 12 {
		t.Fatalf("Count() = %d/%d, want 12/12", idx.Count(), flat.Count())
	}
	if idx.Triangles() != 4 {
		t.Fatalf("Triangles() = %d, want 4", idx.Triangles())
	}

	a, b := idx.Expand(), flat.Expand()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expand()[%d] = %+v, want %+v", i, a[i], b[i])
		}
	}
}

func TestIndexedSquareMatchesFlatSquare(t *testing.T) {
	a, b := SquareIndexed().Expand(), Square().Expand()
	if len(a) != len(b) {
		t.Fatalf("len = %d, want %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y {
			t.Fatalf("vertex %d = (%v,%v), want (%v,%v)", i, a[i].X, a[i].Y, b[i].X, b[i].Y)
		}
	}
}

func TestValidateRejectsOutOfRangeIndex(t *testing.T) {
	s := SquareIndexed()
	s.Indices = []uint16{0, 1, 9}
	if err := s.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want error")
	}
	s.Indices = []uint16{0, 1}
	if err := s.Validate(); err == nil {
		t.Fatalf("Validate() = nil for 2 indices, want error")
	}
	if err := (Shape{Name: "x"}).Validate(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Validate() = %v, want ErrEmpty", err)
	}
}

func TestBytesAliasesVertices(t *testing.T) {
	vs := Pyramid().Vertices
	b := Bytes(vs)
	if len(b) != len(vs)*int(VertexLayout.Stride) {
		t.Fatalf("len(Bytes()) = %d, want %d", len(b), len(vs)*int(VertexLayout.Stride))
	}
	off := int(VertexLayout.Stride) + int(unsafe.Offsetof(Vertex{}.R))
	if b[off] != vs[1].R {
		t.Fatalf("Bytes()[%d] = %d, want %d", off, b[off], vs[1].R)
	}
	if Bytes(nil) != nil {
		t.Fatalf("Bytes(nil) != nil")
	}
}
