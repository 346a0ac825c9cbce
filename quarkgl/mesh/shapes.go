package mesh

func v2(x, y float32, r, g, b uint8) Vertex { return Vertex{X: x, Y: y, R: r, G: g, B: b} }

func v3(x, y, z float32, r, g, b uint8) Vertex { return Vertex{X: x, Y: y, Z: z, R: r, G: g, B: b} }

// Triangle is the uncolored full-viewport triangle.
func Triangle() Shape {
	return Shape{
		Name: "triangle",
		Vertices: []Vertex{
			v2(0, 1, 0xFF, 0xFF, 0xFF),
			v2(1, -1, 0xFF, 0xFF, 0xFF),
			v2(-1, -1, 0xFF, 0xFF, 0xFF),
		},
	}
}

// Square is a unit square written out as two triangles.
func Square() Shape {
	return Shape{
		Name: "square",
		Vertices: []Vertex{
			v2(-0.5, 0.5, 255, 0, 0),
			v2(0.5, 0.5, 0, 255, 0),
			v2(0.5, -0.5, 0, 0, 255),
			v2(0.5, -0.5, 0, 0, 255),
			v2(-0.5, -0.5, 255, 255, 255),
			v2(-0.5, 0.5, 255, 0, 0),
		},
	}
}

// SquareIndexed is Square sharing its corners through an index list.
func SquareIndexed() Shape {
	return Shape{
		Name: "square-indexed",
		Vertices: []Vertex{
			v2(-0.5, 0.5, 255, 0, 0),
			v2(0.5, 0.5, 0, 255, 0),
			v2(0.5, -0.5, 0, 0, 255),
			v2(-0.5, -0.5, 255, 255, 255),
		},
		Indices: []uint16{0, 1, 2, 2, 3, 0},
	}
}

// Pentagon is a pentagon fan written out as three triangles.
func Pentagon() Shape {
	return Shape{
		Name: "pentagon",
		Vertices: []Vertex{
			v2(0, .5, 255, 0, 0),
			v2(.47, .15, 0, 255, 0),
			v2(.29, -.4, 0, 0, 255),
			v2(.29, -.4, 0, 0, 255),
			v2(-.29, -.4, 255, 255, 255),
			v2(0, .5, 255, 0, 0),
			v2(0, .5, 255, 0, 0),
			v2(-.29, -.4, 255, 255, 255),
			v2(-.47, .15, 255, 255, 0),
		},
	}
}

// PentagonIndexed is Pentagon sharing its corners through an index list.
func PentagonIndexed() Shape {
	return Shape{
		Name: "pentagon-indexed",
		Vertices: []Vertex{
			v2(0, .5, 255, 0, 0),
			v2(.47, .15, 0, 255, 0),
			v2(.29, -.4, 0, 0, 255),
			v2(-.29, -.4, 255, 255, 255),
			v2(-.47, .15, 255, 255, 0),
		},
		Indices: []uint16{0, 1, 2, 2, 3, 0, 0, 3, 4},
	}
}

func pyramidVertices() []Vertex {
	return []Vertex{
		// bottom
		v3(0, 0, .5, 255, 0, 0),
		v3(0.433, 0, -.25, 255, 0, 0),
		v3(-0.433, 0, -.25, 255, 0, 0),
		// side 1
		v3(-0.433, 0, -.25, 0, 0, 255),
		v3(0.433, 0, -.25, 0, 0, 255),
		v3(0, 0.75, 0, 0, 0, 255),
		// side 2
		v3(-0.433, 0, -.25, 255, 255, 0),
		v3(0, 0, .5, 255, 255, 0),
		v3(0, 0.75, 0, 255, 255, 0),
		// side 3
		v3(0, 0, .5, 0, 255, 0),
		v3(0.433, 0, -.25, 0, 255, 0),
		v3(0, 0.75, 0, 0, 255, 0),
	}
}

// Pyramid is a tetrahedron with one flat color per face, 12 vertices.
func Pyramid() Shape {
	return Shape{Name: "pyramid", Vertices: pyramidVertices()}
}

// PyramidIndexed is Pyramid drawn through the identity index list 0..11.
func PyramidIndexed() Shape {
	vs := pyramidVertices()
	idx := make([]uint16, len(vs))
	for i := range idx {
		idx[i] = uint16(i)
	}
	return Shape{Name: "pyramid-indexed", Vertices: vs, Indices: idx}
}

// ShadedPyramid is Pyramid with a per-vertex gradient on the first side.
func ShadedPyramid() Shape {
	vs := pyramidVertices()
	vs[4].R, vs[4].G, vs[4].B = 0, 255, 255
	vs[5].R, vs[5].G, vs[5].B = 255, 0, 255
	return Shape{Name: "shaded-pyramid", Vertices: vs}
}

// TexturedPyramid is ShadedPyramid with texture coordinates. The third side
// repeats the texture across its face.
func TexturedPyramid() Shape {
	vs := []Vertex{
		{X: 0, Y: 0, Z: .5, R: 255, U: 0, V: 0},
		{X: 0.433, Y: 0, Z: -.25, R: 255, U: 0, V: 1},
		{X: -0.433, Y: 0, Z: -.25, R: 255, U: 1, V: 1},

		{X: -0.433, Y: 0, Z: -.25, B: 255, U: 0, V: 0},
		{X: 0.433, Y: 0, Z: -.25, G: 255, B: 255, U: 1, V: 0},
		{X: 0, Y: 0.75, Z: 0, R: 255, B: 255, U: 1, V: 1},

		{X: -0.433, Y: 0, Z: -.25, R: 255, G: 255, U: 0, V: 0},
		{X: 0, Y: 0, Z: .5, R: 255, G: 255, U: 0, V: 1},
		{X: 0, Y: 0.75, Z: 0, R: 255, G: 255, U: 1, V: 1},

		{X: 0, Y: 0, Z: .5, G: 255, U: 4, V: 4},
		{X: 0, Y: 0.75, Z: 0, G: 255, U: 2, V: 0},
		{X: 0.433, Y: 0, Z: -.25, G: 255, U: 0, V: 4},
	}
	return Shape{Name: "textured-pyramid", Vertices: vs}
}

// Builtin returns a built-in shape by name.
func Builtin(name string) (Shape, bool) {
	switch name {
	case "triangle":
		return Triangle(), true
	case "square":
		return Square(), true
	case "square-indexed":
		return SquareIndexed(), true
	case "pentagon":
		return Pentagon(), true
	case "pentagon-indexed":
		return PentagonIndexed(), true
	case "pyramid":
		return Pyramid(), true
	case "pyramid-indexed":
		return PyramidIndexed(), true
	case "shaded-pyramid":
		return ShadedPyramid(), true
	case "textured-pyramid":
		return TexturedPyramid(), true
	}
	return Shape{}, false
}
