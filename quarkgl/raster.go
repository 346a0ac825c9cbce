package quarkgl

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type vertexOut struct {
	clip mgl32.Vec4
	v    Varying
}

// DrawArrays draws count vertices starting at first as a triangle list.
func (c *Context) DrawArrays(first, count int) error {
	n, data, err := c.vertexCount()
	if err != nil {
		return err
	}
	if first < 0 || count < 0 || first+count > n {
		return fmt.Errorf("%w: vertices [%d,%d) of %d", ErrBadDraw, first, first+count, n)
	}
	out := c.shade(data, count, func(i int) int { return first + i })
	c.rasterize(out)
	return nil
}

// DrawElements draws count indices from the bound element buffer.
func (c *Context) DrawElements(count int) error {
	eb, err := c.buffer(c.element)
	if err != nil {
		return err
	}
	n, data, err := c.vertexCount()
	if err != nil {
		return err
	}
	if count < 0 || count > len(eb.indices) {
		return fmt.Errorf("%w: %d indices of %d", ErrBadDraw, count, len(eb.indices))
	}
	for _, idx := range eb.indices[:count] {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d of %d vertices", ErrBadDraw, idx, n)
		}
	}
	out := c.shade(data, count, func(i int) int { return int(eb.indices[i]) })
	c.rasterize(out)
	return nil
}

func (c *Context) env() *Env {
	return &Env{ModelViewProjection: c.ModelViewProjection(), p: c.program, c: c}
}

// shade runs the vertex stage over the submitted vertex sequence.
func (c *Context) shade(data []byte, count int, index func(int) int) []vertexOut {
	if cap(c.scratch) < count {
		c.scratch = make([]vertexOut, count)
	}
	out := c.scratch[:count]
	e := c.env()
	for i := range out {
		in := c.fetch(data, index(i))
		if c.program == nil || c.program.Vertex == nil {
			out[i] = vertexOut{clip: e.ModelViewProjection.Mul4x1(in.Position), v: Varying{Color: in.Color, TexCoord: in.TexCoord}}
			continue
		}
		clip, v := c.program.Vertex(e, in.Position, in.Color, in.TexCoord)
		out[i] = vertexOut{clip: clip, v: v}
	}
	return out
}

type screenVertex struct {
	x, y, z float32
	invW    float32
	v       Varying
}

// rasterize draws a triangle list. Triangles with a vertex at or behind the
// eye (w <= 0) are dropped; fragments outside the near and far planes are
// discarded per pixel.
func (c *Context) rasterize(vs []vertexOut) {
	if c.target == nil || c.w <= 0 || c.h <= 0 {
		return
	}
	e := c.env()
	for i := 0; i+2 < len(vs); i += 3 {
		var sv [3]screenVertex
		ok := true
		for k := 0; k < 3; k++ {
			p := vs[i+k].clip
			if p[3] <= 0 {
				ok = false
				break
			}
			inv := 1 / p[3]
			sv[k] = screenVertex{
				x:    (p[0]*inv*0.5 + 0.5) * float32(c.w),
				y:    (0.5 - p[1]*inv*0.5) * float32(c.h),
				z:    p[2] * inv,
				invW: inv,
				v:    vs[i+k].v,
			}
		}
		if !ok {
			continue
		}
		if c.Mode == RenderWireframe {
			col := ColorFromVec4(sv[0].v.Color.Vec4(1))
			c.drawLine(sv[0], sv[1], col)
			c.drawLine(sv[1], sv[2], col)
			c.drawLine(sv[2], sv[0], col)
			continue
		}
		c.fillTriangle(e, sv[0], sv[1], sv[2])
	}
}

func edgeFn(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

func (c *Context) fillTriangle(e *Env, a, b, d screenVertex) {
	area := edgeFn(a.x, a.y, b.x, b.y, d.x, d.y)
	if area == 0 {
		return
	}
	minX := clampInt(int(min(a.x, b.x, d.x)), 0, c.w-1)
	maxX := clampInt(int(max(a.x, b.x, d.x)), 0, c.w-1)
	minY := clampInt(int(min(a.y, b.y, d.y)), 0, c.h-1)
	maxY := clampInt(int(max(a.y, b.y, d.y)), 0, c.h-1)
	invArea := 1 / area

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edgeFn(b.x, b.y, d.x, d.y, px, py) * invArea
			w1 := edgeFn(d.x, d.y, a.x, a.y, px, py) * invArea
			w2 := edgeFn(a.x, a.y, b.x, b.y, px, py) * invArea
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.z + w1*b.z + w2*d.z
			if z < -1 || z > 1 {
				continue
			}
			if !c.depthPass(x, y, z) {
				continue
			}

			// Perspective-correct interpolation of the varyings.
			p0, p1, p2 := w0*a.invW, w1*b.invW, w2*d.invW
			norm := 1 / (p0 + p1 + p2)
			p0, p1, p2 = p0*norm, p1*norm, p2*norm
			v := Varying{
				Color:    a.v.Color.Mul(p0).Add(b.v.Color.Mul(p1)).Add(d.v.Color.Mul(p2)),
				TexCoord: a.v.TexCoord.Mul(p0).Add(b.v.TexCoord.Mul(p1)).Add(d.v.TexCoord.Mul(p2)),
			}

			var out mgl32.Vec4
			if c.program == nil || c.program.Fragment == nil {
				out = v.Color.Vec4(1)
			} else {
				out = c.program.Fragment(e, v)
			}
			c.target.SetPixel(x, y, ColorFromVec4(out))
		}
	}
}

// depthPass runs the less-than depth test at (x, y) and stores z on
// success. Window depth is z mapped from [-1,1] to [0,1].
func (c *Context) depthPass(x, y int, z float32) bool {
	if !c.depthTest {
		return true
	}
	idx := y*c.w + x
	if idx < 0 || idx >= len(c.depthBuf) {
		return false
	}
	d := z*0.5 + 0.5
	if d >= c.depthBuf[idx] {
		return false
	}
	c.depthBuf[idx] = d
	return true
}

func (c *Context) drawLine(a, b screenVertex, col Color) {
	x0, y0 := int(a.x), int(a.y)
	x1, y1 := int(b.x), int(b.y)
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.target.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
