// Package xform builds the matrices that take a shape instance from object
// space to clip space.
//
// All matrices are column-major mgl32.Mat4 values (m[col*4+row]), the layout
// OpenGL expects for LoadMatrix and UniformMatrix4fv.
package xform

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionKind selects how a Projection maps view space to clip space.
type ProjectionKind uint8

const (
	Identity ProjectionKind = iota
	Ortho
	Frustum
)

func (k ProjectionKind) String() string {
	switch k {
	case Ortho:
		return "ortho"
	case Frustum:
		return "frustum"
	default:
		return "identity"
	}
}

// Projection is a fixed view volume.
type Projection struct {
	Kind ProjectionKind

	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

var ErrBadProjection = errors.New("xform: invalid projection")

// FrustumOf returns a perspective view volume.
func FrustumOf(left, right, bottom, top, near, far float32) Projection {
	return Projection{Kind: Frustum, Left: left, Right: right, Bottom: bottom, Top: top, Near: near, Far: far}
}

// OrthoOf returns an orthographic view volume.
func OrthoOf(left, right, bottom, top, near, far float32) Projection {
	return Projection{Kind: Ortho, Left: left, Right: right, Bottom: bottom, Top: top, Near: near, Far: far}
}

// AspectFrustum returns the frustum used by the animated demos: the viewport
// aspect ratio horizontally, [-1,1] vertically, and a depth range of
// depthOfField centered centerZ units in front of the camera.
func AspectFrustum(width, height int, centerZ, depthOfField float32) Projection {
	ratio := aspect(width, height)
	return FrustumOf(-ratio, ratio, -1, 1, centerZ-depthOfField/2, centerZ+depthOfField/2)
}

// AspectOrtho returns the aspect-corrected [-ratio,ratio]x[-1,1]x[-1,1] box.
func AspectOrtho(width, height int) Projection {
	ratio := aspect(width, height)
	return OrthoOf(-ratio, ratio, -1, 1, -1, 1)
}

func aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Validate reports whether the projection is well defined. A frustum needs
// 0 < near < far; both kinds need non-empty extents.
func (p Projection) Validate() error {
	switch p.Kind {
	case Identity:
		return nil
	case Ortho, Frustum:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrBadProjection, p.Kind)
	}
	if p.Right == p.Left || p.Top == p.Bottom {
		return fmt.Errorf("%w: empty extent", ErrBadProjection)
	}
	if p.Kind == Frustum {
		if p.Near <= 0 || p.Far <= 0 {
			return fmt.Errorf("%w: near %v and far %v must be positive", ErrBadProjection, p.Near, p.Far)
		}
		if p.Near >= p.Far {
			return fmt.Errorf("%w: near %v must be less than far %v", ErrBadProjection, p.Near, p.Far)
		}
	} else if p.Near == p.Far {
		return fmt.Errorf("%w: empty depth range", ErrBadProjection)
	}
	return nil
}

// Matrix returns the projection matrix. Call Validate first; an invalid
// frustum yields an undefined matrix.
func (p Projection) Matrix() mgl32.Mat4 {
	switch p.Kind {
	case Frustum:
		return mgl32.Frustum(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	case Ortho:
		return mgl32.Ortho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	default:
		return mgl32.Ident4()
	}
}

// Placement positions one shape instance for one frame.
type Placement struct {
	X, Y, Z float32
	RotYDeg float32
	Scale   float32
}

// At returns a placement with unit scale and no rotation.
func At(x, y, z float32) Placement { return Placement{X: x, Y: y, Z: z, Scale: 1} }

// ModelView returns Translate(x,y,z) * RotateY(deg) * Scale(s,s,s).
//
// Scale is applied first in object space, then the rotation about Y, then the
// translation. A zero scale collapses the shape to a point.
func ModelView(p Placement) mgl32.Mat4 {
	t := mgl32.Translate3D(p.X, p.Y, p.Z)
	r := mgl32.HomogRotate3DY(mgl32.DegToRad(p.RotYDeg))
	s := mgl32.Scale3D(p.Scale, p.Scale, p.Scale)
	return t.Mul4(r).Mul4(s)
}

// MVP returns proj * ModelView(p).
func MVP(proj mgl32.Mat4, p Placement) mgl32.Mat4 {
	return proj.Mul4(ModelView(p))
}

// Apply transforms an object-space point into clip space.
func Apply(m mgl32.Mat4, x, y, z float32) mgl32.Vec4 {
	return m.Mul4x1(mgl32.Vec4{x, y, z, 1})
}
