package anim

import (
	"math"

	"gldemo/quarkgl/xform"
)

// Orbit places one shape instance as a function of the clock.
//
//	x = CX + Radius*XSign*cos(angle+Phase)
//	y = CY + Radius*YSign*sin(angle+Phase)
//	z = Z - centerZ (+ clock depth when Approach is set)
//	rotY = Spin*frame degrees
//
// Z is relative to the view center, so moving the center moves the
// instances with the frustum. A zero sign counts as +1.
type Orbit struct {
	Shape    int     `yaml:"shape"`
	CX       float32 `yaml:"cx"`
	CY       float32 `yaml:"cy"`
	Radius   float32 `yaml:"radius"`
	XSign    float32 `yaml:"xsign"`
	YSign    float32 `yaml:"ysign"`
	Phase    float32 `yaml:"phase"`
	Z        float32 `yaml:"z"`
	Approach bool    `yaml:"approach"`
	Spin     float32 `yaml:"spin"`
	Scale    float32 `yaml:"scale"`
}

func sign(s float32) float32 {
	if s == 0 {
		return 1
	}
	return s
}

// At returns the placement for clock c around a view centered at -centerZ.
func (o Orbit) At(c Clock, centerZ float32) xform.Placement {
	a := float64(c.Angle() + o.Phase)
	p := xform.Placement{
		X:       o.CX + o.Radius*sign(o.XSign)*float32(math.Cos(a)),
		Y:       o.CY + o.Radius*sign(o.YSign)*float32(math.Sin(a)),
		Z:       o.Z - centerZ,
		RotYDeg: o.Spin * float32(c.Frame),
		Scale:   o.Scale,
	}
	if o.Approach {
		p.Z += c.Depth()
	}
	return p
}

// Placed is a placement of the shape at index Shape of a demo.
type Placed struct {
	Shape     int
	Placement xform.Placement
}

// Scene is an ordered list of instances; draw order follows the list.
type Scene []Orbit

// Place evaluates every instance at clock c around the view center.
func (s Scene) Place(c Clock, centerZ float32) []Placed {
	out := make([]Placed, len(s))
	for i, o := range s {
		out[i] = Placed{Shape: o.Shape, Placement: o.At(c, centerZ)}
	}
	return out
}

// Still returns an instance fixed at (x, y) with uniform scale.
func Still(shape int, x, y, scale float32) Orbit {
	return Orbit{Shape: shape, CX: x, CY: y, Scale: scale}
}

// Orbit2D is the flat scene: a fixed square, a square circling it and three
// pentagons mirrored around the center.
func Orbit2D(square, pentagon int) Scene {
	return Scene{
		Still(square, 0, 0, .5),
		{Shape: square, Radius: .5, Scale: .25},
		{Shape: pentagon, Radius: .5, XSign: -1, YSign: -1, Scale: .5},
		{Shape: pentagon, Radius: .5, XSign: -1, Scale: .5},
		{Shape: pentagon, Radius: .5, YSign: -1, Scale: .5},
	}
}

// Approach is three pentagons orbiting at radius .707 that start one unit
// in front of the view center and recede.
func Approach(pentagon int) Scene {
	const z = 1
	return Scene{
		{Shape: pentagon, Radius: .707, XSign: -1, YSign: -1, Z: z, Approach: true, Scale: .5},
		{Shape: pentagon, Radius: .707, XSign: -1, Z: z, Approach: true, Scale: .4},
		{Shape: pentagon, Radius: .707, YSign: -1, Z: z, Approach: true, Scale: .3},
	}
}

// Pyramids is three spinning pyramids 120 degrees apart on the unit circle,
// receding from the view center.
func Pyramids(pyramid int) Scene {
	const third = 2 * math.Pi / 3
	return Scene{
		{Shape: pyramid, Radius: 1, Approach: true, Spin: 3, Scale: 2},
		{Shape: pyramid, Radius: 1, Phase: third, Approach: true, Spin: 1, Scale: 1.5},
		{Shape: pyramid, Radius: 1, Phase: 2 * third, Approach: true, Spin: 10, Scale: 1.2},
	}
}
