// Package anim advances the demo frame counter and derives per-frame shape
// placements from it.
package anim

// Clock is the explicit frame counter of a run.
//
// Frame starts at 0 and Tick increments it up to Max. A clock with Hold set
// keeps running at Max with a frozen scene; otherwise reaching Max ends the
// run. Max <= 0 means unbounded.
type Clock struct {
	Frame int
	Max   int
	Hold  bool
}

// Tick advances the frame, saturating at Max.
func (c *Clock) Tick() {
	if c.Max > 0 && c.Frame >= c.Max {
		c.Frame = c.Max
		return
	}
	c.Frame++
}

// Running reports whether another frame should be drawn.
func (c Clock) Running() bool {
	return c.Hold || c.Max <= 0 || c.Frame < c.Max
}

// Angle is the orbit angle in radians: frame/30.
func (c Clock) Angle() float32 { return float32(c.Frame) / 30 }

// Depth is the approach offset: -frame/200.
func (c Clock) Depth() float32 { return -float32(c.Frame) / 200 }
