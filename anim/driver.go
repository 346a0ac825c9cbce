package anim

import "errors"

// ErrFinished is returned by Advance once the run is over.
var ErrFinished = errors.New("anim: finished")

// Driver owns the clock of a run and the scene evaluated against it.
type Driver struct {
	Clock Clock
	Scene Scene
	// CenterZ is the distance of the view center the scene is placed around.
	CenterZ float32

	stopped bool
}

// NewDriver starts a run at frame 0.
func NewDriver(max int, hold bool, centerZ float32, s Scene) *Driver {
	return &Driver{Clock: Clock{Max: max, Hold: hold}, Scene: s, CenterZ: centerZ}
}

// Placements returns the instances of the current frame.
func (d *Driver) Placements() []Placed { return d.Scene.Place(d.Clock, d.CenterZ) }

// Stop ends the run after the current frame, as a key press does.
func (d *Driver) Stop() { d.stopped = true }

// Done reports whether the run is over.
func (d *Driver) Done() bool { return d.stopped || !d.Clock.Running() }

// Advance moves to the next frame. It returns ErrFinished when no further
// frame should be drawn.
func (d *Driver) Advance() error {
	if d.stopped {
		return ErrFinished
	}
	d.Clock.Tick()
	if !d.Clock.Running() {
		return ErrFinished
	}
	return nil
}
