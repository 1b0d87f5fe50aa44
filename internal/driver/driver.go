// Package driver runs the per-frame pipeline: poll input, tick the clock,
// clear, advance the rotation, project and plot the lattice, present.
package driver

import (
	"log"

	"pointcube/internal/camera"
	"pointcube/internal/host"
	"pointcube/internal/lattice"
	"pointcube/internal/projector"
	"pointcube/internal/rotation"
)

// State of the render loop. Stopped is terminal.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Ticker paces frames and returns the seconds since the previous one.
type Ticker interface {
	Tick() float32
}

// Config is everything the driver owns for its lifetime.
type Config struct {
	Surface   host.Surface
	Events    host.EventSource
	Clock     Ticker
	Camera    *camera.Camera
	Lattice   lattice.Lattice
	Rotation  *rotation.State
	Projector *projector.Projector
}

// Driver composes the frame pipeline. It is not safe for concurrent use.
type Driver struct {
	cfg   Config
	state State
}

// New returns a Running driver.
func New(cfg Config) *Driver {
	if cfg.Projector == nil {
		cfg.Projector = projector.New(1)
	}
	return &Driver{cfg: cfg, state: Running}
}

// State returns the current loop state.
func (d *Driver) State() State { return d.state }

// Run renders frames until a quit or escape event arrives, then destroys
// the surface.
func (d *Driver) Run() {
	defer d.teardown()
	for d.Step() == Running {
	}
}

// Step renders one frame. A stop event in the pending batch ends the loop
// before anything is drawn.
func (d *Driver) Step() State {
	if d.state == Stopped {
		return Stopped
	}
	for _, ev := range d.cfg.Events.PollEvents() {
		if ev.Stops() {
			d.state = Stopped
		}
	}
	if d.state == Stopped {
		return Stopped
	}

	c := &d.cfg
	dt := c.Clock.Tick()
	c.Surface.Clear(host.Background)
	ts := c.Rotation.Advance(dt)
	for _, p := range c.Projector.ProjectAll(c.Lattice, ts.Model(), c.Camera) {
		c.Surface.PlotPoint(p.X, p.Y, host.Foreground)
	}
	c.Surface.Present()
	return Running
}

func (d *Driver) teardown() {
	d.state = Stopped
	d.cfg.Surface.Destroy()
	log.Println("terminating")
}
