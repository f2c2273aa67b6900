package anim

import "time"

// Driver advances every running animation once per frame.
type Driver struct {
	active     []Animator
	generation int
}

// NewDriver creates an empty driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Start starts a and keeps it updated until it ends. Starting an animation that is
// already running does nothing.
func (d *Driver) Start(a Animator) {
	if a.Running() {
		return
	}
	d.active = append(d.active, a)
	a.Start()
}

// Update advances all animations by dt and drops the ones that finished.
// Animations started from a listener during Update are first advanced on the next frame.
func (d *Driver) Update(dt time.Duration) {
	if len(d.active) == 0 {
		return
	}
	gen := d.generation
	current := append([]Animator(nil), d.active...)
	for _, a := range current {
		if a.Update(dt) {
			d.remove(a)
		}
		if d.generation != gen {
			return
		}
	}
}

func (d *Driver) remove(a Animator) {
	for i, x := range d.active {
		if x == a {
			d.active = append(d.active[:i], d.active[i+1:]...)
			return
		}
	}
}

// Len returns the number of animations in flight.
func (d *Driver) Len() int {
	return len(d.active)
}

// Shutdown ends every animation in flight where it stands, firing end listeners so
// hooks such as DisableDuring and particle cleanup still run.
func (d *Driver) Shutdown() {
	d.generation++
	active := d.active
	d.active = nil
	for _, a := range active {
		a.end()
	}
}
