package disk

import (
	"fmt"

	"github.com/phil-mansfield/impact/collision"
	"github.com/phil-mansfield/impact/particle"
)

// A Driver advances a patch of bodies kinematically and hands every
// overlapping pair to a collision resolver. It does no gravity and no
// shear forcing: it exists to exercise a resolver end to end and to
// stand in for the host integrator in small runs.
type Driver struct {
	Store    *particle.Slice
	Resolver *collision.Resolver
	// Box, when non-nil, wraps drifted positions and makes the
	// overlap test use the nearest periodic image.
	Box *particle.Box
	DT  float64

	// Heartbeat, when non-nil, runs after every step.
	Heartbeat func(d *Driver) error

	Time  float64
	Steps int
}

// NewDriver wires a store and a resolver together under a fixed time
// step.
func NewDriver(
	store *particle.Slice, res *collision.Resolver, dt float64,
) (*Driver, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("time step %g is not positive", dt)
	}
	return &Driver{Store: store, Resolver: res, DT: dt}, nil
}

// Step advances every body by one time step and resolves all
// overlapping pairs at the new time.
func (d *Driver) Step() error {
	d.Time += d.DT
	d.Steps++

	for i := 0; i < d.Store.Len(); i++ {
		b := d.Store.At(i)
		b.X = b.X.Add(b.V.Mul(d.DT))
		if d.Box != nil {
			d.Box.Wrap(&b.X)
		}
	}

	if err := d.sweep(); err != nil {
		return err
	}

	if d.Heartbeat != nil {
		return d.Heartbeat(d)
	}
	return nil
}

// Run steps until the clock reaches tMax.
func (d *Driver) Run(tMax float64) error {
	for d.Time < tMax {
		if err := d.Step(); err != nil {
			return err
		}
	}
	return nil
}

// sweep tests every pair for overlap and resolves the hits. Removing
// a body shifts the slots after it, so the sweep restarts from the
// top whenever a resolution discards one. Bodies that already
// collided at this time are skipped by the resolver itself, so the
// restart cannot loop forever.
func (d *Driver) sweep() error {
	for i := 0; i < d.Store.Len(); i++ {
		for j := i + 1; j < d.Store.Len(); j++ {
			if !d.overlap(d.Store.At(i), d.Store.At(j)) {
				continue
			}

			ev := collision.Event{P1: i, P2: j, Time: d.Time}
			disp, err := d.Resolver.Resolve(d.Store, ev)
			if err != nil {
				return err
			}

			switch disp {
			case collision.DispositionFirst:
				d.Store.Remove(i)
				i, j = -1, d.Store.Len()
			case collision.DispositionSecond:
				d.Store.Remove(j)
				i, j = -1, d.Store.Len()
			}
		}
	}
	return nil
}

func (d *Driver) overlap(a, b *particle.Body) bool {
	dx := a.X.Sub(b.X)
	if d.Box != nil {
		d.Box.Wrap(&dx)
	}
	rTot := a.R + b.R
	return dx.Dot(dx) < rTot*rTot
}
