/*package particle defines the body records owned by the host
simulation and the narrow store contract the collision core consumes.

The collision core never deletes a body itself: it mutates the heavier
body of a colliding pair in place, appends freshly created fragments,
and tells the caller through a disposition code which of the two
original bodies to discard.
*/
package particle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/phil-mansfield/impact/geom"
)

// A Body is a single spherical particle.
type Body struct {
	// ID is unique within a run.
	ID uint32
	// M and R are the mass and radius of the body. R is always
	// re-derived from M and a density when M changes; it is never set
	// independently after formation.
	M, R float64
	// X and V are the position and velocity of the body.
	X, V mgl64.Vec3
	// LastCollision is the simulation time of the last collision this
	// body participated in.
	LastCollision float64
}

// Density returns the bulk density of the body.
func (b *Body) Density() float64 {
	return geom.Density(b.M, b.R)
}

// SetMass sets the mass of the body and re-derives its radius at the
// bulk density rho.
func (b *Body) SetMass(m, rho float64) {
	b.M = m
	b.R = geom.SphereRadius(m, rho)
}

// Store is the contract a particle store must satisfy for collisions
// to be resolved against it. The host simulation owns all bodies for
// their full lifetime; pointers returned by At, ByID, and Append stay
// valid until the host removes the body.
type Store interface {
	// Len returns the number of bodies in the store.
	Len() int
	// At returns the body in slot i.
	At(i int) *Body
	// ByID looks a body up by its identifier.
	ByID(id uint32) (*Body, bool)
	// Append adds a new body to the store and returns a reference
	// to the stored copy.
	Append(b Body) *Body
}

// Slice is an in-memory Store. It is what the demo driver and the
// tests run against.
type Slice struct {
	bodies []*Body
	index  map[uint32]*Body
}

// NewSlice creates an empty Slice store.
func NewSlice() *Slice {
	return &Slice{index: map[uint32]*Body{}}
}

// Len returns the number of bodies in the store.
func (s *Slice) Len() int { return len(s.bodies) }

// At returns the body in slot i.
func (s *Slice) At(i int) *Body { return s.bodies[i] }

// ByID looks a body up by its identifier.
func (s *Slice) ByID(id uint32) (*Body, bool) {
	b, ok := s.index[id]
	return b, ok
}

// Append adds a body to the store and returns a reference to the
// stored copy.
func (s *Slice) Append(b Body) *Body {
	p := &b
	s.bodies = append(s.bodies, p)
	s.index[b.ID] = p
	return p
}

// Remove deletes the body in slot i. Slots after i shift down by one.
func (s *Slice) Remove(i int) {
	delete(s.index, s.bodies[i].ID)
	s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
}

// TotalMass returns the summed mass of every body in the store.
func (s *Slice) TotalMass() float64 {
	sum := 0.0
	for _, b := range s.bodies {
		sum += b.M
	}
	return sum
}

// Box holds the periodic extents of the simulation domain on the two
// in-plane axes. The domain is centered on the origin. A zero width
// disables wrapping on that axis.
type Box struct {
	XWidth, YWidth float64
}

// Wrap folds a position into the periodic domain.
func (box *Box) Wrap(x *mgl64.Vec3) {
	if box.XWidth > 0 {
		x[0] = wrap(x[0], box.XWidth)
	}
	if box.YWidth > 0 {
		x[1] = wrap(x[1], box.YWidth)
	}
}

func wrap(x, w float64) float64 {
	x = math.Mod(x+w/2, w)
	if x < 0 {
		x += w
	}
	return x - w/2
}
