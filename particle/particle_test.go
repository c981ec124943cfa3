package particle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/impact/geom"
)

func TestSliceAppendAndLookup(t *testing.T) {
	s := NewSlice()
	p1 := s.Append(Body{ID: 7, M: 1, R: 1})
	p2 := s.Append(Body{ID: 12, M: 2, R: 1})

	assert.Equal(t, 2, s.Len())
	assert.Same(t, p1, s.At(0), "At returns the stored copy")

	got, ok := s.ByID(12)
	assert.True(t, ok)
	assert.Same(t, p2, got, "ByID returns the stored copy")

	_, ok = s.ByID(99)
	assert.False(t, ok, "unknown ID")

	// References stay valid across growth.
	for i := 0; i < 100; i++ {
		s.Append(Body{ID: uint32(100 + i)})
	}
	got, ok = s.ByID(7)
	assert.True(t, ok)
	assert.Same(t, p1, got, "reference stable after growth")
}

func TestSliceRemove(t *testing.T) {
	s := NewSlice()
	s.Append(Body{ID: 1, M: 1})
	s.Append(Body{ID: 2, M: 2})
	s.Append(Body{ID: 3, M: 4})

	s.Remove(1)
	assert.Equal(t, 2, s.Len())
	_, ok := s.ByID(2)
	assert.False(t, ok, "removed from index")
	assert.Equal(t, uint32(3), s.At(1).ID, "slots shift down")
	assert.Equal(t, 5.0, s.TotalMass())
}

func TestSetMassRederivesRadius(t *testing.T) {
	b := Body{ID: 1}
	b.SetMass(2, 1)
	assert.InDelta(t, geom.SphereRadius(2, 1), b.R, 1e-14)
	assert.InDelta(t, 1, b.Density(), 1e-14)
}

func TestBoxWrap(t *testing.T) {
	box := Box{XWidth: 10, YWidth: 4}

	x := mgl64.Vec3{7, -3, 100}
	box.Wrap(&x)
	assert.InDelta(t, -3, x[0], 1e-14, "x folds down")
	assert.InDelta(t, 1, x[1], 1e-14, "y folds up")
	assert.Equal(t, 100.0, x[2], "z never wraps")

	// Zero widths disable wrapping.
	open := Box{}
	y := mgl64.Vec3{1e6, -1e6, 0}
	open.Wrap(&y)
	assert.Equal(t, mgl64.Vec3{1e6, -1e6, 0}, y)
}
