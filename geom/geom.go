/*package geom contains small geometric routines shared by the collision
core: sphere mass/radius/density conversions and the orthonormal frame
used to place fragments in the collision plane.
*/
package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphereVolume returns the volume of a sphere of radius r.
func SphereVolume(r float64) float64 {
	return 4.0 / 3.0 * math.Pi * r * r * r
}

// SphereRadius returns the radius of a sphere with mass m and bulk
// density rho, (3m / 4 pi rho)^(1/3).
func SphereRadius(m, rho float64) float64 {
	return math.Cbrt(3 * m / (4 * math.Pi * rho))
}

// Density returns the bulk density of a sphere with mass m and
// radius r.
func Density(m, r float64) float64 {
	return m / SphereVolume(r)
}

// Basis is a right-handed orthonormal frame anchored to a collision.
// U points along the pre-collision relative velocity, W is normal to
// the collision plane, and V completes the frame inside the plane.
type Basis struct {
	U, V, W mgl64.Vec3
}

// CollisionBasis constructs the collision-plane frame from the
// relative velocity and relative position of a colliding pair. It
// fails if the two vectors are parallel or either is zero, since the
// plane is undefined in that case.
func CollisionBasis(vrel, xrel mgl64.Vec3) (Basis, error) {
	vmag := vrel.Len()
	if vmag == 0 {
		return Basis{}, fmt.Errorf("zero relative velocity")
	}
	u := vrel.Mul(1 / vmag)

	w := vrel.Cross(xrel)
	wmag := w.Len()
	if wmag == 0 {
		return Basis{}, fmt.Errorf(
			"relative velocity and separation are parallel",
		)
	}
	w = w.Mul(1 / wmag)

	v := w.Cross(vrel)
	v = v.Mul(1 / v.Len())

	return Basis{U: u, V: v, W: w}, nil
}
