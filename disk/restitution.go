package disk

import (
	"math"

	"github.com/phil-mansfield/impact/collision"
	"github.com/phil-mansfield/impact/particle"
)

// A RestitutionFunc maps a normal impact speed to a coefficient of
// restitution in [0, 1].
type RestitutionFunc func(v float64) float64

// BridgesRestitution is the velocity-dependent ice-particle
// restitution law of Bridges et al. (1984) with speeds in m/s. Faster
// impacts are less elastic. The value is clamped to [0, 1].
func BridgesRestitution(v float64) float64 {
	eps := 0.32 * math.Pow(math.Abs(v)*100, -0.234)
	if eps > 1 {
		eps = 1
	}
	if eps < 0 {
		eps = 0
	}
	return eps
}

// HardSphereBounce builds a bounce operator from a restitution law.
// The impulse acts along the line of centers and only when the pair
// is approaching, so a resolver may call it on a pair that has
// already passed closest approach without re-colliding it.
func HardSphereBounce(eps RestitutionFunc) collision.BounceFunc {
	return func(targ, proj *particle.Body) {
		n := proj.X.Sub(targ.X)
		sep := n.Len()
		if sep == 0 {
			return
		}
		n = n.Mul(1 / sep)

		vn := proj.V.Sub(targ.V).Dot(n)
		if vn >= 0 {
			return
		}

		e := eps(math.Abs(vn))
		mu := targ.M * proj.M / (targ.M + proj.M)
		j := -(1 + e) * vn * mu
		proj.V = proj.V.Add(n.Mul(j / proj.M))
		targ.V = targ.V.Sub(n.Mul(j / targ.M))
	}
}
