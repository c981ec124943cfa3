package collision

import (
	"github.com/phil-mansfield/impact/particle"
)

// merge folds the projectile into the target, conserving mass and
// linear momentum. The combined radius is computed at the target's
// own pre-collision density rather than the configured bulk density,
// so different regions of a simulation may carry different effective
// densities. The caller discards the projectile afterwards.
func merge(targ, proj *particle.Body, now float64) {
	invMass := 1 / (targ.M + proj.M)
	targRho := targ.Density()

	targ.V = targ.V.Mul(targ.M).Add(proj.V.Mul(proj.M)).Mul(invMass)
	targ.X = targ.X.Mul(targ.M).Add(proj.X.Mul(proj.M)).Mul(invMass)

	targ.SetMass(targ.M+proj.M, targRho)
	targ.LastCollision = now
}
