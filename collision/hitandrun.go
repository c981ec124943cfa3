package collision

import (
	"math"
)

// Empirical constants of the critical-velocity fit for grazing
// encounters, Chambers (2013) Eq. 9.
const (
	vCritC1 = 2.43
	vCritC2 = -0.0408
	vCritC3 = 1.86
	vCritC4 = 1.08
)

// classifyGrazing resolves the grazing regime: graze-and-merge,
// grazing partial erosion, elastic bounce, or a true hit-and-run in
// which the projectile survives as a second remnant. It recomputes
// the critical energy for the partially overlapping geometry and may
// set p.Mslr.
func (res *Resolver) classifyGrazing(p *Params) Outcome {
	// Interacting geometry of the partial overlap: projected area and
	// interaction length from Leinhardt & Stewart (2012) Eqs. 46 - 47,
	// then the interacting-fraction energies of Chambers (2013)
	// Eqs. 11 - 13.
	phi := 2 * math.Acos((p.L-p.ProjR)/p.ProjR)
	aInteract := p.ProjR * p.ProjR * (math.Pi - (phi-math.Sin(phi))/2)
	lInteract := 2 * math.Sqrt(p.TargetR*p.TargetR-
		(p.TargetR-p.L/2)*(p.TargetR-p.L/2))
	beta := aInteract * lInteract / p.TargetM

	rc1 := math.Cbrt(3 / (4 * math.Pi * p.Rho1) *
		(beta*p.TargetM + p.ProjM))
	q0 := 0.8 * p.CStar * math.Pi * p.Rho1 * res.G * rc1 * rc1
	gamma := beta * p.TargetM / p.ProjM
	qStar := (1 + gamma) * (1 + gamma) / 4 * gamma * q0

	mu := beta * p.TargetM * p.ProjM / (beta*p.TargetM + p.ProjM)
	q := 0.5 * mu * p.Vi * p.Vi / (beta*p.TargetM + p.ProjM)

	// Critical velocity as a function of mass asymmetry and the
	// impact-parameter-to-combined-radius ratio.
	zeta := (p.TargetM - p.ProjM) / (p.TargetM + p.ProjM)
	zeta *= zeta
	fac := math.Pow(1-p.B/(p.TargetR+p.ProjR), 2.5)
	vCrit := p.VEsc * (vCritC1*zeta*fac + vCritC2*zeta +
		vCritC3*fac + vCritC4)

	if p.Vi <= vCrit {
		return GrazeAndMerge
	}

	p.Mlr = math.Max(p.Mlr, res.MinFragmentMass)
	if p.Mlr < p.TargetM {
		// The target is eroded. Fragment only if the residual mass
		// can make at least one fragment.
		if p.TargetM+p.ProjM-p.Mlr <= res.MinFragmentMass {
			return ElasticBounce
		}
		return GrazingPartialErosion
	}

	// The target accretes part of the projectile. Decide whether the
	// projectile's remainder survives as a second remnant.
	mlrDag := (beta*p.TargetM + p.ProjM) / 10 *
		math.Pow(q/(res.EnergyKnee*qStar), -1.5)
	if q < res.EnergyKnee*qStar {
		mlrDag = (beta*p.TargetM + p.ProjM) * (1 - q/(2*qStar))
	}

	accreted := p.Mlr - p.TargetM
	newProjMass := p.ProjM - accreted
	mlrDag = math.Max(mlrDag, res.MinFragmentMass)

	if newProjMass-mlrDag < res.MinFragmentMass {
		return ElasticBounce
	}
	p.Mslr = mlrDag
	return HitAndRun
}
