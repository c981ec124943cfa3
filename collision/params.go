package collision

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/phil-mansfield/impact/particle"
)

// Params carries every quantity derived for a single encounter. It is
// built once per event and discarded after resolution.
type Params struct {
	// XRel and VRel are the relative position and velocity of the
	// pair, target minus projectile.
	XRel, VRel mgl64.Vec3
	// Sep is |XRel| at detection and VRelMag is |VRel|.
	Sep, VRelMag float64

	// B is the impact parameter and Vi the impact speed, corrected
	// for mutual gravitational focusing.
	B, Vi float64
	// L is the overlap length and Alpha the interacting mass
	// fraction of the projectile.
	L, Alpha float64
	// Mu is the reduced mass of the pair.
	Mu float64
	// Q is the specific impact energy and QStar the critical
	// disruption energy.
	Q, QStar float64
	// VEsc is the mutual escape velocity at contact.
	VEsc float64
	// Rho1 is the assumed constant bulk density and CStar the
	// disruption scaling constant, both copied from the config.
	Rho1, CStar float64

	// Mlr is the largest remnant mass, never below one minimum
	// fragment mass and never above the pair's total mass. Mslr is
	// the second largest remnant mass, zero unless the hit-and-run
	// sub-resolver sets it.
	Mlr, Mslr float64
	// Separation is the distance from the center of mass at which
	// new fragments are placed.
	Separation float64

	// TargetM, TargetR, ProjM, and ProjR are the pre-collision masses
	// and radii of the pair, and MTot their summed mass.
	TargetM, TargetR, ProjM, ProjR, MTot float64
	// Time is the simulation time of the event.
	Time float64

	// Outcome and NumFrags are filled in during resolution.
	Outcome  Outcome
	NumFrags int
}

// deriveParams computes the full physical context of an encounter
// from the two body records. The caller must pass the heavier body as
// targ. It fails if the impact parameter is not a real number, which
// indicates degenerate geometry (typically coincident centers).
func (res *Resolver) deriveParams(
	targ, proj *particle.Body, now float64,
) (*Params, error) {
	rTot := targ.R + proj.R
	mTot := targ.M + proj.M
	g := res.G

	xRel := targ.X.Sub(proj.X)
	vRel := targ.V.Sub(proj.V)
	x2Rel := xRel.Dot(xRel)
	v2Rel := vRel.Dot(vRel)
	sep := math.Sqrt(x2Rel)

	// Specific angular momentum of the pair, xrel cross vrel.
	h := xRel.Cross(vRel)
	h2 := h.Dot(h)

	// Impact speed with mutual gravitational focusing. If the pair
	// was detected past contact the focusing term goes negative and
	// is dropped.
	v2Imp := v2Rel + 2*g*mTot*(1/rTot-1/sep)
	if 1/rTot-1/sep < 0 {
		v2Imp = v2Rel
	}
	vi := math.Sqrt(v2Imp)

	b := math.Sqrt(h2 / v2Imp)
	if math.IsNaN(b) {
		return nil, fmt.Errorf(
			"impact parameter is not a real number: degenerate " +
				"geometry (coincident centers?)",
		)
	}

	// Overlap length, capped at the projectile diameter, and the
	// interacting mass fraction of the projectile.
	l := math.Min(rTot-b, 2*proj.R)
	alpha := l * l * (3*proj.R - l) / (4 * proj.R * proj.R * proj.R)
	alpha = math.Min(1, alpha)

	mu := targ.M * proj.M / mTot
	q := 0.5 * v2Imp * targ.M * proj.M / (mTot * mTot)
	vEsc := math.Sqrt(2 * g * mTot / rTot)
	alphaMu := alpha * targ.M * proj.M / (alpha*proj.M + targ.M)
	gamma := proj.M / targ.M

	// Critical disruption energy, Chambers (2013) Eqs. 3 - 5.
	rho1 := res.BulkDensity
	rc1 := math.Cbrt(mTot * 3 / (4 * math.Pi * rho1))
	q0 := 0.8 * res.CStar * math.Pi * rho1 * g * rc1 * rc1
	qStar := math.Pow(mu/alphaMu, 1.5) *
		(1 + gamma) * (1 + gamma) / (4 * gamma) * q0
	if alpha == 0 {
		// Nothing interacts, so no disruption is possible.
		qStar = math.Inf(1)
	}
	if b == 0 && proj.M == targ.M {
		qStar = q0
	}

	// Largest remnant mass, Chambers (2013) Eq. 8, with a power-law
	// tail past the energy knee.
	qRatio := q / qStar
	var mlr float64
	if qRatio < res.EnergyKnee {
		mlr = mTot * (1 - 0.5*qRatio)
	} else {
		mlr = 0.1 * mTot * math.Pow(qRatio/res.EnergyKnee, -1.5)
	}
	// Clamped once, here, before any branch compares it to the
	// target mass.
	mlr = math.Max(mlr, res.MinFragmentMass)

	return &Params{
		XRel: xRel, VRel: vRel,
		Sep: sep, VRelMag: math.Sqrt(v2Rel),
		B: b, Vi: vi,
		L: l, Alpha: alpha,
		Mu: mu, Q: q, QStar: qStar, VEsc: vEsc,
		Rho1: rho1, CStar: res.CStar,
		Mlr: mlr, Mslr: 0,
		Separation: res.SeparationFactor * rTot,
		TargetM:    targ.M, TargetR: targ.R,
		ProjM: proj.M, ProjR: proj.R, MTot: mTot,
		Time: now,
	}, nil
}
