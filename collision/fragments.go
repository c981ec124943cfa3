package collision

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/phil-mansfield/impact/geom"
	"github.com/phil-mansfield/impact/particle"
)

// addFragments partitions the residual mass of the collision into
// equal-mass fragments (plus a second-largest remnant, if the
// hit-and-run sub-resolver set one), places them on a circle in the
// collision plane, and applies a correction pass so that the mass,
// center-of-mass position, and center-of-mass velocity of the
// original pair are conserved exactly. The created bodies are
// appended to the store and returned in creation order.
func (res *Resolver) addFragments(
	store particle.Store, p *Params, targ, proj *particle.Body,
) ([]*particle.Body, error) {
	initialMass := targ.M + proj.M
	remainingMass := initialMass - p.Mlr
	rho := targ.Density()
	rTot := targ.R + proj.R

	bigFrags := 0
	if p.Mslr > 0 {
		remainingMass -= p.Mslr
		bigFrags = 1
	}

	if res.MinFragmentMass <= 0 {
		return nil, fmt.Errorf(
			"minimum fragment mass %g is not positive",
			res.MinFragmentMass,
		)
	}
	if remainingMass <= 0 {
		return nil, fmt.Errorf(
			"residual mass %g entering fragment synthesis is not "+
				"positive", remainingMass,
		)
	}

	noFrags := int(remainingMass / res.MinFragmentMass)
	if noFrags <= 0 || noFrags >= res.MaxFragments {
		return nil, fmt.Errorf(
			"fragment count %d outside the sane range (0, %d)",
			noFrags, res.MaxFragments,
		)
	}
	// Equal partition. No mass distribution within the fragments.
	fragMass := remainingMass / float64(noFrags)

	newBodies := noFrags + bigFrags
	p.NumFrags = newBodies

	basis, err := geom.CollisionBasis(p.VRel, p.XRel)
	if err != nil {
		return nil, fmt.Errorf("cannot build collision plane: %v", err)
	}

	// Center of mass of the original pair. Everything below is placed
	// relative to it and corrected back onto it at the end.
	comX := targ.X.Mul(targ.M).Add(proj.X.Mul(proj.M)).Mul(1 / initialMass)
	comV := targ.V.Mul(targ.M).Add(proj.V.Mul(proj.M)).Mul(1 / initialMass)

	// The target takes the largest remnant and sits at the pair's
	// center of mass.
	targ.LastCollision = p.Time
	targ.M = p.Mlr
	targ.R = geom.SphereRadius(p.Mlr, rho)
	targ.X = comX
	targ.V = comV

	// A single fragment heavier than the remnant would leave the
	// lighter body in the target slot; swap the two masses so the
	// target stays the more massive of the pair.
	if noFrags == 1 && p.Mlr <= fragMass {
		targ.M = fragMass
		targ.R = geom.SphereRadius(fragMass, rho)
		fragMass = p.Mlr
	}

	// Every new body leaves the center of mass at the same speed,
	// directed radially outward along its own position on the circle.
	fragVel := math.Sqrt(1.1*p.VEsc*p.VEsc -
		2*res.G*initialMass*(1/rTot-1/p.Separation))

	frags := make([]*particle.Body, 0, newBodies)

	if bigFrags == 1 {
		// The second-largest remnant goes at angle zero, along the
		// pre-collision relative velocity.
		slr := particle.Body{
			ID:            res.Counter.Next(),
			M:             p.Mslr,
			R:             geom.SphereRadius(p.Mslr, rho),
			X:             comX.Add(basis.U.Mul(p.Separation)),
			V:             comV.Add(basis.U.Mul(fragVel)),
			LastCollision: p.Time,
		}
		frags = append(frags, store.Append(slr))
	}

	thetaInc := 2 * math.Pi / float64(newBodies)
	for j := 1; j <= noFrags; j++ {
		sin, cos := math.Sincos(thetaInc * float64(j))
		dir := basis.U.Mul(cos).Add(basis.V.Mul(sin))
		frag := particle.Body{
			ID:            res.Counter.Next(),
			M:             fragMass,
			R:             geom.SphereRadius(fragMass, rho),
			X:             comX.Add(dir.Mul(p.Separation)),
			V:             comV.Add(dir.Mul(fragVel)),
			LastCollision: p.Time,
		}
		frags = append(frags, store.Append(frag))
	}

	res.correctMomentum(comX, comV, initialMass, targ, frags)

	if res.Box != nil {
		for _, f := range frags {
			res.Box.Wrap(&f.X)
		}
	}

	return frags, nil
}

// correctMomentum distributes the discrepancy between the bodies'
// mass-weighted position/velocity sums and the true center of mass of
// the original pair across every body in proportion to its mass
// share. Body i receives the momentum share (m_i / M) * P_err, so its
// velocity (and likewise its position) shifts by the same offset,
// which pins the center of mass exactly. A nil fragment reference is
// skipped rather than faulted on.
func (res *Resolver) correctMomentum(
	comX, comV mgl64.Vec3, initialMass float64,
	targ *particle.Body, frags []*particle.Body,
) {
	mx := targ.X.Mul(targ.M)
	mv := targ.V.Mul(targ.M)
	for _, f := range frags {
		if f == nil {
			continue
		}
		mx = mx.Add(f.X.Mul(f.M))
		mv = mv.Add(f.V.Mul(f.M))
	}

	xOff := comX.Sub(mx.Mul(1 / initialMass))
	vOff := comV.Sub(mv.Mul(1 / initialMass))

	targ.X = targ.X.Add(xOff)
	targ.V = targ.V.Add(vOff)
	for _, f := range frags {
		if f == nil {
			continue
		}
		f.X = f.X.Add(xOff)
		f.V = f.V.Add(vOff)
	}
}
