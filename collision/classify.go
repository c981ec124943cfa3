package collision

// classify maps the derived context of an encounter onto a terminal
// outcome, or onto the internal grazing state which hands control to
// the hit-and-run sub-resolver. The rules are evaluated in order:
// escape-velocity comparison first, then the grazing test against the
// target radius, then the largest-remnant thresholds.
func (res *Resolver) classify(p *Params) Outcome {
	if p.Vi <= p.VEsc {
		return Merge
	}
	if p.B >= p.TargetR {
		return outcomeGrazing
	}

	// Central impact.
	if p.MTot-p.Mlr < res.MinFragmentMass {
		// Not enough residual mass to make even one fragment.
		return EffectiveMerge
	}
	if p.Mlr < p.TargetM {
		if p.Mlr <= res.SuperCatastrophicFraction*p.TargetM {
			return SuperCatastrophic
		}
		return PartialErosion
	}
	return PartialAccretion
}
