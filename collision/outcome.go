package collision

// Outcome is the terminal classification of a collision.
type Outcome int

const (
	// ElasticBounce leaves both bodies intact. Their velocities are
	// updated by the external hard-sphere restitution resolver.
	ElasticBounce Outcome = iota
	// Merge folds the projectile into the target below the mutual
	// escape velocity.
	Merge
	// EffectiveMerge is a merge forced by the residual mass being too
	// small to fragment.
	EffectiveMerge
	// PartialAccretion grows the target and sheds the rest of the
	// projectile as fragments.
	PartialAccretion
	// PartialErosion strips mass off the target into fragments.
	PartialErosion
	// SuperCatastrophic leaves the largest remnant with no more than
	// a tenth of the original target mass.
	SuperCatastrophic
	// GrazeAndMerge is a grazing encounter below the critical
	// velocity that still ends in a full merger.
	GrazeAndMerge
	// GrazingPartialErosion is partial erosion in the grazing regime.
	GrazingPartialErosion
	// HitAndRun leaves both target and projectile as distinct bodies
	// with partial mass exchange.
	HitAndRun

	// outcomeGrazing hands a grazing encounter to the hit-and-run
	// sub-resolver for the final classification.
	outcomeGrazing
)

var outcomeNames = []string{
	"ElasticBounce", "Merge", "EffectiveMerge", "PartialAccretion",
	"PartialErosion", "SuperCatastrophic", "GrazeAndMerge",
	"GrazingPartialErosion", "HitAndRun",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "Unknown"
	}
	return outcomeNames[o]
}

// ReportCode returns the outcome code used in collision report lines:
// 0 = elastic bounce, 1 = merger, 2 = partial accretion, 3 = partial
// erosion, 4 = super-catastrophic. Hit-and-run outcomes reuse 1 - 3.
func (o Outcome) ReportCode() int {
	switch o {
	case ElasticBounce:
		return 0
	case Merge, EffectiveMerge, GrazeAndMerge:
		return 1
	case PartialAccretion, HitAndRun:
		return 2
	case PartialErosion, GrazingPartialErosion:
		return 3
	case SuperCatastrophic:
		return 4
	}
	return -1
}
