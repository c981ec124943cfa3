/*package collision decides what physically happens when two bodies of
a granular or planetesimal simulation collide.

It implements the collision-outcome model of Leinhardt & Stewart
(2012) and Chambers (2013): each detected pair is classified as a
merger, partial accretion, partial erosion, catastrophic disruption,
hit-and-run, or elastic bounce, and outcomes that fragment the pair
synthesize a consistent set of child bodies that conserves the total
mass and the center-of-mass position and velocity of the pair.

The package never discovers collisions and never integrates motion.
The host simulation hands it a pair and a time, and gets back a
disposition code telling it which of the two bodies to discard.
*/
package collision

import (
	"fmt"

	"github.com/phil-mansfield/impact/particle"
)

// Disposition tells the caller which of the two original bodies has
// become invalid. The heavier body always survives in its own slot.
type Disposition int

const (
	// DispositionNone: neither body was removed.
	DispositionNone Disposition = 0
	// DispositionFirst: remove the first-named body of the event.
	DispositionFirst Disposition = 1
	// DispositionSecond: remove the second-named body of the event.
	DispositionSecond Disposition = 2
)

// An Event is a single detected collision: the slots of the two
// colliding bodies inside the store and the current simulation time.
type Event struct {
	P1, P2 int
	Time   float64
}

// Config holds the physical and empirical constants of the resolver.
// The bulk density is explicit configuration. It is resolved once at
// setup time for the unit system in use, never inferred per event.
type Config struct {
	// G is the gravitational constant in the simulation's units.
	G float64
	// MinFragmentMass is the smallest body the resolver will create.
	MinFragmentMass float64
	// BulkDensity is the assumed constant bulk density used by the
	// critical disruption energy. In cgs use 1, in SI use 1000, in
	// AU/M_sun/yr/2pi units use 1.684e6.
	BulkDensity float64
	// CStar is the disruption scaling constant, 1.8 in the
	// literature.
	CStar float64
	// SuperCatastrophicFraction is the largest-remnant-to-target
	// mass ratio at or below which a disruption counts as
	// super-catastrophic. The literature value is 0.1.
	SuperCatastrophicFraction float64
	// EnergyKnee is the Q/Q* ratio where the largest-remnant law
	// switches to its power-law tail, 1.8 in the literature.
	EnergyKnee float64
	// SeparationFactor scales the combined radius of the pair into
	// the fragment placement distance.
	SeparationFactor float64
	// MaxFragments caps the number of fragments a single collision
	// may create, guarding against runaway allocation from malformed
	// input.
	MaxFragments int
}

// DefaultConfig returns a Config with the literature values of the
// empirical constants filled in. G, MinFragmentMass, and BulkDensity
// depend on the scenario and start at zero; they must be set before
// the config is used.
func DefaultConfig() Config {
	return Config{
		CStar:                     1.8,
		SuperCatastrophicFraction: 0.1,
		EnergyKnee:                1.8,
		SeparationFactor:          4,
		MaxFragments:              1000 * 1000,
	}
}

// validate fails on config values which would make every resolution
// meaningless.
func (con *Config) validate() error {
	if con.G <= 0 {
		return fmt.Errorf("gravitational constant %g is not positive", con.G)
	}
	if con.MinFragmentMass <= 0 {
		return fmt.Errorf(
			"minimum fragment mass %g is not positive", con.MinFragmentMass,
		)
	}
	if con.BulkDensity <= 0 {
		return fmt.Errorf("bulk density %g is not positive", con.BulkDensity)
	}
	if con.CStar <= 0 || con.EnergyKnee <= 0 || con.SeparationFactor <= 0 {
		return fmt.Errorf("empirical constants must be positive")
	}
	if con.SuperCatastrophicFraction <= 0 ||
		con.SuperCatastrophicFraction >= 1 {
		return fmt.Errorf(
			"super-catastrophic fraction %g outside (0, 1)",
			con.SuperCatastrophicFraction,
		)
	}
	if con.MaxFragments <= 0 {
		return fmt.Errorf("fragment cap %d is not positive", con.MaxFragments)
	}
	return nil
}

// A BounceFunc resolves an elastic bounce between the two bodies of a
// pair. It is supplied by the host simulation, typically a
// hard-sphere restitution model.
type BounceFunc func(targ, proj *particle.Body)

// A Recorder receives one record per resolved collision.
type Recorder interface {
	Record(
		time float64, outcome Outcome,
		targ, proj *particle.Body, frags []*particle.Body,
	) error
}

// A Resolver classifies collision events and mutates particle state
// accordingly. It owns the fragment identifier counter, so a single
// Resolver must not be shared across goroutines.
type Resolver struct {
	Config
	// Counter issues fragment identifiers. Seed it when restarting
	// from a checkpoint.
	Counter Counter
	// Box, when non-nil, wraps fragment coordinates into the
	// periodic domain.
	Box *particle.Box
	// Bounce resolves elastic bounces. When nil, bounce outcomes
	// leave velocities untouched.
	Bounce BounceFunc
	// Recorder, when non-nil, receives one record per resolved
	// collision.
	Recorder Recorder
}

// NewResolver creates a Resolver from a validated config.
func NewResolver(con Config) (*Resolver, error) {
	if err := con.validate(); err != nil {
		return nil, err
	}
	return &Resolver{Config: con}, nil
}

// Resolve decides the outcome of a collision event and applies it to
// the store. It returns a disposition code telling the caller which
// of the two original bodies to discard, or DispositionNone if both
// survive. An event in which either body already collided at this
// exact simulation time is ignored, so reporting both orderings of a
// pair cannot double-process it. Errors are modeling precondition
// violations and must abort the run.
func (res *Resolver) Resolve(
	store particle.Store, ev Event,
) (Disposition, error) {
	p1, p2 := store.At(ev.P1), store.At(ev.P2)
	if p1.LastCollision == ev.Time || p2.LastCollision == ev.Time {
		return DispositionNone, nil
	}

	// The heavier body is the target and keeps its slot.
	targ, proj := p1, p2
	disp := DispositionSecond
	if p1.M < p2.M {
		targ, proj = p2, p1
		disp = DispositionFirst
	}

	p, err := res.deriveParams(targ, proj, ev.Time)
	if err != nil {
		return DispositionNone, err
	}

	outcome := res.classify(p)
	if outcome == outcomeGrazing {
		outcome = res.classifyGrazing(p)
	}
	p.Outcome = outcome

	var frags []*particle.Body
	switch outcome {
	case Merge, EffectiveMerge, GrazeAndMerge:
		merge(targ, proj, ev.Time)
	case PartialAccretion, PartialErosion, SuperCatastrophic,
		GrazingPartialErosion, HitAndRun:
		frags, err = res.addFragments(store, p, targ, proj)
		if err != nil {
			return DispositionNone, err
		}
	case ElasticBounce:
		if res.Bounce != nil {
			res.Bounce(targ, proj)
		}
		targ.LastCollision = ev.Time
		proj.LastCollision = ev.Time
		disp = DispositionNone
	default:
		panic("Impossible")
	}

	if res.Recorder != nil {
		err := res.Recorder.Record(ev.Time, outcome, targ, proj, frags)
		if err != nil {
			return DispositionNone, err
		}
	}

	return disp, nil
}
