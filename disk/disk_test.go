package disk

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/impact/collision"
	"github.com/phil-mansfield/impact/geom"
	"github.com/phil-mansfield/impact/particle"
)

func TestPowerLawBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, slope := range []float64{-3, -1, 0, 2} {
		for i := 0; i < 1000; i++ {
			r := powerLaw(rng, 1.4, 1.6, slope)
			if r < 1.4 || r > 1.6 {
				t.Fatalf("slope %g drew %g outside [1.4, 1.6]", slope, r)
			}
		}
	}
}

func TestSampleMassAndShear(t *testing.T) {
	cfg := SampleConfig{
		Omega:           2,
		SurfaceDensity:  10,
		ParticleDensity: 2500,
		RadiusMin:       0.1,
		RadiusMax:       0.2,
		RadiusSlope:     -3,
		XWidth:          5,
		YWidth:          5,
	}
	rng := rand.New(rand.NewSource(7))
	bodies, err := Sample(cfg, rng)
	require.NoError(t, err)
	require.NotEmpty(t, bodies)

	target := cfg.SurfaceDensity * cfg.XWidth * cfg.YWidth
	mass := 0.0
	for i, b := range bodies {
		mass += b.M
		assert.Equal(t, uint32(i+1), b.ID, "sequential identifiers")
		assert.GreaterOrEqual(t, b.R, cfg.RadiusMin)
		assert.LessOrEqual(t, b.R, cfg.RadiusMax)
		assert.InDelta(t, cfg.ParticleDensity, b.Density(), 1e-8)
		assert.LessOrEqual(t, math.Abs(b.X[0]), cfg.XWidth/2)
		assert.LessOrEqual(t, math.Abs(b.X[1]), cfg.YWidth/2)

		// No dispersion was requested, so the velocity is pure Hill
		// shear.
		assert.Equal(t, 0.0, b.V[0])
		assert.Equal(t, -1.5*cfg.Omega*b.X[0], b.V[1])
		assert.Equal(t, 0.0, b.V[2])
		assert.Equal(t, 0.0, b.X[2])
	}
	assert.GreaterOrEqual(t, mass, target)
	assert.Less(t, mass-bodies[len(bodies)-1].M, target,
		"sampling stops as soon as the mass target is reached")
}

func TestSampleRejectsBadConfig(t *testing.T) {
	cfg := SampleConfig{}
	_, err := Sample(cfg, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestBridgesRestitution(t *testing.T) {
	// At 1 cm/s the law gives its base coefficient.
	assert.InDelta(t, 0.32, BridgesRestitution(0.01), 1e-12)
	// Slow impacts clamp to perfectly elastic.
	assert.Equal(t, 1.0, BridgesRestitution(1e-10))
	// Faster impacts are less elastic, and the sign of v is ignored.
	assert.Less(t, BridgesRestitution(10), BridgesRestitution(1))
	assert.Equal(t, BridgesRestitution(-1), BridgesRestitution(1))
}

func TestHardSphereBounceElastic(t *testing.T) {
	bounce := HardSphereBounce(func(v float64) float64 { return 1 })

	targ := &particle.Body{M: 1, X: mgl64.Vec3{}, V: mgl64.Vec3{}}
	proj := &particle.Body{M: 1,
		X: mgl64.Vec3{1, 0, 0}, V: mgl64.Vec3{-1, 0, 0}}
	bounce(targ, proj)

	// Equal masses exchange velocities in a head-on elastic bounce.
	assert.InDelta(t, -1, targ.V[0], 1e-14)
	assert.InDelta(t, 0, proj.V[0], 1e-14)
}

func TestHardSphereBounceInelastic(t *testing.T) {
	e := 0.5
	bounce := HardSphereBounce(func(v float64) float64 { return e })

	targ := &particle.Body{M: 3, X: mgl64.Vec3{}, V: mgl64.Vec3{0.2, 0.1, 0}}
	proj := &particle.Body{M: 1,
		X: mgl64.Vec3{1, 0, 0}, V: mgl64.Vec3{-1, -0.4, 0}}
	vnBefore := proj.V.Sub(targ.V).X()
	pBefore := targ.V.Mul(targ.M).Add(proj.V.Mul(proj.M))

	bounce(targ, proj)

	vnAfter := proj.V.Sub(targ.V).X()
	assert.InDelta(t, -e*vnBefore, vnAfter, 1e-14,
		"normal closing speed reversed and damped")
	pAfter := targ.V.Mul(targ.M).Add(proj.V.Mul(proj.M))
	for dim := 0; dim < 3; dim++ {
		assert.InDelta(t, pBefore[dim], pAfter[dim], 1e-14, "momentum")
	}
	// The tangential components never change.
	assert.Equal(t, 0.1, targ.V[1])
	assert.Equal(t, -0.4, proj.V[1])
}

func TestHardSphereBounceIgnoresSeparatingPair(t *testing.T) {
	bounce := HardSphereBounce(BridgesRestitution)
	targ := &particle.Body{M: 1, X: mgl64.Vec3{}, V: mgl64.Vec3{}}
	proj := &particle.Body{M: 1,
		X: mgl64.Vec3{1, 0, 0}, V: mgl64.Vec3{1, 0, 0}}
	bounce(targ, proj)
	assert.Equal(t, mgl64.Vec3{}, targ.V)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, proj.V)
}

func testDiskResolver(t *testing.T, minFrag float64) *collision.Resolver {
	con := collision.DefaultConfig()
	con.G = 1
	con.BulkDensity = 1
	con.MinFragmentMass = minFrag
	res, err := collision.NewResolver(con)
	require.NoError(t, err)
	return res
}

func TestDriverMergesSlowPair(t *testing.T) {
	res := testDiskResolver(t, 0.01)
	store := particle.NewSlice()
	r1 := geom.SphereRadius(1, 1)
	store.Append(particle.Body{ID: 1, M: 1, R: r1})
	store.Append(particle.Body{ID: 2, M: 1, R: r1,
		X: mgl64.Vec3{2*r1 + 0.05, 0, 0}, V: mgl64.Vec3{-0.1, 0, 0}})

	d, err := NewDriver(store, res, 1)
	require.NoError(t, err)
	require.NoError(t, d.Step())

	require.Equal(t, 1, store.Len(), "pair merged into one body")
	assert.Equal(t, 2.0, store.At(0).M)
	assert.Equal(t, 1.0, d.Time)
	assert.Equal(t, 1, d.Steps)
}

func TestDriverBounceKeepsBoth(t *testing.T) {
	res := testDiskResolver(t, 0.001)
	res.Bounce = HardSphereBounce(BridgesRestitution)
	store := particle.NewSlice()

	// A fast grazing encounter of a small projectile on a large
	// target, too slow for the projectile to shed a second remnant:
	// the resolver reports an elastic bounce and keeps both bodies.
	rt := geom.SphereRadius(100, 1)
	rp := geom.SphereRadius(1, 1)
	b := 3.0
	rTot := rt + rp
	dx := math.Sqrt(rTot*rTot-b*b) - 1e-9
	store.Append(particle.Body{ID: 1, M: 100, R: rt})
	store.Append(particle.Body{ID: 2, M: 1, R: rp,
		X: mgl64.Vec3{dx, b, 0}, V: mgl64.Vec3{-15, 0, 0}})

	d, err := NewDriver(store, res, 1e-13)
	require.NoError(t, err)
	require.NoError(t, d.Step())

	assert.Equal(t, 2, store.Len())
	assert.NotEqual(t, mgl64.Vec3{}, store.At(0).V,
		"restitution impulse reached the target")
}

func TestDriverFragmentsGrowStore(t *testing.T) {
	res := testDiskResolver(t, 0.5)
	store := particle.NewSlice()

	rt := geom.SphereRadius(100, 1)
	rp := geom.SphereRadius(1, 1)
	store.Append(particle.Body{ID: 1, M: 100, R: rt})
	store.Append(particle.Body{ID: 2, M: 1, R: rp,
		X: mgl64.Vec3{rt + rp - 1e-6, 0, 0}, V: mgl64.Vec3{-10000, 1, 0}})

	d, err := NewDriver(store, res, 1e-15)
	require.NoError(t, err)
	require.NoError(t, d.Step())

	// The largest remnant plus 201 fragments; the projectile is gone.
	assert.Equal(t, 202, store.Len())
	_, ok := store.ByID(2)
	assert.False(t, ok, "projectile removed from the store")
}

func TestDriverHeartbeat(t *testing.T) {
	res := testDiskResolver(t, 0.01)
	store := particle.NewSlice()
	store.Append(particle.Body{ID: 1, M: 1, R: 0.1})

	calls := 0
	d, err := NewDriver(store, res, 0.5)
	require.NoError(t, err)
	d.Heartbeat = func(d *Driver) error { calls++; return nil }

	require.NoError(t, d.Run(2))
	assert.Equal(t, 4, calls)
	assert.Equal(t, 4, d.Steps)
}
