/*package disk sets up and advances a local patch of a collisional
particle disk. It samples initial conditions for a shearing sheet,
supplies a velocity-dependent restitution law, and drives a simple
kinematic loop whose only job is to detect overlapping pairs and feed
them to a collision resolver. It is a stand-in for a real N-body
integrator, not a replacement for one.
*/
package disk

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/phil-mansfield/impact/geom"
	"github.com/phil-mansfield/impact/particle"
)

// SampleConfig describes the initial state of a shearing-sheet patch.
type SampleConfig struct {
	// Omega is the local orbital frequency.
	Omega float64
	// SurfaceDensity fixes the total sampled mass through the patch
	// area: bodies are drawn until their mass reaches
	// SurfaceDensity * XWidth * YWidth.
	SurfaceDensity float64
	// ParticleDensity is the bulk density of each sampled body.
	ParticleDensity float64
	// RadiusMin, RadiusMax, and RadiusSlope describe the power-law
	// radius distribution, dN/dr propto r^RadiusSlope on
	// [RadiusMin, RadiusMax].
	RadiusMin, RadiusMax float64
	RadiusSlope          float64
	// VelocityDispersion is the in-plane random velocity scale. Each
	// of vx and vy gets a normal component with standard deviation
	// VelocityDispersion / sqrt(2) on top of the shear flow.
	VelocityDispersion float64
	// ZDispersion is the standard deviation of the vertical
	// positions.
	ZDispersion float64
	// XWidth and YWidth are the patch dimensions.
	XWidth, YWidth float64
}

func (cfg *SampleConfig) validate() error {
	if cfg.Omega <= 0 {
		return fmt.Errorf("orbital frequency %g is not positive", cfg.Omega)
	}
	if cfg.SurfaceDensity <= 0 || cfg.ParticleDensity <= 0 {
		return fmt.Errorf("densities must be positive")
	}
	if cfg.RadiusMin <= 0 || cfg.RadiusMax < cfg.RadiusMin {
		return fmt.Errorf(
			"radius range [%g, %g] is empty or touches zero",
			cfg.RadiusMin, cfg.RadiusMax,
		)
	}
	if cfg.XWidth <= 0 || cfg.YWidth <= 0 {
		return fmt.Errorf("patch dimensions must be positive")
	}
	return nil
}

// Sample draws bodies until their total mass reaches the surface
// density times the patch area. Positions are uniform in the plane
// and normal in z, and velocities are the Hill shear flow
// vy = -1.5 * Omega * x plus an isotropic in-plane dispersion. Bodies
// get sequential identifiers starting at 1.
func Sample(cfg SampleConfig, rng *rand.Rand) ([]particle.Body, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	totalMass := cfg.SurfaceDensity * cfg.XWidth * cfg.YWidth
	disp := cfg.VelocityDispersion / math.Sqrt2

	bodies := []particle.Body{}
	mass := 0.0
	for id := uint32(1); mass < totalMass; id++ {
		x := mgl64.Vec3{
			(rng.Float64() - 0.5) * cfg.XWidth,
			(rng.Float64() - 0.5) * cfg.YWidth,
			rng.NormFloat64() * cfg.ZDispersion,
		}
		v := mgl64.Vec3{
			rng.NormFloat64() * disp,
			-1.5*cfg.Omega*x[0] + rng.NormFloat64()*disp,
			0,
		}
		r := powerLaw(rng, cfg.RadiusMin, cfg.RadiusMax, cfg.RadiusSlope)
		m := cfg.ParticleDensity * geom.SphereVolume(r)

		bodies = append(bodies, particle.Body{
			ID: id, M: m, R: r, X: x, V: v,
		})
		mass += m
	}
	return bodies, nil
}

// powerLaw draws from dN/dx propto x^slope on [min, max] by inverting
// the cumulative distribution. slope == -1 is the logarithmic special
// case.
func powerLaw(rng *rand.Rand, min, max, slope float64) float64 {
	y := rng.Float64()
	if slope == -1 {
		return math.Exp(y*math.Log(max/min) + math.Log(min))
	}
	return math.Pow(
		(math.Pow(max, slope+1)-math.Pow(min, slope+1))*y+
			math.Pow(min, slope+1),
		1/(slope+1),
	)
}
