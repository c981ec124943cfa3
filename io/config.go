package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/impact/collision"
	"github.com/phil-mansfield/impact/disk"
	"github.com/phil-mansfield/impact/particle"
)

const (
	ExampleRunFile = `[Run]

#######################
# Required Parameters #
#######################

# Total integration time in seconds.
SimulationTime = 700.0

# Time step in seconds.
TimeStep = 0.007

#######################
# Optional Parameters #
#######################

# Collision records are appended to this file. One line per event.
# ReportFile = collision_report.txt

# The sampled initial conditions are written here, one "x y r" line
# per body.
# InitialFile = initial_particles.txt

# Position snapshots are appended to this file.
# PositionFile = position.txt

# Number of steps between position snapshots.
# SnapshotSteps = 1000

# Number of steps between progress lines on the log.
# HeartbeatSteps = 100

# Seed of the initial condition sampler. Runs with the same seed and
# config are identical. Defaults to 0.
# Seed = 42

[Disk]

#######################
# Required Parameters #
#######################

# Local orbital frequency in 1/s.
Omega = 9e-4

# Surface density of the patch in kg/m^2.
SurfaceDensity = 1e4

# Bulk density of the sampled bodies in kg/m^3.
ParticleDensity = 2500

# Power-law radius distribution, dN/dr propto r^RadiusSlope on
# [RadiusMin, RadiusMax]. Radii in m.
RadiusMin = 1.4
RadiusMax = 1.6
RadiusSlope = -3

#######################
# Optional Parameters #
#######################

# In-plane random velocity scale in m/s, split evenly between the two
# in-plane components.
# VelocityDispersion = 3000

# Standard deviation of the vertical positions in m.
# ZDispersion = 1

[Resolver]

#######################
# Required Parameters #
#######################

# Gravitational constant in the run's unit system.
G = 6.674e-11

# The smallest body a collision may create, in the run's mass unit.
MinFragmentMass = 1e-8

# Bulk density assumed by the disruption energy scale. Use 1000 for
# SI, 1 for cgs, and 1.684e6 for AU/M_sun/yr-over-2pi units.
BulkDensity = 1000

#######################
# Optional Parameters #
#######################

# Empirical constants of the outcome model. The defaults are the
# literature values; change them only on purpose.
# CStar = 1.8
# SuperCatastrophicFraction = 0.1
# EnergyKnee = 1.8
# SeparationFactor = 4
# MaxFragments = 1000000

[Box]

# Periodic patch dimensions in m. They set both the wrapping domain
# and the area the initial conditions are sampled over.
XWidth = 50
YWidth = 50`
)

type RunConfig struct {
	// Required
	SimulationTime float64
	TimeStep       float64

	// Optional
	ReportFile     string
	InitialFile    string
	PositionFile   string
	SnapshotSteps  int
	HeartbeatSteps int
	Seed           int64
}

func (con *RunConfig) ValidSimulationTime() bool {
	return con.SimulationTime > 0
}
func (con *RunConfig) ValidTimeStep() bool {
	return con.TimeStep > 0 && con.TimeStep < con.SimulationTime
}

type DiskConfig struct {
	// Required
	Omega           float64
	SurfaceDensity  float64
	ParticleDensity float64
	RadiusMin       float64
	RadiusMax       float64
	RadiusSlope     float64

	// Optional
	VelocityDispersion float64
	ZDispersion        float64
}

func (con *DiskConfig) ValidOmega() bool {
	return con.Omega > 0
}
func (con *DiskConfig) ValidSurfaceDensity() bool {
	return con.SurfaceDensity > 0
}
func (con *DiskConfig) ValidParticleDensity() bool {
	return con.ParticleDensity > 0
}
func (con *DiskConfig) ValidRadiusRange() bool {
	return con.RadiusMin > 0 && con.RadiusMax >= con.RadiusMin
}

type ResolverConfig struct {
	// Required
	G               float64
	MinFragmentMass float64
	BulkDensity     float64

	// Optional
	CStar                     float64
	SuperCatastrophicFraction float64
	EnergyKnee                float64
	SeparationFactor          float64
	MaxFragments              int
}

func (con *ResolverConfig) ValidG() bool {
	return con.G > 0
}
func (con *ResolverConfig) ValidMinFragmentMass() bool {
	return con.MinFragmentMass > 0
}
func (con *ResolverConfig) ValidBulkDensity() bool {
	return con.BulkDensity > 0
}

type BoxConfig struct {
	// Required
	XWidth, YWidth float64
}

func (con *BoxConfig) ValidWidths() bool {
	return con.XWidth > 0 && con.YWidth > 0
}

type RunWrapper struct {
	Run      RunConfig
	Disk     DiskConfig
	Resolver ResolverConfig
	Box      BoxConfig
}

// DefaultRunWrapper fills in the optional parameters. The empirical
// constants of the resolver default to the literature values.
func DefaultRunWrapper() *RunWrapper {
	wrap := &RunWrapper{}
	wrap.Run.ReportFile = "collision_report.txt"
	wrap.Run.InitialFile = "initial_particles.txt"
	wrap.Run.PositionFile = "position.txt"
	wrap.Run.SnapshotSteps = 1000
	wrap.Run.HeartbeatSteps = 100

	def := collision.DefaultConfig()
	wrap.Resolver.CStar = def.CStar
	wrap.Resolver.SuperCatastrophicFraction = def.SuperCatastrophicFraction
	wrap.Resolver.EnergyKnee = def.EnergyKnee
	wrap.Resolver.SeparationFactor = def.SeparationFactor
	wrap.Resolver.MaxFragments = def.MaxFragments

	return wrap
}

// ReadRunConfig parses fname on top of the defaults and checks every
// required parameter.
func ReadRunConfig(fname string) (*RunWrapper, error) {
	wrap := DefaultRunWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Check(); err != nil {
		return nil, fmt.Errorf("%s: %v", fname, err)
	}
	return wrap, nil
}

// Check fails on the first invalid parameter.
func (wrap *RunWrapper) Check() error {
	switch {
	case !wrap.Run.ValidSimulationTime():
		return fmt.Errorf(
			"Need to specify a positive SimulationTime in [Run].",
		)
	case !wrap.Run.ValidTimeStep():
		return fmt.Errorf(
			"Need a TimeStep in [Run] that is positive and smaller " +
				"than SimulationTime.",
		)
	case !wrap.Disk.ValidOmega():
		return fmt.Errorf("Need to specify a positive Omega in [Disk].")
	case !wrap.Disk.ValidSurfaceDensity():
		return fmt.Errorf(
			"Need to specify a positive SurfaceDensity in [Disk].",
		)
	case !wrap.Disk.ValidParticleDensity():
		return fmt.Errorf(
			"Need to specify a positive ParticleDensity in [Disk].",
		)
	case !wrap.Disk.ValidRadiusRange():
		return fmt.Errorf(
			"Need RadiusMin and RadiusMax in [Disk] with " +
				"0 < RadiusMin <= RadiusMax.",
		)
	case !wrap.Resolver.ValidG():
		return fmt.Errorf("Need to specify a positive G in [Resolver].")
	case !wrap.Resolver.ValidMinFragmentMass():
		return fmt.Errorf(
			"Need to specify a positive MinFragmentMass in [Resolver].",
		)
	case !wrap.Resolver.ValidBulkDensity():
		return fmt.Errorf(
			"Need to specify a positive BulkDensity in [Resolver].",
		)
	case !wrap.Box.ValidWidths():
		return fmt.Errorf(
			"Need to specify positive XWidth and YWidth in [Box].",
		)
	}
	return nil
}

// ResolverConfig converts the [Resolver] section into the collision
// package's config.
func (wrap *RunWrapper) ResolverConfig() collision.Config {
	return collision.Config{
		G:                         wrap.Resolver.G,
		MinFragmentMass:           wrap.Resolver.MinFragmentMass,
		BulkDensity:               wrap.Resolver.BulkDensity,
		CStar:                     wrap.Resolver.CStar,
		SuperCatastrophicFraction: wrap.Resolver.SuperCatastrophicFraction,
		EnergyKnee:                wrap.Resolver.EnergyKnee,
		SeparationFactor:          wrap.Resolver.SeparationFactor,
		MaxFragments:              wrap.Resolver.MaxFragments,
	}
}

// SampleConfig converts the [Disk] and [Box] sections into the disk
// package's sampling config.
func (wrap *RunWrapper) SampleConfig() disk.SampleConfig {
	return disk.SampleConfig{
		Omega:              wrap.Disk.Omega,
		SurfaceDensity:     wrap.Disk.SurfaceDensity,
		ParticleDensity:    wrap.Disk.ParticleDensity,
		RadiusMin:          wrap.Disk.RadiusMin,
		RadiusMax:          wrap.Disk.RadiusMax,
		RadiusSlope:        wrap.Disk.RadiusSlope,
		VelocityDispersion: wrap.Disk.VelocityDispersion,
		ZDispersion:        wrap.Disk.ZDispersion,
		XWidth:             wrap.Box.XWidth,
		YWidth:             wrap.Box.YWidth,
	}
}

// PeriodicBox returns the [Box] section as a wrapping domain.
func (wrap *RunWrapper) PeriodicBox() *particle.Box {
	return &particle.Box{XWidth: wrap.Box.XWidth, YWidth: wrap.Box.YWidth}
}
