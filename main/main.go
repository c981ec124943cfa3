package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/phil-mansfield/impact/collision"
	"github.com/phil-mansfield/impact/disk"
	"github.com/phil-mansfield/impact/io"
	"github.com/phil-mansfield/impact/particle"
	"github.com/phil-mansfield/impact/report"
)

func main() {
	var (
		runConfig     string
		exampleConfig string
	)

	flag.StringVar(
		&runConfig, "Run", "",
		"Configuration file for a collisional patch run.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Run'.",
	)

	flag.Parse()

	switch {
	case exampleConfig != "":
		if exampleConfig != "Run" {
			log.Fatalf(
				"Unrecognized config type '%s'. The only accepted "+
					"argument is 'Run'.", exampleConfig,
			)
		}
		fmt.Println(io.ExampleRunFile)
	case runConfig != "":
		wrap, err := io.ReadRunConfig(runConfig)
		if err != nil { log.Fatal(err.Error()) }
		runMain(wrap)
	default:
		log.Fatal(
			"Either -Run or -ExampleConfig must be given. " +
				"Run with -h for the full flag list.",
		)
	}
}

func runMain(wrap *io.RunWrapper) {
	rng := rand.New(rand.NewSource(wrap.Run.Seed))
	bodies, err := disk.Sample(wrap.SampleConfig(), rng)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Sampled %d bodies.", len(bodies))

	if wrap.Run.InitialFile != "" {
		err = io.WriteInitialPositions(wrap.Run.InitialFile, bodies)
		if err != nil { log.Fatal(err.Error()) }
	}

	store := particle.NewSlice()
	for i := range bodies {
		store.Append(bodies[i])
	}

	res, err := collision.NewResolver(wrap.ResolverConfig())
	if err != nil { log.Fatal(err.Error()) }
	res.Box = wrap.PeriodicBox()
	res.Bounce = disk.HardSphereBounce(disk.BridgesRestitution)
	// Fragment identifiers continue past the initial bodies'.
	res.Counter.Seed(uint32(len(bodies)))

	events := 0
	if wrap.Run.ReportFile != "" {
		w, err := report.Open(wrap.Run.ReportFile)
		if err != nil { log.Fatal(err.Error()) }
		defer func() {
			if err := w.Close(); err != nil { log.Fatal(err.Error()) }
		}()
		res.Recorder = countingRecorder{w, &events}
	}

	d, err := disk.NewDriver(store, res, wrap.Run.TimeStep)
	if err != nil { log.Fatal(err.Error()) }
	d.Box = wrap.PeriodicBox()
	d.Heartbeat = func(d *disk.Driver) error {
		if wrap.Run.HeartbeatSteps > 0 &&
			d.Steps%wrap.Run.HeartbeatSteps == 0 {
			log.Printf(
				"step %d  t = %.6g  N = %d  collisions = %d",
				d.Steps, d.Time, d.Store.Len(), events,
			)
		}
		if wrap.Run.PositionFile != "" && wrap.Run.SnapshotSteps > 0 &&
			d.Steps%wrap.Run.SnapshotSteps == 0 {
			return io.AppendSnapshot(wrap.Run.PositionFile, d.Store)
		}
		return nil
	}

	if err = d.Run(wrap.Run.SimulationTime); err != nil {
		log.Fatal(err.Error())
	}

	log.Printf(
		"Done: %d steps, %d collisions, %d bodies remain with total "+
			"mass %g.",
		d.Steps, events, store.Len(), store.TotalMass(),
	)
}

// countingRecorder wraps a report writer and counts the records that
// pass through it.
type countingRecorder struct {
	w      *report.Writer
	events *int
}

func (r countingRecorder) Record(
	time float64, outcome collision.Outcome,
	targ, proj *particle.Body, frags []*particle.Body,
) error {
	*r.events++
	return r.w.Record(time, outcome, targ, proj, frags)
}
