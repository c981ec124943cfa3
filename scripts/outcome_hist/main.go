/*outcome_hist plots the collision history of a run from its report
file: the cumulative number of events of each outcome class against
time. Usage:

	outcome_hist collision_report.txt hist.png
*/
package main

import (
	"fmt"
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/impact/report"
)

var codeNames = []string{
	"Bounce", "Merger", "Accretion / Hit-and-run",
	"Erosion", "Super-catastrophic",
}

var codeColors = []string{"k", "b", "g", "orange", "r"}

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Usage: %s report_file out_file", os.Args[0])
	}
	reportFile, outFile := os.Args[1], os.Args[2]

	recs, err := report.Read(reportFile)
	if err != nil { log.Fatal(err.Error()) }
	if len(recs) == 0 { log.Fatal("The report file holds no events.") }

	counts := make([]int, len(codeNames))
	fragTotal := 0
	for _, rec := range recs {
		if rec.Code < 0 || rec.Code >= len(codeNames) {
			log.Fatalf("Unrecognized outcome code %d.", rec.Code)
		}
		counts[rec.Code]++
		fragTotal += len(rec.Fragments)
	}

	fmt.Printf("# %6s %25s\n", "Count", "Outcome")
	for code, n := range counts {
		fmt.Printf("  %6d %25s\n", n, codeNames[code])
	}
	fmt.Printf("# %d fragments created in %d events.\n",
		fragTotal, len(recs))

	// The printed table above maps the colors to the outcomes.
	plt.Figure()
	for code := range codeNames {
		if counts[code] == 0 { continue }
		ts, ns := cumulative(recs, code)
		plt.Plot(ts, ns, plt.C(codeColors[code]), plt.LW(3))
	}
	plt.Title("Collision outcomes")
	plt.XLabel("$t$", plt.FontSize(16))
	plt.YLabel("$N(<t)$", plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(outFile)

	plt.Execute()
}

// cumulative returns the running count of events with the given
// outcome code as a step series over the report's time span.
func cumulative(recs []report.Record, code int) (ts, ns []float64) {
	n := 0.0
	for _, rec := range recs {
		if rec.Code != code { continue }
		// A point just before the event keeps the curve flat between
		// events.
		ts = append(ts, rec.Time, rec.Time)
		ns = append(ns, n, n+1)
		n++
	}
	return ts, ns
}
