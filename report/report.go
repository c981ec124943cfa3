/*package report logs resolved collisions to a tab-separated text
file, one line per event, and reads such files back. Lines are
ragged: after the five fixed columns comes one identifier and mass
pair per fragment the event created.
*/
package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phil-mansfield/impact/collision"
	"github.com/phil-mansfield/impact/particle"
)

// A Fragment is one body created by a collision.
type Fragment struct {
	ID   uint32
	Mass float64
}

// A Record is one resolved collision.
type Record struct {
	Time         float64
	Code         int
	TargetID     uint32
	TargetMass   float64
	ProjectileID uint32
	Fragments    []Fragment
}

// A Writer appends collision records to a text file. It satisfies
// collision.Recorder, so it can be handed straight to a Resolver.
type Writer struct {
	f   *os.File
	buf *bufio.Writer
}

// Create truncates fname and returns a Writer for it.
func Create(fname string) (*Writer, error) {
	f, err := os.Create(fname)
	if err != nil {
		return nil, err
	}
	return &Writer{f, bufio.NewWriter(f)}, nil
}

// Open opens fname for appending, creating it if needed. Use this
// when restarting a run so earlier records survive.
func Open(fname string) (*Writer, error) {
	f, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, err
	}
	return &Writer{f, bufio.NewWriter(f)}, nil
}

// Record writes one line for a resolved collision. The target's mass
// is its post-collision mass.
func (w *Writer) Record(
	time float64, outcome collision.Outcome,
	targ, proj *particle.Body, frags []*particle.Body,
) error {
	_, err := fmt.Fprintf(w.buf, "%e\t%d\t%d\t%e\t%d\t",
		time, outcome.ReportCode(), targ.ID, targ.M, proj.ID)
	if err != nil {
		return err
	}
	for _, f := range frags {
		if _, err = fmt.Fprintf(w.buf, "%d\t%e\t", f.ID, f.M); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w.buf, "\n")
	return err
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// Read parses every record in fname. Blank lines are skipped.
func Read(fname string) ([]Record, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs := []Record{}
	scan := bufio.NewScanner(f)
	for n := 1; scan.Scan(); n++ {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %v", fname, n, err)
		}
		recs = append(recs, rec)
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

func parseLine(line string) (Record, error) {
	toks := strings.Fields(line)
	if len(toks) < 5 {
		return Record{}, fmt.Errorf(
			"%d columns, but a record has at least 5", len(toks),
		)
	}
	if (len(toks)-5)%2 != 0 {
		return Record{}, fmt.Errorf(
			"%d columns cannot hold whole fragment pairs", len(toks),
		)
	}

	rec := Record{}
	var err error
	if rec.Time, err = strconv.ParseFloat(toks[0], 64); err != nil {
		return Record{}, fmt.Errorf("time %q: %v", toks[0], err)
	}
	if rec.Code, err = strconv.Atoi(toks[1]); err != nil {
		return Record{}, fmt.Errorf("outcome code %q: %v", toks[1], err)
	}
	if rec.TargetID, err = parseID(toks[2]); err != nil {
		return Record{}, err
	}
	if rec.TargetMass, err = strconv.ParseFloat(toks[3], 64); err != nil {
		return Record{}, fmt.Errorf("target mass %q: %v", toks[3], err)
	}
	if rec.ProjectileID, err = parseID(toks[4]); err != nil {
		return Record{}, err
	}

	for i := 5; i < len(toks); i += 2 {
		frag := Fragment{}
		if frag.ID, err = parseID(toks[i]); err != nil {
			return Record{}, err
		}
		frag.Mass, err = strconv.ParseFloat(toks[i+1], 64)
		if err != nil {
			return Record{}, fmt.Errorf(
				"fragment mass %q: %v", toks[i+1], err,
			)
		}
		rec.Fragments = append(rec.Fragments, frag)
	}
	return rec, nil
}

func parseID(tok string) (uint32, error) {
	id, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("identifier %q: %v", tok, err)
	}
	return uint32(id), nil
}
