/*package io reads the run configuration and writes the run's text
outputs: the sampled initial conditions and periodic position
snapshots. Collision records have their own package.
*/
package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/impact/particle"
)

// WriteInitialPositions writes one "x y r" line per body. The file is
// meant for plotting the sampled patch, so only the in-plane position
// and the radius are kept.
func WriteInitialPositions(fname string, bodies []particle.Body) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	for i := range bodies {
		b := &bodies[i]
		_, err = fmt.Fprintf(buf, "%f %f %f\n", b.X[0], b.X[1], b.R)
		if err != nil {
			return err
		}
	}
	return buf.Flush()
}

// ReadInitialPositions reads a file written by WriteInitialPositions.
func ReadInitialPositions(fname string) (xs, ys, rs []float64, err error) {
	// table reports failures by panicking; convert them back to errors.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	cols := table.TextFile(fname).ReadFloat64s([]int{0, 1, 2})
	return cols[0], cols[1], cols[2], nil
}

// AppendSnapshot appends one block of "id x y z vx vy vz m r" lines
// to fname, one line per body, followed by a blank line so successive
// snapshots can be told apart.
func AppendSnapshot(fname string, store *particle.Slice) error {
	f, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	for i := 0; i < store.Len(); i++ {
		b := store.At(i)
		_, err = fmt.Fprintf(buf, "%d %e %e %e %e %e %e %e %e\n",
			b.ID, b.X[0], b.X[1], b.X[2],
			b.V[0], b.V[1], b.V[2], b.M, b.R)
		if err != nil {
			return err
		}
	}
	if _, err = fmt.Fprintf(buf, "\n"); err != nil {
		return err
	}
	return buf.Flush()
}
