package report

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/impact/collision"
	"github.com/phil-mansfield/impact/particle"
)

func TestWriteReadRoundTrip(t *testing.T) {
	fname := path.Join(t.TempDir(), "collision_report.txt")
	w, err := Create(fname)
	require.NoError(t, err)

	targ := &particle.Body{ID: 7, M: 2.5}
	proj := &particle.Body{ID: 12, M: 0.5}
	frags := []*particle.Body{
		{ID: 101, M: 0.125},
		{ID: 102, M: 0.125},
	}

	require.NoError(t, w.Record(
		1.5, collision.SuperCatastrophic, targ, proj, frags,
	))
	require.NoError(t, w.Record(
		2.5, collision.Merge, targ, proj, nil,
	))
	require.NoError(t, w.Close())

	recs, err := Read(fname)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, 1.5, recs[0].Time)
	assert.Equal(t, 4, recs[0].Code)
	assert.Equal(t, uint32(7), recs[0].TargetID)
	assert.InDelta(t, 2.5, recs[0].TargetMass, 1e-10)
	assert.Equal(t, uint32(12), recs[0].ProjectileID)
	require.Len(t, recs[0].Fragments, 2)
	assert.Equal(t, uint32(101), recs[0].Fragments[0].ID)
	assert.InDelta(t, 0.125, recs[0].Fragments[0].Mass, 1e-10)

	assert.Equal(t, 1, recs[1].Code)
	assert.Empty(t, recs[1].Fragments)
}

func TestOpenAppends(t *testing.T) {
	fname := path.Join(t.TempDir(), "collision_report.txt")
	targ := &particle.Body{ID: 1, M: 1}
	proj := &particle.Body{ID: 2, M: 1}

	w, err := Create(fname)
	require.NoError(t, err)
	require.NoError(t, w.Record(1, collision.Merge, targ, proj, nil))
	require.NoError(t, w.Close())

	w, err = Open(fname)
	require.NoError(t, err)
	require.NoError(t, w.Record(2, collision.Merge, targ, proj, nil))
	require.NoError(t, w.Close())

	recs, err := Read(fname)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 1.0, recs[0].Time)
	assert.Equal(t, 2.0, recs[1].Time)
}

func TestReadRejectsMalformedLines(t *testing.T) {
	fname := path.Join(t.TempDir(), "bad.txt")

	// A dangling fragment identifier with no mass.
	text := "1.0\t1\t3\t2.0\t4\t101\n"
	require.NoError(t, os.WriteFile(fname, []byte(text), 0666))
	_, err := Read(fname)
	assert.Error(t, err)

	text = "not-a-time\t1\t3\t2.0\t4\n"
	require.NoError(t, os.WriteFile(fname, []byte(text), 0666))
	_, err = Read(fname)
	assert.Error(t, err)
}
