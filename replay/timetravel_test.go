package replay

import (
	"math"
	"testing"

	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/format"
	"github.com/IreGaddr/tx2-pack/worldstate"
	"github.com/stretchr/testify/require"
)

func snapshotAt(tag string) *worldstate.PackedSnapshot {
	snap := &worldstate.PackedSnapshot{
		Header: format.NewHeader(),
		Archetypes: []worldstate.ComponentArchetype{{
			ComponentID: worldstate.ComponentID(tag),
			EntityIDs:   []worldstate.EntityID{1},
			Data: worldstate.SoAData{Data: worldstate.StructOfArraysData{
				FieldNames: []string{"tag"},
				FieldData:  []worldstate.FieldArray{worldstate.StringArray{tag}},
			}},
		}},
	}
	snap.RecomputeCounts()
	return snap
}

func TestTimeTravelEmpty(t *testing.T) {
	tt := NewTimeTravel()
	require.True(t, tt.IsEmpty())
	require.Equal(t, -1, tt.FindSnapshotAtTime(0))
	require.Nil(t, tt.GetSnapshotAtTime(0))
	_, ok := tt.Earliest()
	require.False(t, ok)
}

func TestTimeTravelRecordKeepsSortedByTime(t *testing.T) {
	tt := NewTimeTravel()
	require.NoError(t, tt.Record(20, snapshotAt("t20")))
	require.NoError(t, tt.Record(0, snapshotAt("t0")))
	require.NoError(t, tt.Record(10, snapshotAt("t10")))

	require.Equal(t, 3, tt.Len())
	earliest, _ := tt.Earliest()
	latest, _ := tt.Latest()
	require.Equal(t, 0.0, earliest)
	require.Equal(t, 20.0, latest)
	require.Equal(t, 10.0, tt.CurrentTime())
}

func TestTimeTravelRejectsNaN(t *testing.T) {
	tt := NewTimeTravel()
	err := tt.Record(math.NaN(), snapshotAt("nan"))
	require.ErrorIs(t, err, errs.ErrInvalidCheckpoint)
	require.True(t, tt.IsEmpty())
}

func TestTimeTravelFindNearestExactMatch(t *testing.T) {
	tt := NewTimeTravel()
	for _, tm := range []float64{0, 10, 20, 30, 40} {
		require.NoError(t, tt.Record(tm, snapshotAt("x")))
	}

	require.Equal(t, 2, tt.FindSnapshotAtTime(20))
}

func TestTimeTravelFindNearestBeforeFirst(t *testing.T) {
	tt := NewTimeTravel()
	for _, tm := range []float64{10, 20, 30} {
		require.NoError(t, tt.Record(tm, snapshotAt("x")))
	}

	require.Equal(t, 0, tt.FindSnapshotAtTime(-5))
}

func TestTimeTravelFindNearestAfterLast(t *testing.T) {
	tt := NewTimeTravel()
	for _, tm := range []float64{10, 20, 30} {
		require.NoError(t, tt.Record(tm, snapshotAt("x")))
	}

	require.Equal(t, 2, tt.FindSnapshotAtTime(100))
}

func TestTimeTravelTieBreaksTowardLaterSample(t *testing.T) {
	tt := NewTimeTravel()
	for _, tm := range []float64{0, 10, 20, 30, 40} {
		require.NoError(t, tt.Record(tm, snapshotAt("x")))
	}

	// 25 is equidistant between 20 and 30; the later sample wins.
	i := tt.FindSnapshotAtTime(25)
	require.Equal(t, 3, i)
}

func TestTimeTravelSeekToTimeUpdatesCurrentTime(t *testing.T) {
	tt := NewTimeTravel()
	for _, tm := range []float64{0, 10, 20, 30, 40} {
		require.NoError(t, tt.Record(tm, snapshotAt("x")))
	}

	snap := tt.SeekToTime(35)
	require.NotNil(t, snap)
	require.Equal(t, 40.0, tt.CurrentTime())
}

func TestTimeTravelGetSnapshotAtTimeDoesNotMutateCurrentTime(t *testing.T) {
	tt := NewTimeTravel()
	require.NoError(t, tt.Record(0, snapshotAt("x")))
	require.NoError(t, tt.Record(10, snapshotAt("x")))

	before := tt.CurrentTime()
	tt.GetSnapshotAtTime(10)
	require.Equal(t, before, tt.CurrentTime())
}

func TestTimeTravelPruneBeforeAndAfter(t *testing.T) {
	tt := NewTimeTravel()
	for _, tm := range []float64{0, 10, 20, 30, 40} {
		require.NoError(t, tt.Record(tm, snapshotAt("x")))
	}

	tt.PruneBefore(25)
	require.Equal(t, 2, tt.Len())
	earliest, _ := tt.Earliest()
	require.Equal(t, 30.0, earliest)

	tt.PruneAfter(30)
	require.Equal(t, 1, tt.Len())
	latest, _ := tt.Latest()
	require.Equal(t, 30.0, latest)
}

// TestTimeTravelForkScenario covers the time-travel fork scenario:
// record snapshots at t in {0,10,20,30,40}; fork_at_time(20) returns a
// clone equal to the original at 20; subsequent prune_before(25)
// leaves {30,40}; current_time after seek_to_time(35) lands on 40,
// matching the later-sample tie-break rule used throughout.
func TestTimeTravelForkScenario(t *testing.T) {
	tt := NewTimeTravel()
	original := snapshotAt("at20")
	for _, tm := range []float64{0, 10, 20, 30, 40} {
		if tm == 20 {
			require.NoError(t, tt.Record(tm, original))
			continue
		}
		require.NoError(t, tt.Record(tm, snapshotAt("x")))
	}

	forked := tt.ForkAtTime(20)
	require.NotNil(t, forked)
	require.Equal(t, original.Archetypes[0].ComponentID, forked.Archetypes[0].ComponentID)
	require.NotSame(t, original, forked)

	tt.PruneBefore(25)
	require.Equal(t, 2, tt.Len())

	tt.SeekToTime(35)
	require.Equal(t, 40.0, tt.CurrentTime())
}

func TestTimeTravelClear(t *testing.T) {
	tt := NewTimeTravel()
	require.NoError(t, tt.Record(5, snapshotAt("x")))

	tt.Clear()
	require.True(t, tt.IsEmpty())
	require.Equal(t, 0.0, tt.CurrentTime())
}
