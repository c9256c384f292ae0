package replay

import (
	"fmt"
	"math"
	"sort"

	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/worldstate"
)

type timeSample struct {
	time     float64
	snapshot *worldstate.PackedSnapshot
}

// TimeTravel indexes snapshots by a floating-point world time instead
// of a checkpoint's linear position, so callers can seek directly to
// "the state nearest t" rather than stepping through a sequence.
type TimeTravel struct {
	samples     []timeSample
	currentTime float64
}

// NewTimeTravel returns an empty TimeTravel.
func NewTimeTravel() *TimeTravel {
	return &TimeTravel{}
}

// Record inserts snapshot at time t, keeping samples sorted ascending
// by time with ties broken by insertion order (a stable sort), and
// sets CurrentTime to t. NaN is rejected: an unordered time would
// poison every subsequent sort and binary search.
func (tt *TimeTravel) Record(t float64, snapshot *worldstate.PackedSnapshot) error {
	if math.IsNaN(t) {
		return fmt.Errorf("tx2pack: timetravel: non-finite time: %w", errs.ErrInvalidCheckpoint)
	}

	tt.samples = append(tt.samples, timeSample{time: t, snapshot: snapshot})
	sort.SliceStable(tt.samples, func(i, j int) bool {
		return tt.samples[i].time < tt.samples[j].time
	})
	tt.currentTime = t
	return nil
}

// nearestIndex returns the index of the sample nearest to target,
// breaking ties toward the later sample, or -1 if empty.
func (tt *TimeTravel) nearestIndex(target float64) int {
	n := len(tt.samples)
	if n == 0 {
		return -1
	}

	l := sort.Search(n, func(i int) bool { return tt.samples[i].time >= target })
	if l == 0 {
		return 0
	}
	if l == n {
		return n - 1
	}
	if math.Abs(tt.samples[l-1].time-target) < math.Abs(tt.samples[l].time-target) {
		return l - 1
	}
	return l
}

// FindSnapshotAtTime returns the index of the sample nearest target,
// or -1 if TimeTravel holds no samples.
func (tt *TimeTravel) FindSnapshotAtTime(target float64) int {
	return tt.nearestIndex(target)
}

// SeekToTime locates the sample nearest t, sets CurrentTime to that
// sample's own time, and returns its snapshot.
func (tt *TimeTravel) SeekToTime(t float64) *worldstate.PackedSnapshot {
	i := tt.nearestIndex(t)
	if i < 0 {
		return nil
	}
	tt.currentTime = tt.samples[i].time
	return tt.samples[i].snapshot
}

// GetSnapshotAtTime returns the snapshot nearest t without mutating
// CurrentTime.
func (tt *TimeTravel) GetSnapshotAtTime(t float64) *worldstate.PackedSnapshot {
	i := tt.nearestIndex(t)
	if i < 0 {
		return nil
	}
	return tt.samples[i].snapshot
}

// PruneBefore keeps only samples with time >= t.
func (tt *TimeTravel) PruneBefore(t float64) {
	kept := tt.samples[:0]
	for _, s := range tt.samples {
		if s.time >= t {
			kept = append(kept, s)
		}
	}
	tt.samples = kept
}

// PruneAfter keeps only samples with time <= t.
func (tt *TimeTravel) PruneAfter(t float64) {
	kept := tt.samples[:0]
	for _, s := range tt.samples {
		if s.time <= t {
			kept = append(kept, s)
		}
	}
	tt.samples = kept
}

// ForkAtTime returns a clone of the snapshot nearest t. The cursor's
// CurrentTime is unchanged.
func (tt *TimeTravel) ForkAtTime(t float64) *worldstate.PackedSnapshot {
	i := tt.nearestIndex(t)
	if i < 0 {
		return nil
	}
	return tt.samples[i].snapshot.Clone()
}

// Earliest returns the lowest recorded time and true, or (0, false) if
// TimeTravel holds no samples.
func (tt *TimeTravel) Earliest() (float64, bool) {
	if len(tt.samples) == 0 {
		return 0, false
	}
	return tt.samples[0].time, true
}

// Latest returns the highest recorded time and true, or (0, false) if
// TimeTravel holds no samples.
func (tt *TimeTravel) Latest() (float64, bool) {
	if len(tt.samples) == 0 {
		return 0, false
	}
	return tt.samples[len(tt.samples)-1].time, true
}

// CurrentTime returns the time most recently recorded or sought to.
func (tt *TimeTravel) CurrentTime() float64 {
	return tt.currentTime
}

// Clear drops every recorded sample and resets CurrentTime to 0.
func (tt *TimeTravel) Clear() {
	tt.samples = nil
	tt.currentTime = 0
}

// Len reports the number of recorded samples.
func (tt *TimeTravel) Len() int {
	return len(tt.samples)
}

// IsEmpty reports whether TimeTravel holds no samples.
func (tt *TimeTravel) IsEmpty() bool {
	return len(tt.samples) == 0
}

// Samples is an alias of Len, kept for naming parity with callers
// that think in terms of "how many samples" rather than "length".
func (tt *TimeTravel) Samples() int {
	return tt.Len()
}
