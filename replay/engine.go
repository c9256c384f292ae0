// Package replay provides two cursors over recorded world state: an
// index-ordered ReplayEngine for stepping through a chain one
// checkpoint at a time, and a time-indexed TimeTravel over snapshots
// for seeking by world time instead of position.
package replay

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/checkpoint"
	"github.com/IreGaddr/tx2-pack/errs"
)

// ReplayEngine is an ordered, in-memory collection of checkpoints with
// a current index and an optional wraparound (loop) policy.
type ReplayEngine struct {
	checkpoints []*checkpoint.Checkpoint
	index       int
	loopReplay  bool
}

// NewReplayEngine returns an empty ReplayEngine. loopReplay controls
// whether Next/Previous wrap around at the ends instead of saturating.
func NewReplayEngine(loopReplay bool) *ReplayEngine {
	return &ReplayEngine{loopReplay: loopReplay}
}

// AddCheckpoint appends cp to the end of the cursor.
func (e *ReplayEngine) AddCheckpoint(cp *checkpoint.Checkpoint) {
	e.checkpoints = append(e.checkpoints, cp)
}

// LoadFromManager clears the cursor, then walks mgr's chain in order
// asking it to materialize each id, appending every result. The index
// resets to 0.
func (e *ReplayEngine) LoadFromManager(mgr *checkpoint.Manager) error {
	e.Clear()
	for _, id := range mgr.Chain() {
		cp, err := mgr.Load(id)
		if err != nil {
			return err
		}
		e.checkpoints = append(e.checkpoints, cp)
	}
	e.index = 0
	return nil
}

// Current returns the checkpoint at the cursor's index, or nil if the
// cursor is empty.
func (e *ReplayEngine) Current() *checkpoint.Checkpoint {
	if e.IsEmpty() {
		return nil
	}
	return e.checkpoints[e.index]
}

// Next advances the cursor by one. At the last element it wraps to 0
// if loopReplay is set; otherwise it returns nil and leaves the index
// at len-1.
func (e *ReplayEngine) Next() *checkpoint.Checkpoint {
	if e.IsEmpty() {
		return nil
	}
	if e.index == len(e.checkpoints)-1 {
		if !e.loopReplay {
			return nil
		}
		e.index = 0
		return e.Current()
	}
	e.index++
	return e.Current()
}

// Previous retreats the cursor by one. At the first element it wraps
// to len-1 if loopReplay is set; otherwise it returns nil and leaves
// the index at 0.
func (e *ReplayEngine) Previous() *checkpoint.Checkpoint {
	if e.IsEmpty() {
		return nil
	}
	if e.index == 0 {
		if !e.loopReplay {
			return nil
		}
		e.index = len(e.checkpoints) - 1
		return e.Current()
	}
	e.index--
	return e.Current()
}

// Seek sets the cursor's index to i.
func (e *ReplayEngine) Seek(i int) error {
	if i < 0 || i >= len(e.checkpoints) {
		return fmt.Errorf("tx2pack: replay: index %d out of bounds for length %d: %w", i, len(e.checkpoints), errs.ErrInvalidCheckpoint)
	}
	e.index = i
	return nil
}

// SeekToStart moves the cursor to index 0. A no-op on an empty cursor.
func (e *ReplayEngine) SeekToStart() {
	e.index = 0
}

// SeekToEnd moves the cursor to its last index. A no-op on an empty
// cursor (the index saturates to 0).
func (e *ReplayEngine) SeekToEnd() {
	if e.IsEmpty() {
		e.index = 0
		return
	}
	e.index = len(e.checkpoints) - 1
}

// IsAtStart reports whether the cursor is at index 0.
func (e *ReplayEngine) IsAtStart() bool {
	return e.index == 0
}

// IsAtEnd reports whether the cursor is at its last index, saturating
// to true on an empty cursor.
func (e *ReplayEngine) IsAtEnd() bool {
	if e.IsEmpty() {
		return true
	}
	return e.index == len(e.checkpoints)-1
}

// Index returns the cursor's current index.
func (e *ReplayEngine) Index() int {
	return e.index
}

// Len returns the number of checkpoints held by the cursor.
func (e *ReplayEngine) Len() int {
	return len(e.checkpoints)
}

// IsEmpty reports whether the cursor holds no checkpoints.
func (e *ReplayEngine) IsEmpty() bool {
	return len(e.checkpoints) == 0
}

// Clear empties the cursor and resets its index to 0.
func (e *ReplayEngine) Clear() {
	e.checkpoints = nil
	e.index = 0
}
