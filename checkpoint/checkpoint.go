// Package checkpoint provides a named, chained, cached set of
// snapshots on top of the store package: create_checkpoint links each
// new checkpoint to the manager's current tail, forming a linear
// history that can be pruned or cleared as a unit.
package checkpoint

import (
	"github.com/IreGaddr/tx2-pack/metadata"
	"github.com/IreGaddr/tx2-pack/worldstate"
)

// Checkpoint is a named snapshot plus its metadata and optional parent
// link. It is the unit of persistence the Manager operates on.
type Checkpoint struct {
	ID       string
	Snapshot *worldstate.PackedSnapshot
	Metadata metadata.SnapshotMetadata
	ParentID *string
}
