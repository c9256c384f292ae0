// Package metadata defines the human-readable sidecar persisted
// alongside every container: creation context, world time, and
// free-form tags, stored as pretty-printed JSON.
package metadata

import "time"

// SnapshotMetadata is the sidecar document for one stored snapshot.
// Field names are fixed by the on-disk JSON schema and must not
// change: id, name, description, created_at, world_time,
// schema_version, custom_fields, tags.
type SnapshotMetadata struct {
	ID            string            `json:"id"`
	Name          string            `json:"name,omitempty"`
	Description   string            `json:"description,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	WorldTime     float64           `json:"world_time"`
	SchemaVersion uint32            `json:"schema_version"`
	CustomFields  map[string]string `json:"custom_fields"`
	Tags          []string          `json:"tags"`

	// ParentID records the checkpoint this snapshot was derived from,
	// when known at write time. The original schema does not carry a
	// parent link; this field is an additive, backward-compatible
	// extension so checkpoint lineage survives a save/load round trip
	// instead of being reset to none on every load.
	ParentID *string `json:"parent_id,omitempty"`
}

// New returns a SnapshotMetadata stamped with id, the current UTC time
// as CreatedAt, a schema version of 1, and empty CustomFields/Tags
// collections ready for the caller to populate.
func New(id string) SnapshotMetadata {
	return SnapshotMetadata{
		ID:            id,
		CreatedAt:     time.Now().UTC(),
		SchemaVersion: 1,
		CustomFields:  make(map[string]string),
		Tags:          make([]string, 0),
	}
}
