package worldstate

import "time"

// EntityID is an opaque identifier supplied by the upstream world. This
// package never generates or interprets its value, only stores and
// compares it.
type EntityID uint32

// ComponentID names a component kind, e.g. "Position" or "Health".
type ComponentID string

// EntityMetadata is a per-entity sidecar record, independent of any
// particular component's data.
type EntityMetadata struct {
	CreatedAt  time.Time
	ModifiedAt time.Time
	Tags       []string
}

// EntityMetadataMap is an unordered mapping from entity to its sidecar
// metadata, keyed uniquely by EntityID.
type EntityMetadataMap map[EntityID]EntityMetadata
