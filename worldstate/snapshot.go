// Package worldstate holds the in-memory entity/component world
// model: the columnar archetype storage a container serializes, and
// the header-consistency invariants a PackedSnapshot must satisfy
// before it is handed to the container writer.
package worldstate

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/format"
)

// PackedSnapshot is the complete, self-contained world state the
// container codec serializes: a header plus the archetypes and
// per-entity metadata it describes.
type PackedSnapshot struct {
	Header         format.Header
	Archetypes     []ComponentArchetype
	EntityMetadata EntityMetadataMap
}

// Validate checks archetype-level invariants and recomputes the
// advisory header counts, returning an error the moment any of them
// disagree with what the archetypes actually contain.
func (s PackedSnapshot) Validate() error {
	seenComponents := make(map[ComponentID]struct{}, len(s.Archetypes))
	seenEntities := make(map[EntityID]struct{})

	for _, archetype := range s.Archetypes {
		if err := archetype.Validate(); err != nil {
			return err
		}

		if _, dup := seenComponents[archetype.ComponentID]; dup {
			return fmt.Errorf("tx2pack: snapshot: duplicate component id %q: %w", archetype.ComponentID, errs.ErrInvalidFormat)
		}
		seenComponents[archetype.ComponentID] = struct{}{}

		for _, id := range archetype.EntityIDs {
			seenEntities[id] = struct{}{}
		}
	}

	if int(s.Header.ArchetypeCount) != len(s.Archetypes) {
		return fmt.Errorf("tx2pack: snapshot: header archetype_count=%d, actual=%d: %w",
			s.Header.ArchetypeCount, len(s.Archetypes), errs.ErrInvalidFormat)
	}
	if int(s.Header.ComponentCount) != len(seenComponents) {
		return fmt.Errorf("tx2pack: snapshot: header component_count=%d, actual=%d: %w",
			s.Header.ComponentCount, len(seenComponents), errs.ErrInvalidFormat)
	}
	if int(s.Header.EntityCount) != len(seenEntities) {
		return fmt.Errorf("tx2pack: snapshot: header entity_count=%d, actual=%d: %w",
			s.Header.EntityCount, len(seenEntities), errs.ErrInvalidFormat)
	}

	return nil
}

// RecomputeCounts overwrites the snapshot's header entity/component/
// archetype counts from the actual archetype contents. Callers build a
// snapshot's archetypes first, then call this before Validate or
// before handing the snapshot to the container writer.
func (s *PackedSnapshot) RecomputeCounts() {
	seenComponents := make(map[ComponentID]struct{}, len(s.Archetypes))
	seenEntities := make(map[EntityID]struct{})

	for _, archetype := range s.Archetypes {
		seenComponents[archetype.ComponentID] = struct{}{}
		for _, id := range archetype.EntityIDs {
			seenEntities[id] = struct{}{}
		}
	}

	s.Header.ArchetypeCount = uint64(len(s.Archetypes))
	s.Header.ComponentCount = uint64(len(seenComponents))
	s.Header.EntityCount = uint64(len(seenEntities))
}

// Clone returns a deep copy of the snapshot: its header by value, and
// independent copies of every archetype and entity metadata entry, so
// mutating the clone never affects the original.
func (s PackedSnapshot) Clone() *PackedSnapshot {
	out := &PackedSnapshot{Header: s.Header}

	if s.Archetypes != nil {
		out.Archetypes = make([]ComponentArchetype, len(s.Archetypes))
		for i, a := range s.Archetypes {
			out.Archetypes[i] = a.Clone()
		}
	}

	if s.EntityMetadata != nil {
		out.EntityMetadata = make(EntityMetadataMap, len(s.EntityMetadata))
		for id, meta := range s.EntityMetadata {
			out.EntityMetadata[id] = EntityMetadata{
				CreatedAt:  meta.CreatedAt,
				ModifiedAt: meta.ModifiedAt,
				Tags:       append([]string(nil), meta.Tags...),
			}
		}
	}

	return out
}
