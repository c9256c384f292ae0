package worldstate

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/errs"
)

// ComponentData is the tagged union of shapes a component's data can
// take: structured columns (SoAData) or an opaque escape hatch
// (BlobData) for custom encodings this package doesn't know about.
type ComponentData interface {
	isComponentData()
	// RowCount reports the logical row count this data represents, 0
	// for BlobData since an opaque blob carries no row structure.
	RowCount() int
}

// SoAData wraps column-major field storage as ComponentData.
type SoAData struct {
	Data StructOfArraysData
}

func (SoAData) isComponentData() {}

func (d SoAData) RowCount() int { return d.Data.RowCount() }

// BlobData wraps an opaque byte buffer as ComponentData, for
// components whose encoding this package does not interpret.
type BlobData struct {
	Bytes []byte
}

func (BlobData) isComponentData() {}

func (d BlobData) RowCount() int { return 0 }

// ComponentArchetype groups every entity carrying a given component
// kind with that component's data.
type ComponentArchetype struct {
	ComponentID ComponentID
	EntityIDs   []EntityID
	Data        ComponentData
}

// Validate checks that, for SoA data, the entity id count matches the
// row count and that no entity id repeats within the archetype.
func (a ComponentArchetype) Validate() error {
	if soa, ok := a.Data.(SoAData); ok {
		if err := soa.Data.Validate(); err != nil {
			return err
		}
		if len(a.EntityIDs) != soa.Data.RowCount() {
			return fmt.Errorf("tx2pack: archetype %q: %d entity ids but %d rows: %w",
				a.ComponentID, len(a.EntityIDs), soa.Data.RowCount(), errs.ErrInvalidFormat)
		}
	}

	seen := make(map[EntityID]struct{}, len(a.EntityIDs))
	for _, id := range a.EntityIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("tx2pack: archetype %q: duplicate entity id %d: %w",
				a.ComponentID, id, errs.ErrInvalidFormat)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// Clone returns an independent copy of the archetype: entity ids and,
// for SoAData, every column are copied rather than shared.
func (a ComponentArchetype) Clone() ComponentArchetype {
	out := ComponentArchetype{
		ComponentID: a.ComponentID,
		EntityIDs:   append([]EntityID(nil), a.EntityIDs...),
	}

	switch d := a.Data.(type) {
	case SoAData:
		cols := make([]FieldArray, len(d.Data.FieldData))
		for i, col := range d.Data.FieldData {
			cols[i] = cloneFieldArray(col)
		}
		out.Data = SoAData{Data: StructOfArraysData{
			FieldNames: append([]string(nil), d.Data.FieldNames...),
			FieldData:  cols,
		}}
	case BlobData:
		out.Data = BlobData{Bytes: append([]byte(nil), d.Bytes...)}
	default:
		out.Data = a.Data
	}

	return out
}
