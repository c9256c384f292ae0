package worldstate

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/errs"
)

// StructOfArraysData is the column-major storage for one archetype's
// fields: three parallel sequences keyed by index — field_names,
// field_types (implicit in each FieldData's own FieldType()), and
// field_data.
type StructOfArraysData struct {
	FieldNames []string
	FieldData  []FieldArray
}

// RowCount returns the shared row count of every field column, or 0 if
// there are no fields.
func (d StructOfArraysData) RowCount() int {
	if len(d.FieldData) == 0 {
		return 0
	}
	return d.FieldData[0].Len()
}

// Validate checks the three invariants the data model requires:
// field_names is unique and has the same length as field_data, and
// every field_data column shares the same row count.
func (d StructOfArraysData) Validate() error {
	if len(d.FieldNames) != len(d.FieldData) {
		return fmt.Errorf("tx2pack: soa: %d field names but %d field columns: %w",
			len(d.FieldNames), len(d.FieldData), errs.ErrInvalidFormat)
	}

	seen := make(map[string]struct{}, len(d.FieldNames))
	for _, name := range d.FieldNames {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("tx2pack: soa: duplicate field name %q: %w", name, errs.ErrInvalidFormat)
		}
		seen[name] = struct{}{}
	}

	if len(d.FieldData) == 0 {
		return nil
	}

	rows := d.FieldData[0].Len()
	for i, col := range d.FieldData {
		if col.Len() != rows {
			return fmt.Errorf("tx2pack: soa: field %q has %d rows, expected %d: %w",
				d.FieldNames[i], col.Len(), rows, errs.ErrInvalidFormat)
		}
	}

	return nil
}
