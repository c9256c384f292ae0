package container

import (
	"time"

	"github.com/IreGaddr/tx2-pack/format"
	"github.com/IreGaddr/tx2-pack/worldstate"
)

func timeFromUnixNano(nanos int64) time.Time {
	return time.Unix(0, nanos).UTC()
}

// wireSnapshot is the serialization-format-agnostic intermediate shape
// a PackedSnapshot's body is converted to before handing it to a
// concrete codec (Bincode or MessagePack). Keeping this conversion
// separate from both worldstate.PackedSnapshot and the concrete codecs
// means adding a third serialization format only requires a new
// encode/decode pair over this same shape.
type wireSnapshot struct {
	Archetypes     []wireArchetype          `msgpack:"archetypes"`
	EntityMetadata map[uint32]wireEntityRow `msgpack:"entity_metadata"`
}

type wireEntityRow struct {
	CreatedAt  int64    `msgpack:"created_at"`
	ModifiedAt int64    `msgpack:"modified_at"`
	Tags       []string `msgpack:"tags"`
}

type wireArchetype struct {
	ComponentID string        `msgpack:"component_id"`
	EntityIDs   []uint32      `msgpack:"entity_ids"`
	IsBlob      bool          `msgpack:"is_blob"`
	Blob        []byte        `msgpack:"blob,omitempty"`
	Columns     []wireColumn  `msgpack:"columns,omitempty"`
}

// wireColumn carries exactly one populated value slice, selected by
// Type. The other slices are left nil/empty and are omitted by
// MessagePack's omitempty; Bincode always writes Type explicitly so it
// never has to guess which slice is meaningful.
type wireColumn struct {
	Name string           `msgpack:"name"`
	Type format.FieldType `msgpack:"type"`

	Bool   []bool    `msgpack:"bool,omitempty"`
	I8     []int8    `msgpack:"i8,omitempty"`
	I16    []int16   `msgpack:"i16,omitempty"`
	I32    []int32   `msgpack:"i32,omitempty"`
	I64    []int64   `msgpack:"i64,omitempty"`
	U8     []uint8   `msgpack:"u8,omitempty"`
	U16    []uint16  `msgpack:"u16,omitempty"`
	U32    []uint32  `msgpack:"u32,omitempty"`
	U64    []uint64  `msgpack:"u64,omitempty"`
	F32    []float32 `msgpack:"f32,omitempty"`
	F64    []float64 `msgpack:"f64,omitempty"`
	Str    []string  `msgpack:"str,omitempty"`
	Bytes  [][]byte  `msgpack:"bytes,omitempty"`
}

func toWireSnapshot(snap worldstate.PackedSnapshot) wireSnapshot {
	w := wireSnapshot{
		Archetypes:     make([]wireArchetype, len(snap.Archetypes)),
		EntityMetadata: make(map[uint32]wireEntityRow, len(snap.EntityMetadata)),
	}

	for i, a := range snap.Archetypes {
		w.Archetypes[i] = toWireArchetype(a)
	}

	for id, meta := range snap.EntityMetadata {
		w.EntityMetadata[uint32(id)] = wireEntityRow{
			CreatedAt:  meta.CreatedAt.UnixNano(),
			ModifiedAt: meta.ModifiedAt.UnixNano(),
			Tags:       meta.Tags,
		}
	}

	return w
}

func toWireArchetype(a worldstate.ComponentArchetype) wireArchetype {
	wa := wireArchetype{
		ComponentID: string(a.ComponentID),
		EntityIDs:   make([]uint32, len(a.EntityIDs)),
	}
	for i, id := range a.EntityIDs {
		wa.EntityIDs[i] = uint32(id)
	}

	switch data := a.Data.(type) {
	case worldstate.BlobData:
		wa.IsBlob = true
		wa.Blob = data.Bytes
	case worldstate.SoAData:
		wa.Columns = make([]wireColumn, len(data.Data.FieldData))
		for i, col := range data.Data.FieldData {
			wa.Columns[i] = toWireColumn(data.Data.FieldNames[i], col)
		}
	}

	return wa
}

func toWireColumn(name string, col worldstate.FieldArray) wireColumn {
	wc := wireColumn{Name: name, Type: col.FieldType()}
	switch v := col.(type) {
	case worldstate.BoolArray:
		wc.Bool = v
	case worldstate.I8Array:
		wc.I8 = v
	case worldstate.I16Array:
		wc.I16 = v
	case worldstate.I32Array:
		wc.I32 = v
	case worldstate.I64Array:
		wc.I64 = v
	case worldstate.U8Array:
		wc.U8 = v
	case worldstate.U16Array:
		wc.U16 = v
	case worldstate.U32Array:
		wc.U32 = v
	case worldstate.U64Array:
		wc.U64 = v
	case worldstate.F32Array:
		wc.F32 = v
	case worldstate.F64Array:
		wc.F64 = v
	case worldstate.StringArray:
		wc.Str = v
	case worldstate.BytesArray:
		wc.Bytes = v
	}
	return wc
}

func fromWireColumn(wc wireColumn) worldstate.FieldArray {
	switch wc.Type {
	case format.FieldBool:
		return worldstate.BoolArray(wc.Bool)
	case format.FieldI8:
		return worldstate.I8Array(wc.I8)
	case format.FieldI16:
		return worldstate.I16Array(wc.I16)
	case format.FieldI32:
		return worldstate.I32Array(wc.I32)
	case format.FieldI64:
		return worldstate.I64Array(wc.I64)
	case format.FieldU8:
		return worldstate.U8Array(wc.U8)
	case format.FieldU16:
		return worldstate.U16Array(wc.U16)
	case format.FieldU32:
		return worldstate.U32Array(wc.U32)
	case format.FieldU64:
		return worldstate.U64Array(wc.U64)
	case format.FieldF32:
		return worldstate.F32Array(wc.F32)
	case format.FieldF64:
		return worldstate.F64Array(wc.F64)
	case format.FieldString:
		return worldstate.StringArray(wc.Str)
	case format.FieldBytes:
		return worldstate.BytesArray(wc.Bytes)
	default:
		return nil
	}
}

func fromWireArchetype(wa wireArchetype) worldstate.ComponentArchetype {
	ids := make([]worldstate.EntityID, len(wa.EntityIDs))
	for i, id := range wa.EntityIDs {
		ids[i] = worldstate.EntityID(id)
	}

	a := worldstate.ComponentArchetype{
		ComponentID: worldstate.ComponentID(wa.ComponentID),
		EntityIDs:   ids,
	}

	if wa.IsBlob {
		a.Data = worldstate.BlobData{Bytes: wa.Blob}
		return a
	}

	names := make([]string, len(wa.Columns))
	cols := make([]worldstate.FieldArray, len(wa.Columns))
	for i, wc := range wa.Columns {
		names[i] = wc.Name
		cols[i] = fromWireColumn(wc)
	}
	a.Data = worldstate.SoAData{Data: worldstate.StructOfArraysData{
		FieldNames: names,
		FieldData:  cols,
	}}

	return a
}

func fromWireSnapshot(w wireSnapshot, header format.Header) worldstate.PackedSnapshot {
	snap := worldstate.PackedSnapshot{
		Header:         header,
		Archetypes:     make([]worldstate.ComponentArchetype, len(w.Archetypes)),
		EntityMetadata: make(worldstate.EntityMetadataMap, len(w.EntityMetadata)),
	}

	for i, wa := range w.Archetypes {
		snap.Archetypes[i] = fromWireArchetype(wa)
	}

	for id, row := range w.EntityMetadata {
		snap.EntityMetadata[worldstate.EntityID(id)] = worldstate.EntityMetadata{
			CreatedAt:  timeFromUnixNano(row.CreatedAt),
			ModifiedAt: timeFromUnixNano(row.ModifiedAt),
			Tags:       row.Tags,
		}
	}

	return snap
}
