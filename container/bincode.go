package container

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/format"
)

// bincodeWriter is a minimal little-endian, length-prefixed binary
// encoder: fixed-width primitives for scalars, a u64 length prefix for
// every variable-length sequence. It is deliberately narrow — just
// wide enough to encode a wireSnapshot — rather than a general-purpose
// serializer.
type bincodeWriter struct {
	buf []byte
}

func newBincodeWriter(sizeHint int) *bincodeWriter {
	return &bincodeWriter{buf: make([]byte, 0, sizeHint)}
}

func (w *bincodeWriter) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *bincodeWriter) boolean(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}
func (w *bincodeWriter) u32(v uint32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }
func (w *bincodeWriter) u64(v uint64) { w.buf = binary.LittleEndian.AppendUint64(w.buf, v) }
func (w *bincodeWriter) i64(v int64)  { w.u64(uint64(v)) }
func (w *bincodeWriter) f32(v float32) { w.u32(math.Float32bits(v)) }
func (w *bincodeWriter) f64(v float64) { w.u64(math.Float64bits(v)) }

func (w *bincodeWriter) bytes(b []byte) {
	w.u64(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *bincodeWriter) str(s string) { w.bytes([]byte(s)) }

func (w *bincodeWriter) strs(ss []string) {
	w.u64(uint64(len(ss)))
	for _, s := range ss {
		w.str(s)
	}
}

func (w *bincodeWriter) u32s(vs []uint32) {
	w.u64(uint64(len(vs)))
	for _, v := range vs {
		w.u32(v)
	}
}

// bincodeReader mirrors bincodeWriter for decoding. Every read method
// returns errs.ErrDeserialization once the buffer is exhausted.
type bincodeReader struct {
	buf []byte
	off int
}

func newBincodeReader(buf []byte) *bincodeReader {
	return &bincodeReader{buf: buf}
}

func (r *bincodeReader) need(n int) error {
	if len(r.buf)-r.off < n {
		return fmt.Errorf("tx2pack: bincode: need %d bytes, have %d: %w", n, len(r.buf)-r.off, errs.ErrDeserialization)
	}
	return nil
}

func (r *bincodeReader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *bincodeReader) boolean() (bool, error) {
	v, err := r.u8()
	return v != 0, err
}

func (r *bincodeReader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *bincodeReader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *bincodeReader) i64() (int64, error) {
	v, err := r.u64()
	return int64(v), err
}

func (r *bincodeReader) f32() (float32, error) {
	v, err := r.u32()
	return math.Float32frombits(v), err
}

func (r *bincodeReader) f64() (float64, error) {
	v, err := r.u64()
	return math.Float64frombits(v), err
}

func (r *bincodeReader) bytes() ([]byte, error) {
	n, err := r.u64()
	if err != nil {
		return nil, err
	}
	if n > uint64(len(r.buf)-r.off) {
		return nil, fmt.Errorf("tx2pack: bincode: need %d bytes, have %d: %w", n, len(r.buf)-r.off, errs.ErrDeserialization)
	}
	b := make([]byte, n)
	copy(b, r.buf[r.off:r.off+int(n)])
	r.off += int(n)
	return b, nil
}

func (r *bincodeReader) str() (string, error) {
	b, err := r.bytes()
	return string(b), err
}

func (r *bincodeReader) strs() ([]string, error) {
	n, err := r.u64()
	if err != nil {
		return nil, err
	}
	if n > uint64(len(r.buf)-r.off)/8 {
		return nil, fmt.Errorf("tx2pack: bincode: %d strings cannot fit in %d bytes: %w", n, len(r.buf)-r.off, errs.ErrDeserialization)
	}
	out := make([]string, n)
	for i := range out {
		out[i], err = r.str()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *bincodeReader) u32s() ([]uint32, error) {
	n, err := r.u64()
	if err != nil {
		return nil, err
	}
	if n > uint64(len(r.buf)-r.off)/4 {
		return nil, fmt.Errorf("tx2pack: bincode: %d u32 values cannot fit in %d bytes: %w", n, len(r.buf)-r.off, errs.ErrDeserialization)
	}
	out := make([]uint32, n)
	for i := range out {
		out[i], err = r.u32()
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeBincode(snap wireSnapshot) []byte {
	w := newBincodeWriter(4096)

	w.u64(uint64(len(snap.Archetypes)))
	for _, a := range snap.Archetypes {
		encodeArchetypeBincode(w, a)
	}

	w.u64(uint64(len(snap.EntityMetadata)))
	for id, row := range snap.EntityMetadata {
		w.u32(id)
		w.i64(row.CreatedAt)
		w.i64(row.ModifiedAt)
		w.strs(row.Tags)
	}

	return w.buf
}

func encodeArchetypeBincode(w *bincodeWriter, a wireArchetype) {
	w.str(a.ComponentID)
	w.u32s(a.EntityIDs)
	w.boolean(a.IsBlob)

	if a.IsBlob {
		w.bytes(a.Blob)
		return
	}

	w.u64(uint64(len(a.Columns)))
	for _, col := range a.Columns {
		encodeColumnBincode(w, col)
	}
}

func encodeColumnBincode(w *bincodeWriter, col wireColumn) {
	w.str(col.Name)
	w.u8(uint8(col.Type))

	switch col.Type {
	case format.FieldBool:
		w.u64(uint64(len(col.Bool)))
		for _, v := range col.Bool {
			w.boolean(v)
		}
	case format.FieldI8:
		w.u64(uint64(len(col.I8)))
		for _, v := range col.I8 {
			w.u8(uint8(v))
		}
	case format.FieldI16:
		w.u64(uint64(len(col.I16)))
		for _, v := range col.I16 {
			w.u32(uint32(uint16(v)))
		}
	case format.FieldI32:
		w.u64(uint64(len(col.I32)))
		for _, v := range col.I32 {
			w.u32(uint32(v))
		}
	case format.FieldI64:
		w.u64(uint64(len(col.I64)))
		for _, v := range col.I64 {
			w.i64(v)
		}
	case format.FieldU8:
		w.bytes(col.U8)
	case format.FieldU16:
		w.u64(uint64(len(col.U16)))
		for _, v := range col.U16 {
			w.u32(uint32(v))
		}
	case format.FieldU32:
		w.u32s(col.U32)
	case format.FieldU64:
		w.u64(uint64(len(col.U64)))
		for _, v := range col.U64 {
			w.u64(v)
		}
	case format.FieldF32:
		w.u64(uint64(len(col.F32)))
		for _, v := range col.F32 {
			w.f32(v)
		}
	case format.FieldF64:
		w.u64(uint64(len(col.F64)))
		for _, v := range col.F64 {
			w.f64(v)
		}
	case format.FieldString:
		w.strs(col.Str)
	case format.FieldBytes:
		w.u64(uint64(len(col.Bytes)))
		for _, v := range col.Bytes {
			w.bytes(v)
		}
	}
}

func decodeBincode(buf []byte) (wireSnapshot, error) {
	r := newBincodeReader(buf)

	archetypeCount, err := r.u64()
	if err != nil {
		return wireSnapshot{}, err
	}
	archetypes := make([]wireArchetype, archetypeCount)
	for i := range archetypes {
		archetypes[i], err = decodeArchetypeBincode(r)
		if err != nil {
			return wireSnapshot{}, err
		}
	}

	metaCount, err := r.u64()
	if err != nil {
		return wireSnapshot{}, err
	}
	metadata := make(map[uint32]wireEntityRow, metaCount)
	for i := uint64(0); i < metaCount; i++ {
		id, err := r.u32()
		if err != nil {
			return wireSnapshot{}, err
		}
		createdAt, err := r.i64()
		if err != nil {
			return wireSnapshot{}, err
		}
		modifiedAt, err := r.i64()
		if err != nil {
			return wireSnapshot{}, err
		}
		tags, err := r.strs()
		if err != nil {
			return wireSnapshot{}, err
		}
		metadata[id] = wireEntityRow{CreatedAt: createdAt, ModifiedAt: modifiedAt, Tags: tags}
	}

	return wireSnapshot{Archetypes: archetypes, EntityMetadata: metadata}, nil
}

func decodeArchetypeBincode(r *bincodeReader) (wireArchetype, error) {
	var a wireArchetype

	componentID, err := r.str()
	if err != nil {
		return a, err
	}
	a.ComponentID = componentID

	entityIDs, err := r.u32s()
	if err != nil {
		return a, err
	}
	a.EntityIDs = entityIDs

	isBlob, err := r.boolean()
	if err != nil {
		return a, err
	}
	a.IsBlob = isBlob

	if isBlob {
		a.Blob, err = r.bytes()
		return a, err
	}

	colCount, err := r.u64()
	if err != nil {
		return a, err
	}
	a.Columns = make([]wireColumn, colCount)
	for i := range a.Columns {
		a.Columns[i], err = decodeColumnBincode(r)
		if err != nil {
			return a, err
		}
	}

	return a, nil
}

func decodeColumnBincode(r *bincodeReader) (wireColumn, error) {
	var col wireColumn

	name, err := r.str()
	if err != nil {
		return col, err
	}
	col.Name = name

	typeTag, err := r.u8()
	if err != nil {
		return col, err
	}
	col.Type = format.FieldType(typeTag)

	// Every variant except U8 (a raw byte blob) and String (its own
	// self-delimiting sequence) is a plain element count followed by
	// that many elements: fixed-width ones, except for Bytes, whose
	// elements are each length-prefixed.
	var n uint64
	switch col.Type {
	case format.FieldU8, format.FieldString:
		// handled below without a separate count read
	default:
		n, err = r.u64()
		if err != nil {
			return col, err
		}
	}

	switch col.Type {
	case format.FieldBool:
		col.Bool = make([]bool, n)
		for i := range col.Bool {
			if col.Bool[i], err = r.boolean(); err != nil {
				return col, err
			}
		}
	case format.FieldI8:
		col.I8 = make([]int8, n)
		for i := range col.I8 {
			v, err := r.u8()
			if err != nil {
				return col, err
			}
			col.I8[i] = int8(v)
		}
	case format.FieldI16:
		col.I16 = make([]int16, n)
		for i := range col.I16 {
			v, err := r.u32()
			if err != nil {
				return col, err
			}
			col.I16[i] = int16(uint16(v))
		}
	case format.FieldI32:
		col.I32 = make([]int32, n)
		for i := range col.I32 {
			v, err := r.u32()
			if err != nil {
				return col, err
			}
			col.I32[i] = int32(v)
		}
	case format.FieldI64:
		col.I64 = make([]int64, n)
		for i := range col.I64 {
			if col.I64[i], err = r.i64(); err != nil {
				return col, err
			}
		}
	case format.FieldU8:
		col.U8, err = r.bytes()
		if err != nil {
			return col, err
		}
	case format.FieldU16:
		col.U16 = make([]uint16, n)
		for i := range col.U16 {
			v, err := r.u32()
			if err != nil {
				return col, err
			}
			col.U16[i] = uint16(v)
		}
	case format.FieldU32:
		col.U32 = make([]uint32, n)
		for i := range col.U32 {
			if col.U32[i], err = r.u32(); err != nil {
				return col, err
			}
		}
	case format.FieldU64:
		col.U64 = make([]uint64, n)
		for i := range col.U64 {
			if col.U64[i], err = r.u64(); err != nil {
				return col, err
			}
		}
	case format.FieldF32:
		col.F32 = make([]float32, n)
		for i := range col.F32 {
			if col.F32[i], err = r.f32(); err != nil {
				return col, err
			}
		}
	case format.FieldF64:
		col.F64 = make([]float64, n)
		for i := range col.F64 {
			if col.F64[i], err = r.f64(); err != nil {
				return col, err
			}
		}
	case format.FieldString:
		col.Str, err = r.strs()
		if err != nil {
			return col, err
		}
	case format.FieldBytes:
		col.Bytes = make([][]byte, n)
		for i := range col.Bytes {
			if col.Bytes[i], err = r.bytes(); err != nil {
				return col, err
			}
		}
	default:
		return col, fmt.Errorf("tx2pack: bincode: unknown field type tag %d: %w", typeTag, errs.ErrDeserialization)
	}

	return col, nil
}
