package worldstate

import "github.com/IreGaddr/tx2-pack/format"

// FieldArray is a column of one field across every row of an
// archetype. Each concrete type below corresponds to exactly one
// format.FieldType tag; the tag is what travels on the wire, this
// interface is only the in-memory shape.
type FieldArray interface {
	// FieldType reports the wire tag for this column's element type.
	FieldType() format.FieldType
	// Len reports the row count.
	Len() int
}

type BoolArray []bool

func (a BoolArray) FieldType() format.FieldType { return format.FieldBool }
func (a BoolArray) Len() int                    { return len(a) }

type I8Array []int8

func (a I8Array) FieldType() format.FieldType { return format.FieldI8 }
func (a I8Array) Len() int                    { return len(a) }

type I16Array []int16

func (a I16Array) FieldType() format.FieldType { return format.FieldI16 }
func (a I16Array) Len() int                    { return len(a) }

type I32Array []int32

func (a I32Array) FieldType() format.FieldType { return format.FieldI32 }
func (a I32Array) Len() int                    { return len(a) }

type I64Array []int64

func (a I64Array) FieldType() format.FieldType { return format.FieldI64 }
func (a I64Array) Len() int                    { return len(a) }

type U8Array []uint8

func (a U8Array) FieldType() format.FieldType { return format.FieldU8 }
func (a U8Array) Len() int                    { return len(a) }

type U16Array []uint16

func (a U16Array) FieldType() format.FieldType { return format.FieldU16 }
func (a U16Array) Len() int                    { return len(a) }

type U32Array []uint32

func (a U32Array) FieldType() format.FieldType { return format.FieldU32 }
func (a U32Array) Len() int                    { return len(a) }

type U64Array []uint64

func (a U64Array) FieldType() format.FieldType { return format.FieldU64 }
func (a U64Array) Len() int                    { return len(a) }

type F32Array []float32

func (a F32Array) FieldType() format.FieldType { return format.FieldF32 }
func (a F32Array) Len() int                    { return len(a) }

type F64Array []float64

func (a F64Array) FieldType() format.FieldType { return format.FieldF64 }
func (a F64Array) Len() int                    { return len(a) }

type StringArray []string

func (a StringArray) FieldType() format.FieldType { return format.FieldString }
func (a StringArray) Len() int                    { return len(a) }

// BytesArray holds one opaque byte blob per row.
type BytesArray [][]byte

func (a BytesArray) FieldType() format.FieldType { return format.FieldBytes }
func (a BytesArray) Len() int                    { return len(a) }

// cloneFieldArray returns an independent copy of a column, so mutating
// the clone's slice never affects the original. BytesArray additionally
// copies each row's backing bytes, since a plain slice copy would still
// alias the inner []byte values.
func cloneFieldArray(a FieldArray) FieldArray {
	switch v := a.(type) {
	case BoolArray:
		return append(BoolArray(nil), v...)
	case I8Array:
		return append(I8Array(nil), v...)
	case I16Array:
		return append(I16Array(nil), v...)
	case I32Array:
		return append(I32Array(nil), v...)
	case I64Array:
		return append(I64Array(nil), v...)
	case U8Array:
		return append(U8Array(nil), v...)
	case U16Array:
		return append(U16Array(nil), v...)
	case U32Array:
		return append(U32Array(nil), v...)
	case U64Array:
		return append(U64Array(nil), v...)
	case F32Array:
		return append(F32Array(nil), v...)
	case F64Array:
		return append(F64Array(nil), v...)
	case StringArray:
		return append(StringArray(nil), v...)
	case BytesArray:
		out := make(BytesArray, len(v))
		for i, row := range v {
			out[i] = append([]byte(nil), row...)
		}
		return out
	default:
		return a
	}
}
