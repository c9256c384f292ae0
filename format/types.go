package format

import "fmt"

// FieldType is the closed set of primitive types a component column can
// hold. The wire encoding is a single byte; the order below is the
// canonical tag assignment and must never be reordered once shipped.
type FieldType uint8

const (
	FieldBool FieldType = iota
	FieldI8
	FieldI16
	FieldI32
	FieldI64
	FieldU8
	FieldU16
	FieldU32
	FieldU64
	FieldF32
	FieldF64
	FieldString
	FieldBytes

	fieldTypeCount // sentinel, not a valid tag
)

func (t FieldType) String() string {
	switch t {
	case FieldBool:
		return "Bool"
	case FieldI8:
		return "I8"
	case FieldI16:
		return "I16"
	case FieldI32:
		return "I32"
	case FieldI64:
		return "I64"
	case FieldU8:
		return "U8"
	case FieldU16:
		return "U16"
	case FieldU32:
		return "U32"
	case FieldU64:
		return "U64"
	case FieldF32:
		return "F32"
	case FieldF64:
		return "F64"
	case FieldString:
		return "String"
	case FieldBytes:
		return "Bytes"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(t))
	}
}

// IsValid reports whether t is one of the thirteen defined variants.
func (t FieldType) IsValid() bool {
	return t < fieldTypeCount
}

// SerializationFormat selects the body encoding used inside a container.
type SerializationFormat uint8

const (
	// FormatBincode is a compact length-prefixed native binary encoding.
	FormatBincode SerializationFormat = iota
	// FormatMessagePack is a schema-preserving structured binary encoding.
	FormatMessagePack
	// FormatCustom is reserved for future use; writers and readers both
	// reject it today.
	FormatCustom
)

func (f SerializationFormat) String() string {
	switch f {
	case FormatBincode:
		return "Bincode"
	case FormatMessagePack:
		return "MessagePack"
	case FormatCustom:
		return "Custom"
	default:
		return fmt.Sprintf("SerializationFormat(%d)", uint8(f))
	}
}

// IsValid reports whether f is one of the three defined formats.
func (f SerializationFormat) IsValid() bool {
	switch f {
	case FormatBincode, FormatMessagePack, FormatCustom:
		return true
	default:
		return false
	}
}

// CompressionFamily is the header-level compression tag. It names only
// the family (None/Zstd/Lz4); the compression level (fast/default/best
// for Zstd) is a write-time-only concern never persisted in the header,
// since a reader only needs to know which decompressor to invoke.
type CompressionFamily uint8

const (
	CompressionNone CompressionFamily = iota
	CompressionZstd
	CompressionLz4
)

func (c CompressionFamily) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionLz4:
		return "Lz4"
	default:
		return fmt.Sprintf("CompressionFamily(%d)", uint8(c))
	}
}

// IsValid reports whether c is one of the three defined families.
func (c CompressionFamily) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionLz4:
		return true
	default:
		return false
	}
}
