package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldTypeIsValid(t *testing.T) {
	assert.True(t, FieldBool.IsValid())
	assert.True(t, FieldBytes.IsValid())
	assert.False(t, FieldType(200).IsValid())
}

func TestFieldTypeString(t *testing.T) {
	assert.Equal(t, "Bool", FieldBool.String())
	assert.Equal(t, "F64", FieldF64.String())
	assert.Contains(t, FieldType(250).String(), "FieldType")
}

func TestSerializationFormatIsValid(t *testing.T) {
	assert.True(t, FormatBincode.IsValid())
	assert.True(t, FormatMessagePack.IsValid())
	assert.True(t, FormatCustom.IsValid())
	assert.False(t, SerializationFormat(99).IsValid())
}

func TestCompressionFamilyIsValid(t *testing.T) {
	assert.True(t, CompressionNone.IsValid())
	assert.True(t, CompressionZstd.IsValid())
	assert.True(t, CompressionLz4.IsValid())
	assert.False(t, CompressionFamily(99).IsValid())
}

func TestCompressionFamilyString(t *testing.T) {
	assert.Equal(t, "Zstd", CompressionZstd.String())
	assert.Equal(t, "Lz4", CompressionLz4.String())
}
