package compress

import (
	"testing"

	"github.com/IreGaddr/tx2-pack/format"
	"github.com/stretchr/testify/require"
)

func allCodecs() []Codec {
	return []Codec{
		NewNoopCodec(),
		NewZstdCodec(ZstdFast),
		NewZstdCodec(ZstdDefault),
		NewZstdCodec(ZstdBest),
		NewLz4Codec(),
	}
}

func TestRoundTrip(t *testing.T) {
	payload := make([]byte, 8192)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	for _, codec := range allCodecs() {
		t.Run(codec.Family().String(), func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			got, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestRoundTripEmpty(t *testing.T) {
	for _, codec := range allCodecs() {
		t.Run(codec.Family().String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			got, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}

func TestNewFactory(t *testing.T) {
	cases := []format.CompressionFamily{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionLz4,
	}

	for _, family := range cases {
		codec, err := New(family)
		require.NoError(t, err)
		require.Equal(t, family, codec.Family())
	}
}

func TestNewFactoryUnsupported(t *testing.T) {
	_, err := New(format.CompressionFamily(0xFF))
	require.Error(t, err)
}

func TestZstdCompressible(t *testing.T) {
	repetitive := make([]byte, 64*1024)
	for i := range repetitive {
		repetitive[i] = byte(i % 4)
	}

	codec := NewZstdCodec(ZstdDefault)
	compressed, err := codec.Compress(repetitive)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(repetitive))
}

func TestLz4RoundTripLargePayload(t *testing.T) {
	payload := make([]byte, 1<<20)
	for i := range payload {
		payload[i] = byte(i)
	}

	codec := NewLz4Codec()
	compressed, err := codec.Compress(payload)
	require.NoError(t, err)

	got, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestLz4RoundTripSmallIncompressible(t *testing.T) {
	// Below lz4's block threshold and high-entropy, this is exactly the
	// shape of input that broke the old block-format implementation.
	payload := []byte{0x01, 0x9f, 0x00, 0xff, 0x10}

	codec := NewLz4Codec()
	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	got, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}
