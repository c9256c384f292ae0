package compress

import "github.com/IreGaddr/tx2-pack/format"

// NoopCodec bypasses compression and returns the input unchanged. It
// exists for debugging and for payloads that gain nothing from
// compression (already-compressed blobs, tiny snapshots).
type NoopCodec struct{}

var _ Codec = NoopCodec{}

// NewNoopCodec returns a codec that performs no compression.
func NewNoopCodec() NoopCodec {
	return NoopCodec{}
}

func (c NoopCodec) Family() format.CompressionFamily {
	return format.CompressionNone
}

// Compress returns data unchanged. The returned slice shares the input's
// backing array; callers should not mutate data afterward if they plan
// to keep using the result.
func (c NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
