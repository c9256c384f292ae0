//go:build !cgo

package compress

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/format"
	"github.com/klauspost/compress/zstd"
)

// Compress encodes data with the codec's configured level. A fresh
// encoder is created per call because klauspost's encoder is tied to a
// single level; pooling by level would need one pool per preset, which
// isn't worth it for snapshot-sized (not per-sample) payloads.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(int(c.preset))))
	if err != nil {
		return nil, fmt.Errorf("tx2pack: zstd encoder: %v: %w", err, errs.ErrCompression)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data. The decoder enforces
// format.MaxDecompressedSize so a crafted small input cannot drive an
// unbounded allocation.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(format.MaxDecompressedSize),
	)
	if err != nil {
		return nil, fmt.Errorf("tx2pack: zstd decoder: %v: %w", err, errs.ErrDecompression)
	}
	defer decoder.Close()

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("tx2pack: zstd decompress: %v: %w", err, errs.ErrDecompression)
	}

	return decompressed, nil
}
