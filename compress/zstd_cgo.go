//go:build cgo

package compress

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/format"
	"github.com/valyala/gozstd"
)

// Compress encodes data with the codec's configured level using the
// cgo binding to the reference zstd library. Built only when cgo is
// available; the pure-Go path in zstd_pure.go covers the rest.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, int(c.preset)), nil
}

// Decompress decompresses Zstd-compressed data, rejecting any input
// whose decompressed size would exceed format.MaxDecompressedSize.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("tx2pack: zstd decompress: %v: %w", err, errs.ErrDecompression)
	}
	if len(decompressed) > format.MaxDecompressedSize {
		return nil, fmt.Errorf("tx2pack: zstd decompress: decompressed size %d exceeds limit: %w", len(decompressed), errs.ErrDecompression)
	}

	return decompressed, nil
}
