package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/format"
	"github.com/pierrec/lz4/v4"
)

// lz4Level is the compression level used for all Lz4Codec instances.
// The format exposes only one Lz4 tuning point (unlike Zstd's three
// presets), so this is not configurable per codec.
const lz4Level = lz4.Level4

// Lz4Codec compresses with LZ4's self-describing frame format, not
// the raw block format: the frame carries its own size and checksum
// information, so small and incompressible inputs round-trip
// correctly instead of collapsing to a zero-length block. Favors
// encode/decode speed over ratio relative to Zstd.
type Lz4Codec struct{}

var _ Codec = Lz4Codec{}

// NewLz4Codec returns an LZ4 codec.
func NewLz4Codec() Lz4Codec {
	return Lz4Codec{}
}

func (c Lz4Codec) Family() format.CompressionFamily {
	return format.CompressionLz4
}

func (c Lz4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := lz4.NewWriter(&buf)
	if err := zw.Apply(lz4.CompressionLevelOption(lz4Level)); err != nil {
		return nil, fmt.Errorf("tx2pack: lz4 writer options: %v: %w", err, errs.ErrCompression)
	}

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("tx2pack: lz4 compress: %v: %w", err, errs.ErrCompression)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("tx2pack: lz4 compress: %v: %w", err, errs.ErrCompression)
	}

	return buf.Bytes(), nil
}

// Decompress reads the LZ4 frame back to its original bytes. The
// frame format is self-terminating, so this never needs to guess a
// destination buffer size the way the block format would.
func (c Lz4Codec) Decompress(data []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(io.LimitReader(zr, format.MaxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("tx2pack: lz4 decompress: %v: %w", err, errs.ErrDecompression)
	}
	if len(out) > format.MaxDecompressedSize {
		return nil, fmt.Errorf("tx2pack: lz4 decompress: exceeds %d byte limit: %w", format.MaxDecompressedSize, errs.ErrDecompression)
	}

	return out, nil
}
