package compress

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/format"
)

// Compressor compresses a byte buffer.
//
// Memory management: the returned slice is owned by the caller and the
// input slice is never modified. NoopCodec returns the input slice
// itself; every other codec returns a newly allocated slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte buffer previously produced by the
// matching Compressor.
//
// The Zstd and Lz4 implementations reject output larger than
// format.MaxDecompressedSize regardless of what the input claims. The
// Lz4 and pure-Go Zstd decoders stop at that limit, so a small crafted
// input cannot force an unbounded allocation there; the cgo Zstd
// decoder expands the whole frame before checking its size. NoopCodec
// returns its input unchanged and applies no limit.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one family.
type Codec interface {
	Compressor
	Decompressor
	// Family returns the header tag this codec corresponds to.
	Family() format.CompressionFamily
}

// New is the factory used by the container writer/reader to obtain a
// Codec for a given header family tag.
func New(family format.CompressionFamily) (Codec, error) {
	switch family {
	case format.CompressionNone:
		return NewNoopCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(ZstdDefault), nil
	case format.CompressionLz4:
		return NewLz4Codec(), nil
	default:
		return nil, fmt.Errorf("tx2pack: unsupported compression family: %s", family)
	}
}
