package compress

import "github.com/IreGaddr/tx2-pack/format"

// ZstdPreset selects a compression level. The numeric values are the
// actual zstd levels, not an abstract ranking, so callers may also
// supply a level zstd understands directly that isn't one of the
// named presets.
type ZstdPreset int

const (
	ZstdFast    ZstdPreset = 1
	ZstdDefault ZstdPreset = 3
	ZstdBest    ZstdPreset = 19
)

// ZstdCodec compresses with Zstandard at a fixed preset. Appropriate
// for cold storage and archival snapshots where ratio matters more
// than encode latency.
type ZstdCodec struct {
	preset ZstdPreset
}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a Zstd codec at the given level.
func NewZstdCodec(preset ZstdPreset) ZstdCodec {
	return ZstdCodec{preset: preset}
}

func (c ZstdCodec) Family() format.CompressionFamily {
	return format.CompressionZstd
}
