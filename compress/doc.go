// Package compress provides pluggable compression backends for
// container payloads.
//
// # Supported families
//
// **None** (format.CompressionNone) — bypasses compression entirely.
// Useful for data that is already compressed or for debugging.
//
//	codec := compress.NewNoopCodec()
//
// **Zstandard** (format.CompressionZstd) — best compression ratio of
// the three, with three named presets:
//
//	codec := compress.NewZstdCodec(compress.ZstdDefault)
//
// ZstdFast (level 1) favors encode speed, ZstdBest (level 19) favors
// ratio at a large CPU cost; ZstdDefault (level 3) is the reasonable
// middle ground and what New picks when asked for format.CompressionZstd
// without a preset. Builds with cgo enabled (Go's default when a C
// toolchain is present) use the gozstd cgo binding; builds with cgo
// disabled (CGO_ENABLED=0) use the pure-Go klauspost/compress codec.
//
// **LZ4** (format.CompressionLz4) — fastest decompression of the
// three, at a single fixed internal level:
//
//	codec := compress.NewLz4Codec()
//
// # Decompression bounds
//
// The Zstd and Lz4 Decompress implementations refuse to produce output
// larger than format.MaxDecompressedSize, regardless of what the
// compressed input claims its expanded size to be. The Lz4 and pure-Go
// Zstd decoders stop reading at that limit, which bounds the memory a
// corrupted or adversarial container can force a reader to allocate;
// the cgo Zstd decoder decompresses the whole frame first and only then
// rejects an oversized result. NoopCodec returns its input as is.
package compress
