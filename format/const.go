package format

// Magic is the fixed byte sequence that opens every container. Readers
// reject any file whose first 8 bytes differ from this value before
// looking at anything else.
var Magic = [8]byte{'T', 'X', '2', 'P', 'A', 'C', 'K', 0x00}

// CurrentVersion is the format version this build writes and the
// version a reader compares the header's stored version against.
const CurrentVersion uint32 = 1

// HeaderSize is the fixed on-disk size in bytes of an encoded Header,
// magic bytes included. The payload begins exactly HeaderSize bytes
// into the file.
//
//	magic[8] + version(4) + format(1) + compression(1) + encrypted(1) +
//	checksum[32] + timestamp(8) + entity_count(8) + component_count(8) +
//	archetype_count(8) + data_offset(8) + data_size(8) +
//	metadata_offset(8) + metadata_size(8) = 111
const HeaderSize = 8 + 4 + 1 + 1 + 1 + 32 + 8 + 8 + 8 + 8 + 8 + 8 + 8 + 8

// MaxDecompressedSize bounds the size a decompressor will allocate for
// a single payload, regardless of what the compressed size claims.
// Guards against a crafted header driving unbounded memory growth on
// decompression of a small input (a "zip bomb").
const MaxDecompressedSize = 100 * 1024 * 1024
