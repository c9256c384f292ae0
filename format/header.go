package format

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/endian"
	"github.com/IreGaddr/tx2-pack/errs"
)

// le is the byte order every Header field is encoded with. The wire
// format is little-endian fixed-width primitives throughout; there is
// no per-container endianness negotiation.
var le = endian.GetLittleEndianEngine()

// Header is the fixed logical header of a container. Field order below
// is the canonical on-wire order; Encode/DecodeHeader must agree with
// it exactly for cross-implementation compatibility.
type Header struct {
	Magic          [8]byte
	Version        uint32
	Format         SerializationFormat
	Compression    CompressionFamily
	Encrypted      bool
	Checksum       [32]byte
	Timestamp      int64
	EntityCount    uint64
	ComponentCount uint64
	ArchetypeCount uint64
	DataOffset     uint64
	DataSize       uint64
	MetadataOffset uint64 // reserved, 0 in v1
	MetadataSize   uint64 // reserved, 0 in v1
}

// NewHeader returns a Header with Magic and Version already populated
// for the format this build writes. Every other field is the caller's
// responsibility to fill in before encoding.
func NewHeader() Header {
	return Header{
		Magic:   Magic,
		Version: CurrentVersion,
	}
}

// Validate checks the two invariants a reader must confirm before
// trusting any other header field: the magic bytes and format version.
func (h Header) Validate() error {
	if h.Magic != Magic {
		return errs.ErrInvalidFormat
	}
	if h.Version != CurrentVersion {
		return errs.NewVersionMismatch(CurrentVersion, h.Version)
	}
	return nil
}

// Encode appends the header's canonical on-wire byte representation to
// dst and returns the extended slice. The encoding is fixed-size
// (HeaderSize bytes) and never fails.
func (h Header) Encode(dst []byte) []byte {
	dst = append(dst, h.Magic[:]...)
	dst = le.AppendUint32(dst, h.Version)
	dst = append(dst, byte(h.Format))
	dst = append(dst, byte(h.Compression))
	dst = append(dst, boolByte(h.Encrypted))
	dst = append(dst, h.Checksum[:]...)
	dst = le.AppendUint64(dst, uint64(h.Timestamp))
	dst = le.AppendUint64(dst, h.EntityCount)
	dst = le.AppendUint64(dst, h.ComponentCount)
	dst = le.AppendUint64(dst, h.ArchetypeCount)
	dst = le.AppendUint64(dst, h.DataOffset)
	dst = le.AppendUint64(dst, h.DataSize)
	dst = le.AppendUint64(dst, h.MetadataOffset)
	dst = le.AppendUint64(dst, h.MetadataSize)
	return dst
}

// DecodeHeader parses a Header from the start of buf. It does not call
// Validate; callers decide when header sanity checks run relative to
// other pipeline steps.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("tx2pack: decode header: %w", errs.ErrInvalidFormat)
	}

	var h Header
	off := 0

	copy(h.Magic[:], buf[off:off+8])
	off += 8

	h.Version = le.Uint32(buf[off : off+4])
	off += 4

	h.Format = SerializationFormat(buf[off])
	off++

	h.Compression = CompressionFamily(buf[off])
	off++

	h.Encrypted = buf[off] != 0
	off++

	copy(h.Checksum[:], buf[off:off+32])
	off += 32

	h.Timestamp = int64(le.Uint64(buf[off : off+8]))
	off += 8

	h.EntityCount = le.Uint64(buf[off : off+8])
	off += 8

	h.ComponentCount = le.Uint64(buf[off : off+8])
	off += 8

	h.ArchetypeCount = le.Uint64(buf[off : off+8])
	off += 8

	h.DataOffset = le.Uint64(buf[off : off+8])
	off += 8

	h.DataSize = le.Uint64(buf[off : off+8])
	off += 8

	h.MetadataOffset = le.Uint64(buf[off : off+8])
	off += 8

	h.MetadataSize = le.Uint64(buf[off : off+8])
	off += 8

	return h, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
