package container

import (
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/IreGaddr/tx2-pack/compress"
	"github.com/IreGaddr/tx2-pack/crypto"
	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/format"
	"github.com/IreGaddr/tx2-pack/worldstate"
)

// Reader decodes a framed container back into a PackedSnapshot.
type Reader struct {
	cfg ReaderConfig
}

// NewReader returns a Reader configured by opts.
func NewReader(opts ...ReaderOption) *Reader {
	return &Reader{cfg: NewReaderConfig(opts...)}
}

// Read runs the six-step read pipeline over data and returns the
// decoded snapshot. The ordering is deliberate: the cheapest, safest
// checks run first so malformed or adversarial input never reaches the
// cryptographic or decompression engines without a header sanity pass.
//
//  1. Decode the header and call Validate (magic, version).
//  2. Bounds-check [data_offset, data_offset+data_size) against len(data).
//  3. Recompute SHA-256 over the payload slice and compare to the header.
//  4. AEAD-decrypt the payload if the header says it is encrypted.
//  5. Decompress per the header's compression family.
//  6. Deserialize the body per the header's serialization format.
func (r *Reader) Read(data []byte) (*worldstate.PackedSnapshot, error) {
	header, err := format.DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}

	start := header.DataOffset
	if start > uint64(len(data)) || header.DataSize > uint64(len(data))-start {
		return nil, fmt.Errorf("tx2pack: payload bounds [%d,%d) exceed buffer of %d bytes: %w",
			start, start+header.DataSize, len(data), errs.ErrInvalidFormat)
	}
	payload := data[start : start+header.DataSize]

	sum := sha256.Sum256(payload)
	if sum != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	decrypted := payload
	if header.Encrypted {
		if r.cfg.EncryptionKey == nil {
			return nil, fmt.Errorf("tx2pack: container is encrypted but no key was configured: %w", errs.ErrDecryption)
		}
		decrypted, err = crypto.Decrypt(payload, *r.cfg.EncryptionKey)
		if err != nil {
			return nil, err
		}
	}

	codec, err := compress.New(header.Compression)
	if err != nil {
		return nil, err
	}
	decompressed, err := codec.Decompress(decrypted)
	if err != nil {
		return nil, err
	}

	snap, err := decodeBody(decompressed, header)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// ReadFile reads and decodes the container stored at path.
func (r *Reader) ReadFile(path string) (*worldstate.PackedSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tx2pack: read %s: %w", path, errs.ErrIO)
	}
	return r.Read(data)
}
