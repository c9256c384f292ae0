package container

import (
	"crypto/sha256"
	"os"
	"time"

	"github.com/IreGaddr/tx2-pack/compress"
	"github.com/IreGaddr/tx2-pack/crypto"
	"github.com/IreGaddr/tx2-pack/format"
	"github.com/IreGaddr/tx2-pack/worldstate"
)

// Writer encodes a PackedSnapshot into a framed container: serialize,
// compress, optionally encrypt, then frame with a checksummed header.
type Writer struct {
	cfg WriterConfig
}

// NewWriter returns a Writer configured by opts.
func NewWriter(opts ...WriterOption) *Writer {
	return &Writer{cfg: NewWriterConfig(opts...)}
}

// Write runs the five-step write pipeline over snap and returns the
// complete container bytes: header followed by the payload the header
// describes.
//
//  1. Serialize snap's body per snap.Header.Format.
//  2. Compress the serialized bytes with the writer's configured codec.
//  3. AEAD-encrypt the compressed bytes if an encryption key is set.
//  4. Build the final header: copy snap's header, set magic, version,
//     compression, encrypted, data_size, and checksum, stamp timestamp
//     with the current Unix time, zero the reserved metadata fields,
//     then two-pass encode so data_offset equals the header's own
//     encoded length.
//  5. Emit header bytes followed by the final payload.
func (w *Writer) Write(snap *worldstate.PackedSnapshot) ([]byte, error) {
	body, err := encodeBody(*snap)
	if err != nil {
		return nil, err
	}

	var codec compress.Codec
	if w.cfg.Compression == format.CompressionZstd {
		codec = compress.NewZstdCodec(w.cfg.ZstdPreset)
	} else {
		codec, err = compress.New(w.cfg.Compression)
		if err != nil {
			return nil, err
		}
	}

	compressed, err := codec.Compress(body)
	if err != nil {
		return nil, err
	}

	payload := compressed
	encrypted := w.cfg.EncryptionKey != nil
	if encrypted {
		payload, err = crypto.Encrypt(compressed, *w.cfg.EncryptionKey)
		if err != nil {
			return nil, err
		}
	}

	header := snap.Header
	header.Magic = format.Magic
	header.Version = format.CurrentVersion
	header.Compression = w.cfg.Compression
	header.Encrypted = encrypted
	header.Timestamp = time.Now().Unix()
	header.DataSize = uint64(len(payload))
	header.Checksum = sha256.Sum256(payload)
	header.MetadataOffset = 0
	header.MetadataSize = 0

	// Two-pass: encode once to measure the header's own length, patch
	// data_offset to that length, then encode again. For this format
	// the header is fixed-size (format.HeaderSize) so the measured
	// length never actually changes between passes, but the two-pass
	// shape is kept so a future variable-length header field only
	// needs to change Encode, not this call site.
	measured := header.Encode(nil)
	header.DataOffset = uint64(len(measured))
	final := header.Encode(nil)

	out := make([]byte, 0, len(final)+len(payload))
	out = append(out, final...)
	out = append(out, payload...)
	return out, nil
}

// WriteToFile writes snap's container encoding to path, creating or
// truncating the file, and fsyncs before returning so the bytes are
// durable on disk when WriteToFile returns nil.
func (w *Writer) WriteToFile(path string, snap *worldstate.PackedSnapshot) error {
	data, err := w.Write(snap)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}

	return f.Sync()
}
