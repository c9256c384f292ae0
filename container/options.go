package container

import (
	"github.com/IreGaddr/tx2-pack/compress"
	"github.com/IreGaddr/tx2-pack/crypto"
	"github.com/IreGaddr/tx2-pack/format"
)

// WriterConfig controls how a Writer compresses and optionally
// encrypts a container's payload. NewWriterConfig's defaults are Zstd
// at the default preset with no encryption; the zero value selects no
// compression (format.CompressionNone) and no encryption.
type WriterConfig struct {
	Compression   format.CompressionFamily
	ZstdPreset    compress.ZstdPreset
	EncryptionKey *crypto.Key
}

// WriterOption configures a WriterConfig. Applying options in order
// lets later options override earlier ones.
type WriterOption func(*WriterConfig)

// NewWriterConfig builds a WriterConfig from the given options, over
// defaults of Zstd/ZstdDefault/no encryption.
func NewWriterConfig(opts ...WriterOption) WriterConfig {
	cfg := WriterConfig{
		Compression: format.CompressionZstd,
		ZstdPreset:  compress.ZstdDefault,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCompression selects the compression family a Writer uses.
func WithCompression(family format.CompressionFamily) WriterOption {
	return func(cfg *WriterConfig) {
		cfg.Compression = family
	}
}

// WithZstdPreset selects the Zstd level used when Compression is
// format.CompressionZstd. Ignored for other families.
func WithZstdPreset(preset compress.ZstdPreset) WriterOption {
	return func(cfg *WriterConfig) {
		cfg.ZstdPreset = preset
	}
}

// WithEncryptionKey enables AEAD encryption of the compressed payload
// under key. Omit this option to write an unencrypted container.
func WithEncryptionKey(key crypto.Key) WriterOption {
	return func(cfg *WriterConfig) {
		cfg.EncryptionKey = &key
	}
}

// ReaderConfig controls how a Reader decrypts a container's payload.
type ReaderConfig struct {
	EncryptionKey *crypto.Key
}

// ReaderOption configures a ReaderConfig.
type ReaderOption func(*ReaderConfig)

// NewReaderConfig builds a ReaderConfig from the given options.
func NewReaderConfig(opts ...ReaderOption) ReaderConfig {
	var cfg ReaderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDecryptionKey supplies the key a Reader uses to decrypt an
// encrypted container. Required if and only if the container was
// written with WithEncryptionKey.
func WithDecryptionKey(key crypto.Key) ReaderOption {
	return func(cfg *ReaderConfig) {
		cfg.EncryptionKey = &key
	}
}
