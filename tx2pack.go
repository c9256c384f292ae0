// Package tx2pack packages entity/component world state into a
// compact, checksummed, optionally encrypted binary container, and
// provides on-disk checkpoint and replay facilities on top of it.
//
// # Core Features
//
//   - Columnar struct-of-arrays storage for component data, plus a
//     BlobData escape hatch for custom encodings
//   - Bincode or MessagePack body serialization
//   - Optional Zstd or Lz4 compression
//   - Optional AES-256-GCM authenticated encryption
//   - SHA-256 checksum over the payload, verified before decryption
//   - A directory-backed Store and chained checkpoint.Manager for
//     persistence, and ReplayEngine/TimeTravel cursors for traversal
//
// # Basic Usage
//
// Packing and unpacking a snapshot with default settings:
//
//	snap := &worldstate.PackedSnapshot{Header: format.NewHeader()}
//	// ... populate snap.Archetypes ...
//	snap.RecomputeCounts()
//
//	data, err := tx2pack.Pack(snap)
//	got, err := tx2pack.Unpack(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// format, container, store, checkpoint, and replay packages for the
// most common use cases. For fine-grained control over compression
// level, encryption keys, or serialization format, use those packages
// directly.
package tx2pack

import (
	"github.com/IreGaddr/tx2-pack/checkpoint"
	"github.com/IreGaddr/tx2-pack/container"
	"github.com/IreGaddr/tx2-pack/crypto"
	"github.com/IreGaddr/tx2-pack/store"
	"github.com/IreGaddr/tx2-pack/worldstate"
)

// Pack encodes snapshot with the default Writer: Zstd compression at
// the default preset, no encryption, Bincode or MessagePack as
// selected by snapshot.Header.Format.
func Pack(snapshot *worldstate.PackedSnapshot) ([]byte, error) {
	return container.NewWriter().Write(snapshot)
}

// Unpack decodes data produced by Pack or any container.Writer writing
// an unencrypted container.
func Unpack(data []byte) (*worldstate.PackedSnapshot, error) {
	return container.NewReader().Read(data)
}

// PackEncrypted encodes snapshot like Pack, additionally sealing the
// compressed payload under key.
func PackEncrypted(snapshot *worldstate.PackedSnapshot, key crypto.Key) ([]byte, error) {
	return container.NewWriter(container.WithEncryptionKey(key)).Write(snapshot)
}

// UnpackEncrypted decodes data produced by PackEncrypted using key.
func UnpackEncrypted(data []byte, key crypto.Key) (*worldstate.PackedSnapshot, error) {
	return container.NewReader(container.WithDecryptionKey(key)).Read(data)
}

// OpenStore returns a Store rooted at dir, creating it if absent.
func OpenStore(dir string) (*store.Store, error) {
	return store.New(dir)
}

// NewCheckpointManager returns a checkpoint.Manager persisting through
// st with the default Writer/Reader pair.
func NewCheckpointManager(st *store.Store) *checkpoint.Manager {
	return checkpoint.New(st, container.NewWriter(), container.NewReader())
}
