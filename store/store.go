// Package store persists PackedSnapshots as a directory of files: one
// binary container per id plus a JSON metadata sidecar. It knows
// nothing about compression, encryption, or serialization format —
// those are the container package's concern — only about where bytes
// live on disk and how ids map to paths.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/IreGaddr/tx2-pack/container"
	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/metadata"
	"github.com/IreGaddr/tx2-pack/worldstate"
)

const (
	containerExt = ".tx2pack"
	sidecarExt   = ".meta.json"
)

// Store is a directory-backed id -> {snapshot, metadata} mapping.
type Store struct {
	RootDir string
}

// New returns a Store rooted at rootDir, creating the directory (and
// any missing parents) if it does not already exist.
func New(rootDir string) (*Store, error) {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, errWrap(err, "create root dir")
	}
	return &Store{RootDir: rootDir}, nil
}

func (s *Store) containerPath(id string) string {
	return filepath.Join(s.RootDir, id+containerExt)
}

func (s *Store) sidecarPath(id string) string {
	return filepath.Join(s.RootDir, id+sidecarExt)
}

// Save writes snapshot's binary container and meta's JSON sidecar
// under meta.ID, using w to encode the container. It returns the path
// the container was written to.
func (s *Store) Save(snapshot *worldstate.PackedSnapshot, meta metadata.SnapshotMetadata, w *container.Writer) (string, error) {
	id := meta.ID
	path := s.containerPath(id)
	if err := w.WriteToFile(path, snapshot); err != nil {
		return "", err
	}

	sidecar, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", errWrap(err, "marshal metadata sidecar")
	}
	if err := os.WriteFile(s.sidecarPath(id), sidecar, 0o644); err != nil {
		return "", errWrap(err, "write metadata sidecar")
	}

	return path, nil
}

// Load reads id's binary container with r and its metadata sidecar. A
// missing container is SnapshotNotFound. A missing sidecar is not an
// error: Load synthesizes a default SnapshotMetadata carrying only id,
// since sidecar loss must not prevent recovering the snapshot itself.
func (s *Store) Load(id string, r *container.Reader) (*worldstate.PackedSnapshot, metadata.SnapshotMetadata, error) {
	path := s.containerPath(id)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, metadata.SnapshotMetadata{}, errs.NewSnapshotNotFound(id)
		}
		return nil, metadata.SnapshotMetadata{}, errWrap(err, "stat container")
	}

	snap, err := r.ReadFile(path)
	if err != nil {
		return nil, metadata.SnapshotMetadata{}, err
	}

	meta := metadata.New(id)
	sidecar, err := os.ReadFile(s.sidecarPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return snap, meta, nil
		}
		return nil, metadata.SnapshotMetadata{}, errWrap(err, "read metadata sidecar")
	}
	if err := json.Unmarshal(sidecar, &meta); err != nil {
		return nil, metadata.SnapshotMetadata{}, errWrap(err, "unmarshal metadata sidecar")
	}

	return snap, meta, nil
}

// Delete best-effort removes id's container and sidecar. A file that
// is already absent is not an error.
func (s *Store) Delete(id string) error {
	if err := removeIfExists(s.containerPath(id)); err != nil {
		return err
	}
	return removeIfExists(s.sidecarPath(id))
}

// Exists reports whether id's container file is present.
func (s *Store) Exists(id string) bool {
	_, err := os.Stat(s.containerPath(id))
	return err == nil
}

// List returns the ids of every container stored under RootDir, in
// directory-iteration order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.RootDir)
	if err != nil {
		return nil, errWrap(err, "read root dir")
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, containerExt) {
			ids = append(ids, strings.TrimSuffix(name, containerExt))
		}
	}
	return ids, nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errWrap(err, "remove "+path)
	}
	return nil
}

func errWrap(err error, op string) error {
	return &storeError{op: op, err: err}
}

type storeError struct {
	op  string
	err error
}

func (e *storeError) Error() string { return "tx2pack: store: " + e.op + ": " + e.err.Error() }
func (e *storeError) Unwrap() error { return e.err }
