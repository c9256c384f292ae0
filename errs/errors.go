// Package errs defines the closed error taxonomy shared by every tx2pack
// component. Call sites wrap these sentinels with fmt.Errorf("...: %w", ...)
// rather than constructing ad hoc error strings, so callers can reliably
// errors.Is against the taxonomy regardless of which package raised it.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Each corresponds to one member of the closed taxonomy
// in the container format specification. Members that carry structured
// fields (VersionMismatch, SnapshotNotFound) are represented as typed
// errors below instead of sentinels.
var (
	ErrIO                = errors.New("tx2pack: io error")
	ErrSerialization     = errors.New("tx2pack: serialization error")
	ErrDeserialization   = errors.New("tx2pack: deserialization error")
	ErrCompression       = errors.New("tx2pack: compression error")
	ErrDecompression     = errors.New("tx2pack: decompression error")
	ErrEncryption        = errors.New("tx2pack: encryption error")
	ErrDecryption        = errors.New("tx2pack: decryption error")
	ErrInvalidFormat     = errors.New("tx2pack: invalid format")
	ErrChecksumMismatch  = errors.New("tx2pack: checksum mismatch")
	ErrInvalidCheckpoint = errors.New("tx2pack: invalid checkpoint")
	ErrUnknown           = errors.New("tx2pack: unknown error")
)

// VersionMismatchError reports a header whose format version does not
// match the version this build understands.
type VersionMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("tx2pack: version mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// NewVersionMismatch builds a VersionMismatchError for the given versions.
func NewVersionMismatch(expected, actual uint32) error {
	return &VersionMismatchError{Expected: expected, Actual: actual}
}

// IsVersionMismatch reports whether err is (or wraps) a VersionMismatchError.
func IsVersionMismatch(err error) bool {
	var v *VersionMismatchError
	return errors.As(err, &v)
}

// SnapshotNotFoundError reports a lookup by id that found no snapshot.
type SnapshotNotFoundError struct {
	ID string
}

func (e *SnapshotNotFoundError) Error() string {
	return fmt.Sprintf("tx2pack: snapshot not found: %s", e.ID)
}

// NewSnapshotNotFound builds a SnapshotNotFoundError for the given id.
func NewSnapshotNotFound(id string) error {
	return &SnapshotNotFoundError{ID: id}
}

// IsSnapshotNotFound reports whether err is (or wraps) a SnapshotNotFoundError.
func IsSnapshotNotFound(err error) bool {
	var v *SnapshotNotFoundError
	return errors.As(err, &v)
}
