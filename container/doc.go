// Package container implements the framed binary format a
// PackedSnapshot is written to and read from: a fixed header followed
// by a single compressed, optionally encrypted payload.
//
// Writer and Reader are the two halves of the codec. They agree on one
// invariant: the header's data_offset always equals the header's own
// encoded length, and data_size always equals the length of the
// payload that follows it. A Reader never trusts those fields blindly
// — it validates the header, bounds-checks the payload slice, and
// verifies the checksum before decryption or decompression ever see
// the bytes.
package container
