// Package format defines the wire-level vocabulary of a container: the
// closed set of field types a component column can hold, the
// serialization/compression tags stored in the header, and the fixed
// 111-byte header record itself.
//
// Nothing in this package touches compression, encryption, or entity
// data directly — it only describes how those concerns are named on
// the wire. The container package is the one that drives Header
// through an actual read/write pipeline.
package format
