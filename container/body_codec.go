package container

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/format"
	"github.com/IreGaddr/tx2-pack/worldstate"
)

// encodeBody serializes snap's body (archetypes and entity metadata,
// not the header) according to snap.Header.Format.
func encodeBody(snap worldstate.PackedSnapshot) ([]byte, error) {
	wire := toWireSnapshot(snap)

	switch snap.Header.Format {
	case format.FormatBincode:
		return encodeBincode(wire), nil
	case format.FormatMessagePack:
		return encodeMsgpack(wire)
	case format.FormatCustom:
		return nil, fmt.Errorf("tx2pack: custom serialization format is not implemented: %w", errs.ErrSerialization)
	default:
		return nil, fmt.Errorf("tx2pack: unknown serialization format %s: %w", snap.Header.Format, errs.ErrSerialization)
	}
}

// decodeBody deserializes body bytes into a PackedSnapshot, attaching
// header as the snapshot's header.
func decodeBody(body []byte, header format.Header) (worldstate.PackedSnapshot, error) {
	var (
		wire wireSnapshot
		err  error
	)

	switch header.Format {
	case format.FormatBincode:
		wire, err = decodeBincode(body)
	case format.FormatMessagePack:
		wire, err = decodeMsgpack(body)
	case format.FormatCustom:
		return worldstate.PackedSnapshot{}, fmt.Errorf("tx2pack: custom serialization format is not implemented: %w", errs.ErrDeserialization)
	default:
		return worldstate.PackedSnapshot{}, fmt.Errorf("tx2pack: unknown serialization format %s: %w", header.Format, errs.ErrDeserialization)
	}
	if err != nil {
		return worldstate.PackedSnapshot{}, err
	}

	return fromWireSnapshot(wire, header), nil
}
