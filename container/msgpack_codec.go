package container

import (
	"fmt"

	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/vmihailenco/msgpack/v5"
)

func encodeMsgpack(snap wireSnapshot) ([]byte, error) {
	b, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("tx2pack: msgpack encode: %w", errs.ErrSerialization)
	}
	return b, nil
}

func decodeMsgpack(buf []byte) (wireSnapshot, error) {
	var snap wireSnapshot
	if err := msgpack.Unmarshal(buf, &snap); err != nil {
		return wireSnapshot{}, fmt.Errorf("tx2pack: msgpack decode: %w", errs.ErrDeserialization)
	}
	return snap, nil
}
