package tx2pack

import (
	"testing"

	"github.com/IreGaddr/tx2-pack/crypto"
	"github.com/IreGaddr/tx2-pack/format"
	"github.com/IreGaddr/tx2-pack/worldstate"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *worldstate.PackedSnapshot {
	snap := &worldstate.PackedSnapshot{
		Header: format.NewHeader(),
		Archetypes: []worldstate.ComponentArchetype{{
			ComponentID: "Position",
			EntityIDs:   []worldstate.EntityID{1, 2, 3},
			Data: worldstate.SoAData{Data: worldstate.StructOfArraysData{
				FieldNames: []string{"x"},
				FieldData:  []worldstate.FieldArray{worldstate.F32Array{1, 2, 3}},
			}},
		}},
	}
	snap.RecomputeCounts()
	return snap
}

func TestPackUnpackRoundTrip(t *testing.T) {
	snap := sampleSnapshot()
	data, err := Pack(snap)
	require.NoError(t, err)

	got, err := Unpack(data)
	require.NoError(t, err)
	require.Len(t, got.Archetypes, 1)
	require.Equal(t, uint64(3), got.Header.EntityCount)
}

func TestPackEncryptedRoundTrip(t *testing.T) {
	key, err := crypto.NewKey()
	require.NoError(t, err)

	snap := sampleSnapshot()
	data, err := PackEncrypted(snap, key)
	require.NoError(t, err)

	got, err := UnpackEncrypted(data, key)
	require.NoError(t, err)
	require.Len(t, got.Archetypes, 1)
}

func TestUnpackEncryptedWrongKeyFails(t *testing.T) {
	key1, err := crypto.NewKey()
	require.NoError(t, err)
	key2, err := crypto.NewKey()
	require.NoError(t, err)

	data, err := PackEncrypted(sampleSnapshot(), key1)
	require.NoError(t, err)

	_, err = UnpackEncrypted(data, key2)
	require.Error(t, err)
}

func TestOpenStoreAndCheckpointManager(t *testing.T) {
	st, err := OpenStore(t.TempDir())
	require.NoError(t, err)

	mgr := NewCheckpointManager(st)
	cp, err := mgr.Create("cp0", sampleSnapshot())
	require.NoError(t, err)
	require.Equal(t, "cp0", cp.ID)

	loaded, err := mgr.Load("cp0")
	require.NoError(t, err)
	require.Equal(t, "cp0", loaded.ID)
}
