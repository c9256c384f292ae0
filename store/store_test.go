package store

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/IreGaddr/tx2-pack/container"
	"github.com/IreGaddr/tx2-pack/errs"
	"github.com/IreGaddr/tx2-pack/format"
	"github.com/IreGaddr/tx2-pack/metadata"
	"github.com/IreGaddr/tx2-pack/worldstate"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *worldstate.PackedSnapshot {
	snap := &worldstate.PackedSnapshot{
		Header: format.NewHeader(),
		Archetypes: []worldstate.ComponentArchetype{{
			ComponentID: "Health",
			EntityIDs:   []worldstate.EntityID{1, 2},
			Data: worldstate.SoAData{Data: worldstate.StructOfArraysData{
				FieldNames: []string{"hp"},
				FieldData:  []worldstate.FieldArray{worldstate.I32Array{100, 80}},
			}},
		}},
	}
	snap.RecomputeCounts()
	return snap
}

func TestNewCreatesRootDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "snapshots")
	s, err := New(root)
	require.NoError(t, err)
	require.Equal(t, root, s.RootDir)

	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	snap := sampleSnapshot()
	meta := metadata.New("cp-1")
	meta.Name = "before boss fight"
	meta.WorldTime = 12.5

	w := container.NewWriter()
	path, err := s.Save(snap, meta, w)
	require.NoError(t, err)
	require.FileExists(t, path)
	require.FileExists(t, filepath.Join(s.RootDir, "cp-1.meta.json"))

	r := container.NewReader()
	got, gotMeta, err := s.Load("cp-1", r)
	require.NoError(t, err)
	require.Equal(t, "cp-1", gotMeta.ID)
	require.Equal(t, "before boss fight", gotMeta.Name)
	require.Equal(t, 12.5, gotMeta.WorldTime)
	require.Len(t, got.Archetypes, 1)
}

func TestLoadMissingSnapshotIsNotFound(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, _, err = s.Load("nope", container.NewReader())
	require.True(t, errs.IsSnapshotNotFound(err))
}

func TestLoadMissingSidecarSynthesizesDefault(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	w := container.NewWriter()
	require.NoError(t, w.WriteToFile(filepath.Join(s.RootDir, "orphan.tx2pack"), sampleSnapshot()))

	_, gotMeta, err := s.Load("orphan", container.NewReader())
	require.NoError(t, err)
	require.Equal(t, "orphan", gotMeta.ID)
	require.Empty(t, gotMeta.Name)
}

func TestDeleteBestEffort(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	meta := metadata.New("to-delete")
	_, err = s.Save(sampleSnapshot(), meta, container.NewWriter())
	require.NoError(t, err)

	require.NoError(t, s.Delete("to-delete"))
	require.False(t, s.Exists("to-delete"))

	// Deleting again, and deleting an id that never existed, is not an error.
	require.NoError(t, s.Delete("to-delete"))
	require.NoError(t, s.Delete("never-existed"))
}

func TestList(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	w := container.NewWriter()
	for _, id := range []string{"a", "b", "c"} {
		meta := metadata.New(id)
		_, err := s.Save(sampleSnapshot(), meta, w)
		require.NoError(t, err)
	}

	ids, err := s.List()
	require.NoError(t, err)
	sort.Strings(ids)
	require.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestListIgnoresSidecarsAndSubdirs(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save(sampleSnapshot(), metadata.New("only-one"), container.NewWriter())
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(s.RootDir, "subdir"), 0o755))

	ids, err := s.List()
	require.NoError(t, err)
	require.Equal(t, []string{"only-one"}, ids)
}

func TestExists(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.False(t, s.Exists("ghost"))
	_, err = s.Save(sampleSnapshot(), metadata.New("ghost"), container.NewWriter())
	require.NoError(t, err)
	require.True(t, s.Exists("ghost"))
}
