package metadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	m := New("cp-1")
	require.Equal(t, "cp-1", m.ID)
	require.Equal(t, uint32(1), m.SchemaVersion)
	require.NotNil(t, m.CustomFields)
	require.NotNil(t, m.Tags)
	require.Nil(t, m.ParentID)
}

func TestJSONFieldNames(t *testing.T) {
	m := New("cp-1")
	m.Name = "pre-boss-fight"
	m.WorldTime = 12.5
	m.Tags = []string{"manual"}
	parent := "cp-0"
	m.ParentID = &parent

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, field := range []string{"id", "name", "created_at", "world_time", "schema_version", "custom_fields", "tags", "parent_id"} {
		_, ok := decoded[field]
		require.Truef(t, ok, "expected field %q in encoded metadata", field)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	m := New("cp-2")
	m.Description = "checkpoint before dungeon entry"
	m.CustomFields["difficulty"] = "hard"

	raw, err := json.MarshalIndent(m, "", "  ")
	require.NoError(t, err)

	var got SnapshotMetadata
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, m.ID, got.ID)
	require.Equal(t, m.Description, got.Description)
	require.Equal(t, m.CustomFields, got.CustomFields)
}

func TestParentIDOmittedWhenNil(t *testing.T) {
	m := New("cp-3")
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "parent_id")
}
