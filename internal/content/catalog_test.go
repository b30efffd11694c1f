package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSeed = `{
  "stories": [
    {"id": "st-1", "type": "vendor", "title": "Vendor sunset", "published_at": "2026-08-25T14:30:00Z"}
  ],
  "voices": [
    {"id": "v-1", "name": "Dana Reyes", "role": "Field CTO", "episodes": [
      {"id": "v1-ep1", "title": "Ep 1", "published_at": "2026-08-29T07:00:00Z"}
    ]}
  ],
  "winwires": [
    {"id": "w-1", "title": "Acme win", "customer_name": "Acme", "deal_value": "420000",
     "space_visibility": ["internal"], "created_at": "2026-08-26T11:00:00Z"}
  ]
}`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewCatalog_LoadsSeed(t *testing.T) {
	cat, err := NewCatalog(writeSeed(t, validSeed))
	require.NoError(t, err)

	snap := cat.Snapshot()
	assert.Len(t, snap.Stories, 1)
	assert.Len(t, snap.Voices, 1)
	assert.Len(t, snap.Winwires, 1)
	assert.Equal(t, "st-1", snap.Stories[0].ID)
	assert.Equal(t, "Dana Reyes", snap.Voices[0].Name)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestNewCatalog_RejectsBadSeeds(t *testing.T) {
	cases := []struct {
		name string
		seed string
	}{
		{"empty file", "   "},
		{"not json", "stories: []"},
		{"root not object", `[1, 2, 3]`},
		{"stories not array", `{"stories": {"id": "x"}}`},
		{"story missing title", `{"stories": [{"id": "st-1", "type": "vendor"}]}`},
		{"voice missing episodes", `{"voices": [{"id": "v-1", "name": "Dana"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(writeSeed(t, tc.seed))
			assert.Error(t, err)
		})
	}
}

func TestReload_KeepsPreviousSnapshotOnFailure(t *testing.T) {
	path := writeSeed(t, validSeed)
	cat, err := NewCatalog(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	assert.Error(t, cat.Reload())
	assert.Len(t, cat.Snapshot().Stories, 1)

	require.NoError(t, os.WriteFile(path, []byte(`{"stories": []}`), 0o644))
	require.NoError(t, cat.Reload())
	assert.Empty(t, cat.Snapshot().Stories)
}

func TestNewCatalog_MissingFileErrors(t *testing.T) {
	_, err := NewCatalog(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
