package objection

import (
	"os"
	"path/filepath"
	"testing"

	"sigdesk/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ScopesByOrgAndAccount(t *testing.T) {
	lib := New([]types.Objection{
		{ID: "o1", OrgID: "default", AccountID: "acme", Theme: "Pricing"},
		{ID: "o2", OrgID: "default", AccountID: "globex", Theme: "Support"},
		{ID: "o3", OrgID: "other", AccountID: "acme", Theme: "Security"},
	})

	acme := lib.List("default", "acme")
	require.Len(t, acme, 1)
	assert.Equal(t, "o1", acme[0].ID)

	assert.Empty(t, lib.List("default", "unknown"))
	// Empty org matches any org.
	assert.Len(t, lib.List("", "acme"), 2)
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file yields empty library", func(t *testing.T) {
		lib, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, lib.List("default", "acme"))
	})

	t.Run("seed parsed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "objections.yaml")
		seed := `objections:
  - id: o1
    org_id: default
    account_id: acme
    theme: Pricing
    root_cause: Premium over incumbent
`
		require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

		lib, err := LoadFile(path)
		require.NoError(t, err)
		got := lib.List("default", "acme")
		require.Len(t, got, 1)
		assert.Equal(t, "Premium over incumbent", got[0].RootCause)
	})

	t.Run("malformed seed errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "objections.yaml")
		require.NoError(t, os.WriteFile(path, []byte("objections: {not: a list"), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}
