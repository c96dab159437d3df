package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bakehouse/internal/adapters/cas"
	"go.trai.ch/bakehouse/internal/core/domain"
)

func TestStore(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "state.json")

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)

	got, err := store.Get("api")
	require.NoError(t, err)
	assert.Nil(t, got)

	record := domain.Provenance{
		Target:      "api",
		Path:        "apps/api/Dockerfile.bake",
		InputHash:   "0123456789abcdef",
		ContentHash: "fedcba9876543210",
	}
	require.NoError(t, store.Put(record))

	got, err = store.Get("api")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)

	// Reload from disk
	store2, err := cas.NewStore(storePath)
	require.NoError(t, err)

	got, err = store2.Get("api")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestStore_Corrupt(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(storePath, []byte("{not json"), 0o600))

	_, err := cas.NewStore(storePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrStateStore.Error())
}

func TestStore_EmptyFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(storePath, nil, 0o600))

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)

	got, err := store.Get("api")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFactory_Open(t *testing.T) {
	root := t.TempDir()

	store, err := cas.NewFactory().Open(root)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.Provenance{Target: "root", Path: "Dockerfile.bake"}))

	_, err = os.Stat(filepath.Join(root, domain.StateDir, cas.StateFileName))
	require.NoError(t, err)
}
