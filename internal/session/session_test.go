package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyunja/fity-cli/internal/common"
)

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	saved, err := Save("tok123", "user@example.com")
	require.NoError(t, err)
	assert.True(t, saved.Authenticated())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tok123", loaded.Token)
	assert.Equal(t, "user@example.com", loaded.Email)
	assert.False(t, loaded.SavedAt.IsZero())
}

func TestLoadWithoutSession(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestLoadEmptyToken(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	fityDir := filepath.Join(dir, "fity")
	require.NoError(t, os.MkdirAll(fityDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(fityDir, "session.json"), []byte(`{"token":""}`), 0600))

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestSaveFilePermissions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	_, err := Save("tok", "")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "fity", "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestClear(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	_, err := Save("tok", "")
	require.NoError(t, err)
	require.NoError(t, Clear())

	_, err = Load()
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	// Clearing again is not an error.
	assert.NoError(t, Clear())
}

func TestAuthenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
	assert.False(t, (&Session{}).Authenticated())
	assert.True(t, (&Session{Token: "x"}).Authenticated())
}
