// ABOUTME: Tests for the credential store.
// ABOUTME: Covers missing, corrupt, empty, and round-trip cases.
package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("not json"), 0600))

	s := NewStore(dir)
	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLoadEmptyToken(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"refresh_token":""}`), 0600))

	s := NewStore(dir)
	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	// Directory does not exist yet; Save must create it.
	dir := filepath.Join(t.TempDir(), "macrofactor")
	s := NewStore(dir)

	require.NoError(t, s.Save(Credential{RefreshToken: "rt-1"}))

	cred, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "rt-1", cred.RefreshToken)
}

func TestSaveOverwrites(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save(Credential{RefreshToken: "old"}))
	require.NoError(t, s.Save(Credential{RefreshToken: "new"}))

	cred, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "new", cred.RefreshToken)
}
