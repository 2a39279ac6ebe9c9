package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestTokenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	assert.Empty(t, s.Token())
	require.NoError(t, s.SetToken("abc123"))
	assert.Equal(t, "abc123", s.Token())

	// A fresh store reads the persisted value back.
	s2, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", s2.Token())

	require.NoError(t, s2.ClearToken())
	assert.Empty(t, s2.Token())
}

func TestUserRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	var got testUser
	assert.False(t, s.User(&got))

	require.NoError(t, s.SetUser(testUser{ID: "u1", Name: "Ada"}))
	require.True(t, s.User(&got))
	assert.Equal(t, "Ada", got.Name)

	require.NoError(t, s.ClearUser())
	assert.False(t, s.User(&got))
}

func TestClearRemovesEverything(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, s.SetToken("tok"))
	require.NoError(t, s.SetUser(testUser{ID: "u1"}))
	require.NoError(t, s.SetTheme(ThemeDark))
	require.NoError(t, s.Clear())

	assert.Empty(t, s.Token())
	var u testUser
	assert.False(t, s.User(&u))

	s2, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, s2.Token())
}

func TestThemeDefaultsToSystemPreference(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	t.Setenv("COLORFGBG", "15;0")
	assert.Equal(t, ThemeDark, s.Theme())

	t.Setenv("COLORFGBG", "0;15")
	assert.Equal(t, ThemeLight, s.Theme())

	t.Setenv("COLORFGBG", "")
	assert.Equal(t, ThemeLight, s.Theme())

	require.NoError(t, s.SetTheme(ThemeDark))
	assert.Equal(t, ThemeDark, s.Theme())

	assert.Error(t, s.SetTheme("sepia"))
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600))

	s, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Token())
}
