package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PRIVIX_CONFIG", filepath.Join(home, "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.Session.Persist)
	require.Equal(t, filepath.Join(home, ".local", "share", "privix", "privix.db"), cfg.Session.Path)
	require.Equal(t, 67, cfg.UI.InitialScore)
	require.Equal(t, ViewGallery, cfg.UI.ViewMode)
	require.Equal(t, "9:41", cfg.UI.Clock)
	require.Equal(t, filepath.Join(home, "Documents", "privix"), cfg.Export.Dir)
	require.Empty(t, cfg.Log.File)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[session]
persist = true
path = "/tmp/privix-test.db"

[ui]
initial_score = 40
view_mode = "interactive"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("PRIVIX_CONFIG", path)
	t.Setenv("PRIVIX_UI_CLOCK", "10:02")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Session.Persist)
	require.Equal(t, "/tmp/privix-test.db", cfg.Session.Path)
	require.Equal(t, 40, cfg.UI.InitialScore)
	require.Equal(t, ViewInteractive, cfg.UI.ViewMode)
	require.Equal(t, "10:02", cfg.UI.Clock)
}

func TestLoadRejectsUnknownViewMode(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("PRIVIX_CONFIG", filepath.Join(dir, "none.toml"))
	t.Setenv("PRIVIX_UI_VIEW_MODE", "carousel")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ui.view_mode")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nclock = "), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("PRIVIX_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestSaveViewModeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv("HOME", dir)
	t.Setenv("PRIVIX_CONFIG", path)

	require.NoError(t, SaveViewMode(ViewInteractive))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, ViewInteractive, again.UI.ViewMode)
	require.Equal(t, 67, again.UI.InitialScore, "unset keys keep their defaults")
}

func TestSaveViewModeKeepsFileAndIgnoresEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nclock = \"10:30\"\nview_mode = \"gallery\"\n"), 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("PRIVIX_CONFIG", path)
	t.Setenv("PRIVIX_SESSION_PERSIST", "true")
	t.Setenv("PRIVIX_UI_INITIAL_SCORE", "12")

	require.NoError(t, SaveViewMode(ViewInteractive))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "persist")
	require.NotContains(t, string(data), "initial_score")
	require.Contains(t, string(data), "10:30")

	// viper treats empty env values as unset.
	t.Setenv("PRIVIX_SESSION_PERSIST", "")
	t.Setenv("PRIVIX_UI_INITIAL_SCORE", "")
	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.Session.Persist)
	require.Equal(t, 67, cfg.UI.InitialScore)
	require.Equal(t, "10:30", cfg.UI.Clock)
	require.Equal(t, ViewInteractive, cfg.UI.ViewMode)
}

func TestSaveViewModeRejectsUnknown(t *testing.T) {
	t.Setenv("PRIVIX_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, SaveViewMode("grid"))
}
