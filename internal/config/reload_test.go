package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "ui:\n  card_width: 60\ntheme:\n  mode: light\n  highlight: \"#54A0FF\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	require.Equal(t, ThemeConfig{Mode: "light", Highlight: "#54A0FF"}, theme)
}

func TestLoadTheme_NoThemeSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  animate: false\n"), 0o600))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	require.Equal(t, ThemeConfig{}, theme)
}

func TestLoadTheme_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  mode: sepia\n"), 0o600))

	_, err := LoadTheme(path)
	require.ErrorContains(t, err, "theme.mode")
}

func TestLoadTheme_Missing(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "reading config")
}
