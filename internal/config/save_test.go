package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThemeMode_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".enroll", "config.yaml")

	require.NoError(t, SaveThemeMode(configPath, "light"))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme:")
	assert.Contains(t, string(data), "mode: light")
}

func TestSaveThemeMode_PreservesOtherConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	require.NoError(t, SaveThemeMode(configPath, "light"))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# Frames per slide transition (1-60)")
	assert.Contains(t, content, "animation_frames: 12")
	assert.Contains(t, content, "format: json")
	assert.Contains(t, content, "mode: light")
	assert.NotContains(t, content, "mode: dark")

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	assert.Equal(t, "light", cfg.Theme.Mode)
	assert.Equal(t, 54, cfg.UI.CardWidth)
}

func TestSaveThemeMode_AddsMissingThemeSection(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ui:\n  card_width: 60\n"), 0o600))

	require.NoError(t, SaveThemeMode(configPath, "dark"))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "card_width: 60")
	assert.Contains(t, string(data), "mode: dark")
}

func TestSaveThemeMode_RejectsInvalidMode(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveThemeMode(configPath, "sepia")
	require.Error(t, err)

	_, statErr := os.Stat(configPath)
	require.True(t, os.IsNotExist(statErr), "nothing should be written")
}

func TestSaveThemeMode_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ui: [unclosed"), 0o600))

	err := SaveThemeMode(configPath, "dark")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing config")
}
