package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadTheme reads only the theme section of the config file at path. Keys
// that are absent come back empty, which ApplyTheme treats as "keep".
func LoadTheme(path string) (ThemeConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return ThemeConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var theme ThemeConfig
	if err := v.UnmarshalKey("theme", &theme); err != nil {
		return ThemeConfig{}, fmt.Errorf("decoding theme: %w", err)
	}
	if err := ValidateTheme(theme); err != nil {
		return ThemeConfig{}, err
	}
	return theme, nil
}
