// Package config provides configuration types and defaults for enroll.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/zjrosen/enroll/internal/log"
)

// Config holds all configuration options for enroll.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Output OutputConfig `mapstructure:"output"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	Animate         bool `mapstructure:"animate"`          // Slide between steps instead of jumping
	AnimationFrames int  `mapstructure:"animation_frames"` // Frames per slide (1-60)
	CardWidth       int  `mapstructure:"card_width"`       // Outer width of the form card
	ToastSeconds    int  `mapstructure:"toast_seconds"`    // How long notifications stay up
}

// ToastDuration returns the notification lifetime.
func (u UIConfig) ToastDuration() time.Duration {
	return time.Duration(u.ToastSeconds) * time.Second
}

// OutputConfig controls how an accepted registration is written to stdout.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "json" (default) or "yaml"
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode      string `mapstructure:"mode"`
	Highlight string `mapstructure:"highlight"` // Focused borders and primary buttons
	Subtle    string `mapstructure:"subtle"`    // Hints, descriptions, idle borders
	Error     string `mapstructure:"error"`     // Inline messages and error toasts
	Success   string `mapstructure:"success"`   // Acknowledgement accents
}

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Bounds for UI settings.
const (
	MinCardWidth       = 40
	MaxCardWidth       = 120
	MaxAnimationFrames = 60
)

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			Animate:         true,
			AnimationFrames: 12,
			CardWidth:       54,
			ToastSeconds:    3,
		},
		Output: OutputConfig{
			Format: FormatJSON,
		},
		Theme: ThemeConfig{
			Mode: "dark",
		},
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if err := ValidateOutput(cfg.Output); err != nil {
		return err
	}
	return ValidateTheme(cfg.Theme)
}

// ValidateUI checks UI settings.
func ValidateUI(ui UIConfig) error {
	if ui.AnimationFrames < 1 || ui.AnimationFrames > MaxAnimationFrames {
		return fmt.Errorf("ui.animation_frames must be between 1 and %d, got %d", MaxAnimationFrames, ui.AnimationFrames)
	}
	if ui.CardWidth < MinCardWidth || ui.CardWidth > MaxCardWidth {
		return fmt.Errorf("ui.card_width must be between %d and %d, got %d", MinCardWidth, MaxCardWidth, ui.CardWidth)
	}
	if ui.ToastSeconds < 1 {
		return fmt.Errorf("ui.toast_seconds must be at least 1, got %d", ui.ToastSeconds)
	}
	return nil
}

// ValidateOutput checks the output format.
func ValidateOutput(out OutputConfig) error {
	switch out.Format {
	case FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatJSON, FormatYAML, out.Format)
	}
}

// ValidateTheme checks theme mode and color overrides.
func ValidateTheme(theme ThemeConfig) error {
	switch theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", theme.Mode)
	}
	colors := []struct {
		key, value string
	}{
		{"theme.highlight", theme.Highlight},
		{"theme.subtle", theme.Subtle},
		{"theme.error", theme.Error},
		{"theme.success", theme.Success},
	}
	for _, c := range colors {
		if c.value != "" && !hexColor.MatchString(c.value) {
			return fmt.Errorf("%s must be a hex color like \"#FF8787\", got %q", c.key, c.value)
		}
	}
	return nil
}

// DefaultConfigPath returns the user-level config location.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".enroll", "config.yaml")
	}
	return filepath.Join(home, ".config", "enroll", "config.yaml")
}

// DefaultConfigTemplate returns the commented YAML written by WriteDefaultConfig.
// Values must stay in sync with Defaults.
func DefaultConfigTemplate() string {
	return `# enroll configuration

ui:
  # Slide between the two form steps instead of switching instantly
  animate: true
  # Frames per slide transition (1-60)
  animation_frames: 12
  # Outer width of the registration card (40-120)
  card_width: 54
  # Seconds a notification stays on screen
  toast_seconds: 3

output:
  # Format of the accepted registration written to stdout: json or yaml
  format: json

theme:
  # light, dark, or empty to follow the terminal background (ctrl+t toggles)
  mode: dark
  # Optional hex color overrides
  # highlight: "#54A0FF"
  # subtle: "#696969"
  # error: "#FF8787"
  # success: "#73F59F"
`
}

// WriteDefaultConfig creates a config file with default settings.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
