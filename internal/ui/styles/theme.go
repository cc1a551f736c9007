package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Mode      string
	Highlight string
	Subtle    string
	Error     string
	Success   string
}

// ApplyTheme applies custom theme colors and the light/dark mode.
// Empty strings keep the defaults. Colors are assumed validated by config.
func ApplyTheme(cfg ThemeConfig) {
	solid := func(hex string) lipgloss.TerminalColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}
	if cfg.Highlight != "" {
		BorderHighlightFocusColor = solid(cfg.Highlight)
		ButtonPrimaryFocusBgColor = solid(cfg.Highlight)
		ToastBorderInfoColor = solid(cfg.Highlight)
	}
	if cfg.Subtle != "" {
		TextMutedColor = solid(cfg.Subtle)
		BorderDefaultColor = solid(cfg.Subtle)
	}
	if cfg.Error != "" {
		StatusErrorColor = solid(cfg.Error)
		ToastBorderErrorColor = solid(cfg.Error)
	}
	if cfg.Success != "" {
		StatusSuccessColor = solid(cfg.Success)
		ToastBorderSuccessColor = solid(cfg.Success)
	}

	switch cfg.Mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}

	rebuildStyles()
}

// Mode returns "dark" or "light" for the background lipgloss currently assumes.
func Mode() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// ToggleMode flips between light and dark and returns the new mode.
func ToggleMode() string {
	lipgloss.SetHasDarkBackground(!lipgloss.HasDarkBackground())
	rebuildStyles()
	return Mode()
}
