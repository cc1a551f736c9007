// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#CCCCCC"}
	TextMutedColor       lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"}
	TextDescriptionColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	TextPlaceholderColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#777777"}

	// Borders
	BorderDefaultColor        lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#696969"}
	BorderHighlightFocusColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}

	// Status
	StatusSuccessColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#73F59F"}
	StatusErrorColor   lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}

	// Card
	CardBorderColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#8C8C8C"}
	CardTitleColor  lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#FFFFFF"}

	// Toast notification borders
	ToastBorderSuccessColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#73F59F"}
	ToastBorderErrorColor   lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}
	ToastBorderInfoColor    lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}

	// Buttons
	ButtonTextColor           lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor      lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonGhostFocusBgColor   lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#EAEEF2", Dark: "#2D3436"}

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#FFFFFF"}
)

// Styles derived from the colors above. Rebuilt by ApplyTheme.
var (
	SelectionIndicatorStyle lipgloss.Style
	PrimaryButtonStyle      lipgloss.Style
	PrimaryButtonFocused    lipgloss.Style
	GhostButtonStyle        lipgloss.Style
	GhostButtonFocused      lipgloss.Style
	DescriptionStyle        lipgloss.Style
	ErrorTextStyle          lipgloss.Style
	TitleStyle              lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	base := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	PrimaryButtonStyle = base.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)
	PrimaryButtonFocused = base.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	// Ghost buttons have no fill until focused.
	GhostButtonStyle = base.
		Foreground(TextPrimaryColor)
	GhostButtonFocused = base.
		Foreground(TextPrimaryColor).
		Background(ButtonGhostFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	DescriptionStyle = lipgloss.NewStyle().Foreground(TextDescriptionColor)
	ErrorTextStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(CardTitleColor)
}

// Button renders a label as a primary or ghost button.
func Button(label string, primary, focused bool) string {
	switch {
	case primary && focused:
		return PrimaryButtonFocused.Render(label)
	case primary:
		return PrimaryButtonStyle.Render(label)
	case focused:
		return GhostButtonFocused.Render(label)
	default:
		return GhostButtonStyle.Render(label)
	}
}
