package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Border characters (rounded).
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// FormSectionConfig describes one bordered form field.
type FormSectionConfig struct {
	Content []string // Rows inside the border
	Width   int      // Outer width including borders
	Title   string   // Inline title in the top border
	Hint    string   // Muted text after the title, e.g. "required"
	Focused bool     // Use the focus color for border and title
	Error   string   // Inline message in the bottom border; wins over Focused
}

// RenderFormSection renders a bordered section:
//
//	╭─ Title (hint) ─────────╮
//	│content                 │
//	╰─ Error message ────────╯
func RenderFormSection(cfg FormSectionConfig) string {
	borderColor := BorderDefaultColor
	titleColor := BorderDefaultColor
	switch {
	case cfg.Error != "":
		borderColor = StatusErrorColor
		titleColor = StatusErrorColor
	case cfg.Focused:
		borderColor = BorderHighlightFocusColor
		titleColor = BorderHighlightFocusColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColor)
	hintStyle := lipgloss.NewStyle().Foreground(TextMutedColor)

	innerWidth := max(cfg.Width-2, 1)

	top := borderLine(borderStyle, borderTopLeft, borderTopRight, innerWidth, cfg.Title, cfg.Hint, func(label, hint string) string {
		out := titleStyle.Render(label)
		if hint != "" {
			out += " " + hintStyle.Render("("+hint+")")
		}
		return out
	})

	lines := make([]string, 0, len(cfg.Content)+2)
	lines = append(lines, top)
	for _, row := range cfg.Content {
		padding := ""
		if w := lipgloss.Width(row); w < innerWidth {
			padding = strings.Repeat(" ", innerWidth-w)
		}
		lines = append(lines, borderStyle.Render(borderVertical)+row+padding+borderStyle.Render(borderVertical))
	}

	bottom := borderLine(borderStyle, borderBottomLeft, borderBottomRight, innerWidth, cfg.Error, "", func(label, _ string) string {
		return ErrorTextStyle.Render(label)
	})
	lines = append(lines, bottom)

	return strings.Join(lines, "\n")
}

// borderLine builds ╭─ label ────╮ (or the bottom equivalent). With an empty
// label the line is a plain run of dashes. A hint that does not fit is
// dropped; a label that does not fit is cut with an ellipsis.
func borderLine(border lipgloss.Style, left, right string, innerWidth int, label, hint string, render func(label, hint string) string) string {
	if label == "" {
		return border.Render(left + strings.Repeat(borderHorizontal, innerWidth) + right)
	}
	// "─ " before the label and " " after it
	room := max(innerWidth-3, 1)
	if hint != "" && lipgloss.Width(label+" ("+hint+")") > room {
		hint = ""
	}
	if lipgloss.Width(label) > room {
		label = truncate.StringWithTail(label, uint(room), "…") //nolint:gosec // room is at least 1
	}
	labelWidth := lipgloss.Width(label)
	if hint != "" {
		labelWidth = lipgloss.Width(label + " (" + hint + ")")
	}
	dashes := max(room-labelWidth, 0)
	return border.Render(left+borderHorizontal+" ") + render(label, hint) +
		border.Render(" "+strings.Repeat(borderHorizontal, dashes)+right)
}
