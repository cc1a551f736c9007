package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/enroll/internal/keys"
	"github.com/zjrosen/enroll/internal/registration"
	"github.com/zjrosen/enroll/internal/ui/styles"
)

const (
	cardTitle       = "Register"
	cardDescription = "Start the journey with us today."
)

// Zone IDs for mouse hit testing.
func fieldZoneID(f registration.Field) string { return "enroll-field-" + string(f) }

func optionZoneID(f registration.Field, v string) string {
	return "enroll-option-" + string(f) + "-" + v
}

func buttonZoneID(b button) string { return fmt.Sprintf("enroll-button-%d", b) }

// paneWidth is the width of one step pane inside a card of the given width
// (border and one column of padding on each side).
func paneWidth(cardWidth int) int {
	return max(cardWidth-4, 10)
}

// View renders the card.
func (m Model) View() string {
	step := m.ctrl.Step()
	inner := paneWidth(m.cardWidth)

	title := styles.TitleStyle.Render(cardTitle)
	indicator := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render(fmt.Sprintf("Step %d of 2", int(step)+1))
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(indicator), 1)
	header := title + strings.Repeat(" ", gap) + indicator

	body := m.slider.View(
		m.renderPane(registration.StepFirst),
		m.renderPane(registration.StepSecond),
	)

	m.help.Width = inner
	footer := m.help.View(keys.FormHelp{SecondStep: step == registration.StepSecond})

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		styles.DescriptionStyle.Render(cardDescription),
		"",
		body,
		"",
		m.renderButtons(),
		"",
		footer,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.CardBorderColor).
		Padding(0, 1).
		Width(m.cardWidth - 2).
		Render(content)
}

// renderPane renders the fields of one step. Only the current step's pane
// carries zone marks, so hit testing never sees off-screen fields.
func (m Model) renderPane(step registration.Step) string {
	active := step == m.ctrl.Step()
	width := paneWidth(m.cardWidth)
	focused := m.focusedField()

	var blocks []string
	for i := range m.fields {
		fs := &m.fields[i]
		if registration.StepOf(fs.config.field) != step {
			continue
		}
		block := m.renderField(fs, width, active && fs == focused, active)
		if active {
			block = zone.Mark(fieldZoneID(fs.config.field), block)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n")
}

func (m Model) renderField(fs *fieldState, width int, focused, active bool) string {
	cfg := fs.config
	status := m.ctrl.Status(cfg.field)

	var rows []string
	hint := ""
	switch cfg.kind {
	case kindSelect:
		value := m.ctrl.Value(cfg.field)
		if value == "" {
			hint = cfg.placeholder
		}
		for i, o := range cfg.options {
			prefix := " "
			if focused && i == fs.cursor {
				prefix = styles.SelectionIndicatorStyle.Render(">")
			}
			radio := "( )"
			if o.value == value {
				radio = "(●)"
			}
			row := prefix + radio + " " + o.label
			if active {
				row = zone.Mark(optionZoneID(cfg.field, o.value), row)
			}
			rows = append(rows, row)
		}
	default:
		rows = []string{" " + fs.input.View()}
	}

	section := styles.RenderFormSection(styles.FormSectionConfig{
		Content: rows,
		Width:   width,
		Title:   cfg.label,
		Hint:    hint,
		Focused: focused,
		Error:   status.Message(),
	})
	if cfg.description != "" {
		section += "\n " + styles.DescriptionStyle.Render(cfg.description)
	}
	return section
}

// renderButtons renders the current step's actions.
func (m Model) renderButtons() string {
	focused, onButtons := m.focusedButton()
	var parts []string
	for _, b := range m.buttons() {
		rendered := styles.Button(b.label(), b == buttonSubmit, onButtons && focused == b)
		parts = append(parts, zone.Mark(buttonZoneID(b), rendered))
	}
	return strings.Join(parts, "  ")
}
