// Package ack renders the acknowledgement shown after an accepted
// registration.
package ack

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/enroll/internal/keys"
	"github.com/zjrosen/enroll/internal/log"
	"github.com/zjrosen/enroll/internal/registration"
	"github.com/zjrosen/enroll/internal/ui/styles"
)

// noMarginStyle removes glamour's document margins so the block lines up
// with the card edge.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// DoneMsg is sent when the user dismisses the acknowledgement.
type DoneMsg struct {
	Record       registration.Record
	SubmissionID string
}

// Payload encodes rec as 4-space indented JSON.
func Payload(rec registration.Record) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return data, nil
}

// Model is a blocking acknowledgement. It ignores everything except the
// dismiss keys.
type Model struct {
	record       registration.Record
	submissionID string
	width        int
	mode         string
	body         string
}

// New builds the acknowledgement for an accepted record. mode is "dark" or
// "light" and selects the glamour style.
func New(rec registration.Record, submissionID string, width int, mode string) Model {
	m := Model{record: rec, submissionID: submissionID, width: width, mode: mode}
	m.body = m.render()
	return m
}

// SubmissionID returns the id shown in the acknowledgement.
func (m Model) SubmissionID() string { return m.submissionID }

// Markdown returns the source rendered by View.
func (m Model) Markdown() string {
	payload, err := Payload(m.record)
	if err != nil {
		payload = []byte(err.Error())
	}
	var b strings.Builder
	b.WriteString("## You submitted the following values\n\n")
	fmt.Fprintf(&b, "Submission `%s`\n\n", m.submissionID)
	b.WriteString("```json\n")
	b.Write(payload)
	b.WriteString("\n```\n")
	return b.String()
}

func (m Model) render() string {
	style := m.mode
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(m.width),
	)
	if err == nil {
		var out string
		if out, err = r.Render(m.Markdown()); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	log.ErrorErr(log.CatUI, "Acknowledgement render failed", err)
	return m.Markdown()
}

// Update dismisses on Enter, Esc or q.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(k, keys.Common.Enter, keys.Common.Escape) || k.String() == "q" {
		done := DoneMsg{Record: m.record, SubmissionID: m.submissionID}
		return m, func() tea.Msg { return done }
	}
	return m, nil
}

// View renders the acknowledgement with its dismiss hint.
func (m Model) View() string {
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("enter/esc/q close")
	return lipgloss.JoinVertical(lipgloss.Left, m.body, "", hint)
}
