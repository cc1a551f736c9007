package ack

import (
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/enroll/internal/registration"
)

func record() registration.Record {
	return registration.Record{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		StudentID:       "S100",
		Year:            "11",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
	}
}

func TestPayload_FourSpaceIndent(t *testing.T) {
	data, err := Payload(record())
	require.NoError(t, err)

	require.Contains(t, string(data), "\n    \"name\": \"Ada Lovelace\"")
	require.Contains(t, string(data), "\n    \"studentId\": \"S100\"")

	var back registration.Record
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, record(), back)
}

func TestMarkdown(t *testing.T) {
	m := New(record(), "abc-123", 60, "dark")

	md := m.Markdown()

	require.Contains(t, md, "Submission `abc-123`")
	require.Contains(t, md, "```json\n{")
	require.Contains(t, md, "\"confirmPassword\": \"Secret123\"")
}

func TestView_ShowsPayload(t *testing.T) {
	m := New(record(), "abc-123", 60, "light")

	view := ansi.Strip(m.View())

	require.Contains(t, view, "ada@example.com")
	require.Contains(t, view, "abc-123")
	require.Contains(t, view, "enter/esc/q close")
}

func TestUpdate_DismissKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		m := New(record(), "id-1", 60, "dark")
		_, cmd := m.Update(k)
		require.NotNil(t, cmd, "key %s", k)

		done, ok := cmd().(DoneMsg)
		require.True(t, ok)
		require.Equal(t, "id-1", done.SubmissionID)
		require.Equal(t, record(), done.Record)
	}
}

func TestUpdate_IgnoresOtherInput(t *testing.T) {
	m := New(record(), "id-1", 60, "dark")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.Nil(t, cmd)

	_, cmd = m.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	require.Nil(t, cmd)
}
