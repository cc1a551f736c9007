package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New(0)

	require.False(t, m.Visible())
	require.Empty(t, m.View())
	require.Equal(t, DefaultDuration, m.duration)
}

func TestShow(t *testing.T) {
	m, cmd := New(time.Second).Show("Hello", StyleSuccess)

	require.True(t, m.Visible())
	require.NotNil(t, cmd)
	require.Equal(t, "Hello", m.Message())
	require.Contains(t, m.View(), "Hello")
}

func TestHide(t *testing.T) {
	m, _ := New(time.Second).Show("Hello", StyleSuccess)
	m = m.Hide()

	require.False(t, m.Visible())
	require.Empty(t, m.View())
	require.Empty(t, m.Message())
}

func TestView_Styles(t *testing.T) {
	tests := []struct {
		style Style
		emoji string
	}{
		{StyleSuccess, "✅"},
		{StyleError, "❌"},
		{StyleInfo, "ℹ️"},
	}
	for _, tt := range tests {
		m, _ := New(time.Second).Show("Passwords do not match", tt.style)
		view := m.View()

		require.Contains(t, view, tt.emoji)
		require.Contains(t, view, "Passwords do not match")
		require.Contains(t, view, "╭")
	}
}

func TestUpdate_DismissMatchingToast(t *testing.T) {
	m, _ := New(time.Second).Show("first", StyleError)

	m = m.Update(DismissMsg{seq: m.seq})

	require.False(t, m.Visible())
}

func TestUpdate_StaleDismissIgnored(t *testing.T) {
	m, _ := New(time.Second).Show("first", StyleError)
	stale := DismissMsg{seq: m.seq}
	m, _ = m.Show("second", StyleError)

	m = m.Update(stale)

	require.True(t, m.Visible())
	require.Equal(t, "second", m.Message())
}

func TestScheduleDismiss_CarriesSequence(t *testing.T) {
	m, cmd := New(time.Millisecond).Show("x", StyleInfo)

	msg := cmd()

	require.Equal(t, DismissMsg{seq: m.seq}, msg)
}

func TestOverlay_HiddenReturnsBackground(t *testing.T) {
	bg := "line1\nline2"
	require.Equal(t, bg, New(0).Overlay(bg, 5, 2))
}

func TestOverlay_PlacesToastBottomRight(t *testing.T) {
	m, _ := New(time.Second).Show("Saved", StyleSuccess)
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 40)+"\n", 10), "\n")

	out := ansi.Strip(m.Overlay(bg, 40, 10))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	require.Contains(t, lines[7], "Saved")
	require.True(t, strings.HasSuffix(lines[7], ".."))
	require.True(t, strings.HasPrefix(lines[7], "...."))
}
