package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	got := formatEntry(ts, LevelError, CatForm, "Submit rejected", []any{"outcome", "invalid", "count", 2})

	require.Equal(t, "2025-12-06T10:45:00 [ERROR] [form] Submit rejected outcome=invalid count=2\n", got)
}

func TestFormatEntry_OrphanKey(t *testing.T) {
	got := formatEntry(time.Time{}, LevelDebug, CatUI, "msg", []any{"a", 1, "b"})

	require.Contains(t, got, "a=1")
	require.Contains(t, got, "b=<missing>")
}

func TestFormatEntry_RedactsPasswords(t *testing.T) {
	got := formatEntry(time.Time{}, LevelInfo, CatForm, "msg", []any{"password", "Secret123", "confirmPassword", "Secret123"})

	require.NotContains(t, got, "Secret123")
	require.Contains(t, got, "password=***")
	require.Contains(t, got, "confirmPassword=***")
}

func TestWrite_DisabledWithoutInit(t *testing.T) {
	Reset()
	// Must not panic with no destination installed.
	Debug(CatForm, "dropped")
}

func TestWrite_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	SetMinLevel(LevelWarn)
	Info(CatConfig, "quiet")
	Warn(CatConfig, "loud")

	require.NotContains(t, buf.String(), "quiet")
	require.Contains(t, buf.String(), "[WARN] [config] loud")
}

func TestWrite_SetEnabled(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	SetEnabled(false)
	Error(CatCLI, "hidden")
	SetEnabled(true)
	Error(CatCLI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestErrorErr(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	ErrorErr(CatCLI, "failed", errors.New("boom"))
	ErrorErr(CatCLI, "failed", nil)

	require.Contains(t, buf.String(), "error=boom")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestInit_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	Info(CatUI, "first")
	cleanup()
	Reset()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [ui] first")
}

func TestInit_BadPath(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "missing", "debug.log"))
	require.Error(t, err)
}
