// Package app contains the root application model.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/enroll/internal/config"
	"github.com/zjrosen/enroll/internal/keys"
	"github.com/zjrosen/enroll/internal/log"
	"github.com/zjrosen/enroll/internal/registration"
	"github.com/zjrosen/enroll/internal/ui/ack"
	"github.com/zjrosen/enroll/internal/ui/styles"
	"github.com/zjrosen/enroll/internal/ui/toaster"
	"github.com/zjrosen/enroll/internal/ui/wizard"
	"github.com/zjrosen/enroll/internal/watcher"
)

// Toast texts.
const (
	MismatchToast    = "Passwords do not match"
	themeSaveToast   = "Theme not saved"
	themeReloadToast = "Theme not reloaded"
)

// ConfigWatcher reports edits to the config file. *watcher.Watcher
// satisfies it.
type ConfigWatcher interface {
	Listen() tea.Cmd
}

// Options configure the root model.
type Options struct {
	Config config.Config
	// ConfigPath is where a toggled theme mode is saved. Empty disables saving.
	ConfigPath string
	// Submitter receives the accepted record.
	Submitter registration.Submitter
	// Watcher, when set, reloads the theme whenever the config file changes.
	Watcher ConfigWatcher
}

// Result is the outcome of an accepted registration.
type Result struct {
	Record       registration.Record
	SubmissionID string
}

// Model is the root application state.
type Model struct {
	wizard wizard.Model
	ack    ack.Model
	result *Result

	// Centralized toaster, owned by app
	toaster toaster.Model

	configPath string
	watcher    ConfigWatcher
	width      int
	height     int
}

// New creates the root model from options.
func New(opts Options) Model {
	ui := opts.Config.UI
	return Model{
		wizard: wizard.New(wizard.Config{
			CardWidth:       ui.CardWidth,
			AnimationFrames: ui.AnimationFrames,
			Animate:         ui.Animate,
			Submitter:       opts.Submitter,
		}),
		toaster:    toaster.New(ui.ToastDuration()),
		configPath: opts.ConfigPath,
		watcher:    opts.Watcher,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return m.wizard.Init()
	}
	return tea.Batch(m.wizard.Init(), m.watcher.Listen())
}

// Result returns the accepted registration, if any.
func (m Model) Result() (Result, bool) {
	if m.result == nil {
		return Result{}, false
	}
	return *m.result, true
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Common.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Common.ToggleTheme):
			return m.toggleTheme()
		}
		if m.result != nil {
			var cmd tea.Cmd
			m.ack, cmd = m.ack.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		if m.result != nil {
			return m, nil
		}

	case wizard.MismatchMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(MismatchToast, toaster.StyleError)
		return m, cmd

	case wizard.AcceptedMsg:
		m.result = &Result{Record: msg.Record, SubmissionID: msg.SubmissionID}
		m.ack = ack.New(msg.Record, msg.SubmissionID, m.wizard.Width(), styles.Mode())
		m.toaster = m.toaster.Hide()
		return m, nil

	case ack.DoneMsg:
		log.Debug(log.CatUI, "Acknowledgement dismissed", "submissionId", msg.SubmissionID)
		return m, tea.Quit

	case watcher.ChangedMsg:
		return m.reloadTheme(msg.Path)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.wizard, cmd = m.wizard.Update(msg)
	return m, cmd
}

// toggleTheme flips light/dark and saves the choice when a config path is
// known. A failed save only shows a toast.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	mode := styles.ToggleMode()
	log.Debug(log.CatUI, "Theme toggled", "mode", mode)
	if m.result != nil {
		m.ack = ack.New(m.result.Record, m.result.SubmissionID, m.wizard.Width(), mode)
	}
	if m.configPath == "" {
		return m, nil
	}
	if err := config.SaveThemeMode(m.configPath, mode); err != nil {
		log.ErrorErr(log.CatConfig, "Saving theme mode failed", err, "path", m.configPath)
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(themeSaveToast, toaster.StyleError)
		return m, cmd
	}
	return m, nil
}

// reloadTheme applies the theme section of the changed config file and
// keeps listening. Color keys removed from the file keep their last value.
func (m Model) reloadTheme(path string) (tea.Model, tea.Cmd) {
	var listen tea.Cmd
	if m.watcher != nil {
		listen = m.watcher.Listen()
	}

	theme, err := config.LoadTheme(path)
	if err != nil {
		log.ErrorErr(log.CatConfig, "Reloading theme failed", err, "path", path)
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(themeReloadToast, toaster.StyleError)
		return m, tea.Batch(cmd, listen)
	}

	styles.ApplyTheme(ThemeFromConfig(theme))
	log.Debug(log.CatConfig, "Theme reloaded", "path", path, "mode", styles.Mode())
	if m.result != nil {
		m.ack = ack.New(m.result.Record, m.result.SubmissionID, m.wizard.Width(), styles.Mode())
	}
	return m, listen
}

// ThemeFromConfig converts the config section to the styles package's form.
func ThemeFromConfig(t config.ThemeConfig) styles.ThemeConfig {
	return styles.ThemeConfig{
		Mode:      t.Mode,
		Highlight: t.Highlight,
		Subtle:    t.Subtle,
		Error:     t.Error,
		Success:   t.Success,
	}
}

// View implements tea.Model. The card is centered and the toast drawn on
// top of it.
func (m Model) View() string {
	body := m.wizard.View()
	if m.result != nil {
		body = m.ack.View()
	}

	view := body
	if m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	return zone.Scan(view)
}
