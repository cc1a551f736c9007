package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/enroll/internal/app"
	"github.com/zjrosen/enroll/internal/config"
	"github.com/zjrosen/enroll/internal/log"
	"github.com/zjrosen/enroll/internal/registration"
	"github.com/zjrosen/enroll/internal/ui/styles"
	"github.com/zjrosen/enroll/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user-level config.
const localConfigPath = ".enroll/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "enroll",
	Short: "A two-step student registration form for the terminal",
	Long: `enroll collects a student registration in two steps: name, email,
student ID and year of study, then a password and its confirmation.

On success the accepted record is printed to stdout as JSON or YAML, so
enroll can sit at the front of a pipeline:

  enroll | jq .studentId
  enroll --output yaml > student.yaml`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/enroll/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (also enabled by ENROLL_DEBUG)")
	rootCmd.PersistentFlags().StringP("output", "o", "",
		"format of the accepted record: json or yaml")
	rootCmd.Flags().Bool("no-animation", false,
		"switch steps instantly instead of sliding")

	// Bind flags to viper
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("ui.animate", defaults.UI.Animate)
	viper.SetDefault("ui.animation_frames", defaults.UI.AnimationFrames)
	viper.SetDefault("ui.card_width", defaults.UI.CardWidth)
	viper.SetDefault("ui.toast_seconds", defaults.UI.ToastSeconds)
	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("theme.mode", defaults.Theme.Mode)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .enroll/config.yaml (current directory)
		// 2. ~/.config/enroll/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			viper.AddConfigPath(filepath.Dir(config.DefaultConfigPath()))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the user-level default.
		// An explicit --config that is missing just runs on defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			defaultPath := config.DefaultConfigPath()
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// startLogging enables the debug log when --debug or ENROLL_DEBUG is set.
// ENROLL_LOG overrides the default debug.log path.
func startLogging(open func(path string) (func(), error)) (func(), error) {
	if !debugFlag && os.Getenv("ENROLL_DEBUG") == "" {
		return func() {}, nil
	}
	logPath := os.Getenv("ENROLL_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := open(logPath)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatCLI, "enroll starting", "version", version, "logPath", logPath)
	return cleanup, nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	cleanup, err := startLogging(func(path string) (func(), error) {
		return log.InitWithTeaLog(path, "enroll")
	})
	if err != nil {
		return err
	}
	defer cleanup()

	if noAnimation, _ := cmd.Flags().GetBool("no-animation"); noAnimation {
		cfg.UI.Animate = false
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	styles.ApplyTheme(app.ThemeFromConfig(cfg.Theme))

	// Store the config file path for saving theme changes
	configFilePath := viper.ConfigFileUsed()
	if configFilePath == "" {
		configFilePath = config.DefaultConfigPath()
	}

	opts := app.Options{
		Config:     cfg,
		ConfigPath: configFilePath,
	}
	if w := startWatcher(configFilePath); w != nil {
		defer func() { _ = w.Stop() }()
		opts.Watcher = w
	}

	var accepted *registration.Record
	opts.Submitter = registration.SubmitterFunc(func(rec registration.Record) {
		accepted = &rec
	})

	zone.NewGlobal()
	model := app.New(opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if accepted == nil {
		log.Debug(log.CatCLI, "Exited without a registration")
		return nil
	}
	if m, ok := final.(app.Model); ok {
		if res, ok := m.Result(); ok {
			log.Info(log.CatCLI, "Writing accepted registration", "submissionId", res.SubmissionID)
		}
	}
	return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, *accepted)
}

// startWatcher watches the config file for theme edits. The form works
// without it, so failures are only logged.
func startWatcher(path string) *watcher.Watcher {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		log.ErrorErr(log.CatConfig, "Config watcher unavailable", err)
		return nil
	}
	if _, err := w.Start(); err != nil {
		log.ErrorErr(log.CatConfig, "Config watcher unavailable", err, "path", path)
		_ = w.Stop()
		return nil
	}
	return w
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
