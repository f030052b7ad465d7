// Package cmd holds the termfolio command line.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"termfolio/internal/config"
	"termfolio/internal/errors"
	"termfolio/internal/log"
	"termfolio/internal/tui"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgFile  string
	debug    bool
	logFile  string
	tickRate time.Duration
	theme    string
	noMouse  bool
}

// runDashboard is replaced in tests.
var runDashboard = tui.Run

// isTerminal is replaced in tests.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(f.Fd()) }

// NewRootCmd builds the termfolio command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "termfolio",
		Short: "A keyboard driven portfolio dashboard for the terminal",
		Long: `termfolio shows a personal dashboard with Profile, Projects, Experience,
Skills and Contact sections. Move with j/k or the arrow keys, type ':' to
enter a command and ':q' or 'q' to leave.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, version)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/termfolio/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")

	rootCmd.Flags().DurationVar(&opts.tickRate, "tick-rate", 0, "refresh tick period (e.g. 250ms)")
	rootCmd.Flags().StringVar(&opts.theme, "theme", "", "color theme (see 'termfolio themes')")
	rootCmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "do not report mouse events")

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute(version string) int {
	rootCmd := NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err.Error())
		return 1
	}
	return 0
}

func runRoot(cmd *cobra.Command, opts *rootOptions, version string) error {
	cfg, path, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}

	if !isTerminal(os.Stdin) {
		return errors.NewTerminalError("termfolio needs an interactive terminal on stdin", nil)
	}

	setupLogging(opts, cfg)
	defer log.Shutdown()

	return runDashboard(cfg, tui.Options{
		Version:    version,
		ConfigPath: path,
		Input:      os.Stdin,
		Output:     cmd.OutOrStdout(),
	})
}

// loadConfig returns the effective configuration and the path it came from.
func loadConfig(opts *rootOptions) (*config.Config, string, error) {
	path := opts.cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, "", errors.Wrap(err, "cannot determine config path")
		}
	}
	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// applyFlags lets explicitly set flags win over the file.
func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("tick-rate") {
		cfg.TickRate = config.Duration{Duration: opts.tickRate}
	}
	if flags.Changed("theme") {
		cfg.Theme.Name = opts.theme
	}
	if flags.Changed("no-mouse") {
		cfg.Mouse = !opts.noMouse
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	return cfg.Validate()
}

// setupLogging keeps logs off the screen the dashboard draws on.
func setupLogging(opts *rootOptions, cfg *config.Config) {
	file := cfg.Log.File
	if file == "" && opts.debug {
		file = filepath.Join(os.TempDir(), "termfolio-debug.log")
	}

	logOpts := []log.Option{log.WithOutput(io.Discard), log.WithLevel(cfg.Log.Level)}
	if file != "" {
		logOpts = append(logOpts, log.WithFile(file))
	}
	if cfg.Log.JSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	log.Configure(logOpts...)
	log.SetDebug(opts.debug)

	if file != "" {
		log.LogWithFields(log.F("file", file), log.F("level", cfg.Log.Level)).Debug("logging configured")
	}
}

func printError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("✗ "+msg))
}
