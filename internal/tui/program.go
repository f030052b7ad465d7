package tui

import (
	"io"
	"os"

	"termfolio/internal/config"
	"termfolio/internal/errors"
	"termfolio/internal/event"
	"termfolio/internal/log"
	"termfolio/internal/terminal"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures Run.
type Options struct {
	Version string
	// ConfigPath, when set, is watched and reloaded while the dashboard runs.
	ConfigPath string
	Input      *os.File
	Output     io.Writer
}

// Run owns the terminal until the user quits or input fails. Raw mode and
// the alternate screen are restored on every exit path.
func Run(cfg *config.Config, opts Options) error {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	in, err := terminal.Open(opts.Input)
	if err != nil {
		return err
	}
	defer func() {
		if err := in.Close(); err != nil {
			log.LogError(err, "restoring terminal")
		}
	}()

	source := event.NewSource(in, cfg.TickRate.Duration)
	defer source.Close()

	model := New(cfg, source, opts.Version)

	if opts.ConfigPath != "" {
		watcher, err := config.Watch(opts.ConfigPath)
		if err != nil {
			log.LogWithError(err).Warn("config reload disabled")
		} else {
			defer watcher.Close()
			model.WithConfigUpdates(watcher.Updates())
		}
	}

	programOpts := []tea.ProgramOption{
		tea.WithInput(nil),
		tea.WithOutput(opts.Output),
		tea.WithAltScreen(),
	}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	log.LogWithFields(
		log.F("tick_rate", source.TickRate()),
		log.F("theme", cfg.Theme.Name),
		log.F("mouse", cfg.Mouse),
	).Info("starting dashboard")

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return errors.Wrap(err, "dashboard failed")
	}
	if err := model.Err(); err != nil {
		return err
	}
	log.Info("dashboard exited")
	return nil
}
