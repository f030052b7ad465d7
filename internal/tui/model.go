// Package tui drives the dashboard on Bubble Tea. The program's own input
// handling is disabled; events come from an event.Source and are applied to
// the application state one at a time, and View paints the result.
package tui

import (
	"time"

	"termfolio/internal/app"
	"termfolio/internal/config"
	"termfolio/internal/errors"
	"termfolio/internal/event"
	"termfolio/internal/log"
	"termfolio/internal/tui/messages"
	"termfolio/internal/tui/styles"
	"termfolio/internal/tui/views"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// EventSource is the blocking event stream the model consumes.
type EventSource interface {
	Next() (event.Event, error)
}

type Model struct {
	app    *app.App
	events EventSource

	// Driver state, not part of the application state
	cfg      *config.Config
	theme    styles.Theme
	help     help.Model
	version  string
	started  time.Time
	lastTick time.Time
	width    int
	height   int
	updates  <-chan *config.Config
	err      error
}

func New(cfg *config.Config, events EventSource, version string) *Model {
	m := &Model{
		app:     app.New(),
		events:  events,
		cfg:     cfg,
		help:    help.New(),
		version: version,
		started: time.Now(),
	}
	m.applyTheme(cfg.Theme.Name)
	return m
}

// WithConfigUpdates makes the model apply configurations received on ch.
func (m *Model) WithConfigUpdates(ch <-chan *config.Config) *Model {
	m.updates = ch
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), waitForConfig(m.updates))
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.EventMsg:
		return m.handleEvent(msg.Event)
	case messages.ErrorMsg:
		switch {
		case errors.IsSourceClosed(msg.Err):
		case errors.IsInputFailure(msg.Err):
			m.err = msg.Err
			log.LogWithError(msg.Err).Error("terminal input failed")
		default:
			m.err = msg.Err
			log.LogWithError(msg.Err).Error("event source failed")
		}
		return m, tea.Quit
	case messages.ConfigUpdateMsg:
		m.applyConfig(msg.Config)
		return m, waitForConfig(m.updates)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) handleEvent(ev event.Event) (tea.Model, tea.Cmd) {
	if tick, ok := ev.(event.Tick); ok {
		m.lastTick = tick.Time
	}
	if err := m.app.HandleEvent(ev); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if m.app.Quit() {
		log.Debug("quit requested")
		return m, tea.Quit
	}
	return m, waitForEvent(m.events)
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	log.LogWithFields(log.F("theme", cfg.Theme.Name)).Info("configuration reloaded")
	if cfg.TickRate != m.cfg.TickRate {
		log.LogWithFields(log.F("tick_rate", cfg.TickRate.Duration)).Warn("tick_rate changes apply after a restart")
	}
	if cfg.Mouse != m.cfg.Mouse {
		log.LogWithFields(log.F("mouse", cfg.Mouse)).Warn("mouse changes apply after a restart")
	}
	// The running tick rate and mouse mode stay in effect.
	cfg.TickRate, cfg.Mouse = m.cfg.TickRate, m.cfg.Mouse
	m.cfg = cfg
	m.applyTheme(cfg.Theme.Name)
}

func (m *Model) applyTheme(name string) {
	m.theme = styles.Named(name)
	m.help.Styles.ShortKey = m.theme.HelpKey
	m.help.Styles.ShortDesc = m.theme.HelpDesc
	m.help.Styles.ShortSeparator = m.theme.HelpSep
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

func waitForEvent(events EventSource) tea.Cmd {
	return func() tea.Msg {
		ev, err := events.Next()
		if err != nil {
			return messages.ErrorMsg{Err: err}
		}
		return messages.EventMsg{Event: ev}
	}
}

func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return messages.ConfigUpdateMsg{Config: cfg}
	}
}

// App returns the application state.
func (m *Model) App() *app.App {
	return m.app
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Title() string         { return m.cfg.Title }
func (m *Model) Version() string       { return m.version }
func (m *Model) Section() app.Section  { return m.app.Section() }
func (m *Model) Mode() app.Mode        { return m.app.Mode() }
func (m *Model) StatusLine() string    { return m.app.StatusLine() }
func (m *Model) CommandBuffer() string { return m.app.CommandBuffer() }
func (m *Model) LastTick() time.Time   { return m.lastTick }
func (m *Model) Started() time.Time    { return m.started }
func (m *Model) Width() int            { return m.width }
func (m *Model) Height() int           { return m.height }
func (m *Model) Theme() styles.Theme   { return m.theme }

// Content returns the configured text for s, or the built-in text.
func (m *Model) Content(s app.Section) []string {
	if lines, ok := m.cfg.SectionContent(s); ok {
		return lines
	}
	return views.DefaultContent(s)
}

// HelpView renders the bindings of the active mode.
func (m *Model) HelpView() string {
	return m.help.View(m.app.Keys().ForMode(m.app.Mode()))
}
