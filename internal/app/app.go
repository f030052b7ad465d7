// Package app holds the dashboard's application state and the modal state
// machine that updates it one input event at a time.
package app

import (
	"termfolio/internal/event"

	"github.com/charmbracelet/bubbles/key"
)

// NormalStatus is the status line shown in Normal mode.
const NormalStatus = " Normal Mode - press ':' for commands, 'q' to quit "

// App is the application state. It is owned by the driver loop and only
// changed through HandleEvent.
type App struct {
	quit          bool
	section       Section
	mode          Mode
	commandBuffer []rune
	keys          KeyMap
}

// New returns the initial state: Dashboard, Normal mode, nothing typed.
func New() *App {
	return &App{
		section: Dashboard,
		mode:    Normal,
		keys:    DefaultKeyMap(),
	}
}

// HandleEvent applies one event. Mouse and Tick events are accepted and
// change nothing. The error is always nil; it is kept so callers treat
// dispatch as fallible.
func (a *App) HandleEvent(ev event.Event) error {
	k, ok := ev.(event.Key)
	if !ok {
		return nil
	}

	switch a.mode {
	case Command:
		a.handleCommandMode(k)
	default:
		a.handleNormalMode(k)
	}
	return nil
}

// handleNormalMode matches on the key alone; held modifiers are ignored.
func (a *App) handleNormalMode(k event.Key) {
	k = event.Key{Code: k.Code, Rune: k.Rune}
	switch {
	case key.Matches(k, a.keys.Quit):
		a.quit = true
	case key.Matches(k, a.keys.Command):
		a.mode = Command
		a.commandBuffer = a.commandBuffer[:0]
	case key.Matches(k, a.keys.Down):
		a.section = a.section.Next()
	case key.Matches(k, a.keys.Up):
		a.section = a.section.Previous()
	}
}

func (a *App) handleCommandMode(k event.Key) {
	switch {
	case key.Matches(k, a.keys.Execute):
		a.executeCommand(string(a.commandBuffer))
		a.mode = Normal
		a.commandBuffer = a.commandBuffer[:0]
	case key.Matches(k, a.keys.Cancel):
		a.mode = Normal
		a.commandBuffer = a.commandBuffer[:0]
	case key.Matches(k, a.keys.Erase):
		if n := len(a.commandBuffer); n > 0 {
			a.commandBuffer = a.commandBuffer[:n-1]
		}
	case k.Printable():
		a.commandBuffer = append(a.commandBuffer, k.Rune)
	}
}

// Quit reports whether the user asked to leave.
func (a *App) Quit() bool {
	return a.quit
}

// Section returns the section on screen.
func (a *App) Section() Section {
	return a.section
}

// Mode returns the active interaction mode.
func (a *App) Mode() Mode {
	return a.mode
}

// CommandBuffer returns the command typed so far, without the leading ':'.
func (a *App) CommandBuffer() string {
	return string(a.commandBuffer)
}

// Keys returns the key bindings.
func (a *App) Keys() KeyMap {
	return a.keys
}

// StatusLine is the bottom line of the screen. It depends only on the mode
// and the command buffer.
func (a *App) StatusLine() string {
	if a.mode == Command {
		return ":" + string(a.commandBuffer)
	}
	return NormalStatus
}
