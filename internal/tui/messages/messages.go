package messages

import (
	"termfolio/internal/config"
	"termfolio/internal/event"
)

// EventMsg carries one event from the event source.
type EventMsg struct {
	Event event.Event
}

// ErrorMsg reports that the event source failed.
type ErrorMsg struct {
	Err error
}

// ConfigUpdateMsg carries a reloaded configuration.
type ConfigUpdateMsg struct {
	Config *config.Config
}
