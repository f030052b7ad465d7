// Package eventtest provides a scripted event.InputSource for tests.
package eventtest

import (
	"fmt"
	"time"

	"termfolio/internal/event"
)

type item struct {
	raw     event.Raw
	readErr error
}

// Input is an event.InputSource fed by the test through Send. It never
// touches a terminal.
type Input struct {
	items   chan item
	pollErr chan error
	pending *item
}

// NewInput returns an Input with no pending notifications.
func NewInput() *Input {
	return &Input{
		items:   make(chan item, 256),
		pollErr: make(chan error, 1),
	}
}

// Send queues notifications for the source to read.
func (in *Input) Send(raws ...event.Raw) {
	for _, r := range raws {
		in.items <- item{raw: r}
	}
}

// FailPoll makes the next Poll that finds nothing pending return err.
func (in *Input) FailPoll(err error) {
	in.pollErr <- err
}

// FailRead makes the read following the next successful poll return err.
func (in *Input) FailRead(err error) {
	in.items <- item{readErr: err}
}

// Poll implements event.InputSource.
func (in *Input) Poll(timeout time.Duration) (bool, error) {
	if in.pending != nil {
		return true, nil
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case it := <-in.items:
		in.pending = &it
		return true, nil
	case err := <-in.pollErr:
		return false, err
	case <-timer.C:
		return false, nil
	}
}

// Read implements event.InputSource.
func (in *Input) Read() (event.Raw, error) {
	if in.pending == nil {
		return event.Raw{}, fmt.Errorf("eventtest: read without a ready poll")
	}
	it := *in.pending
	in.pending = nil
	if it.readErr != nil {
		return event.Raw{}, it.readErr
	}
	return it.raw, nil
}

// Keys converts each rune of s into a key notification.
func Keys(s string) []event.Raw {
	raws := make([]event.Raw, 0, len(s))
	for _, r := range s {
		raws = append(raws, Key(event.Char(r)))
	}
	return raws
}

// Key wraps k as a key notification.
func Key(k event.Key) event.Raw {
	return event.Raw{Kind: event.RawKey, Key: k}
}

// Mouse wraps m as a mouse notification.
func Mouse(m event.Mouse) event.Raw {
	return event.Raw{Kind: event.RawMouse, Mouse: m}
}

// Idle is an event.InputSource that never has input; Poll simply sleeps
// for its timeout.
type Idle struct{}

// Poll implements event.InputSource.
func (Idle) Poll(timeout time.Duration) (bool, error) {
	time.Sleep(timeout)
	return false, nil
}

// Read implements event.InputSource.
func (Idle) Read() (event.Raw, error) {
	return event.Raw{}, fmt.Errorf("eventtest: idle input has nothing to read")
}
