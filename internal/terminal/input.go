// Package terminal is the real input source for the dashboard: it puts the
// terminal in raw mode, reads stdin on a cancellable reader and decodes the
// byte stream into raw key, mouse and focus notifications.
package terminal

import (
	"io"
	"os"
	"sync"
	"time"

	"termfolio/internal/errors"
	"termfolio/internal/event"
	"termfolio/internal/log"

	"github.com/charmbracelet/x/term"
	"github.com/muesli/cancelreader"
)

const readBufferSize = 256

type item struct {
	raw event.Raw
	err error
}

// Input implements event.InputSource on top of a terminal.
type Input struct {
	reader cancelreader.CancelReader
	items  chan item
	stop   chan struct{}
	done   chan struct{}

	mu      sync.Mutex
	pending *event.Raw

	fd        uintptr
	state     *term.State
	closeOnce sync.Once
}

// Open puts f in raw mode and starts reading from it. Close restores the
// terminal.
func Open(f *os.File) (*Input, error) {
	fd := f.Fd()
	if !term.IsTerminal(fd) {
		return nil, errors.NewTerminalError("input is not a terminal", nil)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.NewTerminalError("failed to enter raw mode", err)
	}

	in, err := newInput(f)
	if err != nil {
		_ = term.Restore(fd, state)
		return nil, err
	}
	in.fd = fd
	in.state = state
	log.LogWithFields(log.F("fd", fd)).Debug("terminal in raw mode")
	return in, nil
}

func newInput(r io.Reader) (*Input, error) {
	reader, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, errors.NewTerminalError("failed to create input reader", err)
	}
	in := &Input{
		reader: reader,
		items:  make(chan item, 64),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go in.readLoop()
	return in, nil
}

func (in *Input) readLoop() {
	defer close(in.done)

	var dec Decoder
	buf := make([]byte, readBufferSize)
	for {
		n, err := in.reader.Read(buf)
		if n > 0 {
			for _, raw := range dec.Decode(buf[:n]) {
				if !in.send(item{raw: raw}) {
					return
				}
			}
		}
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				return
			}
			in.send(item{err: err})
			return
		}
	}
}

func (in *Input) send(it item) bool {
	select {
	case in.items <- it:
		return true
	case <-in.stop:
		return false
	}
}

// Poll waits up to timeout for a notification. Read errors from the
// terminal are reported here.
func (in *Input) Poll(timeout time.Duration) (bool, error) {
	in.mu.Lock()
	ready := in.pending != nil
	in.mu.Unlock()
	if ready {
		return true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case it, ok := <-in.items:
		if !ok {
			return false, io.EOF
		}
		if it.err != nil {
			return false, it.err
		}
		in.mu.Lock()
		in.pending = &it.raw
		in.mu.Unlock()
		return true, nil
	case <-in.stop:
		return false, io.EOF
	case <-timer.C:
		return false, nil
	}
}

// Read returns the notification found by the last successful Poll.
func (in *Input) Read() (event.Raw, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.pending == nil {
		return event.Raw{}, errors.New("no pending input")
	}
	raw := *in.pending
	in.pending = nil
	return raw, nil
}

// Close stops the reader and restores the terminal state saved by Open.
func (in *Input) Close() error {
	var err error
	in.closeOnce.Do(func() {
		close(in.stop)
		in.reader.Cancel()
		if cerr := in.reader.Close(); cerr != nil {
			log.LogWithError(cerr).Debug("closing input reader")
		}
		if in.state != nil {
			if rerr := term.Restore(in.fd, in.state); rerr != nil {
				err = errors.NewTerminalError("failed to restore terminal", rerr)
			}
		}
		log.Debug("terminal restored")
	})
	return err
}
