package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"termfolio/internal/errors"
	"termfolio/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written and delivers each
// valid result on Updates. Invalid or missing files are logged and skipped.
type Watcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	updates   chan *Config
	stopChan  chan struct{}
	stopOnce  sync.Once
	done      chan struct{}
}

// Watch starts watching path. The directory is watched rather than the
// file itself so editors that replace the file on save are still seen.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:      abs,
		fsWatcher: fsWatcher,
		updates:   make(chan *Config, 1),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
	go w.loop()
	log.LogWithFields(log.F("path", abs)).Debug("watching config file")
	return w, nil
}

// Updates delivers reloaded configurations. It is closed when the watcher stops.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.fsWatcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.updates)

	for {
		select {
		case <-w.stopChan:
			return
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			cfg, err := ReadConfigFile(w.path)
			switch {
			case errors.IsConfigNotFound(err):
				log.LogWithFields(log.F("path", w.path)).Debug("config file gone, keeping current settings")
				continue
			case errors.IsInvalidConfig(err):
				log.LogWithError(err).Warn("ignoring invalid config reload")
				continue
			case err != nil:
				log.LogWithError(err).Warn("config reload failed")
				continue
			}
			w.deliver(cfg)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithError(err).Warn("config watcher error")
		}
	}
}

// deliver keeps only the newest pending config.
func (w *Watcher) deliver(cfg *Config) {
	select {
	case w.updates <- cfg:
		return
	default:
	}
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	case <-w.stopChan:
	}
}
