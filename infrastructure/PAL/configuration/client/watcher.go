package client

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sensocket/application/logging"
	"sensocket/domain/mode"
	"sensocket/infrastructure/settings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// AddressListener receives the new address list of the watched mode.
type AddressListener func(addresses []settings.Address)

// Watcher reports address list changes of one mode's protocol settings.
//
// Uses fsnotify for instant updates, with polling as fallback.
type Watcher struct {
	manager  ConfigurationManager
	mode     mode.Mode
	interval time.Duration
	onChange AddressListener
	logger   logging.Logger

	prev []settings.Address
}

// NewWatcher creates a watcher for m. interval is the fallback polling interval.
// initial is the address list the client started with.
func NewWatcher(
	manager ConfigurationManager,
	m mode.Mode,
	initial []settings.Address,
	interval time.Duration,
	onChange AddressListener,
	logger logging.Logger,
) *Watcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Watcher{
		manager:  manager,
		mode:     m,
		interval: interval,
		onChange: onChange,
		logger:   logger,
		prev:     append([]settings.Address(nil), initial...),
	}
}

// Watch blocks until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) {
	// watch the directory: atomic writes (temp file, then rename) replace the inode
	var fsEvents <-chan fsnotify.Event
	var fsErrors <-chan error
	var configFileName string
	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		defer func() { _ = watcher.Close() }()
		dir, file := filepath.Split(w.manager.Path())
		if dir == "" {
			dir = "."
		}
		configFileName = file
		if addErr := watcher.Add(dir); addErr == nil {
			fsEvents = watcher.Events
			fsErrors = watcher.Errors
		} else {
			w.logger.Printf("config watcher: fsnotify watch failed: %v (using polling)", addErr)
		}
	} else {
		w.logger.Printf("config watcher: fsnotify unavailable: %v (using polling)", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsEvents:
			if !ok {
				fsEvents = nil
				continue
			}
			if filepath.Base(event.Name) != configFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.Check()
			}
		case watchErr, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			w.logger.Printf("config watcher: fsnotify error: %v", watchErr)
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check re-reads the configuration and calls onChange when the address list differs.
// A missing, unreadable or invalid file keeps the current list.
func (w *Watcher) Check() {
	// Configuration() falls back to defaults for a missing file; a deleted file must not
	// redirect a running client to the default addresses.
	if _, statErr := os.Stat(w.manager.Path()); errors.Is(statErr, fs.ErrNotExist) {
		w.logger.Printf("config watcher: %s is missing, keeping current addresses", w.manager.Path())
		return
	}
	conf, err := w.manager.Configuration()
	if err != nil {
		w.logger.Printf("config watcher: failed to load config: %v", err)
		return
	}
	s, err := conf.SettingsFor(w.mode)
	if err != nil {
		w.logger.Printf("config watcher: %v", err)
		return
	}
	if settings.EqualAddresses(w.prev, s.Addresses) {
		return
	}

	w.logger.Printf("config watcher: %s addresses changed (%d -> %d)", w.mode, len(w.prev), len(s.Addresses))
	w.prev = append([]settings.Address(nil), s.Addresses...)
	if w.onChange != nil {
		w.onChange(append([]settings.Address(nil), s.Addresses...))
	}
}
