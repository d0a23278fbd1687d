package scan

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ostafen/sniff/pkg/report"
)

// Watch classifies files under root that are created or written after the
// call and writes their entries to out. Directories created later are
// watched too. Watch returns when ctx is done.
func (s *Scanner) Watch(ctx context.Context, root string, out report.Writer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := s.watchTree(w, root); err != nil {
		return err
	}

	ready := make(chan string)
	deb := newDebouncer(s.opts.Debounce, func(path string) {
		select {
		case ready <- path:
		case <-ctx.Done():
		}
	})
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if event.Has(fsnotify.Create) {
					if err := s.watchTree(w, event.Name); err != nil {
						s.logger.Warn("unable to watch directory", "path", event.Name, "err", err)
					}
				}
				continue
			}

			rel, err := filepath.Rel(root, event.Name)
			if err != nil {
				rel = event.Name
			}
			if info.Mode().IsRegular() && s.included(rel) {
				deb.schedule(event.Name)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", "err", err)

		case path := <-ready:
			deb.done(path)

			entry := s.ClassifyPath(ctx, path)
			if err := out.WriteEntry(entry); err != nil {
				return fmt.Errorf("failed to write report entry: %w", err)
			}
		}
	}
}

// debouncer runs fire for a key once the key has been quiet for delay.
// A key whose callback already started is left alone until done is called,
// so each burst of events fires exactly once.
type debouncer struct {
	delay time.Duration
	fire  func(key string)

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func newDebouncer(delay time.Duration, fire func(key string)) *debouncer {
	return &debouncer{
		delay:   delay,
		fire:    fire,
		pending: make(map[string]*time.Timer),
	}
}

func (d *debouncer) schedule(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.pending[key]; ok {
		if t.Stop() {
			t.Reset(d.delay)
		}
		return
	}
	d.pending[key] = time.AfterFunc(d.delay, func() { d.fire(key) })
}

// done forgets key after its callback has been handled.
func (d *debouncer) done(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.pending, key)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, t := range d.pending {
		t.Stop()
		delete(d.pending, key)
	}
}

func (s *Scanner) watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("failed to watch %q: %w", path, err)
		}
		s.logger.Debug("watching directory", "path", path)
		return nil
	})
}
