// Package watch implements the watch-folder feature: PDFs dropped
// into a configured directory are added to the merge session
// automatically.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// addRate paces automatic adds so a bulk drop of files does not flood
// the worker with metadata requests.
var addRate = rate.Every(200 * time.Millisecond)

// Watcher feeds files from a directory into the session.
type Watcher struct {
	session driving.SessionService
	dir     string
	limiter *rate.Limiter

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// New creates a watcher over dir. Start must be called to begin
// watching.
func New(session driving.SessionService, dir string) *Watcher {
	return &Watcher{
		session: session,
		dir:     dir,
		limiter: rate.NewLimiter(addRate, 1),
	}
}

// Start begins watching the directory. It returns once the watch is
// established; events are handled on a background goroutine until ctx
// is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	w.fsw = fsw
	w.done = make(chan struct{})
	logger.Info("watching %s for dropped PDFs", w.dir)

	go w.loop(ctx)
	return nil
}

// Close stops the watcher. Safe to call before Start.
func (w *Watcher) Close() error {
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			w.handle(ctx, event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handle adds one dropped file, pacing via the limiter.
func (w *Watcher) handle(ctx context.Context, path string) {
	if !strings.EqualFold(filepath.Ext(path), domain.PDFExtension) {
		return
	}
	if err := w.limiter.Wait(ctx); err != nil {
		return
	}

	entry, err := w.session.AddPath(ctx, path)
	if err != nil {
		if domain.IsDuplicate(err) {
			// Editors fire multiple events per save; already added.
			logger.Debug("watch: %s already in collection", path)
			return
		}
		logger.Warn("watch: adding %s: %v", path, err)
		return
	}
	logger.Info("watch: added %s (%s)", entry.DisplayName, entry.ID)
}
