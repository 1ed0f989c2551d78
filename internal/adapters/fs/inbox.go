package fs

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdfship/pdfship/internal/ports"
)

// DefaultSettleDelay is how long a new file must stay quiet before it is
// delivered. Writers that stream a PDF in chunks keep resetting the timer.
const DefaultSettleDelay = 500 * time.Millisecond

// Inbox watches a directory and delivers every new PDF file to the engine,
// acting as an input-acquisition adapter. Events are debounced per file so
// a document is delivered once its write has settled.
type Inbox struct {
	dir    string
	settle time.Duration
	logger ports.Logger

	mu       sync.Mutex
	debounce map[string]*time.Timer
}

// NewInbox creates an inbox watcher for dir. A non-positive settle delay
// falls back to DefaultSettleDelay.
func NewInbox(dir string, settle time.Duration, logger ports.Logger) *Inbox {
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return &Inbox{
		dir:      dir,
		settle:   settle,
		logger:   logger,
		debounce: make(map[string]*time.Timer),
	}
}

// Run watches the inbox until the context is canceled, calling deliver with
// the path of every settled PDF file. deliver runs on the debounce timer's
// goroutine; callers serialize their own session mutations.
func (in *Inbox) Run(ctx context.Context, deliver func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(in.dir); err != nil {
		return err
	}

	in.logger.Info("watching inbox", ports.String("dir", in.dir))

	for {
		select {
		case <-ctx.Done():
			in.stopTimers()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".pdf") {
				continue
			}
			in.schedule(event.Name, deliver)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			in.logger.Error("inbox watcher error", ports.Err(werr))
		}
	}
}

// schedule (re)arms the settle timer for path.
func (in *Inbox) schedule(path string, deliver func(path string)) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if t, ok := in.debounce[path]; ok {
		t.Stop()
	}
	in.debounce[path] = time.AfterFunc(in.settle, func() {
		in.mu.Lock()
		delete(in.debounce, path)
		in.mu.Unlock()

		in.logger.Debug("inbox file settled", ports.String("path", path))
		deliver(path)
	})
}

func (in *Inbox) stopTimers() {
	in.mu.Lock()
	defer in.mu.Unlock()
	for path, t := range in.debounce {
		t.Stop()
		delete(in.debounce, path)
	}
}
