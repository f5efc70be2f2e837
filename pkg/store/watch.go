package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/matchday/pkg/log"
)

// Change is emitted by Watch when a watched document is rewritten, either by
// this process or by another instance (last writer wins).
type Change struct {
	Key string
}

// Watch streams changes of the documents under the base path until ctx is
// cancelled. Callers should drain the channel; bursts are coalesced and
// surplus notifications are dropped rather than blocking the watcher.
func (s *Store) Watch(ctx context.Context) (<-chan Change, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.Warn("store: watcher close", "err", err)
			}
		})
	}

	if err := watcher.Add(s.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	changes := make(chan Change, 16)

	var (
		sendMu sync.Mutex
		closed bool
	)
	send := func(c Change) {
		sendMu.Lock()
		defer sendMu.Unlock()
		if closed {
			return
		}
		select {
		case changes <- c:
		default:
			// The consumer reloads everything on the next change anyway.
		}
	}

	go func() {
		defer func() {
			sendMu.Lock()
			closed = true
			close(changes)
			sendMu.Unlock()
		}()
		defer closeWatcher()

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("store: watcher error", "err", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				key := filepath.Base(evt.Name)
				if key == tempDir {
					continue
				}
				throttle.Enqueue(Change{Key: key}, send)
			}
		}
	}()

	return changes, nil
}

// changeThrottle coalesces rapid notifications so a reader reloads once per
// burst of filesystem activity instead of on every single write.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *changeThrottle) Enqueue(c Change, send func(Change)) {
	t.mu.Lock()
	t.pending[c.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func(Change)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Change{Key: key})
	}
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
