package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/mergechat/internal/window"
)

var (
	// ErrWindowLimit is returned when the host already holds MaxWindows.
	ErrWindowLimit = errors.New("window limit reached")
	// ErrHostStopped is returned by Open after Stop.
	ErrHostStopped = errors.New("window host stopped")
	// ErrInvalidSize is returned for a requested size that is not positive.
	ErrInvalidSize = errors.New("invalid window size")
)

// Event reports a window the host closed. External marks closes that did not
// originate from the session itself.
type Event struct {
	ID       window.ID
	External bool
}

// Config tunes a Host. Zero values mean no limit and no throttle.
type Config struct {
	MaxWindows   int
	OpenInterval time.Duration
}

// Host mints window handles and publishes close notifications. Open may be
// called from any goroutine; Events is drained by the UI one event at a time.
type Host struct {
	maxWindows int
	throttle   *throttle

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	lastID  window.ID
	windows map[window.ID]window.Options
	stopped bool

	events chan Event
}

// NewHost creates a window host.
func NewHost(cfg Config) *Host {
	ctx, cancel := context.WithCancel(context.Background())
	return &Host{
		maxWindows: cfg.MaxWindows,
		throttle:   newThrottle(cfg.OpenInterval),
		ctx:        ctx,
		cancel:     cancel,
		windows:    make(map[window.ID]window.Options),
		events:     make(chan Event, 16),
	}
}

// Open creates a window and returns its handle. Handles are never reused.
func (h *Host) Open(ctx context.Context, opts window.Options) (window.ID, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Size != nil && (opts.Size.Width <= 0 || opts.Size.Height <= 0) {
		return 0, fmt.Errorf("open window %s: %w", opts.Size, ErrInvalidSize)
	}
	if err := h.throttle.wait(ctx); err != nil {
		return 0, fmt.Errorf("open window: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped || h.ctx.Err() != nil {
		return 0, ErrHostStopped
	}
	if h.maxWindows > 0 && len(h.windows) >= h.maxWindows {
		return 0, fmt.Errorf("open window: %d open: %w", len(h.windows), ErrWindowLimit)
	}
	h.lastID++
	h.windows[h.lastID] = opts
	return h.lastID, nil
}

// RequestClose closes a window on behalf of the user. It reports whether id
// was open.
func (h *Host) RequestClose(id window.ID) bool {
	return h.close(id, true)
}

// Close closes a window on behalf of the session. It reports whether id was
// open.
func (h *Host) Close(id window.ID) bool {
	return h.close(id, false)
}

func (h *Host) close(id window.ID, external bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.windows[id]; !ok || h.stopped {
		return false
	}
	delete(h.windows, id)
	select {
	case <-h.ctx.Done():
	case h.events <- Event{ID: id, External: external}:
	}
	return true
}

// Options returns the options a window was opened with.
func (h *Host) Options(id window.ID) (window.Options, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	opts, ok := h.windows[id]
	return opts, ok
}

// Len returns the number of open windows.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.windows)
}

// Events returns the close notification channel. It is closed by Stop.
func (h *Host) Events() <-chan Event {
	return h.events
}

// Stop rejects further opens and closes the events channel.
func (h *Host) Stop() {
	h.cancel()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	close(h.events)
}
