package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Forgeworks_Go/internal/logger"
)

// Debouncer coalesces bursts of triggers into a single call of fn. Each
// Trigger restarts the quiet window; fn runs once the window passes with no
// further triggers. Every trigger is covered by exactly one later call, and
// a pending trigger is flushed on shutdown rather than dropped.
type Debouncer struct {
	window time.Duration
	fn     func()

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	stopped bool
}

// NewDebouncer creates a debouncer calling fn after window of quiet
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger records a change. It never blocks on fn.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending || d.stopped {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.mu.Unlock()

	d.fn()
}

// Pending reports whether a trigger is waiting for its window to close
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Flush runs fn now if a trigger is pending and reports whether it did
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	d.pending = false
	d.mu.Unlock()

	logger.FromContext(context.Background()).Debug(LogMsgDebounceFlushed)
	d.fn()
	return true
}

// Stop flushes any pending trigger and ignores later ones
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	pending := d.pending
	d.pending = false
	d.mu.Unlock()

	if pending {
		d.fn()
	}
}
