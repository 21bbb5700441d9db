// Package debounce provides a trailing-edge debouncer for rapidly changing
// string inputs, typically a free-text search box. Every new value restarts
// the quiescence timer; only the last value observed within a stability
// window is ever emitted, so intermediate keystrokes never reach the
// consumer.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window used when none is configured.
const DefaultWindow = 500 * time.Millisecond

// Debouncer delays propagation of a changing value until input quiesces.
// At most one emission is pending at any time; superseding input cancels
// the pending timer and no emission occurs for the discarded value.
// Safe for concurrent use.
type Debouncer struct {
	window time.Duration
	emit   func(settled string)

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	seq     uint64
	closed  bool
}

// New creates a Debouncer that calls emit with the settled value after raw
// input has been stable for window. A window <= 0 falls back to
// DefaultWindow. The emit callback runs on the timer goroutine.
func New(window time.Duration, emit func(settled string)) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window, emit: emit}
}

// Observe feeds a new raw value. The pending timer, if any, is invalidated
// and restarted, so a burst of calls within the window yields exactly one
// emission carrying the last value.
func (d *Debouncer) Observe(raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.pending = raw
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	// seq guards against a stopped timer that already fired and is waiting
	// on the lock: only the latest scheduled emission may deliver.
	d.timer = time.AfterFunc(d.window, func() { d.fire(seq) })
}

// Flush emits the pending value immediately, if one is waiting.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.closed || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	seq := d.seq
	d.mu.Unlock()
	d.fire(seq)
}

// Close cancels any pending emission. After Close, Observe is a no-op; the
// consumer is never called again.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if d.closed || d.timer == nil || seq != d.seq {
		d.mu.Unlock()
		return
	}
	settled := d.pending
	d.timer = nil
	d.mu.Unlock()

	d.emit(settled)
}
