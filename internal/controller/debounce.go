package controller

import (
	"context"
	"maps"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period for keystroke-driven filter fields.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer coalesces rapid filter edits into a single call made after
// delay has passed without a new edit. Later values win per field.
type Debouncer struct {
	delay time.Duration
	fn    func(partial map[string]any)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]any
	seq     uint64
	stopped bool
}

// NewDebouncer creates a Debouncer calling fn. A non-positive delay uses
// DefaultDebounce.
func NewDebouncer(delay time.Duration, fn func(partial map[string]any)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Push records an edit and restarts the quiet period.
func (d *Debouncer) Push(partial map[string]any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if d.pending == nil {
		d.pending = map[string]any{}
	}
	maps.Copy(d.pending, partial)

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

// Flush runs the pending edit now. It reports whether anything was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	p := d.take()
	d.mu.Unlock()

	if p == nil {
		return false
	}
	d.fn(p)
	return true
}

// Stop drops any pending edit and ignores later pushes.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	p := d.take()
	d.mu.Unlock()

	if p != nil {
		d.fn(p)
	}
}

// take must be called with d.mu held.
func (d *Debouncer) take() map[string]any {
	p := d.pending
	d.pending = nil
	return p
}

// Debounced returns a Debouncer that feeds SetFilter. done, when set,
// receives the result of every load it triggers.
func (c *Controller[T]) Debounced(ctx context.Context, delay time.Duration, done func(error)) *Debouncer {
	return NewDebouncer(delay, func(partial map[string]any) {
		err := c.SetFilter(ctx, partial)
		if done != nil {
			done(err)
		}
	})
}
