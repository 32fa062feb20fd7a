// Package debounce coalesces bursts of recomputation requests into a
// single delayed call. It exists so rapid successive mutations (a user
// typing) trigger one derived-state refresh instead of one per keystroke.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules a function to run after a quiet period. Each Call
// cancels the pending run and schedules a new one; only the last call in
// any delay window executes. The wrapped function never runs concurrently
// with itself: execution happens under the same lock that schedules it.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New creates a Debouncer with the given quiet period.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the quiet period, superseding any
// not-yet-fired previous schedule. There is no cancel-without-replace:
// a new call is the only way to discard a pending one, besides Stop.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.stopped {
			return
		}
		fn()
	})
}

// Stop discards any pending call and prevents future ones. Used on
// shutdown so no timer fires into torn-down state.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Func wraps fn so that invoking the returned closure behaves like
// Debouncer.Call with the arguments of the last invocation winning.
func Func(fn func(), delay time.Duration) func() {
	d := New(delay)
	return func() {
		d.Call(fn)
	}
}
