// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package debounce delays propagation of a rapidly-changing value until it
// has been stable for a configured interval. The interactive browser uses it
// to avoid firing a search on every keystroke.
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds a value of type T and invokes fn with the most recent
// value once delay elapses with no further Set call. A zero or negative
// delay fires immediately. Safe for concurrent use.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New returns a Debouncer that calls fn on the debouncer's own timer
// goroutine after the value settles.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Set records a new value, cancelling any pending fire and restarting the
// delay. Calls after Stop are ignored.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.delay <= 0 {
		go d.fn(v)
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			d.fn(v)
		}
	})
}

// Stop cancels any pending fire. No invocation of fn starts after Stop
// returns.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
