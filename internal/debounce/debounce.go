// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package debounce delays a rapidly changing value until it has been stable for a
quiescence window.

Usage:

	debouncer := debounce.New(300*time.Millisecond, func(query string) {
	    runSearch(query)
	})
	defer debouncer.Stop()

	debouncer.Set("a")
	debouncer.Set("ab")
	debouncer.Set("abc") // only "abc" reaches runSearch

Each [Debouncer.Set] restarts the window. Superseded values are never emitted.
*/
package debounce

import (
	"sync"
	"time"
)

// Debouncer emits the last value it was given once no new value has arrived
// for the configured delay.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	latest     T
	emitted    bool
	stopped    bool
}

// New creates a [Debouncer] that calls fn with the settled value.
//
// fn runs on its own goroutine (the timer's), never concurrently with itself
// for the same generation.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Set records a new value and restarts the quiescence window.
func (debouncer *Debouncer[T]) Set(value T) {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()

	if debouncer.stopped {
		return
	}

	// A pending timer that already fired will see a stale generation and bail out
	debouncer.generation++
	generation := debouncer.generation
	if debouncer.timer != nil {
		debouncer.timer.Stop()
	}

	debouncer.timer = time.AfterFunc(debouncer.delay, func() {
		debouncer.fire(generation, value)
	})
}

func (debouncer *Debouncer[T]) fire(generation uint64, value T) {
	debouncer.mu.Lock()
	if debouncer.stopped || generation != debouncer.generation {
		debouncer.mu.Unlock()
		return
	}
	debouncer.latest = value
	debouncer.emitted = true
	debouncer.timer = nil
	debouncer.mu.Unlock()

	if debouncer.fn != nil {
		debouncer.fn(value)
	}
}

// Latest returns the last emitted value. The boolean is false until the first
// emission.
func (debouncer *Debouncer[T]) Latest() (T, bool) {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()
	return debouncer.latest, debouncer.emitted
}

// Stop cancels any pending emission. Further calls to Set are ignored.
func (debouncer *Debouncer[T]) Stop() {
	debouncer.mu.Lock()
	defer debouncer.mu.Unlock()

	debouncer.stopped = true
	debouncer.generation++
	if debouncer.timer != nil {
		debouncer.timer.Stop()
		debouncer.timer = nil
	}
}
