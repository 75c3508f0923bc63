// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/ponydex/internal/debounce"
)

// Snapshot is the observable state of a [Session].
type Snapshot struct {
	ID string `json:"id"`
	// Query is the last value typed, settled or not.
	Query string `json:"query"`
	// Sequence numbers the latest issued run. Zero before the first run.
	Sequence uint64 `json:"sequence"`
	// Results belongs to the latest issued run; Results.Query tells which query.
	Results Results `json:"results"`
}

// Session is one live search box.
type Session struct {
	id         string
	aggregator *Aggregator
	debouncer  *debounce.Debouncer[string]
	base       context.Context

	mu       sync.Mutex
	query    string
	sequence uint64
	results  Results
	cancel   context.CancelFunc
	lastSeen time.Time
	closed   bool
	running  sync.WaitGroup
}

func newSession(base context.Context, id string, aggregator *Aggregator, delay time.Duration, now time.Time) *Session {
	session := &Session{
		id:         id,
		aggregator: aggregator,
		base:       base,
		results:    EmptyResults(""),
		lastSeen:   now,
	}
	session.debouncer = debounce.New(delay, session.run)
	return session
}

// ID returns the session identifier.
func (session *Session) ID() string { return session.id }

// Type records a keystroke. The search starts once typing pauses.
func (session *Session) Type(query string, now time.Time) {
	session.mu.Lock()
	session.query = query
	session.lastSeen = now
	session.mu.Unlock()

	session.debouncer.Set(query)
}

// Snapshot returns the current state and marks the session as used.
func (session *Session) Snapshot(now time.Time) Snapshot {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastSeen = now
	return Snapshot{
		ID:       session.id,
		Query:    session.query,
		Sequence: session.sequence,
		Results:  session.results,
	}
}

// run executes a settled query. It cancels the run it supersedes and drops its
// own result if a newer run was issued meanwhile.
func (session *Session) run(query string) {
	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return
	}

	if session.cancel != nil {
		session.cancel()
	}
	ctx, cancel := context.WithCancel(session.base)
	session.cancel = cancel
	session.sequence++
	sequence := session.sequence
	if query == "" {
		session.results = EmptyResults(query)
	} else {
		session.results = PendingResults(query)
	}
	session.running.Add(1)
	session.mu.Unlock()

	defer session.running.Done()
	defer cancel()

	results := session.aggregator.Search(ctx, query)

	session.mu.Lock()
	defer session.mu.Unlock()
	if sequence != session.sequence {
		return
	}
	session.results = results
}

func (session *Session) idleSince() time.Time {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.lastSeen
}

// Close stops the debouncer, cancels the current run and waits for it to return.
func (session *Session) Close() {
	session.debouncer.Stop()

	session.mu.Lock()
	session.closed = true
	if session.cancel != nil {
		session.cancel()
	}
	session.mu.Unlock()

	session.running.Wait()
}
