// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
	"github.com/taibuivan/ponydex/pkg/uuid"
)

// RegistryConfig holds the live search settings.
type RegistryConfig struct {
	// Debounce is the quiescence window before a typed query runs.
	Debounce time.Duration
	// TTL is how long a session may stay unused before it is evicted.
	TTL time.Duration
}

// Registry owns the live search sessions.
type Registry struct {
	aggregator *Aggregator
	config     RegistryConfig
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry(aggregator *Aggregator, config RegistryConfig, logger *slog.Logger) *Registry {
	return &Registry{
		aggregator: aggregator,
		config:     config,
		logger:     logger,
		now:        time.Now,
		sessions:   make(map[string]*Session),
	}
}

// Create opens a new session.
func (registry *Registry) Create() *Session {
	session := newSession(context.Background(), uuid.New(), registry.aggregator, registry.config.Debounce, registry.now())

	registry.mu.Lock()
	registry.sessions[session.ID()] = session
	registry.mu.Unlock()

	registry.logger.Debug("search_session_created", slog.String("session_id", session.ID()))
	return session
}

// Get returns a session by ID.
func (registry *Registry) Get(id string) (*Session, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	session, ok := registry.sessions[id]
	if !ok {
		return nil, apperr.NotFound("Search session")
	}
	return session, nil
}

// Type feeds a keystroke to a session.
func (registry *Registry) Type(id, query string) (Snapshot, error) {
	session, err := registry.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	now := registry.now()
	session.Type(query, now)
	return session.Snapshot(now), nil
}

// Snapshot returns the state of a session.
func (registry *Registry) Snapshot(id string) (Snapshot, error) {
	session, err := registry.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return session.Snapshot(registry.now()), nil
}

// Delete closes and removes a session.
func (registry *Registry) Delete(id string) error {
	registry.mu.Lock()
	session, ok := registry.sessions[id]
	delete(registry.sessions, id)
	registry.mu.Unlock()

	if !ok {
		return apperr.NotFound("Search session")
	}
	session.Close()
	return nil
}

// Len returns the number of open sessions.
func (registry *Registry) Len() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.sessions)
}

// Sweep evicts the sessions unused since before now minus the TTL.
func (registry *Registry) Sweep(now time.Time) int {
	cutoff := now.Add(-registry.config.TTL)

	var expired []*Session
	registry.mu.Lock()
	for id, session := range registry.sessions {
		if session.idleSince().Before(cutoff) {
			expired = append(expired, session)
			delete(registry.sessions, id)
		}
	}
	registry.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}

	if len(expired) > 0 {
		registry.logger.Info("search_sessions_evicted", slog.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps idle sessions periodically until ctx is done, then closes every
// remaining session.
func (registry *Registry) Run(ctx context.Context) {
	interval := registry.config.TTL / 2
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			registry.closeAll()
			return
		case <-ticker.C:
			registry.Sweep(registry.now())
		}
	}
}

func (registry *Registry) closeAll() {
	registry.mu.Lock()
	sessions := registry.sessions
	registry.sessions = make(map[string]*Session)
	registry.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}
