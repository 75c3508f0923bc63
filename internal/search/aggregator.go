// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search runs one query against characters, episodes and songs at once.

Each resource is a [Section] with its own outcome. A failing section never hides
or cancels the others.

Live sessions:

A [Session] is a server-side type-ahead box. Keystrokes are debounced; each
settled query starts a new run tagged with a sequence number. Starting a run
cancels the previous one, and a response that is not from the latest run is
discarded. The last issued query always wins.
*/
package search

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/ponydex/internal/catalog"
	"github.com/taibuivan/ponydex/internal/platform/apperr"
)

// # Sections

// State is the outcome of one section.
type State string

const (
	StatePending State = "pending"
	StateEmpty   State = "empty"
	StateFound   State = "found"
	StateFailed  State = "failed"
)

// Section holds the result of searching one resource.
type Section[T any] struct {
	State State  `json:"state"`
	Items []T    `json:"items"`
	Error string `json:"error,omitempty"`
}

// Results is the aggregated outcome of one query.
type Results struct {
	Query      string                     `json:"query"`
	Characters Section[catalog.Character] `json:"characters"`
	Episodes   Section[catalog.Episode]   `json:"episodes"`
	Songs      Section[catalog.Song]      `json:"songs"`
}

// Pending reports whether any section is still running.
func (r Results) Pending() bool {
	return r.Characters.State == StatePending ||
		r.Episodes.State == StatePending ||
		r.Songs.State == StatePending
}

// EmptyResults is the outcome of a query that needs no lookup.
func EmptyResults(query string) Results {
	return Results{
		Query:      query,
		Characters: Section[catalog.Character]{State: StateEmpty, Items: []catalog.Character{}},
		Episodes:   Section[catalog.Episode]{State: StateEmpty, Items: []catalog.Episode{}},
		Songs:      Section[catalog.Song]{State: StateEmpty, Items: []catalog.Song{}},
	}
}

// PendingResults is the state of a query whose lookups have started.
func PendingResults(query string) Results {
	return Results{
		Query:      query,
		Characters: Section[catalog.Character]{State: StatePending, Items: []catalog.Character{}},
		Episodes:   Section[catalog.Episode]{State: StatePending, Items: []catalog.Episode{}},
		Songs:      Section[catalog.Song]{State: StatePending, Items: []catalog.Song{}},
	}
}

// # Aggregator

// Searcher provides the three per-resource search strategies.
type Searcher interface {
	SearchCharacters(context context.Context, term string) ([]catalog.Character, error)
	SearchEpisodes(context context.Context, term string) ([]catalog.Episode, error)
	SearchSongs(context context.Context, term string) ([]catalog.Song, error)
}

// Aggregator fans a query out to every [Searcher] strategy.
type Aggregator struct {
	searcher Searcher
	logger   *slog.Logger
}

// NewAggregator creates an aggregator over the given strategies.
func NewAggregator(searcher Searcher, logger *slog.Logger) *Aggregator {
	return &Aggregator{searcher: searcher, logger: logger}
}

/*
Search runs the three strategies concurrently and waits for all of them.

An empty query returns empty sections without calling any strategy.
*/
func (aggregator *Aggregator) Search(ctx context.Context, query string) Results {
	if query == "" {
		return EmptyResults(query)
	}

	results := Results{Query: query}

	// Sections never return an error to the group, so one failure cancels nothing
	var group errgroup.Group
	group.Go(func() error {
		items, err := aggregator.searcher.SearchCharacters(ctx, query)
		results.Characters = section(ctx, aggregator.logger, "characters", items, err)
		return nil
	})
	group.Go(func() error {
		items, err := aggregator.searcher.SearchEpisodes(ctx, query)
		results.Episodes = section(ctx, aggregator.logger, "episodes", items, err)
		return nil
	})
	group.Go(func() error {
		items, err := aggregator.searcher.SearchSongs(ctx, query)
		results.Songs = section(ctx, aggregator.logger, "songs", items, err)
		return nil
	})
	_ = group.Wait()

	return results
}

func section[T any](ctx context.Context, logger *slog.Logger, name string, items []T, err error) Section[T] {
	if err != nil {
		logger.WarnContext(ctx, "search_section_failed",
			slog.String("section", name),
			slog.String("error", err.Error()),
		)
		return Section[T]{State: StateFailed, Items: []T{}, Error: message(err)}
	}

	if len(items) == 0 {
		return Section[T]{State: StateEmpty, Items: []T{}}
	}
	return Section[T]{State: StateFound, Items: items}
}

// message returns the client-safe text of err.
func message(err error) string {
	if appErr := apperr.As(err); appErr != nil {
		return appErr.Message
	}
	if errors.Is(err, context.Canceled) {
		return "Search was cancelled"
	}
	return "Search failed"
}
