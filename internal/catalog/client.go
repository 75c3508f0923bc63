// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
)

// maxBodyBytes caps a single catalog response.
const maxBodyBytes = 16 << 20

// errUpstreamNotFound marks a 404 from the remote API. Callers decide what it means.
var errUpstreamNotFound = errors.New("catalog: upstream not found")

// ClientConfig holds the remote catalog settings.
type ClientConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client reads the remote catalog API.
//
// # Envelope
//
// Every endpoint answers {"data": [...]}. Detail endpoints return a one-element list.
//
// # De-duplication
//
// Concurrent fetches of the same path share one upstream request. Successful
// bodies are cached per path for the configured TTL. A failing cache is logged
// and bypassed.
type Client struct {
	baseURL  string
	http     *http.Client
	cache    Cache
	cacheTTL time.Duration
	flight   singleflight.Group
	logger   *slog.Logger
}

// NewClient creates a catalog client. cache may be nil to disable caching.
func NewClient(cfg ClientConfig, cache Cache, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout},
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}
}

// # Characters

// ListCharacters fetches one batch of characters.
func (client *Client) ListCharacters(context context.Context, limit, offset int) ([]Character, error) {
	return batch[Character](context, client, allPath(ResourceCharacter, limit, offset))
}

// GetCharacter fetches one character by ID.
func (client *Client) GetCharacter(context context.Context, id int) (*Character, error) {
	return first[Character](context, client, ResourceCharacter, id, "Character")
}

// # Episodes

// ListEpisodes fetches one batch of episodes.
func (client *Client) ListEpisodes(context context.Context, limit, offset int) ([]Episode, error) {
	return batch[Episode](context, client, allPath(ResourceEpisode, limit, offset))
}

// GetEpisode fetches one episode by ID.
func (client *Client) GetEpisode(context context.Context, id int) (*Episode, error) {
	return first[Episode](context, client, ResourceEpisode, id, "Episode")
}

// # Songs

// ListSongs fetches one batch of songs.
func (client *Client) ListSongs(context context.Context, limit, offset int) ([]Song, error) {
	return batch[Song](context, client, allPath(ResourceSong, limit, offset))
}

// GetSong fetches one song by ID.
func (client *Client) GetSong(context context.Context, id int) (*Song, error) {
	return first[Song](context, client, ResourceSong, id, "Song")
}

/*
LookupSong requests /song/{segment} with the segment taken literally.

The remote API uses the same route for IDs and lookups, so the segment is never
parsed. A 404 yields an empty list.
*/
func (client *Client) LookupSong(context context.Context, segment string) ([]Song, error) {
	songs, err := list[Song](context, client, "/"+ResourceSong+"/"+url.PathEscape(segment))
	if errors.Is(err, errUpstreamNotFound) {
		return []Song{}, nil
	}
	return songs, err
}

// # Decoding

func allPath(resource string, limit, offset int) string {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	return "/" + resource + "/all?" + query.Encode()
}

// batch decodes an /all listing. A 404 there is an upstream failure, not an empty catalog.
func batch[T any](context context.Context, client *Client, path string) ([]T, error) {
	items, err := list[T](context, client, path)
	if errors.Is(err, errUpstreamNotFound) {
		return nil, apperr.BadGateway("Catalog API responded with status 404", err)
	}
	return items, err
}

func list[T any](context context.Context, client *Client, path string) ([]T, error) {
	body, err := client.fetch(context, path)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperr.BadGateway("Catalog API returned a malformed response", err)
	}

	if envelope.Data == nil {
		return []T{}, nil
	}
	return envelope.Data, nil
}

func first[T any](context context.Context, client *Client, resource string, id int, name string) (*T, error) {
	items, err := list[T](context, client, "/"+resource+"/"+strconv.Itoa(id))
	if errors.Is(err, errUpstreamNotFound) {
		return nil, apperr.NotFound(name)
	}
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, apperr.NotFound(name)
	}
	return &items[0], nil
}

// # Transport

// fetch returns the body of a successful GET, from cache when possible.
func (client *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	if body, ok := client.cached(ctx, path); ok {
		return body, nil
	}

	// The shared request must outlive any single caller's cancellation.
	// The leader caches the body once for every caller that joined.
	result, err, _ := client.flight.Do(path, func() (interface{}, error) {
		detached := context.WithoutCancel(ctx)
		body, err := client.get(detached, path)
		if err != nil {
			return nil, err
		}
		client.store(detached, path, body)
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (client *Client) get(ctx context.Context, path string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+path, nil)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("catalog: build request: %w", err))
	}
	request.Header.Set("Accept", "application/json")

	started := time.Now()
	response, err := client.http.Do(request)
	if err != nil {
		return nil, apperr.BadGateway("Catalog API is unreachable", err)
	}
	defer func() { _ = response.Body.Close() }()

	client.logger.DebugContext(ctx, "catalog_fetch",
		slog.String("path", path),
		slog.Int("status", response.StatusCode),
		slog.Duration("duration", time.Since(started)),
	)

	if response.StatusCode == http.StatusNotFound {
		return nil, errUpstreamNotFound
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, apperr.BadGateway(
			fmt.Sprintf("Catalog API responded with status %d", response.StatusCode),
			fmt.Errorf("catalog: GET %s: %s", path, response.Status),
		)
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return nil, apperr.BadGateway("Catalog API response was interrupted", err)
	}
	return body, nil
}

func (client *Client) cached(context context.Context, path string) ([]byte, bool) {
	if client.cache == nil {
		return nil, false
	}

	body, ok, err := client.cache.Get(context, path)
	if err != nil {
		client.logger.WarnContext(context, "catalog_cache_unavailable", slog.String("error", err.Error()))
		return nil, false
	}
	if !ok {
		client.logger.DebugContext(context, "catalog_cache_miss", slog.String("path", path))
	}
	return body, ok
}

func (client *Client) store(context context.Context, path string, body []byte) {
	if client.cache == nil || client.cacheTTL <= 0 {
		return
	}

	if err := client.cache.Set(context, path, body, client.cacheTTL); err != nil {
		client.logger.WarnContext(context, "catalog_cache_unavailable", slog.String("error", err.Error()))
	}
}
