// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
	"github.com/taibuivan/ponydex/internal/platform/constants"
	"github.com/taibuivan/ponydex/internal/platform/respond"
)

// # Rate Limiting

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one token bucket per client IP.
type limiterSet struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func newLimiterSet(limit rate.Limit, burst int) *limiterSet {
	return &limiterSet{visitors: make(map[string]*visitor), limit: limit, burst: burst}
}

func (set *limiterSet) allow(ip string, now time.Time) bool {
	set.mu.Lock()
	defer set.mu.Unlock()

	entry, ok := set.visitors[ip]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(set.limit, set.burst)}
		set.visitors[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// sweep forgets clients idle for longer than ttl and returns how many were removed.
func (set *limiterSet) sweep(now time.Time, ttl time.Duration) int {
	set.mu.Lock()
	defer set.mu.Unlock()

	removed := 0
	for ip, entry := range set.visitors {
		if now.Sub(entry.lastSeen) > ttl {
			delete(set.visitors, ip)
			removed++
		}
	}
	return removed
}

// RateLimit applies a per-IP token bucket. Each call owns its own buckets;
// idle ones are swept until the context is cancelled.
func RateLimit(context context.Context) func(http.Handler) http.Handler {
	set := newLimiterSet(rate.Limit(constants.DefaultRateLimitRPS), constants.DefaultRateLimitBurst)

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				set.sweep(now, constants.RateLimitClientTTL)
			case <-context.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !set.allow(RealIP(request), time.Now()) {
				writer.Header().Set("Retry-After", strconv.Itoa(1))
				respond.Error(writer, request, apperr.RateLimited(1))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
