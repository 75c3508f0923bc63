// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

/*
TestLimiterSet_Sweep verifies idle clients are forgotten and active ones kept.
*/
func TestLimiterSet_Sweep(t *testing.T) {
	set := newLimiterSet(rate.Limit(1), 1)
	start := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	// 1. One token per client
	assert.True(t, set.allow("10.0.0.1", start))
	assert.False(t, set.allow("10.0.0.1", start))
	assert.True(t, set.allow("10.0.0.2", start.Add(2*time.Minute)))

	// 2. Only the idle client is removed
	assert.Equal(t, 1, set.sweep(start.Add(4*time.Minute), 3*time.Minute))
	assert.Len(t, set.visitors, 1)
	assert.Contains(t, set.visitors, "10.0.0.2")
}
