// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package debounce_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/taibuivan/ponydex/internal/debounce"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu     sync.Mutex
	values []string
	times  []time.Time
	done   chan struct{}
}

func newRecorder() *recorder {
	return &recorder{done: make(chan struct{}, 8)}
}

func (r *recorder) record(value string) {
	r.mu.Lock()
	r.values = append(r.values, value)
	r.times = append(r.times, time.Now())
	r.mu.Unlock()
	r.done <- struct{}{}
}

func (r *recorder) snapshot() ([]string, []time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...), append([]time.Time(nil), r.times...)
}

/*
TestDebouncer_EmitsLastValueOnce verifies that rapid keystrokes collapse into a
single emission of the final value after the window.
*/
func TestDebouncer_EmitsLastValueOnce(t *testing.T) {
	rec := newRecorder()
	debouncer := debounce.New(300*time.Millisecond, rec.record)
	defer debouncer.Stop()

	// 1. Type "a", "ab", "abc" 50ms apart
	debouncer.Set("a")
	time.Sleep(50 * time.Millisecond)
	debouncer.Set("ab")
	time.Sleep(50 * time.Millisecond)
	debouncer.Set("abc")
	lastChange := time.Now()

	// 2. Wait for the emission
	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("no emission")
	}

	// 3. Give a superseded timer a chance to misfire
	time.Sleep(100 * time.Millisecond)

	values, times := rec.snapshot()
	require.Equal(t, []string{"abc"}, values)
	assert.GreaterOrEqual(t, times[0].Sub(lastChange), 300*time.Millisecond)

	latest, ok := debouncer.Latest()
	assert.True(t, ok)
	assert.Equal(t, "abc", latest)
}

/*
TestDebouncer_LatestBeforeEmission verifies the zero state.
*/
func TestDebouncer_LatestBeforeEmission(t *testing.T) {
	debouncer := debounce.New(time.Hour, func(string) {})
	defer debouncer.Stop()

	debouncer.Set("pending")

	latest, ok := debouncer.Latest()
	assert.False(t, ok)
	assert.Empty(t, latest)
}

/*
TestDebouncer_StopCancelsPending verifies that a stopped debouncer never emits.
*/
func TestDebouncer_StopCancelsPending(t *testing.T) {
	rec := newRecorder()
	debouncer := debounce.New(20*time.Millisecond, rec.record)

	debouncer.Set("never")
	debouncer.Stop()
	debouncer.Set("ignored")

	time.Sleep(100 * time.Millisecond)

	values, _ := rec.snapshot()
	assert.Empty(t, values)
}

/*
TestDebouncer_SeparateWindows verifies that values separated by more than the
window are each emitted.
*/
func TestDebouncer_SeparateWindows(t *testing.T) {
	rec := newRecorder()
	debouncer := debounce.New(20*time.Millisecond, rec.record)
	defer debouncer.Stop()

	for _, value := range []string{"twilight", "rarity"} {
		debouncer.Set(value)
		select {
		case <-rec.done:
		case <-time.After(time.Second):
			t.Fatalf("no emission for %q", value)
		}
	}

	values, _ := rec.snapshot()
	assert.Equal(t, []string{"twilight", "rarity"}, values)
}
