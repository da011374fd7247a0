// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(max int, win time.Duration) (*MemoryLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 2, 8, 23, 0, 0, 0, time.UTC)}
	l := NewMemoryLimiter(max, win)
	l.now = clock.now
	return l, clock
}

func allowN(t *testing.T, l Limiter, key string, n int) []bool {
	t.Helper()
	out := make([]bool, n)
	for i := range out {
		ok, err := l.Allow(context.Background(), key)
		require.NoError(t, err)
		out[i] = ok
	}
	return out
}

func TestMemoryLimiterFixedWindow(t *testing.T) {
	l, clock := newTestLimiter(3, time.Minute)

	assert.Equal(t, []bool{true, true, true, false, false}, allowN(t, l, "a", 5))

	clock.advance(59 * time.Second)
	assert.Equal(t, []bool{false}, allowN(t, l, "a", 1))

	clock.advance(time.Second)
	assert.Equal(t, []bool{true, true, true, false}, allowN(t, l, "a", 4))
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	assert.Equal(t, []bool{true, false}, allowN(t, l, "a", 2))
	assert.Equal(t, []bool{true, false}, allowN(t, l, "b", 2))
}

func TestMemoryLimiterEvictsExpiredWindows(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	allowN(t, l, "a", 1)
	allowN(t, l, "b", 1)
	require.Equal(t, 2, l.Len())

	clock.advance(2 * time.Minute)
	allowN(t, l, "c", 1)

	assert.Equal(t, 1, l.Len())
}

func TestMemoryLimiterConcurrent(t *testing.T) {
	l := NewMemoryLimiter(10, time.Hour)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := l.Allow(context.Background(), "same")
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowed)
}
