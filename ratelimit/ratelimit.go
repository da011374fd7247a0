// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether one more attempt is allowed for key in the
// current fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps fixed windows in process memory. Counts are lost on
// restart and are not shared between instances.
type MemoryLimiter struct {
	mu        sync.Mutex
	max       int
	window    time.Duration
	now       func() time.Time
	entries   map[string]*window
	nextSweep time.Time
}

func NewMemoryLimiter(max int, win time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:     max,
		window:  win,
		now:     time.Now,
		entries: make(map[string]*window),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.entries[key]
	if !ok || !now.Before(e.resetAt) {
		l.entries[key] = &window{count: 1, resetAt: now.Add(l.window)}
		return true, nil
	}

	if e.count >= l.max {
		return false, nil
	}
	e.count++
	return true, nil
}

// sweep drops expired windows, at most once per window length.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Before(l.nextSweep) {
		return
	}
	for k, e := range l.entries {
		if !now.Before(e.resetAt) {
			delete(l.entries, k)
		}
	}
	l.nextSweep = now.Add(l.window)
}

// Len returns the number of tracked keys.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
