package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Package ratelimit implements a fixed-window request counter held in
// process memory. Counters reset wholesale at window expiry and on process
// restart; there is no cross-instance coordination.

// Result is the outcome of one rate-limit check.
type Result struct {
	Allowed   bool
	Remaining int
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per key within a fixed window.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// New creates an empty Limiter. Call StartSweep to bound memory growth.
func New() *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Check records one request for key and reports whether it is allowed.
// The first request in a window always passes; once count reaches
// maxRequests, further requests are denied without incrementing until
// the window expires.
func (l *Limiter) Check(key string, maxRequests int, window time.Duration) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]

	if !ok || now.After(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(window)}
		return Result{Allowed: true, Remaining: maxRequests - 1}
	}

	if e.count >= maxRequests {
		return Result{Allowed: false, Remaining: 0}
	}

	e.count++
	return Result{Allowed: true, Remaining: maxRequests - e.count}
}

// StartSweep launches a goroutine that removes expired entries every
// interval until ctx is cancelled.
func (l *Limiter) StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.sweep()
			}
		}
	}()
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, key)
		}
	}
}
