// Package ratelimit implements a fixed-window per-identifier limiter.
// State is process-local: under horizontal scaling each instance counts
// independently.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

type Limiter struct {
	mu     sync.Mutex
	m      map[string]*entry
	max    int
	window time.Duration
	now    func() time.Time
}

// New returns a limiter allowing max calls per identifier per window. The
// count resets entirely once the window elapses.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		m:      make(map[string]*entry),
		max:    max,
		window: window,
		now:    time.Now,
	}
}

func (l *Limiter) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.m[identifier]
	if !ok || now.After(e.resetAt) {
		l.m[identifier] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true
	}

	if e.count >= l.max {
		return false
	}

	e.count++
	return true
}
