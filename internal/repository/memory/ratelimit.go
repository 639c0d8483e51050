package memory

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter - счётчики с фиксированным окном, как INCR + EXPIRE в Redis
type RateLimiter struct {
	mtx     sync.Mutex
	windows map[string]window
	now     func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]window),
		now:     time.Now,
	}
}

func (l *RateLimiter) Allow(_ context.Context, playerID int64, action string, limit int, win time.Duration) (bool, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	key := fmt.Sprintf("%d:%s", playerID, action)
	now := l.now()

	w := l.windows[key]
	if !now.Before(w.resetAt) {
		w = window{resetAt: now.Add(win)}
	}
	w.count++
	l.windows[key] = w

	return w.count <= limit, nil
}
