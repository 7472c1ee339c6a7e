package auth

import (
	"sync"
	"time"
)

// LoginLimiter counts failed logins per client key. After max failures
// within window the client is refused until window has passed since its
// last failure. A successful login clears the count.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptRecord
	max      int
	window   time.Duration
	now      func() time.Time
}

type attemptRecord struct {
	count       int
	lastAttempt time.Time
}

// NewLoginLimiter creates a limiter. Non-positive arguments fall back to 5
// attempts per 15 minutes.
func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{
		attempts: make(map[string]*attemptRecord),
		max:      max,
		window:   window,
		now:      time.Now,
	}
}

// Window is the lockout window.
func (l *LoginLimiter) Window() time.Duration {
	return l.window
}

// Allow reports whether key may attempt a login.
func (l *LoginLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.attempts[key]
	if !ok {
		return true
	}
	if l.now().Sub(rec.lastAttempt) > l.window {
		delete(l.attempts, key)
		return true
	}
	return rec.count < l.max
}

// Record notes the outcome of a login attempt by key.
func (l *LoginLimiter) Record(key string, success bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if success {
		delete(l.attempts, key)
		return
	}

	now := l.now()
	l.prune(now)

	rec, ok := l.attempts[key]
	if !ok {
		rec = &attemptRecord{}
		l.attempts[key] = rec
	}
	rec.count++
	rec.lastAttempt = now
}

func (l *LoginLimiter) prune(now time.Time) {
	for key, rec := range l.attempts {
		if now.Sub(rec.lastAttempt) > l.window {
			delete(l.attempts, key)
		}
	}
}
