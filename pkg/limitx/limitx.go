// Package limitx throttles repeated attempts per key, used to slow password
// guessing against a single account.
package limitx

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config defines the throttling parameters.
type Config struct {
	// Attempts is the number of attempts allowed per Window, all of which
	// may be spent at once.
	Attempts int
	Window   time.Duration
}

// DefaultConfig allows 5 attempts a minute per key.
var DefaultConfig = Config{Attempts: 5, Window: time.Minute}

type Limiter struct {
	rate  rate.Limit
	burst int

	// Now is the clock, replaceable in tests.
	Now func() time.Time

	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	lastCleanup time.Time
}

func New(cfg Config) *Limiter {
	if cfg.Attempts <= 0 {
		cfg.Attempts = DefaultConfig.Attempts
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultConfig.Window
	}
	return &Limiter{
		rate:     rate.Limit(float64(cfg.Attempts) / cfg.Window.Seconds()),
		burst:    cfg.Attempts,
		Now:      time.Now,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow spends one attempt for key and reports whether it was available.
// An empty key is never throttled.
func (l *Limiter) Allow(key string) bool {
	if key == "" {
		return true
	}
	now := l.Now()
	return l.get(key, now).AllowN(now, 1)
}

// RetryAfter reports how long until key has an attempt available again.
func (l *Limiter) RetryAfter(key string) time.Duration {
	if key == "" {
		return 0
	}
	now := l.Now()
	r := l.get(key, now).ReserveN(now, 1)
	defer r.CancelAt(now)
	return r.DelayFrom(now)
}

// Reset forgets key, restoring its full allowance.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.limiters, key)
}

func (l *Limiter) get(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanup(now)

	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = lim
	}
	return lim
}

// cleanup drops limiters whose buckets have refilled, at most every five
// minutes. Caller holds mu.
func (l *Limiter) cleanup(now time.Time) {
	if now.Sub(l.lastCleanup) < 5*time.Minute {
		return
	}
	l.lastCleanup = now

	for key, lim := range l.limiters {
		if lim.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, key)
		}
	}
}
