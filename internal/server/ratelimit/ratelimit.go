// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket for one client. Tokens refill at a steady rate
// up to the configured burst capacity.
type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func (b *bucket) refill(now time.Time) {
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled bool
	Limit   int           // requests per window
	Window  time.Duration // refill window
	Burst   int           // bucket capacity; zero means Limit
}

// DefaultConfig allows a steady 60 requests per minute per client, which is
// generous for report viewing while still keeping bulk ranking runs from
// being hammered.
func DefaultConfig() Config {
	return Config{Enabled: true, Limit: 60, Window: time.Minute, Burst: 10}
}

// Limiter manages one token bucket per client.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  Config
	stop    chan struct{}
}

// Info reports the limiter state after a decision.
type Info struct {
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		stop:    make(chan struct{}),
	}
	if config.Enabled {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether a request from the given client may proceed,
// consuming a token when it does.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{}
	}

	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		capacity := l.config.Burst
		if capacity <= 0 {
			capacity = l.config.Limit
		}
		b = &bucket{
			capacity:   float64(capacity),
			refillRate: float64(l.config.Limit) / l.config.Window.Seconds(),
			tokens:     float64(capacity),
			lastRefill: now,
		}
		l.buckets[clientID] = b
	}
	b.lastAccess = now
	b.refill(now)

	info := Info{Limit: l.config.Limit}
	if b.tokens >= 1.0 {
		b.tokens--
		info.Remaining = int(b.tokens)
		return true, info
	}
	info.RetryAfter = time.Duration((1.0 - b.tokens) / b.refillRate * float64(time.Second))
	return false, info
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-time.Hour)
			l.mu.Lock()
			for id, b := range l.buckets {
				if b.lastAccess.Before(cutoff) {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}
