package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsUpToBurst(t *testing.T) {
	l := NewLimiter(Config{Enabled: true, Limit: 60, Window: time.Minute, Burst: 3})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed, "request %d", i)
	}

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(Config{Enabled: true, Limit: 60, Window: time.Minute, Burst: 1})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	assert.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	assert.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed)
}

func TestLimiter_DisabledAlwaysAllows(t *testing.T) {
	l := NewLimiter(Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed)
	}
}

func TestLimiter_ZeroBurstFallsBackToLimit(t *testing.T) {
	l := NewLimiter(Config{Enabled: true, Limit: 5, Window: time.Minute})
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed, "request %d", i)
	}
	allowed, _ := l.Allow("client-a")
	assert.False(t, allowed)
}

func TestLimiter_ReportsRemaining(t *testing.T) {
	l := NewLimiter(Config{Enabled: true, Limit: 60, Window: time.Minute, Burst: 10})
	defer l.Stop()

	_, info := l.Allow("client-a")
	assert.Equal(t, 9, info.Remaining)
	assert.Equal(t, 60, info.Limit)
}

func TestLimiter_Refills(t *testing.T) {
	// Very fast refill so the test does not need to sleep long.
	l := NewLimiter(Config{Enabled: true, Limit: 1000, Window: time.Second, Burst: 1})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	assert.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	assert.False(t, allowed)

	time.Sleep(10 * time.Millisecond)
	allowed, _ = l.Allow("client-a")
	assert.True(t, allowed)
}

func TestLimiter_StopTerminatesCleanup(t *testing.T) {
	l := NewLimiter(DefaultConfig())
	l.Stop()
	// Allow still works after Stop; only the cleanup loop ends.
	allowed, _ := l.Allow("client-a")
	assert.True(t, allowed)
}
