// Package ratelimit provides a token bucket rate limiter used to keep
// reply API calls within the platform's limits.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter implements a token bucket. Tokens refill at a constant rate
// up to a burst capacity; each request consumes one token. Safe for
// concurrent use.
type Limiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// New creates a limiter with the given burst capacity and per-second
// refill rate. The bucket starts full.
func New(maxTokens, refillRate float64) *Limiter {
	return &Limiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// refill adds tokens for the elapsed time. Must be called with mu held.
func (l *Limiter) refill() {
	now := time.Now()
	l.tokens += now.Sub(l.lastRefill).Seconds() * l.refillRate
	if l.tokens > l.maxTokens {
		l.tokens = l.maxTokens
	}
	l.lastRefill = now
}

// Allow consumes a token if one is available. Non-blocking.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	if l.tokens >= 1.0 {
		l.tokens -= 1.0
		return true
	}
	return false
}

// Wait blocks until a token is available, then consumes it.
func (l *Limiter) Wait() {
	for {
		l.mu.Lock()
		l.refill()
		if l.tokens >= 1.0 {
			l.tokens -= 1.0
			l.mu.Unlock()
			return
		}
		// Sleep just long enough for the next token to accrue.
		missing := 1.0 - l.tokens
		l.mu.Unlock()
		time.Sleep(time.Duration(missing / l.refillRate * float64(time.Second)))
	}
}

// Available returns the current token count, for diagnostics.
func (l *Limiter) Available() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	return l.tokens
}
