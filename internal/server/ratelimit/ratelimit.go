// Package ratelimit provides per-client request throttling using token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket refills at a steady rate up to a burst capacity.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens = min(float64(tb.capacity), tb.tokens+now.Sub(tb.lastRefill).Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Rule limits requests matching a method and path prefix.
type Rule struct {
	Method string
	Prefix string
	Limit  int // requests per window
	Window time.Duration
	Burst  int // defaults to Limit when 0
}

// Config holds limiter settings.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	Rules         []Rule
}

// DefaultConfig limits the credential and compiler endpoints hard and
// everything else loosely. The health endpoint is never limited.
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{Method: "POST", Prefix: "/auth/login", Limit: 10, Window: time.Minute, Burst: 5},
			{Method: "POST", Prefix: "/cv/generate", Limit: 10, Window: time.Hour, Burst: 2},
		},
	}
}

// Limiter tracks one bucket per client and rule.
type Limiter struct {
	config  *Config
	buckets map[string]*tokenBucket
	mu      sync.Mutex
	stop    chan struct{}
}

// NewLimiter creates a limiter and starts a background sweep that drops
// idle buckets.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	l := &Limiter{
		config:  config,
		buckets: make(map[string]*tokenBucket),
		stop:    make(chan struct{}),
	}
	if config.Enabled {
		go l.sweep()
	}
	return l
}

// Allow reports whether a request from clientID for the given method and
// path may proceed.
func (l *Limiter) Allow(clientID, method, path string) bool {
	if !l.config.Enabled {
		return true
	}
	if path == "/health" || path == "/metrics" {
		return true
	}

	rule := l.match(method, path)
	key := clientID + " " + rule.Method + " " + rule.Prefix

	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		burst := rule.Burst
		if burst <= 0 {
			burst = rule.Limit
		}
		bucket = newTokenBucket(burst, float64(rule.Limit)/rule.Window.Seconds())
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	return bucket.allow()
}

func (l *Limiter) match(method, path string) Rule {
	for _, rule := range l.config.Rules {
		if rule.Method == method && len(path) >= len(rule.Prefix) && path[:len(rule.Prefix)] == rule.Prefix {
			return rule
		}
	}
	return Rule{Method: method, Prefix: "", Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			// A bucket that has refilled to capacity is indistinguishable
			// from a fresh one, so dropping it is lossless.
			for key, bucket := range l.buckets {
				bucket.mu.Lock()
				refilled := bucket.tokens + now.Sub(bucket.lastRefill).Seconds()*bucket.refillRate
				bucket.mu.Unlock()
				if refilled >= float64(bucket.capacity) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

// Stop terminates the background sweep.
func (l *Limiter) Stop() {
	close(l.stop)
}
