// Package ratelimit provides per-client request throttling using token buckets.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiting configuration. Scoring runs are throttled
// separately from the read endpoints because a run holds a worker pool
// and, when image embedding is on, a headless browser.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	RunLimit        int
	RunWindow       time.Duration
	RunBurst        int
	CleanupInterval time.Duration
}

// LoadConfig reads rate limit settings from the environment.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		RunLimit:        getEnvInt("RATE_LIMIT_RUN_LIMIT", 30),
		RunWindow:       getEnvDuration("RATE_LIMIT_RUN_WINDOW", time.Hour),
		RunBurst:        getEnvInt("RATE_LIMIT_RUN_BURST", 5),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Info describes the rate limit state returned alongside an Allow decision.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func (b *bucket) refill(now time.Time) {
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}

// Limiter tracks one token bucket per client and tier.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	stop    chan struct{}
	once    sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		stop:    make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// AllowRun checks the strict tier used for scoring-run endpoints.
func (l *Limiter) AllowRun(clientID string) (bool, Info) {
	return l.allow("run:"+clientID, l.config.RunBurst, l.config.RunLimit, l.config.RunWindow)
}

// Allow checks the default tier.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	return l.allow("default:"+clientID, l.config.DefaultLimit, l.config.DefaultLimit, l.config.DefaultWindow)
}

func (l *Limiter) allow(key string, burst, limit int, window time.Duration) (bool, Info) {
	if !l.config.Enabled || limit <= 0 {
		return true, Info{}
	}
	if burst <= 0 {
		burst = limit
	}

	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			capacity:   float64(burst),
			refillRate: float64(limit) / window.Seconds(),
			tokens:     float64(burst),
			lastRefill: now,
		}
		l.buckets[key] = b
	}
	b.lastAccess = now
	b.refill(now)

	info := Info{Limit: limit}
	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		info.Remaining = int(b.tokens)
		info.ResetTime = resetTime(b, now)
		return true, info
	}

	info.Remaining = 0
	info.RetryAfter = time.Duration((1.0 - b.tokens) / b.refillRate * float64(time.Second))
	info.ResetTime = now.Add(info.RetryAfter)
	return false, info
}

func resetTime(b *bucket, now time.Time) time.Time {
	if b.tokens >= b.capacity {
		return now
	}
	secondsUntilFull := (b.capacity - b.tokens) / b.refillRate
	return now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * l.config.CleanupInterval)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.lastAccess.Before(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}
