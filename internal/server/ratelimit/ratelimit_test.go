package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  5,
		DefaultWindow: time.Minute,
		RunLimit:      10,
		RunWindow:     time.Hour,
		RunBurst:      2,
	}
}

func TestLimiterAllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("10.0.0.1")
		require.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 5, info.Limit)
	}

	allowed, info := l.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Positive(t, info.RetryAfter)
}

func TestLimiterRunTierIsStricter(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, _ := l.AllowRun("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = l.AllowRun("10.0.0.1")
	assert.True(t, allowed)

	// Burst of 2 is spent; the hourly refill is far too slow to matter here.
	allowed, info := l.AllowRun("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)

	// The default tier is unaffected for the same client.
	allowed, _ = l.Allow("10.0.0.1")
	assert.True(t, allowed)
}

func TestLimiterIsolatesClients(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		l.Allow("10.0.0.1")
	}
	allowed, _ := l.Allow("10.0.0.1")
	assert.False(t, allowed)

	allowed, _ = l.Allow("10.0.0.2")
	assert.True(t, allowed)
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.AllowRun("10.0.0.1")
		require.True(t, allowed)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "")
	t.Setenv("RATE_LIMIT_RUN_LIMIT", "")

	cfg := LoadConfig()
	require.True(t, cfg.Enabled)
	assert.Equal(t, 600, cfg.DefaultLimit)
	assert.Equal(t, 30, cfg.RunLimit)
	assert.Equal(t, time.Hour, cfg.RunWindow)
}

func TestLoadConfigDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
