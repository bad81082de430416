package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "")
	t.Setenv("CACHE_TTL", "")
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "cache", cfg.Prefix)
	assert.Equal(t, 1<<20, cfg.MaxBodyBytes)
}

func TestLoadCacheConfigOverrides(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("CACHE_PREFIX", "store")
	cfg := LoadCacheConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.TTL)
	assert.Equal(t, "store", cfg.Prefix)
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, time.Second, cfg.RefillInterval)
	// TTL must cover at least five refill intervals
	assert.Equal(t, 5*time.Second, cfg.TTL)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "yes")
	t.Setenv("X_INT", "42")
	t.Setenv("X_DUR", "250ms")
	assert.True(t, envBool("X_BOOL", false))
	assert.Equal(t, 42, envInt("X_INT", 0))
	assert.Equal(t, 250*time.Millisecond, envDur("X_DUR", 0))
	assert.Equal(t, "fallback", envStr("X_MISSING", "fallback"))
	assert.False(t, envBool("X_INT", false)) // unparseable keeps default
}
