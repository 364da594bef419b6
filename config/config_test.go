package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// t.Setenv restaura el valor original al terminar
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "LOG_LEVEL", "CURRENCY", "REDIS_ADDR", "CACHE_TTL", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "€", cfg.Currency)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.RateLimitCapacity)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CURRENCY", "$")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("RATE_LIMIT_CAPACITY", "20")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 20, cfg.RateLimitCapacity)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"bad ttl":        {"CACHE_TTL", "soon"},
		"bad capacity":   {"RATE_LIMIT_CAPACITY", "many"},
		"zero capacity":  {"RATE_LIMIT_CAPACITY", "0"},
		"bad window":     {"RATE_LIMIT_WINDOW", "-1s"},
		"empty currency": {"CURRENCY", ""},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			unsetEnv(t, "CACHE_TTL", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW")
			t.Setenv(kv[0], kv[1])
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
