package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PUBLISH_EVENTS", "true")
	t.Setenv("RABBITMQ_URL", "amqp://r/")
	t.Setenv("AMQP_URL", "amqp://a/")

	cfg := Load()
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 60, cfg.AccessTTLMin)
	assert.True(t, cfg.PublishEvents)
	assert.Equal(t, "amqp://r/", cfg.AMQPURL)
	assert.Equal(t, "logs", cfg.LedgerLogDir)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "on")
	t.Setenv("X_INT", "nope")
	t.Setenv("X_DUR", "250ms")
	assert.True(t, envBool("X_BOOL", false))
	assert.True(t, envBool("X_UNSET", true))
	assert.Equal(t, 7, envInt("X_INT", 7))
	assert.Equal(t, 250*time.Millisecond, envDur("X_DUR", time.Second))
	assert.Equal(t, []string{"GET", "HEAD"}, splitList(" get, ,head ", true))
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, 10*time.Second, cfg.TTL)
	assert.Equal(t, "player_route", cfg.KeyStrategy)
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Methods["GET"])
	assert.Equal(t, []string{"/v1/badges"}, cfg.PathPrefixes)
	assert.Equal(t, "hubzz:cache", cfg.Prefix)
}
