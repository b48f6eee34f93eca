package config

import "time"

// CacheConfig defines settings for the response cache middleware.  Only
// read-mostly catalog routes are cached: player, zone and group state
// changes on every transaction and is never served from cache.
// When Enabled is false or no Redis client is configured, caching is
// disabled.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	PathPrefixes []string
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads CACHE_* environment variables.
func LoadCacheConfig() CacheConfig {
	methods := map[string]bool{}
	for _, m := range splitList(getenv("CACHE_METHODS", "GET"), true) {
		methods[m] = true
	}
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      methods,
		PathPrefixes: splitList(getenv("CACHE_PATHS", "/v1/badges"), false),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "hubzz:cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
