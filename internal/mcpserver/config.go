package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize int64

	// Diff tool defaults.
	SemanticCleanup bool
	TextDiffTimeout time.Duration
	StrictSchema    bool

	// Change list pagination.
	ChangeLimit int
	MaxLimit    int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from DOCDIFF_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("DOCDIFF_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("DOCDIFF_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("DOCDIFF_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("DOCDIFF_CACHE_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("DOCDIFF_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      envInt64("DOCDIFF_MAX_INLINE_SIZE", 10*1024*1024),
		SemanticCleanup:    envBool("DOCDIFF_SEMANTIC_CLEANUP", true),
		TextDiffTimeout:    envDuration("DOCDIFF_TEXT_DIFF_TIMEOUT", 0),
		StrictSchema:       envBool("DOCDIFF_STRICT_SCHEMA", false),
		ChangeLimit:        envInt("DOCDIFF_CHANGE_LIMIT", 100),
		MaxLimit:           envInt("DOCDIFF_MAX_LIMIT", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
