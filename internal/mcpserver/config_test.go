package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearDOCDIFFEnv clears all DOCDIFF_* env vars to isolate tests from the ambient environment.
func clearDOCDIFFEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DOCDIFF_CACHE_ENABLED", "DOCDIFF_CACHE_MAX_SIZE",
		"DOCDIFF_CACHE_FILE_TTL", "DOCDIFF_CACHE_TTL",
		"DOCDIFF_CACHE_SWEEP_INTERVAL", "DOCDIFF_MAX_INLINE_SIZE",
		"DOCDIFF_SEMANTIC_CLEANUP", "DOCDIFF_TEXT_DIFF_TIMEOUT",
		"DOCDIFF_STRICT_SCHEMA", "DOCDIFF_CHANGE_LIMIT", "DOCDIFF_MAX_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearDOCDIFFEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.True(t, c.SemanticCleanup)
	assert.Zero(t, c.TextDiffTimeout)
	assert.False(t, c.StrictSchema)
	assert.Equal(t, 100, c.ChangeLimit)
	assert.Equal(t, 1000, c.MaxLimit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearDOCDIFFEnv(t)
	t.Setenv("DOCDIFF_CACHE_ENABLED", "false")
	t.Setenv("DOCDIFF_CACHE_MAX_SIZE", "50")
	t.Setenv("DOCDIFF_CACHE_FILE_TTL", "30m")
	t.Setenv("DOCDIFF_CACHE_TTL", "10m")
	t.Setenv("DOCDIFF_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("DOCDIFF_MAX_INLINE_SIZE", "5242880")
	t.Setenv("DOCDIFF_SEMANTIC_CLEANUP", "false")
	t.Setenv("DOCDIFF_TEXT_DIFF_TIMEOUT", "2s")
	t.Setenv("DOCDIFF_STRICT_SCHEMA", "true")
	t.Setenv("DOCDIFF_CHANGE_LIMIT", "20")
	t.Setenv("DOCDIFF_MAX_LIMIT", "500")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.False(t, c.SemanticCleanup)
	assert.Equal(t, 2*time.Second, c.TextDiffTimeout)
	assert.True(t, c.StrictSchema)
	assert.Equal(t, 20, c.ChangeLimit)
	assert.Equal(t, 500, c.MaxLimit)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearDOCDIFFEnv(t)
	t.Setenv("DOCDIFF_CACHE_MAX_SIZE", "banana")
	t.Setenv("DOCDIFF_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("DOCDIFF_CACHE_ENABLED", "maybe")
	t.Setenv("DOCDIFF_CHANGE_LIMIT", "-5")
	t.Setenv("DOCDIFF_MAX_INLINE_SIZE", "abc")
	t.Setenv("DOCDIFF_MAX_LIMIT", "0")
	t.Setenv("DOCDIFF_TEXT_DIFF_TIMEOUT", "-1s")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.ChangeLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Zero(t, c.TextDiffTimeout)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearDOCDIFFEnv(t)
	t.Setenv("DOCDIFF_CHANGE_LIMIT", "42")
	t.Setenv("DOCDIFF_CACHE_TTL", "10m")

	c := loadConfig()

	assert.Equal(t, 42, c.ChangeLimit)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.True(t, c.CacheEnabled)
}
