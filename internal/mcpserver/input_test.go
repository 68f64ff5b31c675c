package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/docdiff/document"
)

func TestDocInput_ResolveFile(t *testing.T) {
	docCache.reset()
	input := docInput{File: "../../testdata/release-v1.json"}
	result, err := input.resolve()
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	assert.Equal(t, "doc", result.Document.Type)
	assert.Equal(t, document.SourceFormatJSON, result.SourceFormat)
}

func TestDocInput_ResolveContent(t *testing.T) {
	docCache.reset()
	input := docInput{Content: oldDocJSON}
	result, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "content", result.SourcePath)
	assert.Equal(t, "Hello world", result.Document.TextContent())
}

func TestDocInput_ResolveNoneProvided(t *testing.T) {
	input := docInput{}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestDocInput_ResolveMultipleProvided(t *testing.T) {
	input := docInput{File: "foo.json", Content: "bar"}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestDocInput_ResolveFileNotFound(t *testing.T) {
	docCache.reset()
	input := docInput{File: "/nonexistent/path.json"}
	_, err := input.resolve()
	assert.Error(t, err)
}

func TestDocInput_InlineSizeLimit(t *testing.T) {
	orig := cfg.MaxInlineSize
	cfg.MaxInlineSize = 16
	t.Cleanup(func() { cfg.MaxInlineSize = orig })

	_, err := docInput{Content: oldDocJSON}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCDIFF_MAX_INLINE_SIZE")
}

func TestDocCache_HitOnSameFile(t *testing.T) {
	docCache.reset()
	input := docInput{File: "../../testdata/release-v1.json"}

	result1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, docCache.size())

	result2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, result1, result2, "expected same pointer from cache hit")
}

func TestDocCache_MissOnModifiedFile(t *testing.T) {
	docCache.reset()

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(oldDocJSON), 0o600))

	input := docInput{File: path}
	result1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Hello world", result1.Document.TextContent())

	require.NoError(t, os.WriteFile(path, []byte(newDocJSON), 0o600))
	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	result2, err := input.resolve()
	require.NoError(t, err)
	assert.NotSame(t, result1, result2)
	assert.Equal(t, "Hello there world", result2.Document.TextContent())
}

func TestDocCache_ContentHash(t *testing.T) {
	docCache.reset()
	input := docInput{Content: oldDocJSON}

	result1, err := input.resolve()
	require.NoError(t, err)
	result2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, result1, result2)
}

func TestDocCache_KeyIncludesSchemaMode(t *testing.T) {
	input := docInput{Content: oldDocJSON}
	assert.NotEqual(t, makeCacheKey(input, false), makeCacheKey(input, true))
	assert.Empty(t, makeCacheKey(docInput{}, false))
	assert.Empty(t, makeCacheKey(docInput{File: "/nonexistent/path.json"}, false))
}

func TestDocCache_LRUEviction(t *testing.T) {
	docCache.reset()

	var firstKey string
	for i := range 11 {
		content := fmt.Sprintf(`{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Doc %c"}]}]}`, 'A'+i)
		if i == 0 {
			firstKey = makeCacheKey(docInput{Content: content}, false)
		}
		_, err := docInput{Content: content}.resolve()
		require.NoError(t, err)
	}

	assert.Equal(t, 10, docCache.size())
	assert.Nil(t, docCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestDocCache_Expiry(t *testing.T) {
	docCache.reset()
	result := &document.ParseResult{}
	docCache.putWithTTL("expired", result, -time.Second)
	docCache.putWithTTL("fresh", result, time.Hour)

	assert.Nil(t, docCache.get("expired"))
	docCache.putWithTTL("expired", result, -time.Second)
	docCache.sweep()
	assert.Equal(t, 1, docCache.size())
	assert.Same(t, result, docCache.get("fresh"))
}

func TestDocCache_SweeperStopsWithContext(t *testing.T) {
	c := &docCacheStore{entries: make(map[string]*cacheEntry), maxSize: 2}
	c.putWithTTL("expired", &document.ParseResult{}, -time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	c.startSweeper(ctx, 5*time.Millisecond)
	c.startSweeper(ctx, 5*time.Millisecond)

	require.Eventually(t, func() bool { return c.size() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	require.Eventually(t, func() bool { return !c.sweeperStarted.Load() }, time.Second, 5*time.Millisecond)
}

func TestDocInput_StrictSchema(t *testing.T) {
	orig := cfg.StrictSchema
	cfg.StrictSchema = true
	t.Cleanup(func() { cfg.StrictSchema = orig })
	docCache.reset()

	content := strings.Replace(oldDocJSON, `"paragraph"`, `"sparkle"`, 1)
	_, err := docInput{Content: content}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkle")
}
