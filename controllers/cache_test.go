package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryListCache struct {
	entries map[string][]byte
}

func newMemoryListCache() *memoryListCache {
	return &memoryListCache{entries: map[string][]byte{}}
}

func (c *memoryListCache) get(_ context.Context, key string) ([]byte, bool) {
	raw, ok := c.entries[key]
	return raw, ok
}

func (c *memoryListCache) set(_ context.Context, key string, payload []byte) {
	c.entries[key] = payload
}

func (c *memoryListCache) del(_ context.Context, key string) {
	delete(c.entries, key)
}

func swapCache(t *testing.T) *memoryListCache {
	t.Helper()
	mem := newMemoryListCache()
	previous := cache
	cache = mem
	t.Cleanup(func() { cache = previous })
	return mem
}

func TestGetToursServesFromCache(t *testing.T) {
	mem := swapCache(t)
	seeded := []byte(`[{"title":"Hunza Valley Adventure","slug":"hunza-valley-adventure"}]`)
	mem.set(context.Background(), toursCacheKey, seeded)

	w := httptest.NewRecorder()
	GetTours()(w, httptest.NewRequest(http.MethodGet, "/api/tours", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, seeded, w.Body.Bytes())
}

func TestGetBlogsServesFromCache(t *testing.T) {
	mem := swapCache(t)
	seeded := []byte(`[{"title":"Packing for Skardu","slug":"packing-for-skardu"}]`)
	mem.set(context.Background(), blogsCacheKey, seeded)

	w := httptest.NewRecorder()
	GetBlogs()(w, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, seeded, w.Body.Bytes())
}

func TestInvalidateListCacheRemovesEntry(t *testing.T) {
	mem := swapCache(t)
	ctx := context.Background()

	storeListCache(ctx, toursCacheKey, []byte(`[]`))
	_, ok := cachedList(ctx, toursCacheKey)
	require.True(t, ok)

	invalidateListCache(ctx, toursCacheKey)
	_, ok = cachedList(ctx, toursCacheKey)
	assert.False(t, ok)
	assert.Empty(t, mem.entries)
}
