package controllers

import (
	"context"
	"time"

	"tourism-api/configs"
)

const listCacheTTL = 5 * time.Minute

// The public tours and blogs lists are the hottest endpoints on the
// marketing site, so their unfiltered form is kept in Redis. A nil client
// means caching is disabled. Tests swap in an in-memory implementation.

type listCache interface {
	get(ctx context.Context, key string) ([]byte, bool)
	set(ctx context.Context, key string, payload []byte)
	del(ctx context.Context, key string)
}

var cache listCache = redisListCache{}

type redisListCache struct{}

func (redisListCache) get(ctx context.Context, key string) ([]byte, bool) {
	rdb := configs.GetRedisClient()
	if rdb == nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (redisListCache) set(ctx context.Context, key string, payload []byte) {
	if rdb := configs.GetRedisClient(); rdb != nil {
		if err := rdb.Set(ctx, key, payload, listCacheTTL).Err(); err != nil {
			configs.LogWithContext("cache", "set").WithError(err).WithField("key", key).Warn("Failed to store list cache")
		}
	}
}

func (redisListCache) del(ctx context.Context, key string) {
	if rdb := configs.GetRedisClient(); rdb != nil {
		if err := rdb.Del(ctx, key).Err(); err != nil {
			configs.LogWithContext("cache", "invalidate").WithError(err).WithField("key", key).Warn("Failed to invalidate list cache")
		}
	}
}

func cachedList(ctx context.Context, key string) ([]byte, bool) {
	return cache.get(ctx, key)
}

func storeListCache(ctx context.Context, key string, payload []byte) {
	cache.set(ctx, key, payload)
}

func invalidateListCache(ctx context.Context, key string) {
	cache.del(ctx, key)
}
