package configs

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// ConnectREDISDB connects to Redis. The cache is optional: callers treat a
// nil client as "caching disabled".
func ConnectREDISDB() error {
	redisURL := RedisURL()
	if redisURL == "" {
		return fmt.Errorf("REDISURL is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	redisClient = client
	return nil
}

// GetRedisClient returns the Redis client, or nil when caching is disabled.
func GetRedisClient() *redis.Client {
	return redisClient
}
