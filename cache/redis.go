// Package cache owns the Redis connection. The catalog itself is never
// cached; Redis only backs the fixed-window rate limiter.
package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

const rateLimitPrefix = "ratelimit:"

// InitRedis connects to Redis using REDIS_URL / REDIS_PASSWORD.
func InitRedis() error {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

// CloseRedis closes the connection if one was established.
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// IsRedisAvailable reports whether Redis is reachable right now.
func IsRedisAvailable() bool {
	if RedisClient == nil {
		return false
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err == nil
}

// CheckRateLimit counts a request against a fixed window for clientKey and
// reports whether it is still allowed plus the remaining budget. INCR and
// EXPIRE NX go out in one pipeline, so concurrent requests can neither
// overshoot the limit nor restart the window.
func CheckRateLimit(clientKey string, maxRequests int, window time.Duration) (bool, int, error) {
	key := rateLimitPrefix + clientKey

	var incr *redis.IntCmd
	_, err := RedisClient.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	count := int(incr.Val())
	if count > maxRequests {
		return false, 0, nil
	}
	return true, maxRequests - count, nil
}

// ResetRateLimit clears the window for a client.
func ResetRateLimit(clientKey string) error {
	return RedisClient.Del(ctx, rateLimitPrefix+clientKey).Err()
}
