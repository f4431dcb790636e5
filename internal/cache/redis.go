package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys
const (
	statisticsKey = "dashboard:statistics"
	countsKeyFmt  = "notifications:counts:%s"
)

// TTLs are tuned to the client's refresh behavior: counts are polled every
// 30 seconds, the dashboard reloads on navigation.
const (
	countsTTL     = 30 * time.Second
	statisticsTTL = 60 * time.Second
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional; every
// accessor degrades to a miss when the client is nil.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Enabled reports whether a Redis connection is available.
func Enabled() bool {
	return client != nil
}

func countsKey(role string) string {
	return fmt.Sprintf(countsKeyFmt, role)
}

// GetCachedCounts returns cached notification counts for a role if available.
func GetCachedCounts(ctx context.Context, role string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, countsKey(role)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheCounts caches notification counts for one poll interval.
func CacheCounts(ctx context.Context, role string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, countsKey(role), data, countsTTL)
}

// GetCachedStatistics returns the cached dashboard payload if available.
func GetCachedStatistics(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, statisticsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheStatistics caches the dashboard payload.
func CacheStatistics(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, statisticsKey, data, statisticsTTL)
}

// InvalidateStatistics drops the cached dashboard payload. Called after item
// or project writes so the dashboard never lags a full TTL behind a change.
func InvalidateStatistics(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, statisticsKey)
}
