package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Dashboard cache keys
const (
	SummaryKeyFmt = "dashboard:summary:%s" // per month key
	OccupancyKey  = "dashboard:occupancy"
)

// SummaryTTL is short: summaries are cheap to recompute and must not lag
// far behind accepted payments.
const SummaryTTL = 2 * time.Minute

var client *redis.Client

// Init initializes the Redis connection. The cache is optional; callers
// degrade gracefully when it is unavailable.
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
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCachedSummary returns the cached dashboard summary JSON for a month
func GetCachedSummary(ctx context.Context, month string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, fmt.Sprintf(SummaryKeyFmt, month)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheSummary stores the dashboard summary JSON for a month
func CacheSummary(ctx context.Context, month string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, fmt.Sprintf(SummaryKeyFmt, month), data, SummaryTTL)
}

// InvalidateSummaries clears all cached dashboard summaries. Called after
// any write that changes bill or payment totals.
func InvalidateSummaries(ctx context.Context) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, "dashboard:summary:*").Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
	client.Del(ctx, OccupancyKey)
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}
