// Package cache wraps the Redis client used as auxiliary cache and rate limit store.
package cache

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
)

var (
	client *redis.Client
	once   sync.Once
)

// GetClient returns the process wide Redis client, initializing it on first use.
// REDIS_ADDR defaults to localhost:6379 when unset.
func GetClient() *redis.Client {
	once.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		client = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
	})
	return client
}

// Health pings Redis and returns a status map in the same shape the database
// health check uses.
func Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := GetClient().Ping(ctx).Err(); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("redis down: %v", err)
		return stats
	}

	stats["status"] = "up"
	return stats
}
