package cache

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the counter-store client from environment variables.
//
// Supported env vars:
//   - REDIS_HOST (default: localhost)
//   - REDIS_PORT (default: 6379)
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (default: 0)
//
// The ping is best-effort: rate limiting fails closed per request, so a
// Redis that is down at boot must not keep the API from starting.
func NewRedisClient(ctx context.Context) *redis.Client {
	host := getenvDefault("REDIS_HOST", "localhost")
	port := getenvDefault("REDIS_PORT", "6379")
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			db = parsed
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[cache][redis] ping failed, guarded endpoints will fail closed until it recovers err=%v", err)
	}

	return client
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
