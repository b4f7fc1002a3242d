package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"sealed_letters/internal/usecase/interfaces"
)

// RedisCounterStore implements the rate-limit counter on Redis.
//
// The counter is a fixed window: INCR under the key, with the expiry armed
// when the increment created the key. Redis serializes the INCRs, so the
// count is correct across every API instance sharing the store.
type RedisCounterStore struct {
	client *redis.Client
}

var _ interfaces.IRateLimitStore = (*RedisCounterStore)(nil)

func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		// First hit in this window owns the expiry. If this EXPIRE is lost the
		// key would never die, so surface the error and let the caller deny.
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

func (s *RedisCounterStore) Get(ctx context.Context, key string) (int64, error) {
	count, err := s.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}
