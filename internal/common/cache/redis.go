package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisClient[T any] struct {
	redis  *redis.Client
	prefix string
}

// NewRedisClient namespaces every key with prefix, an empty prefix keeps keys as given.
func NewRedisClient[T any](client *redis.Client, prefix string) Client[T] {
	return &redisClient[T]{redis: client, prefix: prefix}
}

func (r *redisClient[T]) key(k string) string {
	return r.prefix + k
}

func (r *redisClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	val, err := r.redis.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, ErrNotExists
		}
		return result, err
	}

	err = json.Unmarshal(val, &result)
	return result, err
}

func (r *redisClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	val, err := json.Marshal(object)
	if err != nil {
		return err
	}

	return r.redis.Set(ctx, r.key(key), val, ttl).Err()
}

func (r *redisClient[T]) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = r.key(k)
	}
	return r.redis.Del(ctx, prefixed...).Err()
}

func (r *redisClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, r, opts)
}
