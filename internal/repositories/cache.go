package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/karnaval/go-costume-catalog/internal/common"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache.go -destination=mock/cache_mock.go -package=mock

// CacheRepository is the raw string store behind the idempotency middleware.
type CacheRepository interface {
	SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get returns common.ErrDataNotFound on a miss.
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

type cacheClient struct {
	redis *redis.Client
}

func NewCacheRepository(client *redis.Client) CacheRepository {
	return &cacheClient{redis: client}
}

func (cc *cacheClient) SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return cc.redis.SetNX(ctx, key, value, ttl).Result()
}

func (cc *cacheClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return cc.redis.Set(ctx, key, value, ttl).Err()
}

func (cc *cacheClient) Get(ctx context.Context, key string) (string, error) {
	val, err := cc.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrDataNotFound
		}
		return "", err
	}

	return strings.TrimSpace(val), nil
}

func (cc *cacheClient) Del(ctx context.Context, keys ...string) error {
	return cc.redis.Del(ctx, keys...).Err()
}

func (cc *cacheClient) Ping(ctx context.Context) error {
	return cc.redis.Ping(ctx).Err()
}
