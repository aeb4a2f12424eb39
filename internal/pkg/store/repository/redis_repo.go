package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStoreAdapter struct {
	client *redis.Client
}

func NewRedisStoreAdapter(client *redis.Client) *RedisStoreAdapter {
	return &RedisStoreAdapter{client: client}
}

func (a *RedisStoreAdapter) RPush(ctx context.Context, key string, values ...interface{}) error {
	return a.client.RPush(ctx, key, values...).Err()
}

func (a *RedisStoreAdapter) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return a.client.Expire(ctx, key, expiration).Result()
}

func (a *RedisStoreAdapter) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return a.client.LRange(ctx, key, start, stop).Result()
}
