package interfaces

import (
	"context"
	"time"
)

// RedisStoreOperations defines the list operations backing trace retention.
type RedisStoreOperations interface {
	RPush(ctx context.Context, key string, values ...interface{}) error
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}
