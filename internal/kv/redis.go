package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// keyPrefix namespaces planner blobs inside a shared Redis instance.
const keyPrefix = "yatra:kv:"

// Redis is a Store backed by a Redis instance. Suitable when several API
// instances should share one planner state.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an existing Redis client as a Store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get returns the value stored under key, or ok=false when absent.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv.Redis.Get %q: %w", key, err)
	}
	return v, true, nil
}

// Set overwrites the value stored under key. Redis OOM rejections (maxmemory
// reached) are wrapped in domain.ErrStorageQuota so the record store can
// report them as store-level failures.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		if strings.Contains(err.Error(), "OOM") {
			return fmt.Errorf("kv.Redis.Set %q: %w: %s", key, domain.ErrStorageQuota, err)
		}
		return fmt.Errorf("kv.Redis.Set %q: %w", key, err)
	}
	return nil
}

var _ Store = (*Redis)(nil)
