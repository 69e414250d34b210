package store

import (
	"context"
	"errors"

	apperrors "boxoffice/cli/internal/errors"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a redis server. Keys are stored as
// "<namespace>:<key>" plain strings with no TTL.
type Redis struct {
	rdb       redis.UniversalClient
	namespace string
}

// NewRedis wraps an existing client. An empty namespace stores bare keys.
func NewRedis(rdb redis.UniversalClient, namespace string) *Redis {
	return &Redis{rdb: rdb, namespace: namespace}
}

func (r *Redis) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

// Set stores value under the namespaced key with no expiry.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return apperrors.Wrap(apperrors.StoreWrite, "redis set "+key, err)
	}
	return nil
}

// Get returns the value under the namespaced key and whether it was present.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, apperrors.Wrap(apperrors.StoreRead, "redis get "+key, err)
	}
	return v, true, nil
}

// Remove deletes the namespaced key.
func (r *Redis) Remove(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.key(key)).Err(); err != nil {
		return apperrors.Wrap(apperrors.StoreWrite, "redis del "+key, err)
	}
	return nil
}

// Clear deletes every key under the namespace. Without a namespace there is
// no way to tell boxoffice keys apart, so it refuses.
func (r *Redis) Clear(ctx context.Context) error {
	if r.namespace == "" {
		return apperrors.New(apperrors.StoreWrite, "redis clear needs a namespace")
	}
	iter := r.rdb.Scan(ctx, 0, r.namespace+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return apperrors.Wrap(apperrors.StoreRead, "redis scan "+r.namespace, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return apperrors.Wrap(apperrors.StoreWrite, "redis clear "+r.namespace, err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
