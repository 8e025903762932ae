package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheRedisClient struct holds the Redis client and context
type CacheRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewCacheRedisClient wraps an initialized go-redis client.
func NewCacheRedisClient(ctx context.Context, client *redis.Client) *CacheRedisClient {
	return &CacheRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis without expiration.
func (r *CacheRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithTTL sets a key-value pair that expires after ttl.
func (r *CacheRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *CacheRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Keys returns the keys matching the given pattern.
func (r *CacheRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key from Redis.
func (r *CacheRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *CacheRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *CacheRedisClient) GetContext() context.Context {
	return r.ctx
}
