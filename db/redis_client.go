package db

import (
	"context"
	"time"
)

// RedisClient defines the methods available in the Redis clients.
type RedisClient interface {
	Set(key, value string) error
	SetWithTTL(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	Ping() error
	GetContext() context.Context
}
